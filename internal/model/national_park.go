package model

import "time"

// NationalPark представляет национальный парк.
type NationalPark struct {
	ID          int        `db:"id"`
	Name        string     `db:"name"`
	State       string     `db:"state"`       // регион (штат), в котором находится парк
	Established *time.Time `db:"established"` // дата основания, может отсутствовать
}
