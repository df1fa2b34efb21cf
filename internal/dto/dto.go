// Package dto описывает объекты передачи данных HTTP API и их преобразование
// в сущности хранилища и обратно. Для каждого варианта DTO есть своя функция
// преобразования, поскольку наборы полей различаются.
package dto

import (
	"github.com/Tibebua/NationalPark/internal/model"
)

// NationalPark — единственная форма парка для чтения, создания и обновления.
type NationalPark struct {
	ID          int    `json:"id"`
	Name        string `json:"name" binding:"required"`
	State       string `json:"state"`
	Established *Date  `json:"established,omitempty"`
}

// FromNationalPark строит DTO по сущности.
func FromNationalPark(p model.NationalPark) NationalPark {
	return NationalPark{
		ID:          p.ID,
		Name:        p.Name,
		State:       p.State,
		Established: dateFromTime(p.Established),
	}
}

// FromNationalParks преобразует список; результат никогда не nil.
func FromNationalParks(parks []model.NationalPark) []NationalPark {
	out := make([]NationalPark, 0, len(parks))
	for _, p := range parks {
		out = append(out, FromNationalPark(p))
	}
	return out
}

// ToModel строит сущность по DTO. Дата основания сохраняется как полночь UTC.
func (d NationalPark) ToModel() model.NationalPark {
	return model.NationalPark{
		ID:          d.ID,
		Name:        d.Name,
		State:       d.State,
		Established: d.Established.toTime(),
	}
}
