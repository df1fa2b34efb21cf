package dto

import "github.com/Tibebua/NationalPark/internal/model"

// Trail — полная форма тропы, которую возвращает API (вместе с парком).
type Trail struct {
	ID             int              `json:"id"`
	Name           string           `json:"name"`
	Distance       float64          `json:"distance"`
	Elevation      float64          `json:"elevation"`
	Difficulty     model.Difficulty `json:"difficulty"`
	NationalParkID int              `json:"nationalParkId"`
	NationalPark   *NationalPark    `json:"nationalPark,omitempty"`
}

// TrailCreate — тело запроса на создание тропы.
type TrailCreate struct {
	Name           string           `json:"name" binding:"required"`
	Distance       float64          `json:"distance"`
	Elevation      float64          `json:"elevation"`
	Difficulty     model.Difficulty `json:"difficulty" binding:"required,difficulty"`
	NationalParkID int              `json:"nationalParkId" binding:"required"`
}

// TrailUpdate — тело запроса на обновление тропы; ID должен совпадать с ID в пути.
type TrailUpdate struct {
	ID             int              `json:"id"`
	Name           string           `json:"name" binding:"required"`
	Distance       float64          `json:"distance"`
	Elevation      float64          `json:"elevation"`
	Difficulty     model.Difficulty `json:"difficulty" binding:"required,difficulty"`
	NationalParkID int              `json:"nationalParkId" binding:"required"`
}

// FromTrail строит DTO по сущности; парк включается, если он загружен.
func FromTrail(t model.Trail) Trail {
	out := Trail{
		ID:             t.ID,
		Name:           t.Name,
		Distance:       t.Distance,
		Elevation:      t.Elevation,
		Difficulty:     t.Difficulty,
		NationalParkID: t.NationalParkID,
	}
	if t.NationalPark != nil {
		park := FromNationalPark(*t.NationalPark)
		out.NationalPark = &park
	}
	return out
}

// FromTrails преобразует список; результат никогда не nil.
func FromTrails(trails []model.Trail) []Trail {
	out := make([]Trail, 0, len(trails))
	for _, t := range trails {
		out = append(out, FromTrail(t))
	}
	return out
}

// ToModel строит новую сущность (без ID).
func (d TrailCreate) ToModel() model.Trail {
	return model.Trail{
		Name:           d.Name,
		Distance:       d.Distance,
		Elevation:      d.Elevation,
		Difficulty:     d.Difficulty,
		NationalParkID: d.NationalParkID,
	}
}

// ToModel строит сущность для полной перезаписи.
func (d TrailUpdate) ToModel() model.Trail {
	return model.Trail{
		ID:             d.ID,
		Name:           d.Name,
		Distance:       d.Distance,
		Elevation:      d.Elevation,
		Difficulty:     d.Difficulty,
		NationalParkID: d.NationalParkID,
	}
}
