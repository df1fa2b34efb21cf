package model

// Difficulty задает уровень сложности тропы.
type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyModerate  Difficulty = "moderate"
	DifficultyDifficult Difficulty = "difficult"
	DifficultyExpert    Difficulty = "expert"
)

// Difficulties перечисляет допустимые уровни сложности в порядке возрастания.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyModerate, DifficultyDifficult, DifficultyExpert}

// Valid сообщает, является ли значение одним из допустимых уровней.
func (d Difficulty) Valid() bool {
	for _, v := range Difficulties {
		if d == v {
			return true
		}
	}
	return false
}

// Trail представляет пешеходную тропу внутри национального парка.
type Trail struct {
	ID             int        `db:"id"`
	Name           string     `db:"name"`
	Distance       float64    `db:"distance"`  // протяженность
	Elevation      float64    `db:"elevation"` // набор высоты
	Difficulty     Difficulty `db:"difficulty"`
	NationalParkID int        `db:"national_park_id"`
	// NationalPark всегда заполняется при чтении из репозитория
	NationalPark *NationalPark `db:"-"`
}
