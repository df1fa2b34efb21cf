package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Tibebua/NationalPark/internal/model"

	"github.com/jmoiron/sqlx"
)

// trailSelect выбирает тропы вместе с их парком одним запросом.
const trailSelect = `SELECT t.id, t.name, t.distance, t.elevation, t.difficulty, t.national_park_id,
       np.name AS park_name, np.state AS park_state, np.established AS park_established
  FROM trails t
  JOIN national_parks np ON np.id = t.national_park_id`

// trailRow — плоская строка результата trailSelect.
type trailRow struct {
	ID              int              `db:"id"`
	Name            string           `db:"name"`
	Distance        float64          `db:"distance"`
	Elevation       float64          `db:"elevation"`
	Difficulty      model.Difficulty `db:"difficulty"`
	NationalParkID  int              `db:"national_park_id"`
	ParkName        string           `db:"park_name"`
	ParkState       string           `db:"park_state"`
	ParkEstablished *time.Time       `db:"park_established"`
}

func (r trailRow) toModel() model.Trail {
	return model.Trail{
		ID:             r.ID,
		Name:           r.Name,
		Distance:       r.Distance,
		Elevation:      r.Elevation,
		Difficulty:     r.Difficulty,
		NationalParkID: r.NationalParkID,
		NationalPark: &model.NationalPark{
			ID:          r.NationalParkID,
			Name:        r.ParkName,
			State:       r.ParkState,
			Established: r.ParkEstablished,
		},
	}
}

func rowsToTrails(rows []trailRow) []model.Trail {
	trails := make([]model.Trail, 0, len(rows))
	for _, row := range rows {
		trails = append(trails, row.toModel())
	}
	return trails
}

// TrailRepository обеспечивает доступ к данным троп в базе данных.
// Каждое чтение сразу подгружает парк тропы.
type TrailRepository struct {
	db *sqlx.DB
}

// NewTrailRepository создает новый репозиторий для троп.
func NewTrailRepository(db *sqlx.DB) *TrailRepository {
	return &TrailRepository{db: db}
}

// List возвращает все тропы, отсортированные по имени.
func (r *TrailRepository) List(ctx context.Context) ([]model.Trail, error) {
	rows := []trailRow{}
	if err := r.db.SelectContext(ctx, &rows, trailSelect+" ORDER BY t.name ASC"); err != nil {
		return nil, fmt.Errorf("ошибка при получении списка троп: %w", err)
	}
	return rowsToTrails(rows), nil
}

// ListByPark возвращает тропы указанного парка. Для парка без троп возвращается пустой список.
func (r *TrailRepository) ListByPark(ctx context.Context, parkID int) ([]model.Trail, error) {
	rows := []trailRow{}
	err := r.db.SelectContext(ctx, &rows, r.db.Rebind(trailSelect+" WHERE t.national_park_id=?"), parkID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении троп парка %d: %w", parkID, err)
	}
	return rowsToTrails(rows), nil
}

// Get получает тропу по ее идентификатору.
func (r *TrailRepository) Get(ctx context.Context, id int) (*model.Trail, error) {
	var row trailRow
	err := r.db.GetContext(ctx, &row, r.db.Rebind(trailSelect+" WHERE t.id=?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении тропы %d: %w", id, err)
	}
	trail := row.toModel()
	return &trail, nil
}

// ExistsByName проверяет наличие тропы с таким именем без учета регистра и пробелов по краям.
func (r *TrailRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		r.db.Rebind("SELECT EXISTS (SELECT 1 FROM trails WHERE name_key=?)"), model.NameKey(name))
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке имени тропы: %w", err)
	}
	return exists, nil
}

// Exists проверяет наличие тропы с указанным идентификатором.
func (r *TrailRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, r.db.Rebind("SELECT EXISTS (SELECT 1 FROM trails WHERE id=?)"), id)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке тропы %d: %w", id, err)
	}
	return exists, nil
}

// Create сохраняет новую тропу и записывает присвоенный идентификатор в trail.ID.
// Ссылка на несуществующий парк отклоняется базой (внешний ключ).
func (r *TrailRepository) Create(ctx context.Context, trail *model.Trail) error {
	query := r.db.Rebind(`INSERT INTO trails (name, name_key, distance, elevation, difficulty, national_park_id)
	          VALUES (?, ?, ?, ?, ?, ?) RETURNING id`)
	err := r.db.QueryRowxContext(ctx, query,
		trail.Name, model.NameKey(trail.Name), trail.Distance, trail.Elevation, trail.Difficulty, trail.NationalParkID).Scan(&trail.ID)
	if err != nil {
		return fmt.Errorf("не удалось создать тропу: %w", err)
	}
	return nil
}

// Update полностью перезаписывает тропу по первичному ключу.
func (r *TrailRepository) Update(ctx context.Context, trail *model.Trail) error {
	query := r.db.Rebind(`UPDATE trails
	             SET name=?, name_key=?, distance=?, elevation=?, difficulty=?, national_park_id=?
	           WHERE id=?`)
	_, err := r.db.ExecContext(ctx, query,
		trail.Name, model.NameKey(trail.Name), trail.Distance, trail.Elevation, trail.Difficulty, trail.NationalParkID, trail.ID)
	if err != nil {
		return fmt.Errorf("не удалось обновить тропу %d: %w", trail.ID, err)
	}
	return nil
}

// Delete удаляет тропу по первичному ключу.
func (r *TrailRepository) Delete(ctx context.Context, trail *model.Trail) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM trails WHERE id=?"), trail.ID)
	if err != nil {
		return fmt.Errorf("не удалось удалить тропу %d: %w", trail.ID, err)
	}
	return nil
}
