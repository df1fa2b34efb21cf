package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Tibebua/NationalPark/internal/model"

	"github.com/jmoiron/sqlx"
)

// NationalParkRepository обеспечивает доступ к данным национальных парков в базе данных.
type NationalParkRepository struct {
	db *sqlx.DB
}

// NewNationalParkRepository создает новый репозиторий для парков.
func NewNationalParkRepository(db *sqlx.DB) *NationalParkRepository {
	return &NationalParkRepository{db: db}
}

// List возвращает все парки. Порядок не определен.
func (r *NationalParkRepository) List(ctx context.Context) ([]model.NationalPark, error) {
	parks := []model.NationalPark{}
	err := r.db.SelectContext(ctx, &parks, "SELECT id, name, state, established FROM national_parks")
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка парков: %w", err)
	}
	return parks, nil
}

// Get получает парк по его идентификатору.
func (r *NationalParkRepository) Get(ctx context.Context, id int) (*model.NationalPark, error) {
	var park model.NationalPark
	err := r.db.GetContext(ctx, &park,
		r.db.Rebind("SELECT id, name, state, established FROM national_parks WHERE id=?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении парка %d: %w", id, err)
	}
	return &park, nil
}

// ExistsByName проверяет наличие парка с таким именем без учета регистра и пробелов по краям.
// Сравнение идет по name_key, см. model.NameKey.
func (r *NationalParkRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		r.db.Rebind("SELECT EXISTS (SELECT 1 FROM national_parks WHERE name_key=?)"), model.NameKey(name))
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке имени парка: %w", err)
	}
	return exists, nil
}

// Exists проверяет наличие парка с указанным идентификатором.
func (r *NationalParkRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		r.db.Rebind("SELECT EXISTS (SELECT 1 FROM national_parks WHERE id=?)"), id)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке парка %d: %w", id, err)
	}
	return exists, nil
}

// Create сохраняет новый парк и записывает присвоенный идентификатор в park.ID.
func (r *NationalParkRepository) Create(ctx context.Context, park *model.NationalPark) error {
	query := r.db.Rebind(`INSERT INTO national_parks (name, name_key, state, established) VALUES (?, ?, ?, ?) RETURNING id`)
	err := r.db.QueryRowxContext(ctx, query,
		park.Name, model.NameKey(park.Name), park.State, park.Established).Scan(&park.ID)
	if err != nil {
		return fmt.Errorf("не удалось создать парк: %w", err)
	}
	return nil
}

// Update полностью перезаписывает парк по первичному ключу.
func (r *NationalParkRepository) Update(ctx context.Context, park *model.NationalPark) error {
	query := r.db.Rebind(`UPDATE national_parks SET name=?, name_key=?, state=?, established=? WHERE id=?`)
	_, err := r.db.ExecContext(ctx, query,
		park.Name, model.NameKey(park.Name), park.State, park.Established, park.ID)
	if err != nil {
		return fmt.Errorf("не удалось обновить парк %d: %w", park.ID, err)
	}
	return nil
}

// Delete удаляет парк по первичному ключу. Тропы парка удаляются каскадно.
func (r *NationalParkRepository) Delete(ctx context.Context, park *model.NationalPark) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM national_parks WHERE id=?"), park.ID)
	if err != nil {
		return fmt.Errorf("не удалось удалить парк %d: %w", park.ID, err)
	}
	return nil
}
