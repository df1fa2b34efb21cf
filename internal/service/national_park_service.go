package service

import (
	"context"
	"fmt"

	"github.com/Tibebua/NationalPark/internal/model"
)

// NationalParkStore — операции хранилища, нужные сервису парков.
type NationalParkStore interface {
	List(ctx context.Context) ([]model.NationalPark, error)
	Get(ctx context.Context, id int) (*model.NationalPark, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, park *model.NationalPark) error
	Update(ctx context.Context, park *model.NationalPark) error
	Delete(ctx context.Context, park *model.NationalPark) error
}

// NationalParkService содержит бизнес-логику, связанную с национальными парками.
type NationalParkService struct {
	parkRepo NationalParkStore
}

// NewNationalParkService создает новый сервис парков.
func NewNationalParkService(parkRepo NationalParkStore) *NationalParkService {
	return &NationalParkService{parkRepo: parkRepo}
}

// List возвращает все парки.
func (s *NationalParkService) List(ctx context.Context) ([]model.NationalPark, error) {
	return s.parkRepo.List(ctx)
}

// Get возвращает парк по идентификатору или ErrNotFound.
func (s *NationalParkService) Get(ctx context.Context, id int) (*model.NationalPark, error) {
	return s.parkRepo.Get(ctx, id)
}

// Create сохраняет новый парк, если парка с таким именем еще нет.
// Проверка и запись не атомарны: два одновременных запроса могут создать дубликат.
func (s *NationalParkService) Create(ctx context.Context, park *model.NationalPark) error {
	exists, err := s.parkRepo.ExistsByName(ctx, park.Name)
	if err != nil {
		return err
	}
	if exists {
		return ErrNameExists
	}
	if err := s.parkRepo.Create(ctx, park); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	return nil
}

// Update полностью перезаписывает существующий парк.
func (s *NationalParkService) Update(ctx context.Context, park *model.NationalPark) error {
	exists, err := s.parkRepo.Exists(ctx, park.ID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	if err := s.parkRepo.Update(ctx, park); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	return nil
}

// Delete удаляет парк и возвращает удаленную запись (нужна для сообщений об ошибке).
func (s *NationalParkService) Delete(ctx context.Context, id int) (*model.NationalPark, error) {
	exists, err := s.parkRepo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}
	park, err := s.parkRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.parkRepo.Delete(ctx, park); err != nil {
		return park, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	return park, nil
}
