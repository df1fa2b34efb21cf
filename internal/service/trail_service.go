package service

import (
	"context"
	"fmt"

	"github.com/Tibebua/NationalPark/internal/model"
)

// TrailStore — операции хранилища, нужные сервису троп.
type TrailStore interface {
	List(ctx context.Context) ([]model.Trail, error)
	ListByPark(ctx context.Context, parkID int) ([]model.Trail, error)
	Get(ctx context.Context, id int) (*model.Trail, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, trail *model.Trail) error
	Update(ctx context.Context, trail *model.Trail) error
	Delete(ctx context.Context, trail *model.Trail) error
}

// TrailService содержит бизнес-логику, связанную с тропами.
type TrailService struct {
	trailRepo TrailStore
}

// NewTrailService создает новый сервис троп.
func NewTrailService(trailRepo TrailStore) *TrailService {
	return &TrailService{trailRepo: trailRepo}
}

// List возвращает все тропы, отсортированные по имени.
func (s *TrailService) List(ctx context.Context) ([]model.Trail, error) {
	return s.trailRepo.List(ctx)
}

// ListByPark возвращает тропы парка. Пустой список и nil различаются:
// nil означает, что хранилище не вернуло коллекцию.
func (s *TrailService) ListByPark(ctx context.Context, parkID int) ([]model.Trail, error) {
	return s.trailRepo.ListByPark(ctx, parkID)
}

// Get возвращает тропу по идентификатору или ErrNotFound.
func (s *TrailService) Get(ctx context.Context, id int) (*model.Trail, error) {
	return s.trailRepo.Get(ctx, id)
}

// Create сохраняет новую тропу, если тропы с таким именем еще нет.
func (s *TrailService) Create(ctx context.Context, trail *model.Trail) error {
	exists, err := s.trailRepo.ExistsByName(ctx, trail.Name)
	if err != nil {
		return err
	}
	if exists {
		return ErrNameExists
	}
	if err := s.trailRepo.Create(ctx, trail); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	return nil
}

// Update полностью перезаписывает существующую тропу.
func (s *TrailService) Update(ctx context.Context, trail *model.Trail) error {
	exists, err := s.trailRepo.Exists(ctx, trail.ID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	if err := s.trailRepo.Update(ctx, trail); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	return nil
}

// Delete удаляет тропу и возвращает удаленную запись.
func (s *TrailService) Delete(ctx context.Context, id int) (*model.Trail, error) {
	exists, err := s.trailRepo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}
	trail, err := s.trailRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.trailRepo.Delete(ctx, trail); err != nil {
		return trail, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	return trail, nil
}
