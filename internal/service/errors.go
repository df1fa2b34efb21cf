package service

import (
	"errors"

	"github.com/Tibebua/NationalPark/internal/repository"
)

var (
	// ErrNotFound — запрошенная запись отсутствует.
	ErrNotFound = repository.ErrNotFound
	// ErrNameExists — запись с таким именем уже есть (сравнение без учета регистра и пробелов).
	ErrNameExists = errors.New("запись с таким именем уже существует")
	// ErrSaveFailed — хранилище не смогло сохранить изменения.
	ErrSaveFailed = errors.New("не удалось сохранить изменения")
)
