package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/Tibebua/NationalPark/internal/model"
)

var errStore = errors.New("store is down")

// fakeParkStore хранит парки в памяти; поля *Err подменяют ответы хранилища.
type fakeParkStore struct {
	parks     map[int]model.NationalPark
	nextID    int
	existsErr error
	saveErr   error
	creates   int
}

func newFakeParkStore(parks ...model.NationalPark) *fakeParkStore {
	s := &fakeParkStore{parks: map[int]model.NationalPark{}, nextID: 1}
	for _, p := range parks {
		s.parks[p.ID] = p
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
	return s
}

func (s *fakeParkStore) List(context.Context) ([]model.NationalPark, error) {
	out := []model.NationalPark{}
	for _, p := range s.parks {
		out = append(out, p)
	}
	return out, nil
}

func (s *fakeParkStore) Get(_ context.Context, id int) (*model.NationalPark, error) {
	p, ok := s.parks[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *fakeParkStore) ExistsByName(_ context.Context, name string) (bool, error) {
	if s.existsErr != nil {
		return false, s.existsErr
	}
	for _, p := range s.parks {
		if strings.EqualFold(strings.TrimSpace(p.Name), strings.TrimSpace(name)) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeParkStore) Exists(_ context.Context, id int) (bool, error) {
	if s.existsErr != nil {
		return false, s.existsErr
	}
	_, ok := s.parks[id]
	return ok, nil
}

func (s *fakeParkStore) Create(_ context.Context, p *model.NationalPark) error {
	s.creates++
	if s.saveErr != nil {
		return s.saveErr
	}
	p.ID = s.nextID
	s.nextID++
	s.parks[p.ID] = *p
	return nil
}

func (s *fakeParkStore) Update(_ context.Context, p *model.NationalPark) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.parks[p.ID] = *p
	return nil
}

func (s *fakeParkStore) Delete(_ context.Context, p *model.NationalPark) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	delete(s.parks, p.ID)
	return nil
}

// fakeTrailStore хранит тропы в памяти. nilByPark заставляет ListByPark вернуть nil.
type fakeTrailStore struct {
	trails    map[int]model.Trail
	nextID    int
	saveErr   error
	nilByPark bool
}

func newFakeTrailStore(trails ...model.Trail) *fakeTrailStore {
	s := &fakeTrailStore{trails: map[int]model.Trail{}, nextID: 1}
	for _, tr := range trails {
		s.trails[tr.ID] = tr
		if tr.ID >= s.nextID {
			s.nextID = tr.ID + 1
		}
	}
	return s
}

func (s *fakeTrailStore) List(context.Context) ([]model.Trail, error) {
	out := []model.Trail{}
	for _, tr := range s.trails {
		out = append(out, tr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *fakeTrailStore) ListByPark(_ context.Context, parkID int) ([]model.Trail, error) {
	if s.nilByPark {
		return nil, nil
	}
	out := []model.Trail{}
	for _, tr := range s.trails {
		if tr.NationalParkID == parkID {
			out = append(out, tr)
		}
	}
	return out, nil
}

func (s *fakeTrailStore) Get(_ context.Context, id int) (*model.Trail, error) {
	tr, ok := s.trails[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &tr, nil
}

func (s *fakeTrailStore) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, tr := range s.trails {
		if strings.EqualFold(strings.TrimSpace(tr.Name), strings.TrimSpace(name)) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeTrailStore) Exists(_ context.Context, id int) (bool, error) {
	_, ok := s.trails[id]
	return ok, nil
}

func (s *fakeTrailStore) Create(_ context.Context, tr *model.Trail) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	tr.ID = s.nextID
	s.nextID++
	s.trails[tr.ID] = *tr
	return nil
}

func (s *fakeTrailStore) Update(_ context.Context, tr *model.Trail) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.trails[tr.ID] = *tr
	return nil
}

func (s *fakeTrailStore) Delete(_ context.Context, tr *model.Trail) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	delete(s.trails, tr.ID)
	return nil
}
