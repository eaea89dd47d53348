package service

import (
	"context"
	"sync"
	"time"

	"github.com/spec-kit/clothes-service/internal/domain"
	"github.com/spec-kit/clothes-service/internal/repository"
)

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*domain.User
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[int64]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, u := range f.byID {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now().UTC()
	user.LastModifiedAt = user.CreatedAt
	cp := *user
	f.byID[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeClothesRepo struct {
	mu        sync.Mutex
	nextID    int64
	items     map[int64]domain.Clothes
	listCalls int
	err       error
}

func newFakeClothesRepo() *fakeClothesRepo {
	return &fakeClothesRepo{items: make(map[int64]domain.Clothes)}
}

func (f *fakeClothesRepo) Create(_ context.Context, item *domain.Clothes) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.nextID++
	item.ID = f.nextID
	item.CreatedAt = time.Now().UTC()
	item.LastModifiedAt = item.CreatedAt
	f.items[item.ID] = *item
	return nil
}

func (f *fakeClothesRepo) Update(_ context.Context, item *domain.Clothes) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[item.ID]; !ok {
		return repository.ErrNotFound
	}
	item.LastModifiedAt = time.Now().UTC()
	f.items[item.ID] = *item
	return nil
}

func (f *fakeClothesRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeClothesRepo) GetByID(_ context.Context, id int64) (*domain.Clothes, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &item, nil
}

func (f *fakeClothesRepo) List(_ context.Context) ([]domain.Clothes, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Clothes, 0, len(f.items))
	for id := int64(1); id <= f.nextID; id++ {
		if item, ok := f.items[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeClothesRepo) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}
