package service

import (
	"github.com/lejebolig/lejebolig-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByID(id uint64) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) Create(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *mockUserRepo) Update(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *mockUserRepo) FindNamesByIDs(ids []uint64) (map[uint64]string, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint64]string), args.Error(1)
}

type mockPropertyRepo struct {
	mock.Mock
}

func (m *mockPropertyRepo) Create(property *domain.Property) error {
	args := m.Called(property)
	return args.Error(0)
}

func (m *mockPropertyRepo) FindByID(id uint64) (*domain.Property, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *mockPropertyRepo) Update(property *domain.Property) error {
	args := m.Called(property)
	return args.Error(0)
}

func (m *mockPropertyRepo) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockPropertyRepo) Search(filter domain.PropertyFilter) ([]*domain.Property, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.Property), args.Get(1).(int64), args.Error(2)
}

func (m *mockPropertyRepo) FindByLandlord(landlordID uint64) ([]*domain.Property, error) {
	args := m.Called(landlordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Property), args.Error(1)
}

func (m *mockPropertyRepo) Exists(id uint64) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *mockPropertyRepo) FindTitlesByIDs(ids []uint64) (map[uint64]string, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint64]string), args.Error(1)
}

type mockMessageRepo struct {
	mock.Mock
}

func (m *mockMessageRepo) Create(msg *domain.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *mockMessageRepo) FindByID(id uint64) (*domain.Message, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}

func (m *mockMessageRepo) FindForUser(userID uint64) ([]domain.Message, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}

func (m *mockMessageRepo) MarkAsRead(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

type mockFavoriteRepo struct {
	mock.Mock
}

func (m *mockFavoriteRepo) Add(userID, propertyID uint64) error {
	args := m.Called(userID, propertyID)
	return args.Error(0)
}

func (m *mockFavoriteRepo) Remove(userID, propertyID uint64) error {
	args := m.Called(userID, propertyID)
	return args.Error(0)
}

func (m *mockFavoriteRepo) FindByUser(userID uint64) ([]*domain.Property, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Property), args.Error(1)
}

func (m *mockFavoriteRepo) IsFavorite(userID, propertyID uint64) (bool, error) {
	args := m.Called(userID, propertyID)
	return args.Bool(0), args.Error(1)
}
