package facade_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

func ret[T any](args mock.Arguments, i int) T {
	var zero T
	if v, ok := args.Get(i).(T); ok {
		return v
	}
	return zero
}

// MockParentService is a mock for an aggregate service
type MockParentService[D any] struct {
	mock.Mock
}

func (m *MockParentService[D]) NewData(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockParentService[D]) GetAll(ctx context.Context) ([]D, error) {
	args := m.Called(ctx)
	return ret[[]D](args, 0), args.Error(1)
}

func (m *MockParentService[D]) Get(ctx context.Context, id int) (D, error) {
	args := m.Called(ctx, id)
	return ret[D](args, 0), args.Error(1)
}

func (m *MockParentService[D]) Siblings(ctx context.Context, id int) ([]D, error) {
	args := m.Called(ctx, id)
	return ret[[]D](args, 0), args.Error(1)
}

func (m *MockParentService[D]) Add(ctx context.Context, item D) (D, error) {
	args := m.Called(ctx, item)
	return ret[D](args, 0), args.Error(1)
}

func (m *MockParentService[D]) Update(ctx context.Context, item D) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockParentService[D]) Remove(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockParentService[D]) Duplicate(ctx context.Context, id int) (D, error) {
	args := m.Called(ctx, id)
	return ret[D](args, 0), args.Error(1)
}

func (m *MockParentService[D]) MoveUp(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockParentService[D]) MoveDown(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockParentService[D]) UpdatePositions(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockChildService is a mock for a child service
type MockChildService[D any] struct {
	mock.Mock
}

func (m *MockChildService[D]) Get(ctx context.Context, id int) (D, error) {
	args := m.Called(ctx, id)
	return ret[D](args, 0), args.Error(1)
}

func (m *MockChildService[D]) Siblings(ctx context.Context, id int) ([]D, error) {
	args := m.Called(ctx, id)
	return ret[[]D](args, 0), args.Error(1)
}

func (m *MockChildService[D]) Find(ctx context.Context, parentID int) ([]D, error) {
	args := m.Called(ctx, parentID)
	return ret[[]D](args, 0), args.Error(1)
}

func (m *MockChildService[D]) Add(ctx context.Context, parentID int, child D) (D, error) {
	args := m.Called(ctx, parentID, child)
	return ret[D](args, 0), args.Error(1)
}

func (m *MockChildService[D]) Update(ctx context.Context, child D) error {
	return m.Called(ctx, child).Error(0)
}

func (m *MockChildService[D]) Remove(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockChildService[D]) Duplicate(ctx context.Context, id int) (D, error) {
	args := m.Called(ctx, id)
	return ret[D](args, 0), args.Error(1)
}

func (m *MockChildService[D]) MoveUp(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockChildService[D]) MoveDown(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}
