package event

import (
	"github.com/stretchr/testify/mock"
)

// MockBus is a testify mock of Bus.
type MockBus[T any] struct {
	mock.Mock
}

var _ Bus[int] = (*MockBus[int])(nil)

func NewMockBus[T any]() *MockBus[T] {
	return &MockBus[T]{}
}

func (m *MockBus[T]) Subscribe(kind Kind, handler Handler[T]) (SubscriptionID, error) {
	args := m.Called(kind, handler)
	return args.Get(0).(SubscriptionID), args.Error(1)
}

func (m *MockBus[T]) SubscribeOnce(kind Kind, handler Handler[T]) (SubscriptionID, error) {
	args := m.Called(kind, handler)
	return args.Get(0).(SubscriptionID), args.Error(1)
}

func (m *MockBus[T]) Unsubscribe(id SubscriptionID) bool {
	args := m.Called(id)
	return args.Bool(0)
}

func (m *MockBus[T]) UnsubscribeAll(kind Kind) {
	m.Called(kind)
}

func (m *MockBus[T]) HandlerCount(kind Kind) int {
	args := m.Called(kind)
	return args.Int(0)
}

func (m *MockBus[T]) Publish(kind Kind, item T) {
	m.Called(kind, item)
}
