package mocks

import (
	"context"

	"github.com/amirasaad/minibank/pkg/domain/events"
	"github.com/amirasaad/minibank/pkg/eventbus"
	"github.com/stretchr/testify/mock"
)

// MockBus is a mock implementation of eventbus.Bus.
type MockBus struct {
	mock.Mock
}

type MockBus_Expecter struct {
	mock *mock.Mock
}

func (_m *MockBus) EXPECT() *MockBus_Expecter {
	return &MockBus_Expecter{mock: &_m.Mock}
}

// Publish provides a mock function with given fields: ctx, event
func (_m *MockBus) Publish(ctx context.Context, event events.Event) error {
	ret := _m.Called(ctx, event)

	if len(ret) == 0 {
		panic("no return value specified for Publish")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, events.Event) error); ok {
		r0 = rf(ctx, event)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockBus_Publish_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Publish'
type MockBus_Publish_Call struct {
	*mock.Call
}

// Publish is a helper method to define mock.On call
//   - ctx context.Context
//   - event events.Event
func (_e *MockBus_Expecter) Publish(ctx interface{}, event interface{}) *MockBus_Publish_Call {
	return &MockBus_Publish_Call{Call: _e.mock.On("Publish", ctx, event)}
}

func (_c *MockBus_Publish_Call) Run(run func(ctx context.Context, event events.Event)) *MockBus_Publish_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var event events.Event
		if args[1] != nil {
			event = args[1].(events.Event)
		}
		run(args[0].(context.Context), event)
	})
	return _c
}

func (_c *MockBus_Publish_Call) Return(_a0 error) *MockBus_Publish_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockBus_Publish_Call) RunAndReturn(run func(context.Context, events.Event) error) *MockBus_Publish_Call {
	_c.Call.Return(run)
	return _c
}

// Subscribe provides a mock function with given fields: eventType, handler
func (_m *MockBus) Subscribe(eventType events.EventType, handler eventbus.Handler) {
	_m.Called(eventType, handler)
}

// MockBus_Subscribe_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Subscribe'
type MockBus_Subscribe_Call struct {
	*mock.Call
}

// Subscribe is a helper method to define mock.On call
//   - eventType events.EventType
//   - handler eventbus.Handler
func (_e *MockBus_Expecter) Subscribe(eventType interface{}, handler interface{}) *MockBus_Subscribe_Call {
	return &MockBus_Subscribe_Call{Call: _e.mock.On("Subscribe", eventType, handler)}
}

func (_c *MockBus_Subscribe_Call) Return() *MockBus_Subscribe_Call {
	_c.Call.Return()
	return _c
}

// NewMockBus creates a new instance of MockBus. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockBus(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBus {
	m := &MockBus{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ eventbus.Bus = (*MockBus)(nil)
