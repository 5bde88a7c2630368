// Package service holds testify mocks of the domain service ports in the
// mockery testify layout; .mockery.yaml regenerates them.
package service

import (
	"context"

	"kanakku/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// NewMockEventPublisher creates a new instance of MockEventPublisher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	mock := &MockEventPublisher{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockEventPublisher is a testify mock of the EventPublisher type
type MockEventPublisher struct {
	mock.Mock
}

type MockEventPublisher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEventPublisher) EXPECT() *MockEventPublisher_Expecter {
	return &MockEventPublisher_Expecter{mock: &_m.Mock}
}

// Close provides a mock function for the type MockEventPublisher
func (_mock *MockEventPublisher) Close() error {
	ret := _mock.Called()

	if len(ret) == 0 {
		panic("no return value specified for Close")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func() error); ok {
		r0 = returnFunc()
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockEventPublisher_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type MockEventPublisher_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *MockEventPublisher_Expecter) Close() *MockEventPublisher_Close_Call {
	return &MockEventPublisher_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *MockEventPublisher_Close_Call) Run(run func()) *MockEventPublisher_Close_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockEventPublisher_Close_Call) Return(err error) *MockEventPublisher_Close_Call {
	_c.Call.Return(err)
	return _c
}

func (_c *MockEventPublisher_Close_Call) RunAndReturn(run func() error) *MockEventPublisher_Close_Call {
	_c.Call.Return(run)
	return _c
}

// PublishLedgerEvent provides a mock function for the type MockEventPublisher
func (_mock *MockEventPublisher) PublishLedgerEvent(ctx context.Context, event *entity.LedgerEvent) error {
	ret := _mock.Called(ctx, event)

	if len(ret) == 0 {
		panic("no return value specified for PublishLedgerEvent")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, *entity.LedgerEvent) error); ok {
		r0 = returnFunc(ctx, event)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockEventPublisher_PublishLedgerEvent_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'PublishLedgerEvent'
type MockEventPublisher_PublishLedgerEvent_Call struct {
	*mock.Call
}

// PublishLedgerEvent is a helper method to define mock.On call
//   - ctx context.Context
//   - event *entity.LedgerEvent
func (_e *MockEventPublisher_Expecter) PublishLedgerEvent(ctx interface{}, event interface{}) *MockEventPublisher_PublishLedgerEvent_Call {
	return &MockEventPublisher_PublishLedgerEvent_Call{Call: _e.mock.On("PublishLedgerEvent", ctx, event)}
}

func (_c *MockEventPublisher_PublishLedgerEvent_Call) Run(run func(ctx context.Context, event *entity.LedgerEvent)) *MockEventPublisher_PublishLedgerEvent_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.LedgerEvent))
	})
	return _c
}

func (_c *MockEventPublisher_PublishLedgerEvent_Call) Return(err error) *MockEventPublisher_PublishLedgerEvent_Call {
	_c.Call.Return(err)
	return _c
}

func (_c *MockEventPublisher_PublishLedgerEvent_Call) RunAndReturn(run func(ctx context.Context, event *entity.LedgerEvent) error) *MockEventPublisher_PublishLedgerEvent_Call {
	_c.Call.Return(run)
	return _c
}
