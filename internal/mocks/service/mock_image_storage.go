package service

import (
	"context"
	"io"

	mock "github.com/stretchr/testify/mock"
)

// NewMockImageStorage creates a new instance of MockImageStorage. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockImageStorage(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockImageStorage {
	mock := &MockImageStorage{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockImageStorage is a testify mock of the ImageStorage type
type MockImageStorage struct {
	mock.Mock
}

type MockImageStorage_Expecter struct {
	mock *mock.Mock
}

func (_m *MockImageStorage) EXPECT() *MockImageStorage_Expecter {
	return &MockImageStorage_Expecter{mock: &_m.Mock}
}

// Close provides a mock function for the type MockImageStorage
func (_mock *MockImageStorage) Close() error {
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

// MockImageStorage_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type MockImageStorage_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *MockImageStorage_Expecter) Close() *MockImageStorage_Close_Call {
	return &MockImageStorage_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *MockImageStorage_Close_Call) Run(run func()) *MockImageStorage_Close_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockImageStorage_Close_Call) Return(err error) *MockImageStorage_Close_Call {
	_c.Call.Return(err)
	return _c
}

func (_c *MockImageStorage_Close_Call) RunAndReturn(run func() error) *MockImageStorage_Close_Call {
	_c.Call.Return(run)
	return _c
}

// Save provides a mock function for the type MockImageStorage
func (_mock *MockImageStorage) Save(ctx context.Context, userID string, filename string, r io.Reader) (string, error) {
	ret := _mock.Called(ctx, userID, filename, r)

	if len(ret) == 0 {
		panic("no return value specified for Save")
	}

	var r0 string
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, string, string, io.Reader) (string, error)); ok {
		return returnFunc(ctx, userID, filename, r)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, string, string, io.Reader) string); ok {
		r0 = returnFunc(ctx, userID, filename, r)
	} else {
		r0 = ret.Get(0).(string)
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, string, string, io.Reader) error); ok {
		r1 = returnFunc(ctx, userID, filename, r)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockImageStorage_Save_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Save'
type MockImageStorage_Save_Call struct {
	*mock.Call
}

// Save is a helper method to define mock.On call
//   - ctx context.Context
//   - userID string
//   - filename string
//   - r io.Reader
func (_e *MockImageStorage_Expecter) Save(ctx interface{}, userID interface{}, filename interface{}, r interface{}) *MockImageStorage_Save_Call {
	return &MockImageStorage_Save_Call{Call: _e.mock.On("Save", ctx, userID, filename, r)}
}

func (_c *MockImageStorage_Save_Call) Run(run func(ctx context.Context, userID string, filename string, r io.Reader)) *MockImageStorage_Save_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(io.Reader))
	})
	return _c
}

func (_c *MockImageStorage_Save_Call) Return(s string, err error) *MockImageStorage_Save_Call {
	_c.Call.Return(s, err)
	return _c
}

func (_c *MockImageStorage_Save_Call) RunAndReturn(run func(ctx context.Context, userID string, filename string, r io.Reader) (string, error)) *MockImageStorage_Save_Call {
	_c.Call.Return(run)
	return _c
}
