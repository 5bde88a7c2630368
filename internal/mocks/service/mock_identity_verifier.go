package service

import (
	"context"

	"kanakku/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// NewMockIdentityVerifier creates a new instance of MockIdentityVerifier. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockIdentityVerifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIdentityVerifier {
	mock := &MockIdentityVerifier{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockIdentityVerifier is a testify mock of the IdentityVerifier type
type MockIdentityVerifier struct {
	mock.Mock
}

type MockIdentityVerifier_Expecter struct {
	mock *mock.Mock
}

func (_m *MockIdentityVerifier) EXPECT() *MockIdentityVerifier_Expecter {
	return &MockIdentityVerifier_Expecter{mock: &_m.Mock}
}

// Verify provides a mock function for the type MockIdentityVerifier
func (_mock *MockIdentityVerifier) Verify(ctx context.Context, token string) (*entity.Identity, error) {
	ret := _mock.Called(ctx, token)

	if len(ret) == 0 {
		panic("no return value specified for Verify")
	}

	var r0 *entity.Identity
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) (*entity.Identity, error)); ok {
		return returnFunc(ctx, token)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) *entity.Identity); ok {
		r0 = returnFunc(ctx, token)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Identity)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = returnFunc(ctx, token)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockIdentityVerifier_Verify_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Verify'
type MockIdentityVerifier_Verify_Call struct {
	*mock.Call
}

// Verify is a helper method to define mock.On call
//   - ctx context.Context
//   - token string
func (_e *MockIdentityVerifier_Expecter) Verify(ctx interface{}, token interface{}) *MockIdentityVerifier_Verify_Call {
	return &MockIdentityVerifier_Verify_Call{Call: _e.mock.On("Verify", ctx, token)}
}

func (_c *MockIdentityVerifier_Verify_Call) Run(run func(ctx context.Context, token string)) *MockIdentityVerifier_Verify_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockIdentityVerifier_Verify_Call) Return(identity *entity.Identity, err error) *MockIdentityVerifier_Verify_Call {
	_c.Call.Return(identity, err)
	return _c
}

func (_c *MockIdentityVerifier_Verify_Call) RunAndReturn(run func(ctx context.Context, token string) (*entity.Identity, error)) *MockIdentityVerifier_Verify_Call {
	_c.Call.Return(run)
	return _c
}
