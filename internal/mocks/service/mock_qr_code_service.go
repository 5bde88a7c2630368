package service

import (
	"kanakku/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// NewMockQRCodeService creates a new instance of MockQRCodeService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockQRCodeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQRCodeService {
	mock := &MockQRCodeService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockQRCodeService is a testify mock of the QRCodeService type
type MockQRCodeService struct {
	mock.Mock
}

type MockQRCodeService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQRCodeService) EXPECT() *MockQRCodeService_Expecter {
	return &MockQRCodeService_Expecter{mock: &_m.Mock}
}

// GeneratePaymentQR provides a mock function for the type MockQRCodeService
func (_mock *MockQRCodeService) GeneratePaymentQR(req *entity.PaymentRequest) ([]byte, error) {
	ret := _mock.Called(req)

	if len(ret) == 0 {
		panic("no return value specified for GeneratePaymentQR")
	}

	var r0 []byte
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(*entity.PaymentRequest) ([]byte, error)); ok {
		return returnFunc(req)
	}
	if returnFunc, ok := ret.Get(0).(func(*entity.PaymentRequest) []byte); ok {
		r0 = returnFunc(req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]byte)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(*entity.PaymentRequest) error); ok {
		r1 = returnFunc(req)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockQRCodeService_GeneratePaymentQR_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GeneratePaymentQR'
type MockQRCodeService_GeneratePaymentQR_Call struct {
	*mock.Call
}

// GeneratePaymentQR is a helper method to define mock.On call
//   - req *entity.PaymentRequest
func (_e *MockQRCodeService_Expecter) GeneratePaymentQR(req interface{}) *MockQRCodeService_GeneratePaymentQR_Call {
	return &MockQRCodeService_GeneratePaymentQR_Call{Call: _e.mock.On("GeneratePaymentQR", req)}
}

func (_c *MockQRCodeService_GeneratePaymentQR_Call) Run(run func(req *entity.PaymentRequest)) *MockQRCodeService_GeneratePaymentQR_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(*entity.PaymentRequest))
	})
	return _c
}

func (_c *MockQRCodeService_GeneratePaymentQR_Call) Return(bytes []byte, err error) *MockQRCodeService_GeneratePaymentQR_Call {
	_c.Call.Return(bytes, err)
	return _c
}

func (_c *MockQRCodeService_GeneratePaymentQR_Call) RunAndReturn(run func(req *entity.PaymentRequest) ([]byte, error)) *MockQRCodeService_GeneratePaymentQR_Call {
	_c.Call.Return(run)
	return _c
}

// ParsePaymentQR provides a mock function for the type MockQRCodeService
func (_mock *MockQRCodeService) ParsePaymentQR(qrData string) (*entity.PaymentRequest, error) {
	ret := _mock.Called(qrData)

	if len(ret) == 0 {
		panic("no return value specified for ParsePaymentQR")
	}

	var r0 *entity.PaymentRequest
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(string) (*entity.PaymentRequest, error)); ok {
		return returnFunc(qrData)
	}
	if returnFunc, ok := ret.Get(0).(func(string) *entity.PaymentRequest); ok {
		r0 = returnFunc(qrData)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.PaymentRequest)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(string) error); ok {
		r1 = returnFunc(qrData)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockQRCodeService_ParsePaymentQR_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ParsePaymentQR'
type MockQRCodeService_ParsePaymentQR_Call struct {
	*mock.Call
}

// ParsePaymentQR is a helper method to define mock.On call
//   - qrData string
func (_e *MockQRCodeService_Expecter) ParsePaymentQR(qrData interface{}) *MockQRCodeService_ParsePaymentQR_Call {
	return &MockQRCodeService_ParsePaymentQR_Call{Call: _e.mock.On("ParsePaymentQR", qrData)}
}

func (_c *MockQRCodeService_ParsePaymentQR_Call) Run(run func(qrData string)) *MockQRCodeService_ParsePaymentQR_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockQRCodeService_ParsePaymentQR_Call) Return(paymentRequest *entity.PaymentRequest, err error) *MockQRCodeService_ParsePaymentQR_Call {
	_c.Call.Return(paymentRequest, err)
	return _c
}

func (_c *MockQRCodeService_ParsePaymentQR_Call) RunAndReturn(run func(qrData string) (*entity.PaymentRequest, error)) *MockQRCodeService_ParsePaymentQR_Call {
	_c.Call.Return(run)
	return _c
}
