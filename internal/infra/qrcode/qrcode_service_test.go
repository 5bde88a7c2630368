package qrcode

import (
	"testing"

	"kanakku/internal/domain/entity"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low letter", "L", qrcode.Low},
		{"Medium name", "medium", qrcode.Medium},
		{"High letter", "Q", qrcode.High},
		{"Highest name", "highest", qrcode.Highest},
		{"Default", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.level))
		})
	}
}

func TestEncodePaymentURI(t *testing.T) {
	uri, err := EncodePaymentURI(&entity.PaymentRequest{
		PayeeVPA:  "ramesh@upi",
		PayeeName: "Ramesh Traders",
		Amount:    300,
		Currency:  "INR",
	})
	require.NoError(t, err)
	assert.Equal(t, "upi://pay?am=300.00&cu=INR&pa=ramesh%40upi&pn=Ramesh+Traders", uri)
}

func TestEncodePaymentURI_OmitsZeroAmount(t *testing.T) {
	uri, err := EncodePaymentURI(&entity.PaymentRequest{PayeeVPA: "ramesh@upi", Currency: "INR"})
	require.NoError(t, err)
	assert.Equal(t, "upi://pay?cu=INR&pa=ramesh%40upi", uri)
}

func TestEncodePaymentURI_Invalid(t *testing.T) {
	_, err := EncodePaymentURI(&entity.PaymentRequest{PayeeVPA: " "})
	assert.ErrorContains(t, err, "payee VPA is required")

	_, err = EncodePaymentURI(&entity.PaymentRequest{PayeeVPA: "a@b", Amount: -1})
	assert.ErrorContains(t, err, "invalid amount")
}

func TestQRCodeService_GeneratePaymentQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GeneratePaymentQR(&entity.PaymentRequest{PayeeVPA: "ramesh@upi", PayeeName: "Ramesh Traders", Amount: 300, Currency: "INR"})
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GeneratePaymentQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{0, 128, 512} {
		service := NewQRCodeService(size, "M")

		qrBytes, err := service.GeneratePaymentQR(&entity.PaymentRequest{PayeeVPA: "ramesh@upi"})
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_GeneratePaymentQR_MissingVPA(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GeneratePaymentQR(&entity.PaymentRequest{PayeeName: "Ramesh Traders"})
	assert.Error(t, err)
}

func TestQRCodeService_ParsePaymentQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	want := &entity.PaymentRequest{
		PayeeVPA:  "ramesh@upi",
		PayeeName: "Ramesh Traders",
		Amount:    12.5,
		Currency:  "INR",
		Note:      "March dues",
	}

	uri, err := EncodePaymentURI(want)
	require.NoError(t, err)

	got, err := service.ParsePaymentQR(uri)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestQRCodeService_ParsePaymentQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"Wrong scheme", "https://pay?pa=a@b", "invalid QR code type"},
		{"Wrong action", "upi://mandate?pa=a@b", "invalid QR code type"},
		{"Missing payee", "upi://pay?pn=Shop", "payee VPA is missing"},
		{"Bad amount", "upi://pay?pa=a@b&am=ten", "invalid amount"},
		{"Negative amount", "upi://pay?pa=a@b&am=-5", "invalid amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParsePaymentQR(tt.data)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
