package service

import "kanakku/internal/domain/entity"

// QRCodeService defines the interface for payment QR code generation and parsing
type QRCodeService interface {
	// GeneratePaymentQR renders a UPI payment request as a PNG QR code
	GeneratePaymentQR(req *entity.PaymentRequest) ([]byte, error)

	// ParsePaymentQR parses the payload of a UPI payment QR code
	ParsePaymentQR(qrData string) (*entity.PaymentRequest, error)
}
