// Package qrcode renders UPI payment requests as QR codes.
package qrcode

import (
	"net/url"
	"strings"

	"kanakku/internal/domain/entity"
	"kanakku/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

const (
	upiScheme = "upi"
	upiAction = "pay"

	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

// parseRecoveryLevel accepts the letter (L, M, Q, H) or the level name.
func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// EncodePaymentURI builds the upi://pay link carried by the QR code.
func EncodePaymentURI(req *entity.PaymentRequest) (string, error) {
	if strings.TrimSpace(req.PayeeVPA) == "" {
		return "", errors.New("payee VPA is required")
	}
	if req.Amount < 0 {
		return "", errors.Errorf("invalid amount: %v", req.Amount)
	}

	query := url.Values{}
	query.Set("pa", req.PayeeVPA)
	if req.PayeeName != "" {
		query.Set("pn", req.PayeeName)
	}
	if req.Amount > 0 {
		query.Set("am", decimal.NewFromFloat(req.Amount).StringFixed(2))
	}
	if req.Currency != "" {
		query.Set("cu", req.Currency)
	}
	if req.Note != "" {
		query.Set("tn", req.Note)
	}

	uri := url.URL{Scheme: upiScheme, Host: upiAction, RawQuery: query.Encode()}

	return uri.String(), nil
}

// GeneratePaymentQR renders the payment request as a PNG QR code
func (s *qrcodeService) GeneratePaymentQR(req *entity.PaymentRequest) ([]byte, error) {
	payload, err := EncodePaymentURI(req)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(payload, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePaymentQR parses a upi://pay link back into a payment request
func (s *qrcodeService) ParsePaymentQR(qrData string) (*entity.PaymentRequest, error) {
	uri, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse QR code data")
	}
	if !strings.EqualFold(uri.Scheme, upiScheme) || !strings.EqualFold(uri.Host, upiAction) {
		return nil, errors.Errorf("invalid QR code type: %s://%s", uri.Scheme, uri.Host)
	}

	query := uri.Query()
	req := &entity.PaymentRequest{
		PayeeVPA:  query.Get("pa"),
		PayeeName: query.Get("pn"),
		Currency:  query.Get("cu"),
		Note:      query.Get("tn"),
	}
	if req.PayeeVPA == "" {
		return nil, errors.New("payee VPA is missing")
	}

	if raw := query.Get("am"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil || amount.IsNegative() {
			return nil, errors.Errorf("invalid amount: %s", raw)
		}
		req.Amount = amount.InexactFloat64()
	}

	return req, nil
}
