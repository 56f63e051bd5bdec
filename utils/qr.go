package utils

import (
	"encoding/base64"
	"fmt"

	"github.com/Frontware/promptpay"
	qrcode "github.com/skip2/go-qrcode"
)

// PaymentQR builds a PromptPay payload for the given phone number and
// amount and rasterizes it into a PNG data URL that the payment view can
// embed directly in an <img> tag.
func PaymentQR(phone string, amount float64) (string, error) {
	payment := promptpay.PromptPay{
		PromptPayID: phone,
		Amount:      amount,
		OneTime:     true,
	}

	payload, err := payment.Gen()
	if err != nil {
		return "", fmt.Errorf("failed to build promptpay payload: %w", err)
	}

	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR image: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
