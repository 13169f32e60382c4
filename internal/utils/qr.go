package utils

import (
	"encoding/base64"

	"github.com/skip2/go-qrcode"
)

// CheckoutQR encode l'URL de paiement hébergée en QR base64 prêt à mettre
// dans <img src="..."> — le front l'affiche pour payer depuis un mobile.
func CheckoutQR(checkoutURL string) (string, error) {
	if checkoutURL == "" {
		return "", nil
	}
	png, err := qrcode.Encode(checkoutURL, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
