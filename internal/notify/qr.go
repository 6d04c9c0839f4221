package notify

import (
	"bytes"
	"image/png"

	"github.com/skip2/go-qrcode"
)

// ticketQR gera o PNG do QR com o código de confirmação da reserva.
func ticketQR(code string, size int) ([]byte, error) {
	qr, err := qrcode.New(code, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, qr.Image(size)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
