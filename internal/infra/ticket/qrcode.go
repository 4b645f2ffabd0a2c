package ticket

import (
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

// QREncoder renders ticket references as PNG QR codes.
type QREncoder struct {
	size int
}

func NewQREncoder() *QREncoder {
	return &QREncoder{size: defaultSize}
}

func (e *QREncoder) Encode(content string) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, e.size)
}
