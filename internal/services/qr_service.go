package services

import (
	"WhereIsIt/internal/config"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QREncoder renders content as a PNG of size x size pixels.
type QREncoder func(content string, size int) ([]byte, error)

func NewQREncoder() QREncoder {
	return func(content string, size int) ([]byte, error) {
		return qrcode.Encode(content, qrcode.Medium, size)
	}
}

type QRService interface {
	// BoxLink is the deep link scanned from a box label.
	BoxLink(slug string) string
	BoxQRCode(boxID uint) ([]byte, error)
}

type qrServiceImpl struct {
	boxService BoxService
	encode     QREncoder
	linkPrefix string
	size       int
}

func NewQRService(boxService BoxService, encode QREncoder, configuration *config.Configuration) QRService {
	return &qrServiceImpl{
		boxService: boxService,
		encode:     encode,
		linkPrefix: configuration.QR.LinkPrefix,
		size:       configuration.QR.Size,
	}
}

func (s *qrServiceImpl) BoxLink(slug string) string {
	return fmt.Sprintf("%s/#/box/%s", s.linkPrefix, slug)
}

func (s *qrServiceImpl) BoxQRCode(boxID uint) ([]byte, error) {
	box, err := s.boxService.GetBoxByID(boxID)
	if err != nil {
		return nil, err
	}
	png, err := s.encode(s.BoxLink(box.Slug), s.size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code for box %d: %w", boxID, err)
	}
	return png, nil
}
