// Package qrcode renders plant labels as QR codes.
package qrcode

import (
	"encoding/json"
	"strconv"
	"strings"

	"plantcare/config"
	"plantcare/internal/domain/service"
	"plantcare/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	plantLabelType = "plant"
	defaultSize    = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// PlantLabel is the JSON payload encoded in a plant's QR code.
type PlantLabel struct {
	PlantID uint64 `json:"plant_id"`
	Type    string `json:"type"`
	URL     string `json:"url,omitempty"`
}

// NewQRCodeService builds the service from cfg.QRCode. A nil section uses medium correction at 256px.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	var qrCfg config.QRCodeConfig
	if cfg != nil && cfg.QRCode != nil {
		qrCfg = *cfg.QRCode
	}

	return newQRCodeService(qrCfg.Size, qrCfg.ErrorCorrectionLevel, qrCfg.BaseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GeneratePlantQR renders a PNG label for the plant.
func (s *qrcodeService) GeneratePlantQR(plantID uint64) ([]byte, error) {
	label := PlantLabel{PlantID: plantID, Type: plantLabelType}
	if s.baseURL != "" {
		label.URL = s.baseURL + "/plants/" + strconv.FormatUint(plantID, 10)
	}

	payload, err := json.Marshal(label)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal plant label")
	}

	png, err := qrcode.Encode(string(payload), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render plant QR code")
	}

	return png, nil
}

// ParsePlantQR decodes scanned label text back into a plant id.
func (s *qrcodeService) ParsePlantQR(qrData string) (uint64, error) {
	var label PlantLabel
	if err := json.Unmarshal([]byte(qrData), &label); err != nil {
		return 0, errors.Wrap(err, "failed to unmarshal plant label")
	}

	if label.Type != plantLabelType {
		return 0, errors.Errorf("invalid QR code type: %s", label.Type)
	}
	if label.PlantID == 0 {
		return 0, errors.New("plant label has no plant id")
	}

	return label.PlantID, nil
}
