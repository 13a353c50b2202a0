package service

// QRCodeService defines the interface for plant label QR codes
type QRCodeService interface {
	// GeneratePlantQR renders a PNG label linking to the plant
	GeneratePlantQR(plantID uint64) ([]byte, error)

	// ParsePlantQR parses scanned label data and returns the plant id
	ParsePlantQR(qrData string) (uint64, error)
}
