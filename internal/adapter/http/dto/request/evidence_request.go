package request

import (
	"time"

	"apnaghar/internal/domain/entities"
)

type DeviceInfoRequest struct {
	IsMobile  bool   `json:"is_mobile"`
	Platform  string `json:"platform"`
	UserAgent string `json:"user_agent"`
}

func (r DeviceInfoRequest) ToEntity() entities.DeviceInfo {
	return entities.DeviceInfo{
		IsMobile:  r.IsMobile,
		Platform:  r.Platform,
		UserAgent: r.UserAgent,
	}
}

type CaptureMetadataRequest struct {
	CameraCaptured bool    `json:"camera_captured"`
	CapturedAt     string  `json:"captured_at"` // RFC3339
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
}

func (r CaptureMetadataRequest) ToEntity() entities.CaptureMetadata {
	m := entities.CaptureMetadata{
		CameraCaptured: r.CameraCaptured,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
	}
	if t, err := time.Parse(time.RFC3339, r.CapturedAt); err == nil {
		m.CapturedAt = t
	}
	return m
}

type VerifyQRRequest struct {
	QRData     string            `json:"qr_data" binding:"required"`
	DeviceInfo DeviceInfoRequest `json:"device_info"`
}
