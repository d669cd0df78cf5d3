package entities

import "time"

// CaptureMetadata describes how a media file was produced on the device.
// Uploads are admitted only when CameraCaptured is true.
type CaptureMetadata struct {
	CameraCaptured bool      `json:"camera_captured"`
	CapturedAt     time.Time `json:"captured_at,omitempty"`
	Latitude       float64   `json:"latitude,omitempty"`
	Longitude      float64   `json:"longitude,omitempty"`
}

// DeviceInfo is the client-reported device fingerprint accompanying an
// upload. IsMobile together with the request user agent drives the
// mobile-only gate.
type DeviceInfo struct {
	IsMobile  bool   `json:"is_mobile"`
	Platform  string `json:"platform,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

// MediaEntry is one content-addressed evidence file attached to a Property
// or Milestone. Multiple entries may share a SHA256 (dedupe is global per
// media kind; distinct uploads carry distinct metadata).
type MediaEntry struct {
	SHA256          string          `json:"sha256"`
	URL             string          `json:"url"`
	UploadedAt      time.Time       `json:"uploaded_at"`
	Description     string          `json:"description,omitempty"`
	CaptureMetadata CaptureMetadata `json:"capture_metadata"`
	DeviceInfo      DeviceInfo      `json:"device_info"`
	QRVerified      bool            `json:"qr_verified"`
}
