package repository

import "apnaghar/internal/domain/entities"

// mediaItem is the stored shape of one evidence entry. Properties and
// milestones share it; appends use list_append so concurrent uploads to the
// same entity never clobber each other.
type mediaItem struct {
	SHA256         string  `dynamodbav:"sha256"`
	URL            string  `dynamodbav:"url"`
	UploadedAt     string  `dynamodbav:"uploaded_at"`
	Description    string  `dynamodbav:"description,omitempty"`
	CameraCaptured bool    `dynamodbav:"camera_captured"`
	CapturedAt     string  `dynamodbav:"captured_at,omitempty"`
	Latitude       float64 `dynamodbav:"latitude,omitempty"`
	Longitude      float64 `dynamodbav:"longitude,omitempty"`
	IsMobile       bool    `dynamodbav:"is_mobile"`
	Platform       string  `dynamodbav:"platform,omitempty"`
	UserAgent      string  `dynamodbav:"user_agent,omitempty"`
	QRVerified     bool    `dynamodbav:"qr_verified"`
}

func toMediaItems(entries []entities.MediaEntry) []mediaItem {
	out := make([]mediaItem, 0, len(entries))
	for _, e := range entries {
		it := mediaItem{
			SHA256:         e.SHA256,
			URL:            e.URL,
			UploadedAt:     timeToString(e.UploadedAt),
			Description:    e.Description,
			CameraCaptured: e.CaptureMetadata.CameraCaptured,
			Latitude:       e.CaptureMetadata.Latitude,
			Longitude:      e.CaptureMetadata.Longitude,
			IsMobile:       e.DeviceInfo.IsMobile,
			Platform:       e.DeviceInfo.Platform,
			UserAgent:      e.DeviceInfo.UserAgent,
			QRVerified:     e.QRVerified,
		}
		if !e.CaptureMetadata.CapturedAt.IsZero() {
			it.CapturedAt = timeToString(e.CaptureMetadata.CapturedAt)
		}
		out = append(out, it)
	}
	return out
}

func fromMediaItems(items []mediaItem) []entities.MediaEntry {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.MediaEntry, 0, len(items))
	for _, it := range items {
		e := entities.MediaEntry{
			SHA256:      it.SHA256,
			URL:         it.URL,
			UploadedAt:  stringToTime(it.UploadedAt),
			Description: it.Description,
			CaptureMetadata: entities.CaptureMetadata{
				CameraCaptured: it.CameraCaptured,
				Latitude:       it.Latitude,
				Longitude:      it.Longitude,
			},
			DeviceInfo: entities.DeviceInfo{
				IsMobile:  it.IsMobile,
				Platform:  it.Platform,
				UserAgent: it.UserAgent,
			},
			QRVerified: it.QRVerified,
		}
		if it.CapturedAt != "" {
			e.CaptureMetadata.CapturedAt = stringToTime(it.CapturedAt)
		}
		out = append(out, e)
	}
	return out
}
