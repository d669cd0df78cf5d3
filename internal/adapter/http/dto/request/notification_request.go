package request

import "apnaghar/internal/domain/entities"

type PreferenceRequest struct {
	EmailEnabled    bool     `json:"email_enabled"`
	SMSEnabled      bool     `json:"sms_enabled"`
	PushEnabled     bool     `json:"push_enabled"`
	QuietHoursStart int      `json:"quiet_hours_start"`
	QuietHoursEnd   int      `json:"quiet_hours_end"`
	DisabledTypes   []string `json:"disabled_types"`
}

func (r PreferenceRequest) ToEntity() entities.NotificationPreference {
	return entities.NotificationPreference{
		EmailEnabled:    r.EmailEnabled,
		SMSEnabled:      r.SMSEnabled,
		PushEnabled:     r.PushEnabled,
		QuietHoursStart: r.QuietHoursStart,
		QuietHoursEnd:   r.QuietHoursEnd,
		DisabledTypes:   r.DisabledTypes,
	}
}
