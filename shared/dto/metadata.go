package dto

import (
	"paroisse/shared/constant"
	"paroisse/shared/model"
	"paroisse/shared/timezone"
	"time"
)

// Metadata renders the audit columns in the app timezone. Zero times stay empty.
type Metadata struct {
	CreatedAt  string `json:"created_at,omitempty"`
	ModifiedAt string `json:"modified_at,omitempty"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = formatStamp(model.CreatedAt)
	m.ModifiedAt = formatStamp(model.ModifiedAt)
}

func formatStamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return timezone.Format(t, constant.DateFormat)
}
