package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"specmaster/constants"
)

// SpecVariant represents one observed value for a canonical parameter,
// for data transfer between layers. The tuple (Param, Source, Raw)
// identifies a variant for upsert purposes.
type SpecVariant struct {
	ID           uuid.UUID            `json:"id"`
	Param        string               `json:"param"`
	Value        string               `json:"value"`
	Unit         string               `json:"unit"`
	Raw          string               `json:"raw"`
	Source       constants.SourceType `json:"source"`
	Origin       string               `json:"origin"`
	Priority     int                  `json:"priority"`
	ExtractionID *uuid.UUID           `json:"extraction_id,omitempty"`
	Meta         json.RawMessage      `json:"meta,omitempty"`
	UploadedAt   time.Time            `json:"uploaded_at"`
}
