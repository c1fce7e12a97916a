package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"specmaster/constants"
)

// RawExtraction is the landing record for one ingested document: the full
// extracted text plus its origin. Immutable once written.
type RawExtraction struct {
	ID         uuid.UUID            `json:"id"`
	Origin     string               `json:"origin"`
	SourceType constants.SourceType `json:"source_type"`
	RawText    string               `json:"raw_text"`
	Meta       json.RawMessage      `json:"meta,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
}
