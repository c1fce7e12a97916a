package utils

import (
	"encoding/json"

	"specmaster/constants"
	"specmaster/gen/ent"
	"specmaster/internal/entity"
)

// MetaToMap decodes a raw JSON metadata blob into the map shape the Ent
// schema stores. Nil and malformed blobs come back as nil.
func MetaToMap(raw json.RawMessage) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}

func metaToRaw(m map[string]any) json.RawMessage {
	if len(m) == 0 {
		return nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	return b
}

func ToSpecVariant(e *ent.SpecVariant) *entity.SpecVariant {
	return &entity.SpecVariant{
		ID:           e.ID,
		Param:        e.Param,
		Value:        e.Value,
		Unit:         e.Unit,
		Raw:          e.Raw,
		Source:       constants.SourceType(e.Source),
		Origin:       e.Origin,
		Priority:     e.Priority,
		ExtractionID: e.ExtractionID,
		Meta:         metaToRaw(e.Meta),
		UploadedAt:   e.UploadedAt,
	}
}

func ToRawExtraction(e *ent.RawExtraction) *entity.RawExtraction {
	return &entity.RawExtraction{
		ID:         e.ID,
		Origin:     e.Origin,
		SourceType: constants.SourceType(e.SourceType),
		RawText:    e.RawText,
		Meta:       metaToRaw(e.Meta),
		CreatedAt:  e.CreatedAt,
	}
}
