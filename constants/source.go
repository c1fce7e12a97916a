package constants

import (
	"path/filepath"
	"strings"
)

// SourceType identifies where a spec variant was extracted from.
type SourceType string

// Stable values (store these exact strings in DB).
const (
	SourceDOCX  SourceType = "DOCX"
	SourcePDF   SourceType = "PDF"
	SourceImage SourceType = "Image"
	SourceOther SourceType = "Other"
	SourceUser  SourceType = "USER" // manual override, always wins resolution
)

// Priority ranks by source trust; lower is more trusted.
const (
	PriorityUser  = 0
	PriorityDOCX  = 1
	PriorityPDF   = 2
	PriorityImage = 3
	PriorityOther = 4
)

var imageExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"tiff": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// SourceTypeForFilename maps a filename to its source type tag.
func SourceTypeForFilename(name string) SourceType {
	switch ext := NormalizeExt(filepath.Ext(name)); {
	case ext == "docx":
		return SourceDOCX
	case ext == "pdf":
		return SourcePDF
	default:
		if _, ok := imageExtensions[NormalizeExt(filepath.Ext(name))]; ok {
			return SourceImage
		}
		return SourceOther
	}
}

// PriorityForSource returns the trust rank for a source type.
func PriorityForSource(st SourceType) int {
	switch st {
	case SourceUser:
		return PriorityUser
	case SourceDOCX:
		return PriorityDOCX
	case SourcePDF:
		return PriorityPDF
	case SourceImage:
		return PriorityImage
	default:
		return PriorityOther
	}
}
