package formats

import (
	"path"
	"strings"
)

// Format is the tagged document family an upload belongs to.
type Format string

const (
	FormatPlainText Format = "text"
	FormatPDF       Format = "pdf"
	FormatDocx      Format = "docx" // paragraph-structured document
	FormatUnknown   Format = "unknown"
)

// Detect classifies a file by its extension. Windows separators are
// normalised first so uploads saved with backslash paths still match.
func Detect(p string) Format {
	p = strings.ReplaceAll(p, `\`, "/")
	switch strings.ToLower(path.Ext(p)) {
	case ".txt":
		return FormatPlainText
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDocx
	default:
		return FormatUnknown
	}
}
