package plaintext

import (
	"bytes"
	"context"
	"errors"
	"os"
	"unicode/utf8"

	"github.com/mind-engage/papergen/internal/formats"
)

// Unknown extensions get the same best-effort UTF-8 read as .txt.
func init() {
	formats.Register(formats.FormatPlainText, formats.ExtractorFunc(Extract))
	formats.Register(formats.FormatUnknown, formats.ExtractorFunc(Extract))
}

var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

var bom = []byte{0xEF, 0xBB, 0xBF}

// Extract reads path as UTF-8 text, dropping a leading byte order mark.
func Extract(ctx context.Context, path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(bytes.TrimPrefix(b, bom)), nil
}
