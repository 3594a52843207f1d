package paper

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"regexp"

	"github.com/mind-engage/papergen/internal/storage"
)

const Ext = ".docx"

// maxNameAttempts bounds the search for a free output name.
const maxNameAttempts = 100

// ErrNoFreeName is returned when every attempted output name is taken.
var ErrNoFreeName = errors.New("save paper: no free file name")

var unsafeLabel = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// FileName returns question_paper_<type>_<NNNN>.docx with a random
// four-digit suffix. The type label is reduced to a safe file-name token.
func FileName(paperType string, rng *rand.Rand) string {
	label := unsafeLabel.ReplaceAllString(paperType, "")
	if label == "" {
		label = "paper"
	}
	return fmt.Sprintf("question_paper_%s_%d%s", label, 1000+rng.Intn(9000), Ext)
}

// Save writes d as a .docx into store and returns its key. An existing
// paper is never overwritten: a taken name is retried with a new suffix.
func Save(store storage.BlobStore, d *Document, paperType string, rng *rand.Rand) (string, error) {
	var buf bytes.Buffer
	if err := WriteDocx(&buf, d); err != nil {
		return "", err
	}
	for i := 0; i < maxNameAttempts; i++ {
		key, err := store.Create(FileName(paperType, rng), bytes.NewReader(buf.Bytes()))
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("save paper: %w", err)
		}
		return key, nil
	}
	return "", ErrNoFreeName
}
