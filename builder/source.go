package builder

import (
	"fmt"
	"io"
	"os"

	json "github.com/json-iterator/go"

	"github.com/arloliu/mime2ext/errs"
)

// DBEntry is one record of mime-db's db.json.
type DBEntry struct {
	Source       string   `json:"source,omitempty"`
	Charset      string   `json:"charset,omitempty"`
	Compressible *bool    `json:"compressible,omitempty"`
	Extensions   []string `json:"extensions,omitempty"`
}

// Source maps full MIME types ("type/subtype") to their mime-db records.
type Source map[string]DBEntry

// ParseSource decodes a mime-db JSON document.
func ParseSource(r io.Reader) (Source, error) {
	var src Source
	if err := json.NewDecoder(r).Decode(&src); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidSource, err)
	}

	if src == nil {
		return nil, fmt.Errorf("%w: document is null", errs.ErrInvalidSource)
	}

	return src, nil
}

// ParseSourceFile opens path and decodes it with ParseSource.
func ParseSourceFile(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseSource(f)
}
