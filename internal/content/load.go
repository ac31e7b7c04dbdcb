package content

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
)

// Load reads and validates a JSON content document from fs.
func Load(fs afero.Fs, path string) (*Content, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a JSON content document. Unknown fields are
// rejected so typos in hand-edited files surface immediately.
func Parse(data []byte) (*Content, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var c Content
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
