package loader

import (
	"bytes"

	"github.com/thoreinstein/defcheck/internal/errors"
)

// ErrMissingFrontmatter is returned when a markdown definition has no
// leading "---" block.
var ErrMissingFrontmatter = errors.New("missing frontmatter")

// splitFrontmatter separates the YAML block delimited by "---" lines at the
// top of a markdown file from the body that follows. CRLF line endings are
// accepted.
func splitFrontmatter(content []byte) (matter, body []byte, err error) {
	normalized := bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))

	rest, ok := bytes.CutPrefix(normalized, []byte("---\n"))
	if !ok {
		return nil, nil, ErrMissingFrontmatter
	}

	// closing delimiter directly after the opening one
	if after, ok := bytes.CutPrefix(rest, []byte("---")); ok && (len(after) == 0 || after[0] == '\n') {
		return nil, bytes.TrimPrefix(after, []byte("\n")), nil
	}

	matter, body, ok = bytes.Cut(rest, []byte("\n---"))
	if !ok {
		return nil, nil, errors.New("missing closing frontmatter delimiter")
	}
	if len(body) > 0 && body[0] != '\n' {
		return nil, nil, errors.New("missing closing frontmatter delimiter")
	}
	return matter, bytes.TrimPrefix(body, []byte("\n")), nil
}
