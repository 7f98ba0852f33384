package frontmatter

import (
	"bytes"
	"io"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/teamforge/internal/errors"
)

// Sentinel errors for frontmatter parsing.
var (
	// ErrNoFrontmatter indicates the document has no complete "---" block.
	ErrNoFrontmatter = errors.New("no frontmatter found")

	// ErrInvalidYAML indicates the frontmatter block is not valid YAML.
	ErrInvalidYAML = errors.New("invalid YAML in frontmatter")
)

const delimiter = "---"

// Parse reads a document and splits it into its YAML header, decoded into T,
// and the remaining body. CRLF line endings are normalized to LF.
func Parse[T any](r io.Reader) (*T, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", errors.Wrap(err, "reading document")
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	if !strings.HasPrefix(text, delimiter+"\n") {
		return nil, "", ErrNoFrontmatter
	}
	rest := text[len(delimiter)+1:]

	header, body, ok := splitClosing(rest)
	if !ok {
		return nil, "", ErrNoFrontmatter
	}

	meta := new(T)
	if err := yaml.Unmarshal([]byte(header), meta); err != nil {
		return nil, "", errors.Wrapf(ErrInvalidYAML, "%v", err)
	}
	return meta, body, nil
}

// ParseFile is Parse over a file on fs.
func ParseFile[T any](fs afero.Fs, path string) (*T, string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	meta, body, err := Parse[T](f)
	if err != nil {
		return nil, "", errors.Wrapf(err, "parsing %s", path)
	}
	return meta, body, nil
}

// splitClosing finds the closing delimiter line in s.
func splitClosing(s string) (header, body string, ok bool) {
	for off := 0; off < len(s) || off == 0; {
		var line string
		next := len(s)
		if end := strings.IndexByte(s[off:], '\n'); end >= 0 {
			line = s[off : off+end]
			next = off + end + 1
		} else {
			line = s[off:]
		}
		if strings.TrimRight(line, " \t") == delimiter {
			return s[:off], s[next:], true
		}
		if next == off {
			break
		}
		off = next
	}
	return "", "", false
}

// Format renders matter as a YAML header wrapped in "---" delimiters,
// followed by a blank line and the body. An empty body produces only the
// header. The output always ends with a newline.
func Format(matter any, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(delimiter + "\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(matter); err != nil {
		return nil, errors.Wrap(err, "encoding frontmatter")
	}

	buf.WriteString(delimiter + "\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			buf.WriteString("\n")
		}
	}

	return buf.Bytes(), nil
}
