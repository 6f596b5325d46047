package document

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-markdown/internal/fragment"
	"github.com/goliatone/go-markdown/pkg/interfaces"
)

const frontMatterDelimiter = "---"

// Compose serialises a document: YAML frontmatter between `---` delimiters
// followed by a blank line and the body. Documents with zero-value
// frontmatter produce the body alone. The body is emitted verbatim; only the
// metadata block is generated.
func Compose(doc interfaces.Document) ([]byte, error) {
	if doc.FrontMatter.IsZero() {
		return bytes.Clone(doc.Body), nil
	}

	meta, err := yaml.Marshal(doc.FrontMatter)
	if err != nil {
		return nil, fmt.Errorf("document: marshal frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(len(meta) + len(doc.Body) + 16)
	buf.WriteString(frontMatterDelimiter)
	buf.WriteString(fragment.LF)
	buf.Write(meta)
	buf.WriteString(frontMatterDelimiter)
	buf.WriteString(fragment.LF)
	if len(doc.Body) > 0 {
		buf.WriteString(fragment.LF)
		buf.Write(doc.Body)
	}
	return buf.Bytes(), nil
}

// Parse splits source into structured frontmatter and the Markdown body
// without delimiters. Sources with no frontmatter block return a zero
// FrontMatter and the source unchanged.
func Parse(source []byte) (interfaces.Document, error) {
	var meta interfaces.FrontMatter

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return interfaces.Document{}, fmt.Errorf("document: parse frontmatter: %w", err)
	}

	return interfaces.Document{
		FrontMatter: meta,
		Body:        body,
	}, nil
}
