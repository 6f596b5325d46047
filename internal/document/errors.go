package document

import "errors"

var (
	// ErrColumnMismatch indicates a table row whose cell count differs from the header.
	ErrColumnMismatch = errors.New("document: table rows must match header column count")
	// ErrInvalidSlug occurs when frontmatter carries a slug that fails normalization rules.
	ErrInvalidSlug = errors.New("document: frontmatter slug is invalid")
	// ErrTOCDepth indicates an out-of-range table of contents depth bound.
	ErrTOCDepth = errors.New("document: table of contents depth must be between 1 and 6")
	// ErrTOCInserted indicates a second table of contents insertion on the same builder.
	ErrTOCInserted = errors.New("document: table of contents already inserted")
)
