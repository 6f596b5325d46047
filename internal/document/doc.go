// Package document assembles Markdown fragments into whole documents: a
// fluent block builder with table-of-contents support, YAML frontmatter
// composition and extraction, and a service for exporting composed documents
// to disk. The package emits markup only; it never parses Markdown beyond the
// frontmatter delimiters.
package document
