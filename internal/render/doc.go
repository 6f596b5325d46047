// Package render previews assembled Markdown in presentation formats: HTML
// through goldmark and ANSI terminal output through glamour. Renderers never
// mutate the source Markdown; composition stays the responsibility of the
// fragment builders and the document package.
package render
