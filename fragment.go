package markdown

import "github.com/goliatone/go-markdown/internal/fragment"

// LF is the line feed control character used as the universal line separator
// for every multi-line fragment. Output is always line-feed normalized so the
// same inputs produce byte-identical fragments on every platform.
const LF = fragment.LF

// Info strings attached by the language-tagged convenience builders.
const (
	InfoJavaScript = fragment.InfoJavaScript
	InfoRust       = fragment.InfoRust
	InfoShell      = fragment.InfoShell
	InfoTypeScript = fragment.InfoTypeScript
)

// CodeFence returns a Markdown code fence: exactly three backticks followed
// by the supplied info string. An empty info string produces a bare fence,
// which matches the absent case; the two are deliberately indistinguishable
// in the output. No validation is performed, so callers must not pass text
// containing backticks or line feeds (see
// https://spec.commonmark.org/0.30/#info-string).
func CodeFence(info string) string {
	return fragment.CodeFence(info)
}

// CodeFencePlain returns a code fence with no info string, as used on closing
// fences.
func CodeFencePlain() string {
	return fragment.CodeFencePlain()
}

// CodeSpan wraps code in a single backtick on each side. Embedded backticks
// are not escaped; callers needing longer fences must build them themselves
// (see https://spec.commonmark.org/0.30/#code-span).
func CodeSpan(code string) string {
	return fragment.CodeSpan(code)
}

// FencedCodeBlock returns a fenced code block: an opening fence carrying the
// info string, the code verbatim (internal line feeds included), and a bare
// closing fence, joined with LF (see
// https://spec.commonmark.org/0.30/#fenced-code-blocks).
//
// The fence is always three backticks long. Code containing a line of three
// or more backticks is not detected or reflowed.
func FencedCodeBlock(code, info string) string {
	return fragment.FencedCodeBlock(code, info)
}

// FencedJSCodeBlock returns a fenced code block tagged as JavaScript.
func FencedJSCodeBlock(code string) string {
	return fragment.FencedJSCodeBlock(code)
}

// FencedRustCodeBlock returns a fenced code block tagged as Rust.
func FencedRustCodeBlock(code string) string {
	return fragment.FencedRustCodeBlock(code)
}

// FencedShellCodeBlock returns a fenced code block tagged as shell script.
func FencedShellCodeBlock(code string) string {
	return fragment.FencedShellCodeBlock(code)
}

// FencedTSCodeBlock returns a fenced code block tagged as TypeScript.
func FencedTSCodeBlock(code string) string {
	return fragment.FencedTSCodeBlock(code)
}

// H1 returns a level 1 setext heading: the text followed by an `=` underline
// whose length equals the number of Unicode code points in text (see
// https://spec.commonmark.org/0.30/#setext-headings).
//
// The underline is built with strings.Repeat, which panics when the resulting
// length overflows. Callers feeding pathologically large text must bound it
// themselves; the panic signals a caller-side sizing error, not a recoverable
// condition.
func H1(text string) string {
	return fragment.H1(text)
}

// H2 returns a level 2 setext heading underlined with `-`. The same length
// caveat as H1 applies.
func H2(text string) string {
	return fragment.H2(text)
}

// H3 returns a level 3 ATX heading (see
// https://spec.commonmark.org/0.30/#atx-heading).
func H3(text string) string {
	return fragment.H3(text)
}

// H4 returns a level 4 ATX heading.
func H4(text string) string {
	return fragment.H4(text)
}

// H5 returns a level 5 ATX heading.
func H5(text string) string {
	return fragment.H5(text)
}

// H6 returns a level 6 ATX heading.
func H6(text string) string {
	return fragment.H6(text)
}
