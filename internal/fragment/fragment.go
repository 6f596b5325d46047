// Package fragment implements the pure CommonMark fragment builders exposed
// by the root package. Every function is a deterministic, side-effect-free
// transformation from input text to an output string; nothing here allocates
// shared state, so all builders are safe for concurrent use.
package fragment

import (
	"strings"
	"unicode/utf8"
)

// LF is the line feed control character used as the universal line separator
// for every multi-line fragment, regardless of platform.
const LF = "\n"

const (
	fenceMarker    = "```"
	codeSpanMarker = "`"
)

// Info strings attached by the language-tagged convenience builders.
const (
	InfoJavaScript = "javascript"
	InfoRust       = "rust"
	InfoShell      = "shell"
	InfoTypeScript = "typescript"
)

// CodeFence returns exactly three backticks followed by the supplied info
// string. An empty info string produces a bare fence, identical to the absent
// case. The info string is emitted verbatim; callers must not pass text
// containing backticks or line feeds.
//
// Reference: https://spec.commonmark.org/0.30/#code-fence
func CodeFence(info string) string {
	return fenceMarker + info
}

// CodeFencePlain returns a code fence with no info string, as used on closing
// fences.
func CodeFencePlain() string {
	return CodeFence("")
}

// CodeSpan wraps code in a single backtick on each side. Embedded backticks
// are not escaped; callers needing longer fences must build them themselves.
//
// Reference: https://spec.commonmark.org/0.30/#code-span
func CodeSpan(code string) string {
	return codeSpanMarker + code + codeSpanMarker
}

// FencedCodeBlock returns an opening fence carrying the info string, the code
// verbatim (internal line feeds included), and a bare closing fence, joined
// with LF. The fence is always three backticks long; code containing a line
// of three or more backticks is not detected or reflowed.
//
// Reference: https://spec.commonmark.org/0.30/#fenced-code-blocks
func FencedCodeBlock(code, info string) string {
	return strings.Join([]string{CodeFence(info), code, CodeFencePlain()}, LF)
}

// FencedJSCodeBlock returns a fenced code block tagged as JavaScript.
func FencedJSCodeBlock(code string) string {
	return FencedCodeBlock(code, InfoJavaScript)
}

// FencedRustCodeBlock returns a fenced code block tagged as Rust.
func FencedRustCodeBlock(code string) string {
	return FencedCodeBlock(code, InfoRust)
}

// FencedShellCodeBlock returns a fenced code block tagged as shell script.
func FencedShellCodeBlock(code string) string {
	return FencedCodeBlock(code, InfoShell)
}

// FencedTSCodeBlock returns a fenced code block tagged as TypeScript.
func FencedTSCodeBlock(code string) string {
	return FencedCodeBlock(code, InfoTypeScript)
}

// H1 returns a level 1 setext heading: the text followed by an `=` underline
// whose length equals the number of Unicode code points in text.
//
// The underline is built with strings.Repeat, which panics when the resulting
// length overflows. The panic signals a caller-side sizing error, not a
// recoverable condition; callers feeding unbounded text must cap it first.
//
// Reference: https://spec.commonmark.org/0.30/#setext-headings
func H1(text string) string {
	return setextHeading(text, "=")
}

// H2 returns a level 2 setext heading underlined with `-`. The same length
// caveat as H1 applies.
func H2(text string) string {
	return setextHeading(text, "-")
}

// H3 returns a level 3 ATX heading.
//
// Reference: https://spec.commonmark.org/0.30/#atx-heading
func H3(text string) string {
	return ATXHeading(3, text)
}

// H4 returns a level 4 ATX heading.
func H4(text string) string {
	return ATXHeading(4, text)
}

// H5 returns a level 5 ATX heading.
func H5(text string) string {
	return ATXHeading(5, text)
}

// H6 returns a level 6 ATX heading.
func H6(text string) string {
	return ATXHeading(6, text)
}

// ATXHeading returns an ATX heading of the given level: level `#` characters,
// one space, then the text unmodified. Levels outside 1..6 are clamped.
func ATXHeading(level int, text string) string {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return strings.Repeat("#", level) + " " + text
}

func setextHeading(text, underline string) string {
	return text + LF + strings.Repeat(underline, utf8.RuneCountInString(text))
}
