package fragment

import "testing"

func TestATXHeadingClampsLevel(t *testing.T) {
	if got := ATXHeading(0, "low"); got != "# low" {
		t.Fatalf("expected level clamp to 1, got %q", got)
	}
	if got := ATXHeading(9, "high"); got != "###### high" {
		t.Fatalf("expected level clamp to 6, got %q", got)
	}
}

func TestSetextHeadingOnEmptyText(t *testing.T) {
	if got := H1(""); got != "\n" {
		t.Fatalf("expected bare line feed for empty text, got %q", got)
	}
	if got := H2(""); got != "\n" {
		t.Fatalf("expected bare line feed for empty text, got %q", got)
	}
}
