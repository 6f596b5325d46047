package documentcmd

import "testing"

func TestRenderDocumentCommandValidate(t *testing.T) {
	cases := []struct {
		name    string
		cmd     RenderDocumentCommand
		wantErr bool
	}{
		{
			name: "valid html",
			cmd:  RenderDocumentCommand{Body: "# Title", Format: FormatHTML},
		},
		{
			name: "valid terminal",
			cmd:  RenderDocumentCommand{Body: "# Title", Format: FormatTerminal},
		},
		{
			name: "empty format defaults",
			cmd:  RenderDocumentCommand{Body: "# Title"},
		},
		{
			name:    "missing body",
			cmd:     RenderDocumentCommand{Format: FormatHTML},
			wantErr: true,
		},
		{
			name:    "unknown format",
			cmd:     RenderDocumentCommand{Body: "# Title", Format: "pdf"},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cmd.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("expected valid message, got %v", err)
			}
		})
	}
}

func TestRenderDocumentCommandNormalizedFormat(t *testing.T) {
	cases := []struct {
		format string
		want   string
	}{
		{format: "", want: FormatHTML},
		{format: "  ", want: FormatHTML},
		{format: "HTML", want: FormatHTML},
		{format: "Terminal", want: FormatTerminal},
	}

	for _, tc := range cases {
		cmd := RenderDocumentCommand{Body: "x", Format: tc.format}
		if got := cmd.NormalizedFormat(); got != tc.want {
			t.Fatalf("NormalizedFormat(%q) = %q, want %q", tc.format, got, tc.want)
		}
	}
}

func TestExportDocumentCommandValidate(t *testing.T) {
	cases := []struct {
		name    string
		cmd     ExportDocumentCommand
		wantErr bool
	}{
		{
			name: "valid",
			cmd:  ExportDocumentCommand{Body: "# Notes", Path: "out/notes.md"},
		},
		{
			name:    "missing body",
			cmd:     ExportDocumentCommand{Path: "out/notes.md"},
			wantErr: true,
		},
		{
			name:    "missing path",
			cmd:     ExportDocumentCommand{Body: "# Notes"},
			wantErr: true,
		},
		{
			name:    "blank path",
			cmd:     ExportDocumentCommand{Body: "# Notes", Path: "   "},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cmd.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("expected valid message, got %v", err)
			}
		})
	}
}

func TestMessageTypes(t *testing.T) {
	if got := (RenderDocumentCommand{}).Type(); got != "markdown.document.render" {
		t.Fatalf("unexpected render message type: %q", got)
	}
	if got := (ExportDocumentCommand{}).Type(); got != "markdown.document.export" {
		t.Fatalf("unexpected export message type: %q", got)
	}
}
