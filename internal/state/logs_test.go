package state

import "testing"

func TestPresentLogs(t *testing.T) {
	raw := "INFO ok\n\nERROR boom\nWARN low disk"
	lines := PresentLogs(raw)

	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3 (empty line dropped)", len(lines))
	}
	want := []struct {
		text string
		sev  Severity
	}{
		{"INFO ok", SeverityNormal},
		{"ERROR boom", SeverityError},
		{"WARN low disk", SeverityWarning},
	}
	for i, w := range want {
		if lines[i].Text != w.text {
			t.Errorf("line %d text = %q, want %q", i, lines[i].Text, w.text)
		}
		if lines[i].Severity != w.sev {
			t.Errorf("line %d severity = %d, want %d", i, lines[i].Severity, w.sev)
		}
	}
}

func TestPresentLogsEmpty(t *testing.T) {
	if got := PresentLogs(""); got != nil {
		t.Errorf("PresentLogs(\"\") = %v, want nil", got)
	}
	if got := PresentLogs("\n\n\n"); got != nil {
		t.Errorf("blank input = %v, want nil", got)
	}
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want Severity
	}{
		{"2024-01-01 all good", SeverityNormal},
		{"error: connection refused", SeverityError},
		{"fatal signal received", SeverityError},
		{"Warning: disk almost full", SeverityWarning},
		{"warn something", SeverityWarning},
		{"downstream ERROR while handling request", SeverityError},
		{"error and also warn", SeverityError}, // error wins
		{"", SeverityNormal},
	}
	for _, tt := range tests {
		if got := ClassifyLine(tt.line); got != tt.want {
			t.Errorf("ClassifyLine(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestNotices(t *testing.T) {
	n := Notice("no pod selected")
	if len(n) != 1 || n[0].Severity != SeverityNormal {
		t.Errorf("Notice() = %v, want single normal line", n)
	}
	e := ErrorNotice("fetch failed")
	if len(e) != 1 || e[0].Severity != SeverityError {
		t.Errorf("ErrorNotice() = %v, want single error line", e)
	}
}
