package state

import "strings"

// Severity classifies a log line for display styling only. It is derived
// per render and never persisted.
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityWarning
	SeverityError
)

// LogLine is one displayable line of container output.
type LogLine struct {
	Text     string
	Severity Severity
}

// PresentLogs turns a raw log tail into display lines. Empty lines are
// dropped. Each call fully replaces prior output: the gateway hands us a
// bounded snapshot, not a stream, so there is nothing to merge.
func PresentLogs(raw string) []LogLine {
	var lines []LogLine
	for _, line := range strings.Split(raw, "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, LogLine{Text: line, Severity: ClassifyLine(line)})
	}
	return lines
}

// ClassifyLine assigns a severity by case-insensitive token search, each
// line independently of its neighbors.
func ClassifyLine(line string) Severity {
	upper := strings.ToUpper(line)
	if strings.Contains(upper, "ERROR") || strings.Contains(upper, "FATAL") {
		return SeverityError
	}
	if strings.Contains(upper, "WARN") {
		return SeverityWarning
	}
	return SeverityNormal
}

// Notice is the single synthetic line shown when there is nothing to
// fetch, e.g. no pod or container resolvable for the current selection.
func Notice(text string) []LogLine {
	return []LogLine{{Text: text, Severity: SeverityNormal}}
}

// ErrorNotice is the single diagnostic line a failed log fetch collapses
// into; retrieval errors never propagate past the presenter.
func ErrorNotice(text string) []LogLine {
	return []LogLine{{Text: text, Severity: SeverityError}}
}
