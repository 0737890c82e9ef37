// Package extract parses semi-structured status-report text into typed
// records. Extraction is best-effort and total: a field whose label or value
// cannot be recognized is simply absent from the output, never an error.
package extract

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pmpulse/analyzer/internal/report"
)

// ErrNotFound marks a status file that does not exist.
var ErrNotFound = errors.New("status file not found")

// #region entrypoints

// FromFile reads and extracts one status report. A missing file is reported
// as ErrNotFound; everything past the read degrades to absent fields.
func FromFile(path string, domain report.Domain) (*report.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read status file %s: %w", path, err)
	}
	return Extract(string(data), domain), nil
}

// Extract parses labeled report text for the given domain.
func Extract(text string, domain report.Domain) *report.Record {
	rec := report.NewRecord(domain)
	lines := strings.Split(text, "\n")

	extractHeader(lines, rec)

	cat := catalogs[domain]
	for _, spec := range cat.labels {
		if v, ok := extractLabel(lines, spec); ok {
			rec.Fields[spec.key] = v
		}
	}
	for _, spec := range cat.sections {
		extractSection(lines, spec, rec.Fields)
	}
	if cat.riskRegister {
		extractRiskRegister(lines, rec.Fields)
	}

	deriveCounts(rec.Fields)
	return rec
}

// #endregion entrypoints

// #region header

// extractHeader pulls project name/id, report date, and manager from the
// leading lines of the report.
func extractHeader(lines []string, rec *report.Record) {
	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	for _, line := range lines[:limit] {
		switch {
		case strings.Contains(line, "Projeto:"):
			rest := strings.TrimSpace(after(line, "Projeto:"))
			if open := strings.LastIndex(rest, "("); open >= 0 {
				rec.ProjectName = strings.TrimSpace(rest[:open])
				rec.ProjectID = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest[open+1:]), ")"))
			} else {
				rec.ProjectName = rest
			}
		case strings.Contains(line, "Data:"):
			rec.ReportDate = strings.TrimSpace(after(line, "Data:"))
		case strings.Contains(line, "Gerente:"):
			rec.Manager = strings.TrimSpace(after(line, "Gerente:"))
		}
	}
}

// #endregion header

// #region label-pass

// extractLabel finds the first line containing the label and parses its
// suffix per the field kind. A failed parse drops the field.
func extractLabel(lines []string, spec labelSpec) (report.Value, bool) {
	for _, line := range lines {
		if !strings.Contains(line, spec.label) {
			continue
		}
		raw := strings.TrimSpace(after(line, spec.label))
		return parseValue(raw, spec.kind)
	}
	return report.Value{}, false
}

// parseValue applies the cleanup rule for the kind and converts.
func parseValue(raw string, kind fieldKind) (report.Value, bool) {
	if raw == "" {
		return report.Value{}, false
	}
	switch kind {
	case kindString:
		return report.String(raw), true
	case kindFloat:
		f, err := parseFloat(raw)
		if err != nil {
			return report.Value{}, false
		}
		return report.Float(f), true
	case kindPercent:
		f, err := parseFloat(strings.TrimSuffix(strings.TrimSpace(strings.TrimSuffix(raw, "%")), "%"))
		if err != nil {
			return report.Value{}, false
		}
		return report.Float(f), true
	case kindMoney:
		f, err := parseMoney(raw)
		if err != nil {
			return report.Value{}, false
		}
		return report.Float(f), true
	case kindDays:
		n, err := parseLeadingInt(raw)
		if err != nil {
			return report.Value{}, false
		}
		return report.Int(n), true
	case kindInt:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return report.Value{}, false
		}
		return report.Int(n), true
	case kindBool:
		return report.Bool(isAffirmative(raw)), true
	}
	return report.Value{}, false
}

// #endregion label-pass

// #region cleanup

// parseFloat converts a decimal with either separator convention.
func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") && strings.Contains(s, ".") {
		// Thousands dots with comma decimals.
		s = strings.ReplaceAll(s, ".", "")
	}
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}

// parseMoney strips the currency prefix, then converts. Values with both
// separators are read as Brazilian convention (1.234,56).
func parseMoney(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "R$", ""))
	return parseFloat(s)
}

// parseLeadingInt reads the integer prefix of strings like "15 dias".
func parseLeadingInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, fmt.Errorf("no leading integer in %q", s)
	}
	return strconv.Atoi(s[:end])
}

// isAffirmative recognizes the file format's yes marker.
func isAffirmative(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "sim" || s == "yes" || s == "true"
}

// after returns the part of line following the first occurrence of label.
func after(line, label string) string {
	idx := strings.Index(line, label)
	if idx < 0 {
		return ""
	}
	return line[idx+len(label):]
}

// #endregion cleanup

// #region derived-counts

// deriveCounts fills list-derived counters the rule catalogs key on when the
// report does not state them explicitly.
func deriveCounts(fields report.Fields) {
	if !fields.Has(report.KeyScopeChangeCount) {
		if reqs, ok := fields.List(report.KeyChangeRequests); ok {
			fields[report.KeyScopeChangeCount] = report.Int(len(reqs))
		}
	}
}

// #endregion derived-counts
