package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pmpulse/analyzer/internal/report"
)

// #region bullet-sections

// extractSection captures "- " items between the section header and the next
// blank line or report-title line.
func extractSection(lines []string, spec sectionSpec, fields report.Fields) {
	var items []string
	var cats []report.Category
	in := false

	for _, line := range lines {
		switch {
		case strings.Contains(line, spec.header):
			in = true
			continue
		case strings.TrimSpace(line) == "" || strings.HasPrefix(line, "RELATÓRIO"):
			in = false
			continue
		}
		if !in || !strings.HasPrefix(strings.TrimSpace(line), "- ") {
			continue
		}
		item := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "- "))
		if spec.categories {
			if c, ok := parseCategory(item); ok {
				cats = append(cats, c)
			}
		} else {
			items = append(items, item)
		}
	}

	if spec.categories {
		if len(cats) > 0 {
			fields[spec.key] = report.Categories(cats)
		}
		return
	}
	if len(items) > 0 {
		fields[spec.key] = report.List(items)
	}
}

// parseCategory parses a "name: R$ value (pct%)" breakdown item. The
// percentage is optional; Percent is -1 when not given.
func parseCategory(item string) (report.Category, bool) {
	name, rest, ok := strings.Cut(item, ":")
	if !ok {
		return report.Category{}, false
	}
	rest = strings.TrimSpace(rest)

	pct := -1.0
	if open := strings.Index(rest, "("); open >= 0 {
		pctRaw := strings.TrimSpace(rest[open+1:])
		pctRaw = strings.TrimSuffix(pctRaw, ")")
		pctRaw = strings.TrimSuffix(strings.TrimSpace(pctRaw), "%")
		if f, err := parseFloat(pctRaw); err == nil {
			pct = f
		}
		rest = strings.TrimSpace(rest[:open])
	}

	amount, err := parseMoney(rest)
	if err != nil {
		return report.Category{}, false
	}
	return report.Category{Name: strings.TrimSpace(name), Amount: amount, Percent: pct}, true
}

// #endregion bullet-sections

// #region risk-register

var riskDetailRe = regexp.MustCompile(`Probabilidade:\s*(\d+)\s*/\s*5\s*,?\s*Impacto:\s*(\d+)\s*/\s*5\s*,?\s*Nível:\s*(\S+)`)

// riskEntry is one parsed register item: a "- ID: description" bullet plus
// its probability/impact/level detail line.
type riskEntry struct {
	id        string
	isNew     bool
	prob      int
	impact    int
	level     string
	hasDetail bool
}

// extractRiskRegister parses the risk-register layout and fills the
// identified-risk list plus the derived high / critical / high-exposure /
// new-high sublists the rule catalog keys on. Entries under "Riscos
// ocorridos:" are history, not open risks, and are skipped.
func extractRiskRegister(lines []string, fields report.Fields) {
	var entries []riskEntry
	section := ""

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.Contains(line, "Novos riscos identificados:") || strings.Contains(line, "Novos riscos:"):
			section = "new"
			continue
		case strings.Contains(line, "Riscos identificados:"):
			section = "identified"
			continue
		case strings.Contains(line, "Riscos ocorridos:"):
			section = "occurred"
			continue
		case strings.HasPrefix(line, "RELATÓRIO"):
			section = ""
			continue
		}
		if section != "identified" && section != "new" {
			continue
		}

		if strings.HasPrefix(trimmed, "- ") {
			item := strings.TrimPrefix(trimmed, "- ")
			id := item
			if head, _, ok := strings.Cut(item, ":"); ok {
				id = head
			}
			entries = append(entries, riskEntry{id: strings.TrimSpace(id), isNew: section == "new"})
			continue
		}

		if len(entries) == 0 || entries[len(entries)-1].hasDetail {
			continue
		}
		if m := riskDetailRe.FindStringSubmatch(trimmed); m != nil {
			e := &entries[len(entries)-1]
			e.prob, _ = strconv.Atoi(m[1])
			e.impact, _ = strconv.Atoi(m[2])
			e.level = strings.ToLower(m[3])
			e.hasDetail = true
		}
	}

	var all, high, critical, exposure, newHigh []string
	for _, e := range entries {
		all = append(all, e.id)
		if !e.hasDetail {
			continue
		}
		if e.level == "alto" {
			high = append(high, e.id)
			if e.isNew {
				newHigh = append(newHigh, e.id)
			}
		}
		if e.prob >= 4 && e.impact >= 4 {
			critical = append(critical, e.id)
		}
		if e.prob*e.impact >= 12 {
			exposure = append(exposure, e.id)
		}
	}

	setList(fields, report.KeyRisks, all)
	setList(fields, report.KeyHighRisks, high)
	setList(fields, report.KeyCriticalRisks, critical)
	setList(fields, report.KeyHighExposureRisks, exposure)
	setList(fields, report.KeyNewHighRisks, newHigh)
}

func setList(fields report.Fields, key string, items []string) {
	if len(items) > 0 {
		fields[key] = report.List(items)
	}
}

// #endregion risk-register
