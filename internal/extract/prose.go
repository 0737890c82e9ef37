package extract

import (
	"regexp"
	"strings"

	"github.com/pmpulse/analyzer/internal/report"
)

// #region patterns

// prosePattern recognizes one numeric metric anywhere in free text,
// independent of line structure. First match wins.
type prosePattern struct {
	key   string
	re    *regexp.Regexp
	kind  fieldKind
	money bool
}

var prosePatterns = []prosePattern{
	{key: report.KeyProseProjectID, re: regexp.MustCompile(`(?i)PROJ[ -]?(\d+)`), kind: kindString},
	{key: report.KeyProseCompletion, re: regexp.MustCompile(`(?i)(\d{1,3}(?:[.,]\d{1,2})?)\s*%\s*(?:conclu[ií]do|completo|de progresso)`), kind: kindFloat},
	{key: report.KeyProseSPI, re: regexp.MustCompile(`(?i)\bSPI\b(?:\s+atual)?(?:\s+é)?(?:\s+de)?\s*[:=-]?\s*(\d+(?:[.,]\d{1,2})?)`), kind: kindFloat},
	{key: report.KeyProseCPI, re: regexp.MustCompile(`(?i)\bCPI\b(?:\s+atual)?(?:\s+é)?(?:\s+de)?\s*[:=-]?\s*(\d+(?:[.,]\d{1,2})?)`), kind: kindFloat},
	{key: report.KeyProseBudget, re: regexp.MustCompile(`(?i)or[çc]amento(?:\s+total)?[^\n]{0,16}?R\$\s*([\d.,]+)`), kind: kindFloat, money: true},
	{key: report.KeyProseActualCost, re: regexp.MustCompile(`(?i)custo\s+atual[^\n]{0,16}?R\$\s*([\d.,]+)`), kind: kindFloat, money: true},
	{key: report.KeyProseDelayDays, re: regexp.MustCompile(`(?i)atraso(?:\s+de)?\s+(\d+)\s+dias?`), kind: kindFloat},
}

var scopeChangeRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)mudan[cç]a\s+de\s+escopo`),
	regexp.MustCompile(`(?i)altera[cç][aã]o\s+de\s+escopo`),
	regexp.MustCompile(`(?i)escopo\s+alterado`),
}

var riskMentionRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)risco\s+identificado`),
	regexp.MustCompile(`(?i)novo\s+risco`),
	regexp.MustCompile(`(?i)amea[cç]a`),
	regexp.MustCompile(`(?i)problema\s+potencial`),
}

// #endregion patterns

// #region prose-extract

// ExtractProse scans free-prose status text with the fixed pattern catalog.
// Monetary values strip thousands separators before parsing; all matching is
// case-insensitive and tolerant of either decimal convention.
func ExtractProse(text string) report.Fields {
	fields := make(report.Fields)

	for _, p := range prosePatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := m[1]
		if p.kind == kindString {
			fields[p.key] = report.String(raw)
			continue
		}
		if p.money {
			raw = strings.ReplaceAll(raw, ".", "")
		}
		f, err := parseFloat(raw)
		if err != nil {
			continue
		}
		fields[p.key] = report.Float(f)
	}

	if matchesAny(text, scopeChangeRes) {
		fields[report.KeyScopeChangeFlag] = report.Bool(true)
	}
	if matchesAny(text, riskMentionRes) {
		fields[report.KeyRiskFlag] = report.Bool(true)
	}

	return fields
}

func matchesAny(text string, res []*regexp.Regexp) bool {
	for _, re := range res {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// #endregion prose-extract
