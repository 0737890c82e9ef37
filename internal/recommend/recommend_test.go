package recommend

import (
	"strings"
	"testing"

	"github.com/pmpulse/analyzer/internal/guardrail"
	"github.com/pmpulse/analyzer/internal/report"
)

func TestKeywordsDropShortAndStopwords(t *testing.T) {
	got := keywords("Plano de recuperação para SPI baixo")
	want := map[string]bool{"plano": true, "recuperação": true, "baixo": true}

	if len(got) != len(want) {
		t.Fatalf("expected %d keywords, got %v", len(want), got)
	}
	for _, kw := range got {
		if !want[kw] {
			t.Fatalf("unexpected keyword %q in %v", kw, got)
		}
	}
}

func TestCoveredMatchesCaseInsensitive(t *testing.T) {
	recs := []string{"Elaborar PLANO detalhado com a equipe"}
	if !covered("Plano de recuperação para SPI baixo", recs) {
		t.Fatal("topic keyword present in recommendation, should be covered")
	}
	if covered("Plano de recuperação para SPI baixo", []string{"Monitorar tarefas"}) {
		t.Fatal("no topic keyword present, must not be covered")
	}
}

func TestValidateReportsMissingTopics(t *testing.T) {
	engine := guardrail.NewEngine()
	fields := report.Fields{report.KeySPI: report.Float(0.85)}

	v := Validate(engine, report.DomainSchedule, []string{"Monitorar tarefas"}, fields)

	if v.Valid {
		t.Fatal("uncovered require topic must invalidate")
	}
	if len(v.MissingTopics) != 1 || v.MissingTopics[0] != "Plano de recuperação para SPI baixo" {
		t.Fatalf("unexpected missing topics: %v", v.MissingTopics)
	}
	found := false
	for _, rec := range v.AdditionalRecommendations {
		if strings.Contains(rec, "plano de recuperação") {
			found = true
		}
	}
	if !found {
		t.Fatalf("require message for the missing topic must be suggested: %v", v.AdditionalRecommendations)
	}
}

func TestValidatePassesWhenTopicsCovered(t *testing.T) {
	engine := guardrail.NewEngine()
	fields := report.Fields{report.KeySPI: report.Float(0.85)}

	v := Validate(engine, report.DomainSchedule, []string{
		"Elaborar plano de recuperação documentado com a equipe",
	}, fields)

	if !v.Valid {
		t.Fatalf("covered topics must validate, missing: %v", v.MissingTopics)
	}
	if len(v.MissingTopics) != 0 {
		t.Fatalf("expected no missing topics, got %v", v.MissingTopics)
	}
}

func TestValidateCollectsRecommendMessages(t *testing.T) {
	engine := guardrail.NewEngine()

	v := Validate(engine, report.DomainRisk, nil, report.Fields{})

	if len(v.AdditionalRecommendations) != 1 {
		t.Fatalf("expected the register-review recommendation, got %v", v.AdditionalRecommendations)
	}
	if !strings.Contains(v.AdditionalRecommendations[0], "quinzenalmente") {
		t.Fatalf("unexpected recommendation: %q", v.AdditionalRecommendations[0])
	}
}

func TestScheduleDefaultsPerBand(t *testing.T) {
	cases := []struct {
		name  string
		spi   float64
		hasIt bool
		want  string
	}{
		{"absent", 0, false, "Estabelecer métricas de valor agregado"},
		{"severe", 0.65, true, "reunião de emergência"},
		{"critical", 0.80, true, "horas extras"},
		{"warning", 0.90, true, "potenciais riscos"},
		{"good", 1.00, true, "práticas atuais"},
		{"excellent", 1.10, true, "realocação de recursos"},
	}

	for _, tc := range cases {
		rec := report.NewRecord(report.DomainSchedule)
		if tc.hasIt {
			rec.Fields[report.KeySPI] = report.Float(tc.spi)
		}
		recs := Defaults(rec)
		if len(recs) == 0 {
			t.Fatalf("%s: expected recommendations", tc.name)
		}
		if !strings.Contains(strings.Join(recs, "\n"), tc.want) {
			t.Fatalf("%s: expected %q in %v", tc.name, tc.want, recs)
		}
	}
}

func TestScheduleDefaultsAppendDelayedTasks(t *testing.T) {
	rec := report.NewRecord(report.DomainSchedule)
	rec.Fields[report.KeySPI] = report.Float(0.75)
	rec.Fields[report.KeyDelayedTasks] = report.List([]string{"Integração", "Homologação"})

	recs := Defaults(rec)

	last := recs[len(recs)-1]
	if !strings.Contains(last, "Integração, Homologação") {
		t.Fatalf("expected delayed-task focus, got %q", last)
	}
}

func TestCostDefaultsDominantCategory(t *testing.T) {
	rec := report.NewRecord(report.DomainCost)
	rec.Fields[report.KeyCPI] = report.Float(0.85)
	rec.Fields[report.KeyCostCategories] = report.Categories([]report.Category{
		{Name: "Pessoal", Amount: 120000, Percent: 52},
		{Name: "Infraestrutura", Amount: 80000, Percent: 35},
	})

	recs := Defaults(rec)

	last := recs[len(recs)-1]
	if !strings.Contains(last, "Pessoal") {
		t.Fatalf("expected dominant category focus, got %q", last)
	}

	// A healthy CPI suppresses the category hint.
	rec.Fields[report.KeyCPI] = report.Float(1.0)
	recs = Defaults(rec)
	for _, r := range recs {
		if strings.Contains(r, "categoria: Pessoal") {
			t.Fatalf("healthy cpi must not add category focus: %v", recs)
		}
	}
}

func TestDefaultsForScopeAndRisk(t *testing.T) {
	if recs := Defaults(report.NewRecord(report.DomainScope)); recs != nil {
		t.Fatalf("scope has no banded baseline, got %v", recs)
	}
	if recs := Defaults(report.NewRecord(report.DomainRisk)); recs != nil {
		t.Fatalf("risk has no banded baseline, got %v", recs)
	}
}

func TestFromResponseExtractsLines(t *testing.T) {
	response := "Análise do projeto:\n\n" +
		"1. Revisar o caminho crítico\n" +
		"2. Alocar recursos adicionais\n" +
		"- Comunicar stakeholders\n" +
		"Observação final sem marcador\n"

	recs := FromResponse(response)

	want := []string{
		"Revisar o caminho crítico",
		"Alocar recursos adicionais",
		"Comunicar stakeholders",
	}
	if len(recs) != len(want) {
		t.Fatalf("expected %d recommendations, got %v", len(want), recs)
	}
	for i := range want {
		if recs[i] != want[i] {
			t.Fatalf("expected %q, got %q", want[i], recs[i])
		}
	}
}

func TestFromResponseIgnoresEmptyItems(t *testing.T) {
	if recs := FromResponse("1.\n-\n"); len(recs) != 0 {
		t.Fatalf("expected nothing, got %v", recs)
	}
}
