package analyzer

import (
	"context"
	"strings"
	"testing"

	"github.com/pmpulse/analyzer/internal/health"
	"github.com/pmpulse/analyzer/internal/knowledge"
	"github.com/pmpulse/analyzer/internal/llm"
	"github.com/pmpulse/analyzer/internal/report"
)

const scheduleText = `Projeto: Sistema de Faturamento (PROJ-0001)
Data: 15/03/2025
Gerente: Ana Souza

Percentual de conclusão: 45%
Atraso atual: 15 dias
Duração planejada: 100 dias
Valor Planejado (PV): R$ 250000.00
Valor Agregado (EV): R$ 212500.00
`

func TestAnalyzeTextEndToEnd(t *testing.T) {
	a := New()

	analysis, err := a.AnalyzeText(context.Background(), scheduleText, report.DomainSchedule)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	spi, ok := analysis.Record.Fields.Float(report.KeySPI)
	if !ok || spi != 0.85 {
		t.Fatalf("expected derived spi 0.85, got %f (ok=%v)", spi, ok)
	}
	if analysis.Health.Status != health.StatusWarning {
		t.Fatalf("expected warning, got %s", analysis.Health.Status)
	}
	if len(analysis.Recommendations) == 0 {
		t.Fatal("expected baseline recommendations")
	}

	fired := make(map[string]bool)
	for _, msg := range analysis.Validation.Messages {
		fired[msg.RuleID] = true
	}
	for _, want := range []string{"SCH-002", "SCH-003"} {
		if !fired[want] {
			t.Fatalf("expected %s to fire, fired: %v", want, fired)
		}
	}
}

func TestAnalyzeRejectsUnknownDomain(t *testing.T) {
	a := New()
	rec := report.NewRecord(report.Domain("qualidade"))

	if _, err := a.Analyze(context.Background(), rec); err == nil {
		t.Fatal("expected an error for unknown domain")
	}
}

func TestAnalyzeWithEnrichment(t *testing.T) {
	a := New().
		WithRetriever(knowledge.NewRetriever(knowledge.MemorySource{}, knowledge.DefaultRetrieverConfig())).
		WithGenerator(llm.Static{Response: "1. Replanejar entregas intermediárias\n2. Revisar dependências externas"})

	analysis, err := a.AnalyzeText(context.Background(), scheduleText, report.DomainSchedule)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	joined := strings.Join(analysis.Recommendations, "\n")
	if !strings.Contains(joined, "Replanejar entregas intermediárias") {
		t.Fatalf("generated recommendations must be appended: %v", analysis.Recommendations)
	}
	if !strings.Contains(joined, "Monitorar de perto as tarefas críticas") {
		t.Fatalf("baseline recommendations must be kept: %v", analysis.Recommendations)
	}
}

type failingGenerator struct{}

func (failingGenerator) Generate(context.Context, string) (string, error) {
	return "", context.DeadlineExceeded
}

func TestAnalyzeSurvivesGeneratorFailure(t *testing.T) {
	a := New().
		WithRetriever(knowledge.NewRetriever(knowledge.MemorySource{}, knowledge.DefaultRetrieverConfig())).
		WithGenerator(failingGenerator{})

	analysis, err := a.AnalyzeText(context.Background(), scheduleText, report.DomainSchedule)
	if err != nil {
		t.Fatalf("enrichment failure must not fail the pipeline: %v", err)
	}
	if len(analysis.Recommendations) == 0 {
		t.Fatal("baseline recommendations must survive")
	}
}

func TestAnalyzeCostReport(t *testing.T) {
	text := `Projeto: Portal (PROJ-0002)

Orçamento inicial: R$ 500000.00
Custo real atual: R$ 230000.00
Valor Agregado (EV): R$ 212500.00
Estimativa para conclusão: R$ 280000.00
`
	a := New()

	analysis, err := a.AnalyzeText(context.Background(), text, report.DomainCost)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	cpi, ok := analysis.Record.Fields.Float(report.KeyCPI)
	if !ok {
		t.Fatal("expected derived cpi")
	}
	if cpi <= 0.92 || cpi >= 0.93 {
		t.Fatalf("expected cpi near 0.9239, got %f", cpi)
	}
	if analysis.Health.Status != health.StatusWarning {
		t.Fatalf("expected warning, got %s", analysis.Health.Status)
	}

	eac, _ := analysis.Record.Fields.Float(report.KeyEstimateAtCompletion)
	if eac != 510000 {
		t.Fatalf("expected eac 510000, got %f", eac)
	}
	vac, _ := analysis.Record.Fields.Float(report.KeyVarianceAtCompletion)
	if vac != -10000 {
		t.Fatalf("expected vac -10000, got %f", vac)
	}
}
