package render

import (
	"strings"
	"testing"
	"time"

	"github.com/pmpulse/analyzer/internal/analyzer"
	"github.com/pmpulse/analyzer/internal/guardrail"
	"github.com/pmpulse/analyzer/internal/health"
	"github.com/pmpulse/analyzer/internal/recommend"
	"github.com/pmpulse/analyzer/internal/report"
)

func scheduleAnalysis() *analyzer.Analysis {
	rec := report.NewRecord(report.DomainSchedule)
	rec.ProjectID = "PROJ-0001"
	rec.ProjectName = "Sistema de Faturamento"
	rec.Fields = report.Fields{
		report.KeyStatus:        report.String("Em andamento"),
		report.KeyCompletionPct: report.Float(45),
		report.KeySPI:           report.Float(0.85),
		report.KeyDelayDays:     report.Float(15),
		report.KeyDelayedTasks:  report.List([]string{"Integração", "Homologação"}),
	}
	return &analyzer.Analysis{
		Record: rec,
		Health: health.Assessment{
			Status:      health.StatusWarning,
			Description: "O projeto está levemente atrasado (SPI = 0.85). Ações preventivas são recomendadas.",
		},
		Recommendations: []string{
			"Revisar o caminho crítico e identificar oportunidades de otimização",
			"Monitorar de perto as tarefas críticas",
		},
		AnalyzedAt: time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC),
	}
}

func TestAnalysisReportSchedule(t *testing.T) {
	body := AnalysisReport(scheduleAnalysis())

	for _, want := range []string{
		"RELATÓRIO DE ANÁLISE DE CRONOGRAMA",
		"Projeto: Sistema de Faturamento (PROJ-0001)",
		"Data da análise: 15/03/2025 14:30",
		"RESUMO DO STATUS:",
		"SPI (Índice de Desempenho de Cronograma): 0.85",
		"Status: warning",
		"1. Revisar o caminho crítico e identificar oportunidades de otimização",
		"DETALHES ADICIONAIS:",
		"Atraso atual: 15.00 dias",
		"Tarefas atrasadas:",
		"- Integração",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("report missing %q:\n%s", want, body)
		}
	}
}

func TestAnalysisReportAbsentFields(t *testing.T) {
	rec := report.NewRecord(report.DomainSchedule)
	body := AnalysisReport(&analyzer.Analysis{Record: rec, AnalyzedAt: time.Now()})

	if !strings.Contains(body, "Projeto: Não especificado (Não especificado)") {
		t.Fatalf("absent header fields must render as unspecified:\n%s", body)
	}
	if !strings.Contains(body, "SPI (Índice de Desempenho de Cronograma): Não especificado") {
		t.Fatalf("absent SPI must render as unspecified:\n%s", body)
	}
}

func TestAnalysisReportCostCategories(t *testing.T) {
	rec := report.NewRecord(report.DomainCost)
	rec.ProjectID = "PROJ-0002"
	rec.Fields = report.Fields{
		report.KeyCPI: report.Float(0.92),
		report.KeyCostCategories: report.Categories([]report.Category{
			{Name: "Pessoal", Amount: 120000, Percent: 52.2},
			{Name: "Software", Amount: 30000, Percent: -1},
		}),
	}
	body := AnalysisReport(&analyzer.Analysis{Record: rec, AnalyzedAt: time.Now()})

	if !strings.Contains(body, "CATEGORIAS DE CUSTO:") {
		t.Fatalf("missing categories section:\n%s", body)
	}
	if !strings.Contains(body, "- Pessoal: R$ 120000.00 (52.2%)") {
		t.Fatalf("category with percent rendered wrong:\n%s", body)
	}
	if !strings.Contains(body, "- Software: R$ 30000.00\n") {
		t.Fatalf("category without percent rendered wrong:\n%s", body)
	}
}

func TestValidationReport(t *testing.T) {
	v := recommend.Validation{
		Valid:         false,
		MissingTopics: []string{"Plano de recuperação para SPI baixo"},
		AdditionalRecommendations: []string{
			"REQUISITO: O SPI está abaixo de 0.9. Um plano de recuperação documentado é necessário.",
		},
		Messages: []guardrail.FiredMessage{
			{RuleID: "SCH-001", RuleName: "Notificação para SPI crítico", Action: guardrail.ActionNotify, Message: "ALERTA CRÍTICO: notifique o gerente."},
			{Action: guardrail.ActionError, Message: "Domínio inválido"},
		},
		ValidatedAt: time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC),
	}

	body := ValidationReport(v)
	for _, want := range []string{
		"STATUS: INVÁLIDO",
		"- [SCH-001] ALERTA: ALERTA CRÍTICO: notifique o gerente.",
		"- [N/A] ERRO: Domínio inválido",
		"TÓPICOS OBRIGATÓRIOS NÃO COBERTOS:",
		"- Plano de recuperação para SPI baixo",
		"RECOMENDAÇÕES ADICIONAIS:",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("validation report missing %q:\n%s", want, body)
		}
	}
}

func TestValidationReportValid(t *testing.T) {
	body := ValidationReport(recommend.Validation{Valid: true, ValidatedAt: time.Now()})
	if !strings.Contains(body, "STATUS: VÁLIDO") {
		t.Fatalf("missing valid status:\n%s", body)
	}
}
