// Package render formats analysis and validation results as the plain-text
// reports consumed by project managers.
package render

import (
	"fmt"
	"strings"

	"github.com/pmpulse/analyzer/internal/analyzer"
	"github.com/pmpulse/analyzer/internal/guardrail"
	"github.com/pmpulse/analyzer/internal/recommend"
	"github.com/pmpulse/analyzer/internal/report"
)

const unspecified = "Não especificado"

// #region analysis-report

var domainTitles = map[report.Domain]string{
	report.DomainSchedule: "RELATÓRIO DE ANÁLISE DE CRONOGRAMA",
	report.DomainCost:     "RELATÓRIO DE ANÁLISE DE CUSTOS",
	report.DomainScope:    "RELATÓRIO DE ANÁLISE DE ESCOPO",
	report.DomainRisk:     "RELATÓRIO DE ANÁLISE DE RISCOS",
}

// AnalysisReport renders one analysis as the domain's text report.
func AnalysisReport(a *analyzer.Analysis) string {
	rec := a.Record
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", domainTitles[rec.Domain])
	fmt.Fprintf(&b, "Projeto: %s (%s)\n", textOr(rec.ProjectName), textOr(rec.ProjectID))
	fmt.Fprintf(&b, "Data da análise: %s\n\n", a.AnalyzedAt.Format("02/01/2006 15:04"))

	b.WriteString("RESUMO DO STATUS:\n")
	writeSummary(&b, rec)

	fmt.Fprintf(&b, "\nAVALIAÇÃO DA SAÚDE:\nStatus: %s\n%s\n", a.Health.Status, a.Health.Description)

	b.WriteString("\nRECOMENDAÇÕES:\n")
	for i, rec := range a.Recommendations {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
	}

	writeDetails(&b, rec)
	return b.String()
}

func writeSummary(b *strings.Builder, rec *report.Record) {
	switch rec.Domain {
	case report.DomainSchedule:
		fmt.Fprintf(b, "Status atual: %s\n", fieldString(rec.Fields, report.KeyStatus))
		fmt.Fprintf(b, "Percentual de conclusão: %s%%\n", fieldFloat(rec.Fields, report.KeyCompletionPct))
		fmt.Fprintf(b, "SPI (Índice de Desempenho de Cronograma): %s\n", fieldFloat(rec.Fields, report.KeySPI))
	case report.DomainCost:
		fmt.Fprintf(b, "CPI (Índice de Desempenho de Custo): %s\n", fieldFloat(rec.Fields, report.KeyCPI))
		fmt.Fprintf(b, "Orçamento inicial: R$ %s\n", fieldFloat(rec.Fields, report.KeyInitialBudget))
		fmt.Fprintf(b, "Custo real atual: R$ %s\n", fieldFloat(rec.Fields, report.KeyActualCost))
		fmt.Fprintf(b, "Desvio orçamentário: %s%%\n", fieldFloat(rec.Fields, report.KeyBudgetDeviation))
	case report.DomainScope:
		fmt.Fprintf(b, "Mudança de escopo: %s\n", fieldString(rec.Fields, report.KeyScopeChange))
		fmt.Fprintf(b, "Impacto no cronograma: %s dias\n", fieldFloat(rec.Fields, report.KeyScheduleImpact))
		fmt.Fprintf(b, "Impacto no custo: R$ %s\n", fieldFloat(rec.Fields, report.KeyCostImpact))
	case report.DomainRisk:
		fmt.Fprintf(b, "Riscos identificados: %d\n", listLen(rec.Fields, report.KeyRisks))
		fmt.Fprintf(b, "Riscos de nível alto: %d\n", listLen(rec.Fields, report.KeyHighRisks))
		fmt.Fprintf(b, "Riscos críticos: %d\n", listLen(rec.Fields, report.KeyCriticalRisks))
	}
}

func writeDetails(b *strings.Builder, rec *report.Record) {
	switch rec.Domain {
	case report.DomainSchedule:
		b.WriteString("\nDETALHES ADICIONAIS:\n")
		fmt.Fprintf(b, "Data de início: %s\n", fieldString(rec.Fields, report.KeyStartDate))
		fmt.Fprintf(b, "Data de término planejada: %s\n", fieldString(rec.Fields, report.KeyPlannedEndDate))
		fmt.Fprintf(b, "Data de término real/prevista: %s\n", fieldString(rec.Fields, report.KeyActualEndDate))
		fmt.Fprintf(b, "Atraso atual: %s dias\n", fieldFloat(rec.Fields, report.KeyDelayDays))
		fmt.Fprintf(b, "Motivo do atraso: %s\n", fieldString(rec.Fields, report.KeyDelayReason))
		writeList(b, "Tarefas críticas", rec.Fields, report.KeyCriticalTasks)
		writeList(b, "Tarefas atrasadas", rec.Fields, report.KeyDelayedTasks)
	case report.DomainCost:
		if cats, ok := rec.Fields.Categories(report.KeyCostCategories); ok && len(cats) > 0 {
			b.WriteString("\nCATEGORIAS DE CUSTO:\n")
			for _, c := range cats {
				if c.Percent >= 0 {
					fmt.Fprintf(b, "- %s: R$ %.2f (%.1f%%)\n", c.Name, c.Amount, c.Percent)
				} else {
					fmt.Fprintf(b, "- %s: R$ %.2f\n", c.Name, c.Amount)
				}
			}
		}
	case report.DomainScope:
		writeList(b, "Solicitações de mudança", rec.Fields, report.KeyChangeRequests)
	case report.DomainRisk:
		writeList(b, "Riscos identificados", rec.Fields, report.KeyRisks)
		writeList(b, "Novos riscos de nível alto", rec.Fields, report.KeyNewHighRisks)
	}
}

func writeList(b *strings.Builder, title string, fields report.Fields, key string) {
	items, ok := fields.List(key)
	if !ok || len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

// #endregion analysis-report

// #region validation-report

var actionLabels = map[guardrail.Action]string{
	guardrail.ActionNotify:    "ALERTA",
	guardrail.ActionRequire:   "REQUISITO",
	guardrail.ActionRecommend: "RECOMENDAÇÃO",
	guardrail.ActionError:     "ERRO",
}

// ValidationReport renders a recommendation validation outcome.
func ValidationReport(v recommend.Validation) string {
	var b strings.Builder

	b.WriteString("RELATÓRIO DE VALIDAÇÃO (GUARD RAILS)\n\n")
	fmt.Fprintf(&b, "Data da validação: %s\n\n", v.ValidatedAt.Format("02/01/2006 15:04"))

	status := "INVÁLIDO"
	if v.Valid {
		status = "VÁLIDO"
	}
	fmt.Fprintf(&b, "STATUS: %s\n\n", status)

	b.WriteString("MENSAGENS DE VALIDAÇÃO:\n")
	for _, msg := range v.Messages {
		id := msg.RuleID
		if id == "" {
			id = "N/A"
		}
		label, ok := actionLabels[msg.Action]
		if !ok {
			label = strings.ToUpper(string(msg.Action))
		}
		fmt.Fprintf(&b, "- [%s] %s: %s\n", id, label, msg.Message)
	}

	if len(v.MissingTopics) > 0 {
		b.WriteString("\nTÓPICOS OBRIGATÓRIOS NÃO COBERTOS:\n")
		for _, topic := range v.MissingTopics {
			fmt.Fprintf(&b, "- %s\n", topic)
		}
	}

	if len(v.AdditionalRecommendations) > 0 {
		b.WriteString("\nRECOMENDAÇÕES ADICIONAIS:\n")
		for _, rec := range v.AdditionalRecommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
	}

	return b.String()
}

// #endregion validation-report

// #region helpers

func textOr(s string) string {
	if s == "" {
		return unspecified
	}
	return s
}

func fieldString(fields report.Fields, key string) string {
	if v, ok := fields.String(key); ok {
		return v
	}
	return unspecified
}

func fieldFloat(fields report.Fields, key string) string {
	if v, ok := fields.Float(key); ok {
		return fmt.Sprintf("%.2f", v)
	}
	return unspecified
}

func listLen(fields report.Fields, key string) int {
	items, _ := fields.List(key)
	return len(items)
}

// #endregion helpers
