package recommend

import (
	"fmt"
	"strings"

	"github.com/pmpulse/analyzer/internal/report"
)

// Baseline recommendation sets per performance band. These are the floor the
// pipeline always produces; model-generated recommendations only ever extend
// them.

// #region defaults

// Defaults returns the baseline recommendations for a record. Scope and risk
// reports have no banded baseline and return nil.
func Defaults(rec *report.Record) []string {
	switch rec.Domain {
	case report.DomainSchedule:
		return scheduleDefaults(rec.Fields)
	case report.DomainCost:
		return costDefaults(rec.Fields)
	}
	return nil
}

func scheduleDefaults(fields report.Fields) []string {
	spi, ok := fields.Float(report.KeySPI)

	var recs []string
	switch {
	case !ok:
		recs = []string{
			"Estabelecer métricas de valor agregado (EV) e valor planejado (PV) para calcular o SPI",
			"Implementar um sistema de monitoramento de cronograma mais detalhado",
			"Revisar o plano de gerenciamento do cronograma",
		}
	case spi < 0.7:
		recs = []string{
			"Realizar reunião de emergência com a equipe do projeto e stakeholders",
			"Revisar o caminho crítico e identificar oportunidades de fast-tracking",
			"Alocar recursos adicionais para as tarefas críticas",
			"Considerar a revisão da linha de base do cronograma",
			"Implementar monitoramento diário das tarefas críticas",
			"Avaliar a possibilidade de redução de escopo (com aprovação dos stakeholders)",
		}
	case spi < 0.85:
		recs = []string{
			"Revisar o caminho crítico e identificar oportunidades de otimização",
			"Implementar horas extras para recuperar o atraso",
			"Monitorar de perto as tarefas críticas",
			"Revisar as dependências entre tarefas para otimização",
			"Comunicar o status aos stakeholders e discutir estratégias de recuperação",
		}
	case spi < 0.95:
		recs = []string{
			"Monitorar de perto as tarefas críticas",
			"Identificar potenciais riscos que possam causar mais atrasos",
			"Revisar a alocação de recursos para otimização",
			"Implementar reuniões de acompanhamento mais frequentes",
		}
	case spi < 1.05:
		recs = []string{
			"Manter o monitoramento regular do cronograma",
			"Continuar com as práticas atuais de gerenciamento",
			"Documentar lições aprendidas para projetos futuros",
		}
	default:
		recs = []string{
			"Verificar se a qualidade está sendo mantida apesar do avanço rápido",
			"Considerar realocação de recursos para outros projetos prioritários",
			"Documentar as práticas bem-sucedidas para projetos futuros",
			"Revisar as estimativas para projetos futuros",
		}
	}

	if delayed, okD := fields.List(report.KeyDelayedTasks); okD && len(delayed) > 0 {
		recs = append(recs, fmt.Sprintf("Focar nas tarefas atrasadas: %s", strings.Join(delayed, ", ")))
	}
	return recs
}

func costDefaults(fields report.Fields) []string {
	cpi, ok := fields.Float(report.KeyCPI)

	var recs []string
	switch {
	case !ok:
		recs = []string{
			"Estabelecer métricas de valor agregado (EV) e custo real (AC) para calcular o CPI",
			"Implementar um sistema de monitoramento de custos mais detalhado",
			"Revisar o plano de gerenciamento dos custos",
		}
	case cpi < 0.7:
		recs = []string{
			"Realizar reunião de emergência com a equipe do projeto e stakeholders",
			"Revisar todas as categorias de custo para identificar áreas de maior desvio",
			"Implementar controles mais rigorosos para aprovação de despesas",
			"Considerar a revisão do orçamento base",
			"Avaliar a possibilidade de redução de escopo (com aprovação dos stakeholders)",
			"Renegociar contratos com fornecedores",
		}
	case cpi < 0.8:
		recs = []string{
			"Revisar as categorias de custo com maior desvio",
			"Implementar medidas de economia sem impactar a qualidade",
			"Monitorar de perto todas as despesas futuras",
			"Revisar processos para identificar ineficiências",
			"Comunicar o status aos stakeholders e discutir estratégias de recuperação",
		}
	case cpi < 0.9:
		recs = []string{
			"Monitorar de perto as categorias de custo com maior desvio",
			"Identificar potenciais riscos que possam causar mais desvios",
			"Revisar a alocação de recursos para otimização",
			"Implementar reuniões de acompanhamento de custos mais frequentes",
		}
	case cpi < 1.0:
		recs = []string{
			"Manter o monitoramento regular dos custos",
			"Implementar pequenas medidas de economia",
			"Revisar estimativas para atividades futuras",
		}
	case cpi < 1.1:
		recs = []string{
			"Manter o monitoramento regular dos custos",
			"Continuar com as práticas atuais de gerenciamento",
			"Documentar lições aprendidas para projetos futuros",
		}
	default:
		recs = []string{
			"Verificar se a qualidade está sendo mantida apesar dos custos reduzidos",
			"Considerar realocação de recursos para outros projetos prioritários",
			"Documentar as práticas bem-sucedidas para projetos futuros",
			"Revisar as estimativas para projetos futuros",
		}
	}

	if cat, okC := dominantCategory(fields); okC && ok && cpi < 0.9 {
		recs = append(recs, fmt.Sprintf("Focar na redução de custos na categoria: %s", cat))
	}
	return recs
}

// dominantCategory returns the cost category with the largest amount.
func dominantCategory(fields report.Fields) (string, bool) {
	cats, ok := fields.Categories(report.KeyCostCategories)
	if !ok || len(cats) == 0 {
		return "", false
	}
	best := cats[0]
	for _, c := range cats[1:] {
		if c.Amount > best.Amount {
			best = c
		}
	}
	return best.Name, true
}

// #endregion defaults
