package guardrail

import (
	"github.com/pmpulse/analyzer/internal/report"
)

// Built-in rule catalogs, one ordered list per domain. Thresholds follow the
// PMBOK-derived governance policies of the reference rule set.

// #region schedule

func scheduleRules() []Rule {
	return []Rule{
		{
			ID:          "SCH-001",
			Name:        "Notificação para SPI crítico",
			Description: "Qualquer SPI < 0.8 requer notificação imediata ao gerente do projeto",
			Action:      ActionNotify,
			Message:     "ALERTA CRÍTICO: O SPI está abaixo de 0.8, indicando atraso significativo no cronograma. Notifique imediatamente o gerente do projeto.",
			Condition: func(f report.Fields) bool {
				spi, ok := f.Float(report.KeySPI)
				return ok && spi < 0.8
			},
		},
		{
			ID:          "SCH-002",
			Name:        "Plano de recuperação para SPI baixo",
			Description: "Qualquer SPI < 0.9 requer um plano de recuperação documentado",
			Action:      ActionRequire,
			Message:     "REQUISITO: O SPI está abaixo de 0.9. Um plano de recuperação documentado é necessário.",
			Condition: func(f report.Fields) bool {
				spi, ok := f.Float(report.KeySPI)
				return ok && spi < 0.9
			},
		},
		{
			ID:          "SCH-003",
			Name:        "Aprovação para extensão de prazo",
			Description: "Extensões de prazo > 10% da duração original requerem aprovação formal",
			Action:      ActionRequire,
			Message:     "REQUISITO: A extensão de prazo excede 10% da duração original do projeto. Aprovação formal é necessária.",
			Condition: func(f report.Fields) bool {
				delay, okD := f.Float(report.KeyDelayDays)
				duration, okP := f.Float(report.KeyPlannedDuration)
				return okD && okP && delay > 0.1*duration
			},
		},
		{
			ID:          "SCH-004",
			Name:        "Revisão da linha de base para replanejamento",
			Description: "Replanejamento de cronograma requer revisão da linha de base",
			Action:      ActionRequire,
			Message:     "REQUISITO: O replanejamento do cronograma requer revisão formal da linha de base.",
			Condition: func(f report.Fields) bool {
				return f.Bool(report.KeyReplanning)
			},
		},
		{
			ID:          "SCH-005",
			Name:        "Monitoramento diário para tarefas críticas",
			Description: "Tarefas críticas devem ter monitoramento diário quando SPI < 0.9",
			Action:      ActionRecommend,
			Message:     "RECOMENDAÇÃO: Implemente monitoramento diário para todas as tarefas críticas devido ao SPI baixo.",
			Condition: func(f report.Fields) bool {
				spi, ok := f.Float(report.KeySPI)
				tasks, okT := f.List(report.KeyCriticalTasks)
				return ok && spi < 0.9 && okT && len(tasks) > 0
			},
		},
	}
}

// #endregion schedule

// #region cost

func costRules() []Rule {
	return []Rule{
		{
			ID:          "COST-001",
			Name:        "Notificação para CPI crítico",
			Description: "Qualquer CPI < 0.8 requer notificação imediata ao gerente do projeto",
			Action:      ActionNotify,
			Message:     "ALERTA CRÍTICO: O CPI está abaixo de 0.8, indicando desvio significativo nos custos. Notifique imediatamente o gerente do projeto.",
			Condition: func(f report.Fields) bool {
				cpi, ok := f.Float(report.KeyCPI)
				return ok && cpi < 0.8
			},
		},
		{
			ID:          "COST-002",
			Name:        "Plano de recuperação para CPI baixo",
			Description: "Qualquer CPI < 0.9 requer um plano de recuperação documentado",
			Action:      ActionRequire,
			Message:     "REQUISITO: O CPI está abaixo de 0.9. Um plano de recuperação documentado é necessário.",
			Condition: func(f report.Fields) bool {
				cpi, ok := f.Float(report.KeyCPI)
				return ok && cpi < 0.9
			},
		},
		{
			ID:          "COST-003",
			Name:        "Aprovação para gastos adicionais",
			Description: "Gastos adicionais > 10% do orçamento requerem aprovação formal",
			Action:      ActionRequire,
			Message:     "REQUISITO: Os gastos adicionais excedem 10% do orçamento. Aprovação formal é necessária.",
			Condition: func(f report.Fields) bool {
				dev, ok := f.Float(report.KeyBudgetDeviation)
				return ok && dev > 10
			},
		},
		{
			ID:          "COST-004",
			Name:        "Aprovação para realocação de orçamento",
			Description: "Realocação de orçamento entre categorias > 5% requer aprovação",
			Action:      ActionRequire,
			Message:     "REQUISITO: A realocação de orçamento entre categorias excede 5%. Aprovação formal é necessária.",
			Condition: func(f report.Fields) bool {
				realloc, ok := f.Float(report.KeyBudgetRealloc)
				return ok && realloc > 5
			},
		},
		{
			ID:          "COST-005",
			Name:        "Recálculo semanal da EAC",
			Description: "Estimativa no término (EAC) deve ser recalculada semanalmente quando CPI < 0.9",
			Action:      ActionRecommend,
			Message:     "RECOMENDAÇÃO: Recalcule a Estimativa no Término (EAC) semanalmente devido ao CPI baixo.",
			Condition: func(f report.Fields) bool {
				cpi, ok := f.Float(report.KeyCPI)
				return ok && cpi < 0.9
			},
		},
	}
}

// #endregion cost

// #region scope

func scopeRules() []Rule {
	scopeChanged := func(f report.Fields) bool {
		s, ok := f.String(report.KeyScopeChange)
		return ok && s == "Sim"
	}
	return []Rule{
		{
			ID:          "SCOPE-001",
			Name:        "Documentação formal para mudanças de escopo",
			Description: "Todas as mudanças de escopo requerem documentação formal",
			Action:      ActionRequire,
			Message:     "REQUISITO: Todas as mudanças de escopo requerem documentação formal.",
			Condition:   scopeChanged,
		},
		{
			ID:          "SCOPE-002",
			Name:        "Revisão da linha de base para impacto no cronograma",
			Description: "Mudanças com impacto no cronograma > 10 dias requerem revisão da linha de base",
			Action:      ActionRequire,
			Message:     "REQUISITO: A mudança de escopo tem impacto significativo no cronograma. Revisão da linha de base é necessária.",
			Condition: func(f report.Fields) bool {
				impact, ok := f.Float(report.KeyScheduleImpact)
				return ok && impact > 10
			},
		},
		{
			ID:          "SCOPE-003",
			Name:        "Revisão do orçamento para impacto no custo",
			Description: "Mudanças com impacto no custo > 5% requerem revisão do orçamento",
			Action:      ActionRequire,
			Message:     "REQUISITO: A mudança de escopo tem impacto significativo no custo. Revisão do orçamento é necessária.",
			Condition: func(f report.Fields) bool {
				impact, ok := f.Float(report.KeyCostImpactPct)
				return ok && impact > 5
			},
		},
		{
			ID:          "SCOPE-004",
			Name:        "Revisão do plano para múltiplas mudanças",
			Description: "Mais de 3 mudanças de escopo requerem revisão do plano de gerenciamento do projeto",
			Action:      ActionRequire,
			Message:     "REQUISITO: Múltiplas mudanças de escopo foram identificadas. Revisão do plano de gerenciamento do projeto é necessária.",
			Condition: func(f report.Fields) bool {
				n, ok := f.Float(report.KeyScopeChangeCount)
				return ok && n > 3
			},
		},
		{
			ID:          "SCOPE-005",
			Name:        "Análise de impacto para mudanças de escopo",
			Description: "Todas as mudanças de escopo devem incluir análise de impacto em cronograma e custos",
			Action:      ActionRequire,
			Message:     "REQUISITO: Todas as mudanças de escopo devem incluir análise de impacto em cronograma e custos.",
			Condition:   scopeChanged,
		},
	}
}

// #endregion scope

// #region risk

func riskRules() []Rule {
	nonEmpty := func(key string) Condition {
		return func(f report.Fields) bool {
			list, ok := f.List(key)
			return ok && len(list) > 0
		}
	}
	return []Rule{
		{
			ID:          "RISK-001",
			Name:        "Planos de mitigação para riscos altos",
			Description: "Riscos com nível 'Alto' requerem planos de mitigação documentados",
			Action:      ActionRequire,
			Message:     "REQUISITO: Todos os riscos de nível 'Alto' requerem planos de mitigação documentados.",
			Condition:   nonEmpty(report.KeyHighRisks),
		},
		{
			ID:          "RISK-002",
			Name:        "Planos de contingência para riscos críticos",
			Description: "Riscos com probabilidade >= 4 e impacto >= 4 requerem planos de contingência",
			Action:      ActionRequire,
			Message:     "REQUISITO: Todos os riscos críticos (probabilidade >= 4 e impacto >= 4) requerem planos de contingência.",
			Condition:   nonEmpty(report.KeyCriticalRisks),
		},
		{
			ID:          "RISK-003",
			Name:        "Revisão quinzenal do registro de riscos",
			Description: "Registro de riscos deve ser revisado pelo menos quinzenalmente",
			Action:      ActionRecommend,
			Message:     "RECOMENDAÇÃO: O registro de riscos deve ser revisado pelo menos quinzenalmente.",
			Condition:   func(report.Fields) bool { return true },
		},
		{
			ID:          "RISK-004",
			Name:        "Notificação para novos riscos altos",
			Description: "Novos riscos identificados com nível 'Alto' requerem notificação imediata ao gerente do projeto",
			Action:      ActionNotify,
			Message:     "ALERTA: Novos riscos de nível 'Alto' foram identificados. Notifique imediatamente o gerente do projeto.",
			Condition:   nonEmpty(report.KeyNewHighRisks),
		},
		{
			ID:          "RISK-005",
			Name:        "Monitoramento semanal para riscos de alta exposição",
			Description: "Riscos com valor de exposição (probabilidade * impacto) >= 12 requerem monitoramento semanal",
			Action:      ActionRecommend,
			Message:     "RECOMENDAÇÃO: Implemente monitoramento semanal para todos os riscos com valor de exposição >= 12.",
			Condition:   nonEmpty(report.KeyHighExposureRisks),
		},
	}
}

// #endregion risk
