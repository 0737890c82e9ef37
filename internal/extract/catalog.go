package extract

import (
	"github.com/pmpulse/analyzer/internal/report"
)

// #region field-kind

// fieldKind selects the value-cleanup rule applied to a labeled field.
type fieldKind int

const (
	kindString fieldKind = iota
	kindFloat            // plain decimal, comma tolerated
	kindMoney            // R$ prefix, thousands dots, comma decimals
	kindPercent          // trailing %
	kindDays             // leading integer, "15 dias"
	kindInt
	kindBool // "Sim" / "Não"
)

// #endregion field-kind

// #region specs

// labelSpec binds a literal line label to a canonical field key.
type labelSpec struct {
	label string
	key   string
	kind  fieldKind
}

// sectionSpec binds a bullet-section header to a list field. When categories
// is set, items are parsed as "name: R$ value (pct%)" entries instead.
type sectionSpec struct {
	header     string
	key        string
	categories bool
}

// catalog is the full extraction recipe for one domain.
type catalog struct {
	labels       []labelSpec
	sections     []sectionSpec
	riskRegister bool
}

// #endregion specs

// #region catalogs

var catalogs = map[report.Domain]catalog{
	report.DomainSchedule: {
		labels: []labelSpec{
			{"Status atual:", report.KeyStatus, kindString},
			{"Percentual de conclusão:", report.KeyCompletionPct, kindPercent},
			{"Data de início:", report.KeyStartDate, kindString},
			{"Data de término planejada:", report.KeyPlannedEndDate, kindString},
			{"Data de término real/prevista:", report.KeyActualEndDate, kindString},
			{"Atraso atual:", report.KeyDelayDays, kindDays},
			{"Duração planejada:", report.KeyPlannedDuration, kindDays},
			{"Motivo do atraso:", report.KeyDelayReason, kindString},
			{"Houve replanejamento:", report.KeyReplanning, kindBool},
			{"Índice de Desempenho de Cronograma (SPI):", report.KeySPI, kindFloat},
			{"Valor Planejado (PV):", report.KeyPlannedValue, kindMoney},
			{"Valor Agregado (EV):", report.KeyEarnedValue, kindMoney},
		},
		sections: []sectionSpec{
			{header: "Tarefas críticas:", key: report.KeyCriticalTasks},
			{header: "Tarefas atrasadas:", key: report.KeyDelayedTasks},
		},
	},
	report.DomainCost: {
		labels: []labelSpec{
			{"Orçamento inicial:", report.KeyInitialBudget, kindMoney},
			{"Custo real atual:", report.KeyActualCost, kindMoney},
			{"Desvio orçamentário:", report.KeyBudgetDeviation, kindPercent},
			{"Realocação de orçamento:", report.KeyBudgetRealloc, kindPercent},
			{"Índice de Desempenho de Custo (CPI):", report.KeyCPI, kindFloat},
			{"Valor Agregado (EV):", report.KeyEarnedValue, kindMoney},
			{"Estimativa para conclusão:", report.KeyEstimateToComplete, kindMoney},
			{"Estimativa no término (EAC):", report.KeyEstimateAtCompletion, kindMoney},
			{"Variação no término (VAC):", report.KeyVarianceAtCompletion, kindMoney},
		},
		sections: []sectionSpec{
			{header: "Detalhamento por categoria:", key: report.KeyCostCategories, categories: true},
		},
	},
	report.DomainScope: {
		labels: []labelSpec{
			{"Escopo original:", report.KeyScopeOriginal, kindString},
			{"Houve mudança de escopo:", report.KeyScopeChange, kindString},
			{"Descrição das mudanças:", report.KeyScopeChangeDesc, kindString},
			{"Impacto no cronograma:", report.KeyScheduleImpact, kindDays},
			{"Impacto no custo:", report.KeyCostImpact, kindMoney},
			{"Impacto no custo percentual:", report.KeyCostImpactPct, kindPercent},
			{"Número de mudanças de escopo:", report.KeyScopeChangeCount, kindInt},
		},
		sections: []sectionSpec{
			{header: "Solicitações de mudança:", key: report.KeyChangeRequests},
			{header: "Requisitos atuais:", key: report.KeyRequirements},
		},
	},
	report.DomainRisk: {
		riskRegister: true,
	},
}

// #endregion catalogs
