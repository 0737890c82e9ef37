package report

// Canonical field keys. Labeled-report keys keep the Portuguese names of the
// source data dictionary; prose-extraction keys are the English pattern names.
const (
	// Schedule
	KeyStatus             = "status"
	KeyCompletionPct      = "percentual_conclusao"
	KeyStartDate          = "data_inicio"
	KeyPlannedEndDate     = "data_termino_planejada"
	KeyActualEndDate      = "data_termino_real"
	KeyDelayDays          = "atraso_dias"
	KeyDelayReason        = "motivo_atraso"
	KeyPlannedDuration    = "duracao_planejada"
	KeyReplanning         = "replanejamento"
	KeySPI                = "spi"
	KeyPlannedValue       = "valor_planejado"
	KeyEarnedValue        = "valor_agregado"
	KeyCriticalTasks      = "tarefas_criticas"
	KeyDelayedTasks       = "tarefas_atrasadas"

	// Cost
	KeyCPI              = "cpi"
	KeyInitialBudget    = "orcamento_inicial"
	KeyActualCost       = "custo_real"
	KeyBudgetDeviation  = "desvio_orcamento"
	KeyBudgetRealloc    = "realocacao_orcamento"
	KeyEstimateToComplete = "estimativa_conclusao"
	KeyEstimateAtCompletion = "estimativa_termino"
	KeyVarianceAtCompletion = "variacao_termino"
	KeyCostCategories   = "categorias_custos"

	// Scope
	KeyScopeOriginal    = "escopo_original"
	KeyScopeChange      = "mudanca_escopo"
	KeyCostImpact       = "impacto_custo"
	KeyScopeChangeDesc  = "descricao_mudancas"
	KeyScheduleImpact   = "impacto_cronograma"
	KeyCostImpactPct    = "impacto_custo_percentual"
	KeyScopeChangeCount = "num_mudancas_escopo"
	KeyChangeRequests   = "solicitacoes_mudanca"
	KeyRequirements     = "requisitos_atuais"

	// Risk
	KeyRisks            = "riscos_identificados"
	KeyHighRisks        = "riscos_altos"
	KeyCriticalRisks    = "riscos_criticos"
	KeyNewHighRisks     = "novos_riscos_altos"
	KeyHighExposureRisks = "riscos_alta_exposicao"

	// Prose patterns
	KeyProseProjectID   = "project_id"
	KeyProseCompletion  = "completion_percentage"
	KeyProseSPI         = "spi"
	KeyProseCPI         = "cpi"
	KeyProseBudget      = "budget"
	KeyProseActualCost  = "actual_cost"
	KeyProseDelayDays   = "delay_days"
	KeyScopeChangeFlag  = "scope_change_detected"
	KeyRiskFlag         = "risk_detected"
)
