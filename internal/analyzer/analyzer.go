// Package analyzer coordinates the full analysis pipeline for one status
// report: extraction, indicator derivation, health banding, governance
// validation, and recommendation assembly.
package analyzer

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/pmpulse/analyzer/internal/evm"
	"github.com/pmpulse/analyzer/internal/extract"
	"github.com/pmpulse/analyzer/internal/guardrail"
	"github.com/pmpulse/analyzer/internal/health"
	"github.com/pmpulse/analyzer/internal/knowledge"
	"github.com/pmpulse/analyzer/internal/llm"
	"github.com/pmpulse/analyzer/internal/recommend"
	"github.com/pmpulse/analyzer/internal/report"
)

// #region analysis

// Analysis is the complete outcome for one status report.
type Analysis struct {
	Record          *report.Record
	Health          health.Assessment
	Recommendations []string
	Validation      recommend.Validation
	AnalyzedAt      time.Time
}

// #endregion analysis

// #region analyzer-struct

// Analyzer runs the pipeline. The retriever and generator are optional
// collaborators: without them the pipeline still produces the banded
// baseline recommendations and governance validation.
type Analyzer struct {
	engine    *guardrail.Engine
	retriever *knowledge.Retriever
	generator llm.Generator
	evmConfig evm.Config
}

// New creates an analyzer with the built-in rule catalogs and no external
// collaborators.
func New() *Analyzer {
	return &Analyzer{
		engine:    guardrail.NewEngine(),
		evmConfig: evm.DefaultConfig(),
	}
}

// WithEngine replaces the rule engine.
func (a *Analyzer) WithEngine(engine *guardrail.Engine) *Analyzer {
	a.engine = engine
	return a
}

// WithRetriever attaches a knowledge retriever for prompt augmentation.
func (a *Analyzer) WithRetriever(retriever *knowledge.Retriever) *Analyzer {
	a.retriever = retriever
	return a
}

// WithGenerator attaches a text generator for recommendation enrichment.
func (a *Analyzer) WithGenerator(generator llm.Generator) *Analyzer {
	a.generator = generator
	return a
}

// WithEVMConfig replaces the derivation configuration.
func (a *Analyzer) WithEVMConfig(cfg evm.Config) *Analyzer {
	a.evmConfig = cfg
	return a
}

// Engine exposes the rule engine, for catalog loading at startup.
func (a *Analyzer) Engine() *guardrail.Engine {
	return a.engine
}

// #endregion analyzer-struct

// #region analyze

// AnalyzeFile reads one status file and analyzes it.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string, domain report.Domain) (*Analysis, error) {
	rec, err := extract.FromFile(path, domain)
	if err != nil {
		return nil, err
	}
	return a.Analyze(ctx, rec)
}

// AnalyzeText extracts and analyzes labeled report text.
func (a *Analyzer) AnalyzeText(ctx context.Context, text string, domain report.Domain) (*Analysis, error) {
	return a.Analyze(ctx, extract.Extract(text, domain))
}

// Analyze runs derivation, banding, recommendation assembly, and governance
// validation on an extracted record.
func (a *Analyzer) Analyze(ctx context.Context, rec *report.Record) (*Analysis, error) {
	if !rec.Domain.Valid() {
		return nil, fmt.Errorf("unknown domain %q", rec.Domain)
	}

	evm.DeriveWith(rec, a.evmConfig)

	assessment := health.Classify(rec)
	recommendations := recommend.Defaults(rec)

	if enriched, err := a.enrich(ctx, rec); err != nil {
		// Enrichment is best-effort; the baseline pipeline result stands.
		log.Printf("[ANALYZE] enrichment failed for %s/%s: %v", rec.ProjectID, rec.Domain, err)
	} else {
		recommendations = append(recommendations, enriched...)
	}

	validation := recommend.Validate(a.engine, rec.Domain, recommendations, rec.Fields)

	return &Analysis{
		Record:          rec,
		Health:          assessment,
		Recommendations: recommendations,
		Validation:      validation,
		AnalyzedAt:      time.Now().UTC(),
	}, nil
}

// #endregion analyze

// #region enrich

// enrich augments a query describing the project situation with retrieved
// practice passages, asks the generator for recommendations, and extracts
// the recommendation lines. Returns nil when either collaborator is absent.
func (a *Analyzer) enrich(ctx context.Context, rec *report.Record) ([]string, error) {
	if a.retriever == nil || a.generator == nil {
		return nil, nil
	}

	prompt, err := a.retriever.AugmentPrompt(rec.Domain, situationQuery(rec), "")
	if err != nil {
		return nil, fmt.Errorf("augment prompt: %w", err)
	}

	response, err := a.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	return recommend.FromResponse(response), nil
}

// situationQuery renders the record's indicator summary used as retrieval
// query and generation context.
func situationQuery(rec *report.Record) string {
	query := fmt.Sprintf("Projeto: %s\nDomínio: %s\n", orUnspecified(rec.ProjectName), rec.Domain)
	switch rec.Domain {
	case report.DomainSchedule:
		query += fmt.Sprintf("SPI: %s\nPercentual de conclusão: %s%%\nAtraso: %s dias\n",
			floatOr(rec.Fields, report.KeySPI),
			floatOr(rec.Fields, report.KeyCompletionPct),
			floatOr(rec.Fields, report.KeyDelayDays))
	case report.DomainCost:
		query += fmt.Sprintf("CPI: %s\nOrçamento inicial: R$ %s\nCusto real atual: R$ %s\nDesvio orçamentário: %s%%\n",
			floatOr(rec.Fields, report.KeyCPI),
			floatOr(rec.Fields, report.KeyInitialBudget),
			floatOr(rec.Fields, report.KeyActualCost),
			floatOr(rec.Fields, report.KeyBudgetDeviation))
	case report.DomainScope:
		query += fmt.Sprintf("Mudança de escopo: %s\nImpacto no cronograma: %s dias\nImpacto no custo: R$ %s\n",
			stringOr(rec.Fields, report.KeyScopeChange),
			floatOr(rec.Fields, report.KeyScheduleImpact),
			floatOr(rec.Fields, report.KeyCostImpact))
	case report.DomainRisk:
		if risks, ok := rec.Fields.List(report.KeyRisks); ok {
			query += fmt.Sprintf("Riscos identificados: %d\n", len(risks))
		}
		if high, ok := rec.Fields.List(report.KeyHighRisks); ok {
			query += fmt.Sprintf("Riscos de nível alto: %d\n", len(high))
		}
	}
	return query
}

func floatOr(fields report.Fields, key string) string {
	if v, ok := fields.Float(key); ok {
		return fmt.Sprintf("%.2f", v)
	}
	return "Não especificado"
}

func stringOr(fields report.Fields, key string) string {
	if v, ok := fields.String(key); ok {
		return v
	}
	return "Não especificado"
}

func orUnspecified(s string) string {
	if s == "" {
		return "Não especificado"
	}
	return s
}

// #endregion enrich
