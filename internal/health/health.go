// Package health classifies a single performance index into an ordered
// health band with a human-readable description.
package health

import (
	"fmt"

	"github.com/pmpulse/analyzer/internal/report"
)

// #region status

// Status is the health band of a performance index.
type Status string

const (
	StatusUnknown   Status = "unknown"
	StatusExcellent Status = "excellent"
	StatusGood      Status = "good"
	StatusWarning   Status = "warning"
	StatusCritical  Status = "critical"
	StatusSevere    Status = "severe"
)

// Assessment is the classification result: a band plus a description that
// embeds the index to two decimals.
type Assessment struct {
	Status      Status
	Description string
}

// #endregion status

// #region bands

// band is one threshold row: the first band whose inclusive lower bound the
// index meets wins.
type band struct {
	min    float64
	status Status
	text   string
}

var scheduleBands = []band{
	{1.05, StatusExcellent, "O projeto está significativamente adiantado (SPI = %.2f). Verifique se a qualidade está sendo mantida e considere realocar recursos."},
	{0.95, StatusGood, "O projeto está no cronograma ou levemente adiantado (SPI = %.2f). Continue monitorando."},
	{0.85, StatusWarning, "O projeto está levemente atrasado (SPI = %.2f). Ações preventivas são recomendadas."},
	{0.70, StatusCritical, "O projeto está significativamente atrasado (SPI = %.2f). Ações corretivas são necessárias."},
}

var scheduleSevere = "O projeto está severamente atrasado (SPI = %.2f). Ações corretivas urgentes são necessárias."

var costBands = []band{
	{1.10, StatusExcellent, "O projeto está significativamente abaixo do orçamento (CPI = %.2f). Verifique se a qualidade está sendo mantida e considere realocar recursos."},
	{1.00, StatusGood, "O projeto está dentro do orçamento ou levemente abaixo (CPI = %.2f). Continue monitorando."},
	{0.90, StatusWarning, "O projeto está levemente acima do orçamento (CPI = %.2f). Ações preventivas são recomendadas."},
	{0.80, StatusCritical, "O projeto está significativamente acima do orçamento (CPI = %.2f). Ações corretivas são necessárias."},
}

var costSevere = "O projeto está severamente acima do orçamento (CPI = %.2f). Ações corretivas urgentes são necessárias."

const unknownText = "Não foi possível determinar o status devido à falta de informações."

// #endregion bands

// #region classify

// ClassifySchedule bands an SPI value. Pass ok=false for an absent index.
func ClassifySchedule(spi float64, ok bool) Assessment {
	return classify(spi, ok, scheduleBands, scheduleSevere)
}

// ClassifyCost bands a CPI value. Pass ok=false for an absent index.
func ClassifyCost(cpi float64, ok bool) Assessment {
	return classify(cpi, ok, costBands, costSevere)
}

// Classify picks the index and band table for the domain. Scope and risk
// reports carry no performance index and always classify unknown.
func Classify(rec *report.Record) Assessment {
	switch rec.Domain {
	case report.DomainSchedule:
		spi, ok := rec.Fields.Float(report.KeySPI)
		return ClassifySchedule(spi, ok)
	case report.DomainCost:
		cpi, ok := rec.Fields.Float(report.KeyCPI)
		return ClassifyCost(cpi, ok)
	}
	return Assessment{Status: StatusUnknown, Description: unknownText}
}

func classify(index float64, ok bool, bands []band, severeText string) Assessment {
	if !ok {
		return Assessment{Status: StatusUnknown, Description: unknownText}
	}
	for _, b := range bands {
		if index >= b.min {
			return Assessment{Status: b.status, Description: fmt.Sprintf(b.text, index)}
		}
	}
	return Assessment{Status: StatusSevere, Description: fmt.Sprintf(severeText, index)}
}

// #endregion classify
