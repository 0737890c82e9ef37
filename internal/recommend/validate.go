package recommend

import (
	"time"

	"github.com/pmpulse/analyzer/internal/guardrail"
	"github.com/pmpulse/analyzer/internal/report"
)

// #region validate

// Validation is the outcome of checking a recommendation set against the
// fired governance rules. Valid is true when every fired require-rule's topic
// is covered by at least one recommendation.
type Validation struct {
	Valid                     bool
	MissingTopics             []string
	AdditionalRecommendations []string
	Messages                  []guardrail.FiredMessage
	ValidatedAt               time.Time
}

// Validate runs the domain catalog against the fields, collects the fired
// require-rule names as mandatory topics, and checks keyword coverage of
// each topic in the recommendation set. AdditionalRecommendations gathers
// every fired recommend-message plus the require-messages for uncovered
// topics.
func Validate(engine *guardrail.Engine, domain report.Domain, recommendations []string, fields report.Fields) Validation {
	result := engine.Validate(domain, fields)

	var missing []string
	for _, msg := range result.Messages {
		if msg.Action != guardrail.ActionRequire {
			continue
		}
		if !covered(msg.RuleName, recommendations) {
			missing = append(missing, msg.RuleName)
		}
	}

	missingSet := make(map[string]bool, len(missing))
	for _, topic := range missing {
		missingSet[topic] = true
	}

	var additional []string
	for _, msg := range result.Messages {
		switch {
		case msg.Action == guardrail.ActionRecommend:
			additional = append(additional, msg.Message)
		case msg.Action == guardrail.ActionRequire && missingSet[msg.RuleName]:
			additional = append(additional, msg.Message)
		}
	}

	return Validation{
		Valid:                     len(missing) == 0,
		MissingTopics:             missing,
		AdditionalRecommendations: additional,
		Messages:                  result.Messages,
		ValidatedAt:               time.Now().UTC(),
	}
}

// #endregion validate
