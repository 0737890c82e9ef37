package replay

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pmpulse/analyzer/internal/analyzer"
)

const fixtureJSON = `{
  "description": "regressão de limiares de cronograma",
  "scenarios": [
    {
      "name": "atraso moderado",
      "domain": "cronograma",
      "report_text": "Projeto: Faturamento (PROJ-0001)\nAtraso atual: 15 dias\nDuração planejada: 100 dias\nValor Planejado (PV): R$ 250000.00\nValor Agregado (EV): R$ 212500.00\n",
      "expected": {
        "health": "warning",
        "fired_rules": ["SCH-002", "SCH-003"],
        "valid": false
      }
    },
    {
      "name": "cronograma saudável",
      "domain": "cronograma",
      "report_text": "Projeto: Portal (PROJ-0002)\nValor Planejado (PV): R$ 200000.00\nValor Agregado (EV): R$ 200000.00\n",
      "expected": {
        "health": "good",
        "valid": true
      }
    }
  ]
}`

func writeFixture(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadFixture(t *testing.T) {
	fixture, err := LoadFixture(writeFixture(t, fixtureJSON))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(fixture.Scenarios) != 2 {
		t.Fatalf("expected 2 scenarios, got %d", len(fixture.Scenarios))
	}
	if fixture.Scenarios[0].Expected.Valid == nil || *fixture.Scenarios[0].Expected.Valid {
		t.Fatal("first scenario must expect valid=false")
	}
}

func TestLoadFixtureRejectsUnknownDomain(t *testing.T) {
	body := `{"scenarios": [{"name": "x", "domain": "qualidade", "report_text": "y"}]}`
	if _, err := LoadFixture(writeFixture(t, body)); err == nil {
		t.Fatal("expected an error for an unknown domain")
	}
}

func TestReplayMatchesExpectations(t *testing.T) {
	fixture, err := LoadFixture(writeFixture(t, fixtureJSON))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	results := Replay(context.Background(), analyzer.New(), fixture)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if !r.Passed() {
			t.Fatalf("scenario %s failed: err=%v mismatches=%v", r.Name, r.Err, r.Mismatches)
		}
	}

	summary := Summarize(results)
	if summary.Total != 2 || summary.Passed != 2 || summary.Failed != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestReplayReportsMismatches(t *testing.T) {
	valid := true
	fixture := &Fixture{Scenarios: []Scenario{{
		Name:       "expectativa errada",
		Domain:     "cronograma",
		ReportText: "Atraso atual: 15 dias\nDuração planejada: 100 dias\nValor Planejado (PV): R$ 250000.00\nValor Agregado (EV): R$ 212500.00\n",
		Expected: Expected{
			Health:     "excellent",
			FiredRules: []string{"SCH-999"},
			Valid:      &valid,
		},
	}}}

	results := Replay(context.Background(), analyzer.New(), fixture)
	if len(results) != 1 || results[0].Passed() {
		t.Fatalf("scenario must fail: %+v", results)
	}

	joined := strings.Join(results[0].Mismatches, "\n")
	for _, want := range []string{"health:", "SCH-999", "valid:"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("missing mismatch %q in:\n%s", want, joined)
		}
	}
}
