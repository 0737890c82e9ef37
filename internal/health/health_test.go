package health

import (
	"strings"
	"testing"

	"github.com/pmpulse/analyzer/internal/report"
)

func TestClassifyScheduleBands(t *testing.T) {
	cases := []struct {
		spi  float64
		want Status
	}{
		{1.10, StatusExcellent},
		{1.05, StatusExcellent},
		{1.049999, StatusGood},
		{0.95, StatusGood},
		{0.949999, StatusWarning},
		{0.85, StatusWarning},
		{0.849999, StatusCritical},
		{0.70, StatusCritical},
		{0.699999, StatusSevere},
		{0.10, StatusSevere},
	}

	for _, tc := range cases {
		got := ClassifySchedule(tc.spi, true)
		if got.Status != tc.want {
			t.Fatalf("spi %f: expected %s, got %s", tc.spi, tc.want, got.Status)
		}
	}
}

func TestClassifyCostBands(t *testing.T) {
	cases := []struct {
		cpi  float64
		want Status
	}{
		{1.10, StatusExcellent},
		{1.099999, StatusGood},
		{1.00, StatusGood},
		{0.999999, StatusWarning},
		{0.90, StatusWarning},
		{0.899999, StatusCritical},
		{0.80, StatusCritical},
		{0.799999, StatusSevere},
	}

	for _, tc := range cases {
		got := ClassifyCost(tc.cpi, true)
		if got.Status != tc.want {
			t.Fatalf("cpi %f: expected %s, got %s", tc.cpi, tc.want, got.Status)
		}
	}
}

func TestClassifyAbsentIndex(t *testing.T) {
	got := ClassifySchedule(0, false)
	if got.Status != StatusUnknown {
		t.Fatalf("expected unknown, got %s", got.Status)
	}
	if got.Description == "" {
		t.Fatal("expected a description for unknown status")
	}
}

func TestDescriptionEmbedsIndex(t *testing.T) {
	got := ClassifySchedule(0.85, true)
	if !strings.Contains(got.Description, "0.85") {
		t.Fatalf("description should embed the index: %q", got.Description)
	}
}

func TestClassifyRecordByDomain(t *testing.T) {
	rec := report.NewRecord(report.DomainSchedule)
	rec.Fields[report.KeySPI] = report.Float(0.85)
	if got := Classify(rec); got.Status != StatusWarning {
		t.Fatalf("schedule record: expected warning, got %s", got.Status)
	}

	rec = report.NewRecord(report.DomainCost)
	rec.Fields[report.KeyCPI] = report.Float(1.10)
	if got := Classify(rec); got.Status != StatusExcellent {
		t.Fatalf("cost record: expected excellent, got %s", got.Status)
	}

	rec = report.NewRecord(report.DomainScope)
	if got := Classify(rec); got.Status != StatusUnknown {
		t.Fatalf("scope record: expected unknown, got %s", got.Status)
	}

	rec = report.NewRecord(report.DomainRisk)
	if got := Classify(rec); got.Status != StatusUnknown {
		t.Fatalf("risk record: expected unknown, got %s", got.Status)
	}
}
