package knowledge

import (
	"strings"
	"testing"

	"github.com/pmpulse/analyzer/internal/report"
)

type sliceSource []Document

func (s sliceSource) List(report.Domain) ([]Document, error) {
	return s, nil
}

func TestQueryRanksByOverlap(t *testing.T) {
	retriever := NewRetriever(MemorySource{}, DefaultRetrieverConfig())

	docs, err := retriever.Query(report.DomainSchedule,
		"O projeto está com SPI de 0.85, indicando atraso no cronograma. Quais ações corretivas devem ser tomadas?")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(docs) == 0 || len(docs) > 3 {
		t.Fatalf("expected 1..3 documents, got %d", len(docs))
	}

	found := false
	for _, doc := range docs {
		if strings.Contains(doc.Title, "SPI") || strings.Contains(doc.Title, "Atrasos") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an SPI or delay passage, got %v", docs)
	}
}

func TestQueryIsDeterministic(t *testing.T) {
	retriever := NewRetriever(MemorySource{}, DefaultRetrieverConfig())
	query := "atraso no cronograma e caminho crítico"

	first, err := retriever.Query(report.DomainSchedule, query)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := retriever.Query(report.DomainSchedule, query)
		if err != nil {
			t.Fatalf("query: %v", err)
		}
		if len(again) != len(first) {
			t.Fatalf("run %d: length changed", i)
		}
		for j := range first {
			if again[j].ID != first[j].ID {
				t.Fatalf("run %d: order changed at %d: %s vs %s", i, j, again[j].ID, first[j].ID)
			}
		}
	}
}

func TestQueryNoOverlapReturnsNothing(t *testing.T) {
	retriever := NewRetriever(MemorySource{}, DefaultRetrieverConfig())

	docs, err := retriever.Query(report.DomainSchedule, "xyzzy")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected no documents, got %v", docs)
	}
}

func TestConsistencyCheckDropsInvalid(t *testing.T) {
	source := sliceSource{
		{ID: "a", Title: "Vazio", Content: ""},
		{ID: "b", Title: "Cronograma", Content: "Controle do cronograma do projeto."},
		{ID: "b", Title: "Duplicado", Content: "Controle do cronograma duplicado."},
		{ID: "c", Title: "Longo", Content: strings.Repeat("cronograma ", 1000)},
	}
	retriever := NewRetriever(source, RetrieverConfig{TopK: 5, MaxDocLen: 100})

	docs, err := retriever.Query(report.DomainSchedule, "controle do cronograma")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(docs) != 1 || docs[0].ID != "b" {
		t.Fatalf("expected only doc b, got %v", docs)
	}
}

func TestAugmentPromptSubstitutesPlaceholders(t *testing.T) {
	retriever := NewRetriever(MemorySource{}, DefaultRetrieverConfig())

	prompt, err := retriever.AugmentPrompt(report.DomainSchedule,
		"SPI de 0.85 com atraso no cronograma", "")
	if err != nil {
		t.Fatalf("augment: %v", err)
	}
	if strings.Contains(prompt, "{query}") || strings.Contains(prompt, "{knowledge}") || strings.Contains(prompt, "{domain}") {
		t.Fatalf("placeholders left unexpanded:\n%s", prompt)
	}
	if !strings.Contains(prompt, "SPI de 0.85") {
		t.Fatal("query must appear in prompt")
	}
	if !strings.Contains(prompt, "cronograma") {
		t.Fatal("domain must appear in prompt")
	}
	if !strings.Contains(prompt, "- ") {
		t.Fatal("retrieved passages must appear in prompt")
	}
}

func TestAugmentPromptCustomTemplate(t *testing.T) {
	retriever := NewRetriever(MemorySource{}, DefaultRetrieverConfig())

	prompt, err := retriever.AugmentPrompt(report.DomainCost, "CPI de 0.75",
		"D={domain} Q={query}")
	if err != nil {
		t.Fatalf("augment: %v", err)
	}
	if prompt != "D=custos Q=CPI de 0.75" {
		t.Fatalf("unexpected prompt: %q", prompt)
	}
}

func TestTokenizeDedupes(t *testing.T) {
	tokens := tokenize("cronograma do projeto, cronograma do PROJETO")
	count := 0
	for _, tok := range tokens {
		if tok == "cronograma" || tok == "projeto" {
			count++
		}
	}
	if count != 2 || len(tokens) != 2 {
		t.Fatalf("expected deduped tokens, got %v", tokens)
	}
}
