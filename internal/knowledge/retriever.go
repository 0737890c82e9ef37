package knowledge

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/pmpulse/analyzer/internal/report"
)

// #region source

// Source lists the candidate documents for a domain.
type Source interface {
	List(domain report.Domain) ([]Document, error)
}

// MemorySource serves the built-in practice base without a database.
type MemorySource struct{}

// List returns the built-in documents for a domain.
func (MemorySource) List(domain report.Domain) ([]Document, error) {
	return DefaultDocuments(domain), nil
}

// #endregion source

// #region config

// RetrieverConfig bounds retrieval.
type RetrieverConfig struct {
	TopK      int
	MaxDocLen int
}

// DefaultRetrieverConfig returns the standard retrieval bounds.
func DefaultRetrieverConfig() RetrieverConfig {
	return RetrieverConfig{
		TopK:      3,
		MaxDocLen: 4096,
	}
}

// #endregion config

// #region retriever

// Retriever ranks a domain's documents against a query by keyword overlap.
// Ranking is deterministic: ties break on document ID.
type Retriever struct {
	source Source
	config RetrieverConfig
}

// NewRetriever creates a Retriever over the given document source.
func NewRetriever(source Source, config RetrieverConfig) *Retriever {
	if config.TopK <= 0 {
		config.TopK = DefaultRetrieverConfig().TopK
	}
	return &Retriever{source: source, config: config}
}

// Query returns up to TopK documents sharing at least one keyword with the
// query, highest overlap first, after a consistency pass that drops empty,
// overlong, and duplicate entries.
func (r *Retriever) Query(domain report.Domain, query string) ([]Document, error) {
	docs, err := r.source.List(domain)
	if err != nil {
		return nil, fmt.Errorf("list knowledge: %w", err)
	}
	docs = r.consistencyCheck(docs)

	queryTokens := tokenize(query)

	type scored struct {
		doc   Document
		score int
	}
	var ranked []scored
	for _, doc := range docs {
		score := sharedKeywords(queryTokens, tokenize(doc.Title+" "+doc.Content))
		if score == 0 {
			continue
		}
		ranked = append(ranked, scored{doc: doc, score: score})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].doc.ID < ranked[j].doc.ID
	})

	if len(ranked) > r.config.TopK {
		ranked = ranked[:r.config.TopK]
	}
	out := make([]Document, len(ranked))
	for i, s := range ranked {
		out[i] = s.doc
	}
	return out, nil
}

// consistencyCheck validates candidate documents against basic constraints:
//   - Non-empty content
//   - Content within MaxDocLen
//   - No duplicate IDs
func (r *Retriever) consistencyCheck(docs []Document) []Document {
	seen := make(map[string]bool)
	var valid []Document
	for _, doc := range docs {
		if doc.Content == "" {
			continue
		}
		if r.config.MaxDocLen > 0 && len(doc.Content) > r.config.MaxDocLen {
			continue
		}
		if seen[doc.ID] {
			continue
		}
		seen[doc.ID] = true
		valid = append(valid, doc)
	}
	return valid
}

// #endregion retriever

// #region augment

// DefaultTemplate is the standard augmentation template. Placeholders
// {domain}, {query}, and {knowledge} are substituted literally.
const DefaultTemplate = `Com base nas melhores práticas do PMBOK para gerenciamento de {domain}, analise a seguinte situação:

{query}

Conhecimento relevante do PMBOK:
{knowledge}

Considerando as melhores práticas acima, forneça uma análise detalhada e recomendações:`

// AugmentPrompt retrieves the documents relevant to the query and renders
// them into the template. An empty template selects DefaultTemplate.
func (r *Retriever) AugmentPrompt(domain report.Domain, query, template string) (string, error) {
	docs, err := r.Query(domain, query)
	if err != nil {
		return "", err
	}

	var knowledge strings.Builder
	for _, doc := range docs {
		fmt.Fprintf(&knowledge, "- %s: %s\n\n", doc.Title, doc.Content)
	}

	if template == "" {
		template = DefaultTemplate
	}
	prompt := strings.ReplaceAll(template, "{domain}", string(domain))
	prompt = strings.ReplaceAll(prompt, "{query}", query)
	prompt = strings.ReplaceAll(prompt, "{knowledge}", knowledge.String())
	return prompt, nil
}

// #endregion augment

// #region tokenize

// stopwords contains common Portuguese words excluded from overlap scoring.
var stopwords = map[string]bool{
	"de": true, "a": true, "o": true, "que": true, "e": true,
	"do": true, "da": true, "em": true, "um": true, "para": true,
	"com": true, "não": true, "uma": true, "os": true, "no": true,
	"se": true, "na": true, "por": true, "mais": true, "as": true,
	"dos": true, "como": true, "mas": true, "ao": true, "das": true,
	"à": true, "seu": true, "sua": true, "ou": true, "ser": true,
	"quando": true, "muito": true, "há": true, "nos": true, "já": true,
	"está": true, "são": true, "também": true, "pelo": true, "pela": true,
	"até": true, "isso": true, "entre": true, "era": true, "depois": true,
	"sem": true, "mesmo": true, "aos": true, "ter": true, "seus": true,
	"nas": true, "esse": true, "essa": true, "este": true, "esta": true,
	"deve": true, "devem": true, "foi": true, "ele": true, "ela": true,
}

// tokenize splits text into unique lowercase non-stopword tokens.
func tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	seen := make(map[string]bool)
	var tokens []string
	for _, w := range words {
		if len([]rune(w)) < 3 || stopwords[w] || seen[w] {
			continue
		}
		seen[w] = true
		tokens = append(tokens, w)
	}
	return tokens
}

// sharedKeywords returns the count of tokens present in both slices.
func sharedKeywords(a, b []string) int {
	set := make(map[string]bool, len(a))
	for _, t := range a {
		set[t] = true
	}
	count := 0
	for _, t := range b {
		if set[t] {
			count++
		}
	}
	return count
}

// #endregion tokenize
