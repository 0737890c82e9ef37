package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pmpulse/analyzer/internal/knowledge"
	"github.com/pmpulse/analyzer/internal/report"
)

// #region main

func main() {
	dbPath := flag.String("db", envOr("ANALYZER_DB", "knowledge.db"), "knowledge base SQLite path")
	seed := flag.Bool("seed", false, "seed the built-in practice base")
	list := flag.String("list", "", "list documents for a domain")
	query := flag.String("query", "", "retrieve documents relevant to a query")
	queryDomain := flag.String("query-domain", "cronograma", "domain for --query")
	addDomain := flag.String("add-domain", "", "domain for --add-title/--add-content")
	addTitle := flag.String("add-title", "", "title of the document to add")
	addContent := flag.String("add-content", "", "content of the document to add")
	flag.Parse()

	store, err := knowledge.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open knowledge base: %v\n", err)
		os.Exit(2)
	}
	defer store.Close()

	switch {
	case *seed:
		os.Exit(runSeed(store))
	case *list != "":
		os.Exit(runList(store, *list))
	case *query != "":
		os.Exit(runQuery(store, *queryDomain, *query))
	case *addTitle != "" || *addContent != "":
		os.Exit(runAdd(store, *addDomain, *addTitle, *addContent))
	}

	fmt.Fprintln(os.Stderr, "usage: kb --seed")
	fmt.Fprintln(os.Stderr, "       kb --list cronograma")
	fmt.Fprintln(os.Stderr, "       kb --query \"atraso no cronograma\" [--query-domain cronograma]")
	fmt.Fprintln(os.Stderr, "       kb --add-domain custos --add-title t --add-content c")
	os.Exit(2)
}

// #endregion main

// #region commands

func runSeed(store *knowledge.Store) int {
	if err := store.SeedAll(); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		return 1
	}
	fmt.Println("knowledge base seeded")
	return 0
}

func runList(store *knowledge.Store, domainName string) int {
	domain := report.Domain(domainName)
	if !domain.Valid() {
		fmt.Fprintf(os.Stderr, "unknown domain %q\n", domainName)
		return 2
	}
	docs, err := store.List(domain)
	if err != nil {
		fmt.Fprintf(os.Stderr, "list: %v\n", err)
		return 1
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"ID", "Title"})
	for _, doc := range docs {
		tw.AppendRow(table.Row{doc.ID, doc.Title})
	}
	tw.Render()
	return 0
}

func runQuery(store *knowledge.Store, domainName, query string) int {
	domain := report.Domain(domainName)
	if !domain.Valid() {
		fmt.Fprintf(os.Stderr, "unknown domain %q\n", domainName)
		return 2
	}

	retriever := knowledge.NewRetriever(store, knowledge.DefaultRetrieverConfig())
	docs, err := retriever.Query(domain, query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "query: %v\n", err)
		return 1
	}
	for _, doc := range docs {
		fmt.Printf("[%s] %s\n%s\n\n", doc.ID, doc.Title, doc.Content)
	}
	return 0
}

func runAdd(store *knowledge.Store, domainName, title, content string) int {
	domain := report.Domain(domainName)
	if !domain.Valid() {
		fmt.Fprintf(os.Stderr, "unknown domain %q\n", domainName)
		return 2
	}
	if title == "" || content == "" {
		fmt.Fprintln(os.Stderr, "--add-title and --add-content are both required")
		return 2
	}

	doc, err := store.Add(knowledge.Document{
		Domain:  domainName,
		Title:   title,
		Content: content,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "add: %v\n", err)
		return 1
	}
	fmt.Printf("added %s\n", doc.ID)
	return 0
}

// #endregion commands

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
