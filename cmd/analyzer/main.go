package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pmpulse/analyzer/internal/analyzer"
	"github.com/pmpulse/analyzer/internal/knowledge"
	"github.com/pmpulse/analyzer/internal/llm"
	"github.com/pmpulse/analyzer/internal/render"
	"github.com/pmpulse/analyzer/internal/report"
	"github.com/pmpulse/analyzer/internal/workflow"
)

// #region main
func main() {
	filePath := flag.String("file", "", "analyze a single status file")
	domainName := flag.String("domain", "", "domain of the status file (cronograma|custos|escopo|riscos)")
	dirPath := flag.String("dir", "", "analyze every status file under a directory")
	rulesPath := flag.String("rules", envOr("ANALYZER_RULES", ""), "YAML rule catalog to load")
	dbPath := flag.String("db", envOr("ANALYZER_DB", ""), "knowledge base SQLite path (empty = built-in docs)")
	llmURL := flag.String("llm-url", envOr("ANALYZER_LLM_URL", ""), "LLM endpoint (empty = no enrichment)")
	llmModel := flag.String("llm-model", envOr("ANALYZER_LLM_MODEL", "llama3"), "LLM model name")
	resultsDir := flag.String("results", envOr("ANALYZER_RESULTS", "results"), "directory for batch result files")
	workers := flag.Int("workers", 4, "batch worker count")
	flag.Parse()

	if (*filePath == "" && *dirPath == "") || (*filePath != "" && *dirPath != "") {
		fmt.Fprintln(os.Stderr, "usage: analyzer --file status.txt --domain cronograma")
		fmt.Fprintln(os.Stderr, "       analyzer --dir status_files/")
		os.Exit(2)
	}

	a, cleanup := buildAnalyzer(*rulesPath, *dbPath, *llmURL, *llmModel)
	defer cleanup()

	ctx := context.Background()
	if *filePath != "" {
		os.Exit(runFile(ctx, a, *filePath, *domainName))
	}
	os.Exit(runDir(ctx, a, *dirPath, *resultsDir, *workers))
}

// #endregion main

// #region wiring

// buildAnalyzer wires the optional collaborators behind the analyzer.
func buildAnalyzer(rulesPath, dbPath, llmURL, llmModel string) (*analyzer.Analyzer, func()) {
	a := analyzer.New()
	cleanup := func() {}

	if rulesPath != "" {
		if err := a.Engine().LoadCatalogFile(rulesPath); err != nil {
			log.Fatalf("load rule catalog: %v", err)
		}
	}

	var source knowledge.Source = knowledge.MemorySource{}
	if dbPath != "" {
		store, err := knowledge.NewStore(dbPath)
		if err != nil {
			log.Fatalf("open knowledge base: %v", err)
		}
		if err := store.SeedAll(); err != nil {
			log.Fatalf("seed knowledge base: %v", err)
		}
		source = store
		cleanup = func() { store.Close() }
	}
	a.WithRetriever(knowledge.NewRetriever(source, knowledge.DefaultRetrieverConfig()))

	if llmURL != "" {
		cfg := llm.DefaultClientConfig()
		cfg.BaseURL = llmURL
		cfg.Model = llmModel
		cfg.APIKey = os.Getenv("ANALYZER_LLM_KEY")
		a.WithGenerator(llm.NewClient(cfg))
	}

	return a, cleanup
}

// #endregion wiring

// #region single-file

func runFile(ctx context.Context, a *analyzer.Analyzer, path, domainName string) int {
	domain := report.Domain(domainName)
	if !domain.Valid() {
		fmt.Fprintf(os.Stderr, "unknown domain %q (use cronograma|custos|escopo|riscos)\n", domainName)
		return 2
	}

	analysis, err := a.AnalyzeFile(ctx, path, domain)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyze %s: %v\n", path, err)
		return 1
	}

	fmt.Println(render.AnalysisReport(analysis))
	fmt.Println(render.ValidationReport(analysis.Validation))
	return 0
}

// #endregion single-file

// #region batch

func runDir(ctx context.Context, a *analyzer.Analyzer, dir, resultsDir string, workers int) int {
	tasks, err := workflow.Discover(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "discover: %v\n", err)
		return 2
	}
	if len(tasks) == 0 {
		fmt.Fprintf(os.Stderr, "no status files found under %s\n", dir)
		return 1
	}

	cfg := workflow.DefaultConfig()
	cfg.Workers = workers
	results := workflow.NewRunner(a, cfg).Run(ctx, tasks)

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"File", "Domain", "Health", "Valid", "Error"})
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			tw.AppendRow(table.Row{res.Task.Path, res.Task.Domain, "", "", res.Err.Error()})
			continue
		}
		tw.AppendRow(table.Row{
			res.Task.Path, res.Task.Domain,
			res.Analysis.Health.Status, res.Analysis.Validation.Valid, "",
		})
	}
	tw.Render()

	path, err := workflow.SaveResults(resultsDir, results)
	if err != nil {
		fmt.Fprintf(os.Stderr, "save results: %v\n", err)
		return 1
	}
	fmt.Printf("Resultados salvos em: %s\n", path)

	if failed > 0 {
		return 1
	}
	return 0
}

// #endregion batch

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
