package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pmpulse/analyzer/internal/analyzer"
	"github.com/pmpulse/analyzer/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	rulesPath := flag.String("rules", "", "YAML rule catalog to load before replaying")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [--rules catalog.yaml]")
		os.Exit(2)
	}

	fixture, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		os.Exit(2)
	}

	a := analyzer.New()
	if *rulesPath != "" {
		if err := a.Engine().LoadCatalogFile(*rulesPath); err != nil {
			fmt.Fprintf(os.Stderr, "load rule catalog: %v\n", err)
			os.Exit(2)
		}
	}

	results := replay.Replay(context.Background(), a, fixture)
	summary := replay.Summarize(results)

	if fixture.Description != "" {
		fmt.Printf("Fixture: %s\n", fixture.Description)
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Scenario", "Health", "Fired Rules", "Valid", "Outcome"})
	for _, res := range results {
		outcome := "ok"
		switch {
		case res.Err != nil:
			outcome = fmt.Sprintf("error: %v", res.Err)
		case len(res.Mismatches) > 0:
			outcome = strings.Join(res.Mismatches, "; ")
		}
		tw.AppendRow(table.Row{res.Name, res.Health, strings.Join(res.FiredRules, ","), res.Valid, outcome})
	}
	tw.Render()

	fmt.Printf("total=%d passed=%d failed=%d\n", summary.Total, summary.Passed, summary.Failed)
	if summary.Failed > 0 {
		os.Exit(1)
	}
}

// #endregion main
