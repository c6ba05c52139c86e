package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"ontox/internal/build"
	"ontox/pkg/loader"
	"ontox/pkg/logger"
	"ontox/pkg/logger/console"
)

func main() {
	csvPath := flag.String("csv", "", "Path to the ontology CSV file")
	query := flag.String("query", "", "Entity id or label to query")
	flag.Parse()

	if *csvPath == "" || *query == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger.Init(console.NewConsoleLogger(console.ConsoleLoggerParams{}))

	onto, err := build.Ontology(
		context.Background(),
		[]loader.Source{loader.NewFileSource(*csvPath)},
	)
	if err != nil {
		logger.Fatal("Failed to load ontology", "err", err)
	}

	id, err := onto.Resolve(*query)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Entity not found in ontology.")
		os.Exit(1)
	}

	printAncestors(onto.AncestorsWithDepth(id))
}

// printAncestors writes the result ordered by depth, direct parents
// first, ties broken by label.
func printAncestors(ancestors map[string]int) {
	type entry struct {
		label string
		depth int
	}
	entries := make([]entry, 0, len(ancestors))
	for label, depth := range ancestors {
		entries = append(entries, entry{label: label, depth: depth})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].depth != entries[j].depth {
			return entries[i].depth < entries[j].depth
		}
		return entries[i].label < entries[j].label
	})

	fmt.Println("{")
	for _, e := range entries {
		fmt.Printf("    %q: %d,\n", e.label, e.depth)
	}
	fmt.Println("}")
}
