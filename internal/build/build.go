package build

import (
	"context"
	"fmt"

	"ontox/internal/storage"
	"ontox/internal/util"
	"ontox/pkg/loader"
	"ontox/pkg/loader/csv"
	"ontox/pkg/logger"
	"ontox/pkg/ontology"
)

// OWLThing is the OWL top concept. It carries no information as an
// ancestor, so traversal excludes it by default.
const OWLThing = "http://www.w3.org/2002/07/owl#Thing"

// SourcesFromEnv assembles the configured record sources from
// ONTOLOGY_SOURCES, a comma-separated list of file paths and
// s3://bucket/key URLs.
func SourcesFromEnv(ctx context.Context) ([]loader.Source, error) {
	entries := util.GetEnvList("ONTOLOGY_SOURCES")
	if len(entries) == 0 {
		return nil, fmt.Errorf("ONTOLOGY_SOURCES is not configured")
	}

	s3Client := storage.NewS3Client(ctx)

	sources := make([]loader.Source, 0, len(entries))
	for _, entry := range entries {
		if storage.IsObjectURL(entry) {
			src, err := storage.NewObjectSource(s3Client, entry)
			if err != nil {
				return nil, err
			}
			sources = append(sources, src)
			continue
		}
		sources = append(sources, loader.NewFileSource(entry))
	}
	return sources, nil
}

// Ontology fetches every source concurrently, parses them in listed
// order, and builds one immutable graph. Malformed rows are logged and
// skipped; a source that cannot be fetched or parsed at all fails the
// build.
func Ontology(ctx context.Context, sources []loader.Source) (*ontology.Ontology, error) {
	contents, err := loader.FetchAll(ctx, sources)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch record sources: %w", err)
	}

	var records []ontology.Record
	skipped := 0
	for i, content := range contents {
		recs, rowErrs, err := csv.ParseRecords(content)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", sources[i].Name(), err)
		}
		for _, rowErr := range rowErrs {
			logger.Warn("[Load] Skipping malformed record",
				"source", sources[i].Name(),
				"row", rowErr.Line,
				"reason", rowErr.Reason,
			)
		}
		skipped += len(rowErrs)
		records = append(records, recs...)
	}

	excluded := excludedRoots()
	o := ontology.New(records, ontology.WithExcludedRoots(excluded...))

	logger.Info("[Load] Ontology built",
		"entities", o.Len(),
		"skipped_rows", skipped,
		"sources", len(sources),
	)
	return o, nil
}

func excludedRoots() []string {
	if roots := util.GetEnvList("ONTOLOGY_EXCLUDE_ROOTS"); roots != nil {
		return roots
	}
	return []string{OWLThing}
}
