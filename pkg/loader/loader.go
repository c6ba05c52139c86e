package loader

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
)

// Source provides the raw bytes of one ontology record file. The graph
// build fetches every configured source and parses them in listed order,
// so later sources override earlier ones on duplicate ids.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string
	// Fetch reads the full file content.
	Fetch(ctx context.Context) ([]byte, error)
}

// FileSource reads a record file from the local filesystem.
type FileSource struct {
	Path string
}

// NewFileSource creates a filesystem-backed record source.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Name returns the file path.
func (s *FileSource) Name() string {
	return s.Path
}

// Fetch reads the file content. No caching: a reload must observe the
// file as it is on disk at that moment.
func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	content, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file %s: %w", s.Path, err)
	}
	return content, nil
}

// FetchAll fetches every source concurrently and returns the contents in
// the same order as the sources, keeping duplicate-id resolution
// deterministic. The first fetch error cancels the remaining fetches.
func FetchAll(ctx context.Context, sources []Source) ([][]byte, error) {
	contents := make([][]byte, len(sources))

	eg, gCtx := errgroup.WithContext(ctx)
	for i, src := range sources {
		eg.Go(func() error {
			content, err := src.Fetch(gCtx)
			if err != nil {
				return fmt.Errorf("source %s: %w", src.Name(), err)
			}
			contents[i] = content
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return contents, nil
}
