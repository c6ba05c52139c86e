package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"ontox/pkg/ontology"
)

// Column headers recognized in ontology record files, matched
// case-insensitively after trimming.
const (
	HeaderID      = "Class ID"
	HeaderLabel   = "Preferred Label"
	HeaderParents = "Parents"
)

// ParentDelimiter separates parent ids inside the Parents field.
const ParentDelimiter = "|"

// RowError describes a single rejected row. Malformed rows are reported
// and skipped; they never abort the overall load.
type RowError struct {
	Line   int
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Line, e.Reason)
}

// ParseRecords parses CSV content into normalized ontology records. The
// first row must be a header naming the id, label, and (optionally)
// parents columns. Rows with a missing id or label are collected as
// RowErrors and skipped. Parent tokens are trimmed and empty tokens
// dropped, so "A | |B" yields exactly [A B].
func ParseRecords(content []byte) ([]ontology.Record, []RowError, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("record file is empty")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	idCol, labelCol, parentsCol := -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case strings.ToLower(HeaderID):
			idCol = i
		case strings.ToLower(HeaderLabel):
			labelCol = i
		case strings.ToLower(HeaderParents):
			parentsCol = i
		}
	}
	if idCol == -1 || labelCol == -1 {
		return nil, nil, fmt.Errorf(
			"record file must have %q and %q columns, got %v",
			HeaderID, HeaderLabel, header,
		)
	}

	var records []ontology.Record
	var rowErrs []RowError

	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Reason: err.Error()})
			continue
		}

		id := fieldAt(row, idCol)
		label := fieldAt(row, labelCol)
		if id == "" {
			rowErrs = append(rowErrs, RowError{Line: line, Reason: "missing " + HeaderID})
			continue
		}
		if label == "" {
			rowErrs = append(rowErrs, RowError{Line: line, Reason: "missing " + HeaderLabel})
			continue
		}

		records = append(records, ontology.Record{
			ID:        id,
			Label:     label,
			ParentIDs: splitParents(fieldAt(row, parentsCol)),
		})
	}

	return records, rowErrs, nil
}

func fieldAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func splitParents(field string) []string {
	if field == "" {
		return nil
	}
	var parents []string
	for _, token := range strings.Split(field, ParentDelimiter) {
		token = strings.TrimSpace(token)
		if token != "" {
			parents = append(parents, token)
		}
	}
	return parents
}
