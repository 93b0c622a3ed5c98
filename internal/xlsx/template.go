// Package xlsx is the tabular sink for extraction output: it reads the
// header contract from a spreadsheet template and appends one row per
// processed email, persisting the output workbook after every append.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Template wraps an output workbook seeded from an external template file.
// The header row is read once at open; appends never reorder or touch
// existing rows, and each append is flushed to the output path so a crashed
// run leaves every completed row on disk.
type Template struct {
	file    *excelize.File
	sheet   string
	headers []string
	nextRow int
	outPath string
}

// Open loads a template workbook, reads its header row from the active
// sheet, and writes the initial output copy. The template must have at
// least a header row.
func Open(templatePath, outputPath string) (*Template, error) {
	f, err := excelize.OpenFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open template %s: %w", templatePath, err)
	}

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if sheet == "" {
		f.Close()
		return nil, fmt.Errorf("template %s has no active sheet", templatePath)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read template rows: %w", err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		f.Close()
		return nil, fmt.Errorf("template %s has no header row", templatePath)
	}

	headers := make([]string, len(rows[0]))
	copy(headers, rows[0])

	if err := f.SaveAs(outputPath); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write output %s: %w", outputPath, err)
	}

	return &Template{
		file:    f,
		sheet:   sheet,
		headers: headers,
		nextRow: len(rows) + 1,
		outPath: outputPath,
	}, nil
}

// Headers returns the template's ordered header labels. Callers must not
// mutate the returned slice.
func (t *Template) Headers() []string {
	return t.headers
}

// AppendRow adds one row after the last used row and persists the output
// workbook. Prior rows are untouched.
func (t *Template) AppendRow(values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, t.nextRow)
	if err != nil {
		return fmt.Errorf("failed to compute cell for row %d: %w", t.nextRow, err)
	}

	row := make([]any, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := t.file.SetSheetRow(t.sheet, cell, &row); err != nil {
		return fmt.Errorf("failed to append row %d: %w", t.nextRow, err)
	}
	if err := t.file.SaveAs(t.outPath); err != nil {
		return fmt.Errorf("failed to persist output %s: %w", t.outPath, err)
	}
	t.nextRow++
	return nil
}

// OutputPath returns the destination the workbook persists to.
func (t *Template) OutputPath() string {
	return t.outPath
}

// Close releases the underlying workbook.
func (t *Template) Close() error {
	return t.file.Close()
}
