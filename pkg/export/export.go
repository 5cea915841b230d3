// Package export writes fetched collections to xlsx, yaml or json files.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"reno/pkg/analytics"
)

type Format string

const (
	XLSX Format = "xlsx"
	YAML Format = "yaml"
	JSON Format = "json"
)

var Formats = []string{string(XLSX), string(YAML), string(JSON)}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "xlsx":
		return XLSX, nil
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	}
	return "", fmt.Errorf("unknown export format %q (want %s)", s, strings.Join(Formats, ", "))
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, bool) {
	f, err := ParseFormat(filepath.Ext(path))
	return f, err == nil
}

// Table is one exported collection. Rows hold one cell per header.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]any
}

func (t Table) Write(w io.Writer, format Format) error {
	switch format {
	case XLSX:
		return t.writeXLSX(w)
	case YAML:
		return t.writeYAML(w)
	case JSON:
		return t.writeJSON(w)
	}
	return fmt.Errorf("unknown export format %q", format)
}

func WriteFile(path string, format Format, t Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := t.Write(f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (t Table) writeXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(t.Title)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	for i, h := range t.Headers {
		if err := setCell(f, sheet, i+1, 1, h); err != nil {
			return err
		}
	}
	if len(t.Headers) > 0 {
		last, err := excelize.CoordinatesToCellName(len(t.Headers), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
			return err
		}
	}

	for r, row := range t.Rows {
		for c, v := range row {
			if err := setCell(f, sheet, c+1, r+2, cellValue(v)); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

func setCell(f *excelize.File, sheet string, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell %d,%d: %w", col, row, err)
	}
	return f.SetCellValue(sheet, cell, v)
}

func (t Table) writeYAML(w io.Writer) error {
	doc := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range t.Rows {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for i, h := range t.Headers {
			var v any
			if i < len(row) {
				v = cellValue(row[i])
			}
			val := &yaml.Node{}
			if err := val.Encode(v); err != nil {
				return err
			}
			m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key(h)}, val)
		}
		doc.Content = append(doc.Content, m)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func (t Table) writeJSON(w io.Writer) error {
	out := make([]map[string]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		m := make(map[string]any, len(t.Headers))
		for i, h := range t.Headers {
			var v any
			if i < len(row) {
				v = cellValue(row[i])
			}
			m[key(h)] = v
		}
		out = append(out, m)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// cellValue flattens money and time values into plain scalars.
func cellValue(v any) any {
	switch x := v.(type) {
	case analytics.Money:
		if !x.Valid {
			return nil
		}
		f, _ := x.Amount.Float64()
		return f
	case decimal.Decimal:
		f, _ := x.Float64()
		return f
	case time.Time:
		if x.IsZero() {
			return nil
		}
		return x.Format(time.RFC3339)
	case fmt.Stringer:
		return x.String()
	}
	return v
}

// key turns a column header into a snake_case field name.
func key(header string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(header)), " ", "_")
}

func sheetName(title string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '-'
		}
		return r
	}, strings.TrimSpace(title))
	if name == "" {
		return "Sheet1"
	}
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}
