package export

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"reno/pkg/analytics"
)

func sampleTable() Table {
	return Table{
		Title:   "Expenses",
		Headers: []string{"Title", "Category", "Amount"},
		Rows: [][]any{
			{"Tiles", "materials", analytics.NewMoney(1200.5)},
			{"Labour", "", analytics.Money{}},
		},
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"xlsx": XLSX, "YML": YAML, ".json": JSON} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("csv"); err == nil {
		t.Error("csv should be rejected")
	}
	if f, ok := FormatFromPath("/tmp/out.yaml"); !ok || f != YAML {
		t.Errorf("FormatFromPath = %q, %v", f, ok)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := sampleTable().Write(&buf, JSON); err != nil {
		t.Fatal(err)
	}

	var rows []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0]["title"] != "Tiles" || rows[0]["amount"] != 1200.5 {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1]["amount"] != nil {
		t.Errorf("missing amount should be null, got %v", rows[1]["amount"])
	}
}

func TestWriteYAMLKeepsColumnOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := sampleTable().Write(&buf, YAML); err != nil {
		t.Fatal(err)
	}

	want := "- title: Tiles\n  category: materials\n  amount: 1200.5\n"
	if !bytes.HasPrefix(buf.Bytes(), []byte(want)) {
		t.Errorf("yaml output:\n%s", buf.String())
	}

	var rows []map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[1]["title"] != "Labour" {
		t.Errorf("decoded = %v", rows)
	}
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.xlsx")
	if err := WriteFile(path, XLSX, sampleTable()); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows("Expenses")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0][0] != "Title" || rows[1][0] != "Tiles" || rows[1][2] != "1200.5" {
		t.Errorf("rows = %v", rows)
	}
}

func TestWriteXLSXTooManyColumns(t *testing.T) {
	row := make([]any, excelize.MaxColumns+1)
	for i := range row {
		row[i] = i
	}
	table := Table{Title: "Wide", Headers: []string{"A"}, Rows: [][]any{row}}

	var buf bytes.Buffer
	if err := table.Write(&buf, XLSX); err == nil {
		t.Error("expected error for a row past the last column")
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes for a failed export", buf.Len())
	}
}

func TestSheetName(t *testing.T) {
	if got := sheetName("a/b:c"); got != "a-b-c" {
		t.Errorf("sheetName = %q", got)
	}
	if got := sheetName(""); got != "Sheet1" {
		t.Errorf("empty title = %q", got)
	}
}
