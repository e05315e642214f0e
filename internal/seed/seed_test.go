package seed

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rogerio-castellano/inventory-dashboard/internal/repo"
)

func TestParseCSV(t *testing.T) {
	csvData := `sku,name,stock_level,price,category,cost
M-1,Mouse,10,25.99,peripherals,12
K-1,Keyboard,5,,,
,Nameless SKU,1,1,,`

	rows, err := ParseCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	mouse := rows[0]
	if mouse.Name != "Mouse" || mouse.SKU != "M-1" || mouse.StockLevel != 10 {
		t.Errorf("unexpected row %+v", mouse)
	}
	if mouse.Price == nil || *mouse.Price != 25.99 {
		t.Errorf("expected price 25.99, got %v", mouse.Price)
	}
	if mouse.Category == nil || *mouse.Category != "peripherals" {
		t.Errorf("expected category peripherals, got %v", mouse.Category)
	}

	keyboard := rows[1]
	if keyboard.Price != nil || keyboard.Category != nil || keyboard.Cost != nil {
		t.Errorf("expected empty cells to be nil, got %+v", keyboard)
	}
}

func TestParseCSV_EmptyInput(t *testing.T) {
	if _, err := ParseCSV(strings.NewReader("")); err == nil {
		t.Error("expected an error for a missing header")
	}
}

func TestParseYAML(t *testing.T) {
	doc := `
products:
  - name: Drill
    sku: D-1
    stock_level: 3
    price: 89.5
  - name: Saw
    sku: S-1
`
	rows, err := ParseYAML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Price == nil || *rows[0].Price != 89.5 {
		t.Errorf("expected price 89.5, got %v", rows[0].Price)
	}
	if rows[1].StockLevel != 0 || rows[1].Price != nil {
		t.Errorf("expected defaults for Saw, got %+v", rows[1])
	}
}

func TestParseYAML_Invalid(t *testing.T) {
	if _, err := ParseYAML(strings.NewReader("products: [unterminated")); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestImport_SkipsInvalidRows(t *testing.T) {
	products := repo.NewInMemoryProductRepository()
	rows := []Row{
		{Name: "Mouse", SKU: "M-1", StockLevel: 10},
		{Name: "", SKU: "X-1"},
		{Name: "No SKU"},
		{Name: "Keyboard", SKU: "K-1", StockLevel: 5},
	}

	result, err := Import(context.Background(), products, rows)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if result.Imported != 2 {
		t.Errorf("expected 2 imported products, got %d", result.Imported)
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 row errors, got %v", result.Errors)
	}
	if result.Errors[0].Row != 2 || result.Errors[0].Message != "missing name" {
		t.Errorf("unexpected first error %+v", result.Errors[0])
	}
	if result.Errors[1].Row != 3 || result.Errors[1].Message != "missing sku" {
		t.Errorf("unexpected second error %+v", result.Errors[1])
	}

	all, _ := products.GetAll(context.Background())
	if len(all) != 2 {
		t.Errorf("expected 2 stored products, got %d", len(all))
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "products.csv")
	if err := os.WriteFile(csvPath, []byte("name,sku\nLamp,L-1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	rows, err := ParseFile(csvPath)
	if err != nil || len(rows) != 1 {
		t.Fatalf("expected 1 CSV row, got %v (err %v)", rows, err)
	}

	ymlPath := filepath.Join(dir, "products.yml")
	if err := os.WriteFile(ymlPath, []byte("products:\n  - {name: Lamp, sku: L-1}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	rows, err = ParseFile(ymlPath)
	if err != nil || len(rows) != 1 {
		t.Fatalf("expected 1 YAML row, got %v (err %v)", rows, err)
	}

	txtPath := filepath.Join(dir, "products.txt")
	if err := os.WriteFile(txtPath, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseFile(txtPath); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
}

func TestImport_ReportsUnparsableCells(t *testing.T) {
	csvData := `name,sku,stock_level,price,cost
Mouse,M-1,ten,1.5,
Keyboard,K-1,5,abc,
Cable,C-1,2,3,x
Lamp,L-1,4,9.99,`

	rows, err := ParseCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}

	products := repo.NewInMemoryProductRepository()
	result, err := Import(context.Background(), products, rows)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if result.Imported != 1 {
		t.Errorf("expected only the valid row to be imported, got %d", result.Imported)
	}

	want := []RowError{
		{Row: 1, Message: "invalid stock_level"},
		{Row: 2, Message: "invalid price"},
		{Row: 3, Message: "invalid cost"},
	}
	if len(result.Errors) != len(want) {
		t.Fatalf("expected %d row errors, got %v", len(want), result.Errors)
	}
	for i, w := range want {
		if result.Errors[i] != w {
			t.Errorf("error %d: expected %+v, got %+v", i, w, result.Errors[i])
		}
	}

	all, _ := products.GetAll(context.Background())
	if len(all) != 1 || all[0].SKU != "L-1" {
		t.Errorf("expected only L-1 to be stored, got %+v", all)
	}
}
