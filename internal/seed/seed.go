// Package seed loads product fixtures from CSV or YAML files into a repository.
package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
	"github.com/rogerio-castellano/inventory-dashboard/internal/repo"
	"gopkg.in/yaml.v3"
)

type Row struct {
	Name       string   `yaml:"name"`
	SKU        string   `yaml:"sku"`
	StockLevel int      `yaml:"stock_level"`
	Category   *string  `yaml:"category"`
	Price      *float64 `yaml:"price"`
	Cost       *float64 `yaml:"cost"`

	// parseErr holds the first cell that could not be converted.
	parseErr error
}

type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type Result struct {
	Imported int        `json:"imported"`
	Errors   []RowError `json:"errors"`
}

type fixture struct {
	Products []Row `yaml:"products"`
}

// ParseFile picks the parser from the file extension.
func ParseFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ParseCSV(f)
	case ".yaml", ".yml":
		return ParseYAML(f)
	default:
		return nil, fmt.Errorf("unsupported fixture format %q", filepath.Ext(path))
	}
}

// ParseCSV reads rows with a header line. Columns are matched by name, in any
// order: name, sku, stock_level, category, price, cost.
func ParseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header: %w", err)
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}

		row := Row{
			Name:     field(record, "name"),
			SKU:      field(record, "sku"),
			Category: optionalString(field(record, "category")),
		}
		if row.StockLevel, err = parseInt(field(record, "stock_level")); err != nil {
			row.parseErr = errors.New("invalid stock_level")
		}
		if row.Price, err = optionalFloat(field(record, "price")); err != nil && row.parseErr == nil {
			row.parseErr = errors.New("invalid price")
		}
		if row.Cost, err = optionalFloat(field(record, "cost")); err != nil && row.parseErr == nil {
			row.parseErr = errors.New("invalid cost")
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ParseYAML reads a document of the form `products: [{name: ..., sku: ...}]`.
func ParseYAML(r io.Reader) ([]Row, error) {
	var f fixture
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("invalid YAML fixture: %w", err)
	}
	return f.Products, nil
}

func validateRow(r Row) error {
	if r.parseErr != nil {
		return r.parseErr
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("missing name")
	}
	if strings.TrimSpace(r.SKU) == "" {
		return errors.New("missing sku")
	}
	return nil
}

// Import creates one product per valid row. Invalid rows are reported and skipped;
// a storage failure stops the import.
func Import(ctx context.Context, products repo.ProductRepository, rows []Row) (Result, error) {
	result := Result{Errors: []RowError{}}
	for i, row := range rows {
		if err := validateRow(row); err != nil {
			result.Errors = append(result.Errors, RowError{Row: i + 1, Message: err.Error()})
			continue
		}

		_, err := products.Create(ctx, models.Product{
			Name:       row.Name,
			SKU:        row.SKU,
			StockLevel: row.StockLevel,
			Category:   row.Category,
			Price:      row.Price,
			Cost:       row.Cost,
		})
		if err != nil {
			return result, fmt.Errorf("failed to create product from row %d: %w", i+1, err)
		}
		result.Imported++
	}
	return result, nil
}

func parseInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
