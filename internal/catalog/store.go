// Package catalog holds the read-only product catalog. It is loaded once at
// startup, either from a CSV file or from the built-in sample data, and never
// mutated afterwards, so lookups need no locking.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"techmart/internal/domain"

	"go.uber.org/zap"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// Store provides lookups over the immutable product catalog.
type Store struct {
	products []domain.Product
	byID     map[int]domain.Product
}

// NewStore creates a Store over the given products, preserving their order.
func NewStore(products []domain.Product) *Store {
	byID := make(map[int]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Store{products: products, byID: byID}
}

// Load reads the catalog CSV at path. A missing, unreadable or malformed file
// is not fatal: the built-in sample catalog is substituted and the problem is
// logged.
func Load(path string, logger *zap.Logger) *Store {
	products, err := readCSV(path)
	if err != nil {
		logger.Warn("Falling back to built-in sample catalog",
			zap.String("path", path),
			zap.Error(err),
		)
		return NewStore(SampleProducts())
	}

	logger.Info("Catalog loaded",
		zap.String("path", path),
		zap.Int("products", len(products)),
	)
	return NewStore(products)
}

// All returns every product in catalog order.
func (s *Store) All() []domain.Product {
	return s.products
}

// Len returns the number of products in the catalog.
func (s *Store) Len() int {
	return len(s.products)
}

// FindByID returns the product with the given id or ErrProductNotFound.
func (s *Store) FindByID(id int) (domain.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	return p, nil
}

// Search returns every product where the query is a case-insensitive
// substring of the name, brand, category or specifications, in catalog
// order. There is no ranking, tokenization or fuzzy matching.
//
// An empty or whitespace-only query matches nothing: a bare substring test
// against "" would match every row, which is never what a blank message
// means.
func (s *Store) Search(query string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var results []domain.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			strings.Contains(strings.ToLower(p.Specs), q) {
			results = append(results, p)
		}
	}
	return results
}

// csv column order: id, name, brand, category, price, stock_quantity,
// specifications, image_url
const csvColumns = 8

func readCSV(path string) ([]domain.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = csvColumns

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}
	if strings.TrimSpace(strings.ToLower(header[0])) != "id" {
		return nil, fmt.Errorf("unexpected catalog header: %q", header[0])
	}

	var products []domain.Product
	seen := make(map[int]bool)

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog line %d: %w", line, err)
		}

		p, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog line %d: %w", line, err)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate product id %d at line %d", p.ID, line)
		}
		seen[p.ID] = true
		products = append(products, p)
	}

	if len(products) == 0 {
		return nil, errors.New("catalog file contains no products")
	}
	return products, nil
}

func parseRecord(record []string) (domain.Product, error) {
	id, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil || id <= 0 {
		return domain.Product{}, fmt.Errorf("id must be a positive integer, got %q", record[0])
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
	if err != nil || price < 0 {
		return domain.Product{}, fmt.Errorf("price must be a non-negative number, got %q", record[4])
	}

	stock, err := strconv.Atoi(strings.TrimSpace(record[5]))
	if err != nil || stock < 0 {
		return domain.Product{}, fmt.Errorf("stock_quantity must be a non-negative integer, got %q", record[5])
	}

	return domain.Product{
		ID:       id,
		Name:     record[1],
		Brand:    record[2],
		Category: record[3],
		Price:    price,
		Stock:    stock,
		Specs:    record[6],
		ImageURL: record[7],
	}, nil
}
