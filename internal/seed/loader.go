// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package seed reads catalog datasets from JSON files.
//
// A data file is a JSON array of objects. Object fields are matched to the
// columns registered for the dataset's entity key; a column absent from an
// object is inserted as NULL, the key column is mandatory. Integers decode
// to int64, other numbers keep their decimal text so no precision is lost
// on money columns.
package seed

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/ritchie200/ecommerce-angular-core/internal/store"
	"github.com/ritchie200/ecommerce-angular-core/models"
)

//go:embed data/*.json
var defaultData embed.FS

var (
	ErrMissingKey       = errors.New("row has no key value")
	ErrUnknownColumn    = errors.New("field is not a column of the table")
	ErrUnsupportedValue = errors.New("nested JSON values are not supported")
	ErrNoDatasets       = errors.New("no dataset files found")
)

// CatalogFiles maps catalog entity keys to their data file names.
var CatalogFiles = map[string]string{
	store.EntityProductBrand:   "brands.json",
	store.EntityProductType:    "types.json",
	store.EntityDeliveryMethod: "delivery.json",
	store.EntityProduct:        "products.json",
}

// Loader decodes data files into datasets shaped after the registry.
type Loader struct {
	registry *store.Registry
}

func NewLoader(registry *store.Registry) *Loader {
	return &Loader{registry: registry}
}

// LoadDefaults returns the catalog embedded in the binary in seed order.
func (l *Loader) LoadDefaults() ([]models.Dataset, error) {
	data, err := fs.Sub(defaultData, "data")
	if err != nil {
		return nil, err
	}

	return l.loadCatalog(data, "embedded:")
}

// LoadDir reads the catalog files found in dir in seed order. Files that
// are absent are skipped, at least one must exist. An empty dir means the
// embedded catalog.
func (l *Loader) LoadDir(dir string) ([]models.Dataset, error) {
	if dir == "" {
		return l.LoadDefaults()
	}

	return l.loadCatalog(os.DirFS(dir), dir+string(filepath.Separator))
}

// LoadFile reads one data file for entity key.
func (l *Loader) LoadFile(key, path string) (models.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer f.Close()

	return l.decode(f, key, path)
}

func (l *Loader) loadCatalog(fsys fs.FS, prefix string) ([]models.Dataset, error) {
	datasets := make([]models.Dataset, 0, len(store.CatalogSeedOrder))
	for _, key := range store.CatalogSeedOrder {
		name := CatalogFiles[key]

		f, err := fsys.Open(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("error opening %s%s: %w", prefix, name, err)
		}

		ds, err := l.decode(f, key, prefix+name)
		f.Close()
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, ds)
	}

	if len(datasets) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDatasets, prefix)
	}

	return datasets, nil
}

func (l *Loader) decode(r io.Reader, key, source string) (models.Dataset, error) {
	desc, err := l.registry.Lookup(key)
	if err != nil {
		return models.Dataset{}, err
	}

	dec := json.NewDecoder(r)
	dec.UseNumber()

	var objects []map[string]any
	if err = dec.Decode(&objects); err != nil {
		return models.Dataset{}, fmt.Errorf("error decoding %s: %w", source, err)
	}

	ds := models.Dataset{
		Key:       key,
		KeyColumn: desc.KeyColumn,
		Columns:   desc.Columns,
		Rows:      make([][]any, 0, len(objects)),
		Source:    source,
	}

	for i, obj := range objects {
		for field := range obj {
			if !slices.Contains(desc.Columns, field) {
				return models.Dataset{}, fmt.Errorf("%w: %s row %d field %q (table %s)", ErrUnknownColumn, source, i, field, desc)
			}
		}

		row := make([]any, len(desc.Columns))
		for j, col := range desc.Columns {
			raw, ok := obj[col]
			if col == desc.KeyColumn && (!ok || raw == nil) {
				return models.Dataset{}, fmt.Errorf("%w: %s row %d column %q", ErrMissingKey, source, i, col)
			}

			if row[j], err = convertValue(raw); err != nil {
				return models.Dataset{}, fmt.Errorf("%s row %d column %q: %w", source, i, col, err)
			}
		}
		ds.Rows = append(ds.Rows, row)
	}

	return ds, nil
}

func convertValue(v any) (any, error) {
	switch value := v.(type) {
	case nil, string, bool:
		return value, nil
	case json.Number:
		if n, err := value.Int64(); err == nil {
			return n, nil
		}
		return value.String(), nil
	default:
		return nil, ErrUnsupportedValue
	}
}
