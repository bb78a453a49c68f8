// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"slices"
	"sync"
)

// TableDescriptor maps a logical entity type to its physical table.
type TableDescriptor struct {
	// Schema qualifies the table ("public", "dbo", ...).
	Schema string

	// Name is the table name.
	Name string

	// KeyColumn is the identity column whose values are generated by the
	// database unless explicit keys are being inserted.
	KeyColumn string

	// Columns lists the insertable columns, KeyColumn included.
	Columns []string
}

// String returns the unquoted "schema.table" form used in logs.
func (d TableDescriptor) String() string {
	if d.Schema == "" {
		return d.Name
	}

	return d.Schema + "." + d.Name
}

func (d TableDescriptor) validate() error {
	if d.Name == "" || d.KeyColumn == "" || len(d.Columns) == 0 {
		return fmt.Errorf("%w: table, key column and columns are required", ErrInvalidDescriptor)
	}

	seen := make(map[string]struct{}, len(d.Columns))
	for _, c := range d.Columns {
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: column %q listed twice", ErrInvalidDescriptor, c)
		}
		seen[c] = struct{}{}
	}

	if _, ok := seen[d.KeyColumn]; !ok {
		return fmt.Errorf("%w: key column %q is not among columns", ErrInvalidDescriptor, d.KeyColumn)
	}

	return nil
}

// Registry is the static entity key to table mapping built at start-up.
// Lookups return copies, so callers can never alter a registered descriptor.
type Registry struct {
	mu     sync.RWMutex
	tables map[string]TableDescriptor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[string]TableDescriptor)}
}

// Register maps key to desc. A key can be registered only once.
func (r *Registry) Register(key string, desc TableDescriptor) error {
	if err := desc.validate(); err != nil {
		return fmt.Errorf("register %q: %w", key, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tables[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateMapping, key)
	}

	desc.Columns = slices.Clone(desc.Columns)
	r.tables[key] = desc
	return nil
}

// MustRegister is like Register but panics on error. It is meant for
// start-up wiring of compile-time catalogs.
func (r *Registry) MustRegister(key string, desc TableDescriptor) {
	if err := r.Register(key, desc); err != nil {
		panic(err)
	}
}

// Lookup returns the descriptor mapped to key, or an [*UnmappedTypeError].
func (r *Registry) Lookup(key string) (TableDescriptor, error) {
	r.mu.RLock()
	desc, ok := r.tables[key]
	r.mu.RUnlock()

	if !ok {
		return TableDescriptor{}, &UnmappedTypeError{Key: key}
	}

	desc.Columns = slices.Clone(desc.Columns)
	return desc, nil
}

// Keys returns the registered entity keys in lexical order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.tables))
	for k := range r.tables {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
