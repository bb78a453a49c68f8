// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// Import names one dataset file to import with explicit keys.
type Import struct {
	// Key is the entity type the file's rows belong to (e.g. "Order").
	Key string `json:"key"`

	// Path is the JSON file holding an array of row objects.
	Path string `json:"path"`
}

// Imports is a list of [Import] entries.
//
// It implements flag.Value (each -import flag appends one "key=path" entry)
// and encoding.TextUnmarshaler (a comma-separated list of "key=path"
// entries, used for the SEED_IMPORTS environment variable).
type Imports []Import

// String implements flag.Value.
func (i *Imports) String() string {
	if i == nil {
		return ""
	}

	parts := make([]string, 0, len(*i))
	for _, imp := range *i {
		parts = append(parts, imp.Key+"="+imp.Path)
	}

	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (i *Imports) Set(s string) error {
	imp, err := parseImport(s)
	if err != nil {
		return err
	}

	*i = append(*i, imp)
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Imports) UnmarshalText(text []byte) error {
	var parsed Imports
	for _, part := range strings.Split(string(text), ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		if err := parsed.Set(part); err != nil {
			return err
		}
	}

	*i = parsed
	return nil
}

func parseImport(s string) (Import, error) {
	key, path, ok := strings.Cut(strings.TrimSpace(s), "=")
	if !ok {
		return Import{}, fmt.Errorf("%w: need import in a form `key=path`, got %q", ErrInvalidSeedConfigs, s)
	}

	return Import{Key: strings.TrimSpace(key), Path: strings.TrimSpace(path)}, nil
}
