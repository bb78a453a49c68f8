// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered UUIDv7 strings used to correlate the
// log lines of one identity-insert run.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

// NewUUIDGenerator returns a generator backed by uuid.NewV7.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

// Generate returns a UUIDv7, or a random UUIDv4 when the clock-based
// generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := g.newV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
