// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRun_CountsByOutcome(t *testing.T) {
	m := NewIdentityInsertMetrics()

	m.ObserveRun("public.orders", "committed", 20*time.Millisecond)
	m.ObserveRun("public.orders", "committed", 30*time.Millisecond)
	m.ObserveRun("public.orders", "rolled_back", 5*time.Millisecond)
	m.ObserveRun("Invoice", "unmapped", 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.runs.WithLabelValues("public.orders", "committed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues("public.orders", "rolled_back")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues("Invoice", "unmapped")))

	// unmapped runs are not timed
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestGatherer_ExposesMetrics(t *testing.T) {
	m := NewIdentityInsertMetrics()
	m.ObserveRun("dbo.Orders", "committed", time.Second)

	families, err := m.Gatherer().Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"seeder_identity_insert_runs_total",
		"seeder_identity_insert_duration_seconds",
	}, names)
}

func TestPush_SendsToPushgateway(t *testing.T) {
	var gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := NewIdentityInsertMetrics()
	m.ObserveRun("public.products", "committed", time.Millisecond)

	require.NoError(t, m.Push(context.Background(), srv.URL, "seeder"))
	assert.Equal(t, "/metrics/job/seeder", gotPath)
	assert.NotEmpty(t, gotBody)
}

func TestPush_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	m := NewIdentityInsertMetrics()
	err := m.Push(context.Background(), srv.URL, "seeder")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "error pushing metrics"))
}
