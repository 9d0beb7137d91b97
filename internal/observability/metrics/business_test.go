package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		resource  string
		status    int
		wantLabel string
	}{
		{name: "ok", method: "GET", resource: "vendedores", status: 200, wantLabel: "200"},
		{name: "server error", method: "GET", resource: "productos", status: 503, wantLabel: "503"},
		{name: "transport failure", method: "POST", resource: "logistica", status: 0, wantLabel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := APIRequestsTotal.WithLabelValues(tt.method, tt.resource, tt.wantLabel)
			before := testutil.ToFloat64(counter)

			RecordAPIRequest(tt.method, tt.resource, tt.status, 15*time.Millisecond)

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestRecordPageFetch(t *testing.T) {
	for _, outcome := range []string{PageOutcomeSuccess, PageOutcomeError, PageOutcomeSuperseded} {
		t.Run(outcome, func(t *testing.T) {
			counter := PageFetchesTotal.WithLabelValues("proveedores", outcome)
			before := testutil.ToFloat64(counter)

			RecordPageFetch("proveedores", outcome, 40*time.Millisecond)

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestRecordExportPages(t *testing.T) {
	counter := ExportPagesTotal.WithLabelValues("planes-venta")
	before := testutil.ToFloat64(counter)

	RecordExportPages("planes-venta", 4)

	assert.Equal(t, before+4, testutil.ToFloat64(counter))
}

func TestRecordCacheLookup(t *testing.T) {
	for _, result := range []string{CacheHit, CacheMiss, CacheError} {
		t.Run(result, func(t *testing.T) {
			counter := CacheLookupsTotal.WithLabelValues(result)
			before := testutil.ToFloat64(counter)

			RecordCacheLookup(result)

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}
