package pathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordID(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		collection string
		wantID     int64
		wantErr    bool
	}{
		{name: "seller", path: "/vendedores/123", collection: "vendedores", wantID: 123},
		{name: "hyphenated collection", path: "/planes-venta/8", collection: "planes-venta", wantID: 8},
		{name: "trailing slash", path: "/productos/456/", collection: "productos", wantID: 456},
		{name: "max int64", path: "/logistica/9223372036854775807", collection: "logistica", wantID: math.MaxInt64},
		{name: "not a number", path: "/vendedores/abc", collection: "vendedores", wantErr: true},
		{name: "zero", path: "/vendedores/0", collection: "vendedores", wantErr: true},
		{name: "negative", path: "/vendedores/-1", collection: "vendedores", wantErr: true},
		{name: "missing", path: "/vendedores/", collection: "vendedores", wantErr: true},
		{name: "nested", path: "/vendedores/7/planes", collection: "vendedores", wantErr: true},
		{name: "other collection", path: "/productos/7", collection: "vendedores", wantErr: true},
		{name: "overflow", path: "/vendedores/9223372036854775808", collection: "vendedores", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := RecordID(tt.path, tt.collection)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidID)
				assert.Zero(t, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
