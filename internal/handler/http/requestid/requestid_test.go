package requestid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	assert.Equal(t, "abc-123", FromContext(WithRequestID(context.Background(), "abc-123")))
	assert.Empty(t, FromContext(context.Background()))
}

func TestEnsure(t *testing.T) {
	t.Run("keeps existing ID", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "existing")

		got, id := Ensure(ctx)

		assert.Equal(t, "existing", id)
		assert.Equal(t, ctx, got)
	})

	t.Run("assigns a UUID", func(t *testing.T) {
		ctx, id := Ensure(context.Background())

		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, FromContext(ctx))

		_, other := Ensure(context.Background())
		assert.NotEqual(t, id, other)
	})
}

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "caller ID", incoming: "from-client", keep: true},
		{name: "missing", incoming: ""},
		{name: "contains space", incoming: "two words"},
		{name: "control character", incoming: "id\x07"},
		{name: "too long", incoming: strings.Repeat("a", maxLen+1)},
		{name: "at the limit", incoming: strings.Repeat("a", maxLen), keep: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = FromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/vendedores", nil)
			if tt.incoming != "" {
				req.Header.Set(Header, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, seen, rec.Header().Get(Header))
			if tt.keep {
				assert.Equal(t, tt.incoming, seen)
				return
			}
			_, err := uuid.Parse(seen)
			assert.NoError(t, err)
		})
	}
}
