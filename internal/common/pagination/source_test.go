package pagination_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"ventas-admin/internal/common/pagination"
)

func TestSource_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want pagination.Source
	}{
		{
			name: "camelCase",
			body: `{"totalPages": 4, "page": 1, "limit": 10}`,
			want: pagination.Source{TotalPages: intp(4), Page: intp(1), Limit: intp(10)},
		},
		{
			name: "snake_case",
			body: `{"total_pages": 3, "total": 27}`,
			want: pagination.Source{TotalPagesSnake: intp(3), Total: int64p(27)},
		},
		{
			name: "total only",
			body: `{"total": 95, "limit": 10}`,
			want: pagination.Source{Total: int64p(95), Limit: intp(10)},
		},
		{
			name: "string values are not numbers",
			body: `{"totalPages": "4", "total": "95", "page": 2}`,
			want: pagination.Source{Page: intp(2)},
		},
		{
			name: "null and bool values are absent",
			body: `{"totalPages": null, "total_pages": true, "total": 12}`,
			want: pagination.Source{Total: int64p(12)},
		},
		{
			name: "integral float",
			body: `{"totalPages": 3.0}`,
			want: pagination.Source{TotalPages: intp(3)},
		},
		{
			name: "fractional value truncated",
			body: `{"total": 12.9}`,
			want: pagination.Source{Total: int64p(12)},
		},
		{
			name: "nested pagination object",
			body: `{"data": [], "pagination": {"total": 40, "page": 2, "limit": 20, "total_pages": 2}}`,
			want: pagination.Source{TotalPagesSnake: intp(2), Total: int64p(40), Page: intp(2), Limit: intp(20)},
		},
		{
			name: "nested meta object",
			body: `{"data": [], "meta": {"totalPages": 6}}`,
			want: pagination.Source{TotalPages: intp(6)},
		},
		{
			name: "pagination preferred over meta",
			body: `{"pagination": {"totalPages": 2}, "meta": {"totalPages": 9}}`,
			want: pagination.Source{TotalPages: intp(2)},
		},
		{
			name: "top level wins over nested",
			body: `{"total": 5, "pagination": {"total": 50}}`,
			want: pagination.Source{Total: int64p(5)},
		},
		{
			name: "nested envelope that is not an object",
			body: `{"pagination": "none", "meta": [1, 2]}`,
			want: pagination.Source{},
		},
		{
			name: "array body",
			body: `[1, 2, 3]`,
			want: pagination.Source{},
		},
		{
			name: "empty object",
			body: `{}`,
			want: pagination.Source{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got pagination.Source
			if err := json.Unmarshal([]byte(tt.body), &got); err != nil {
				t.Fatalf("Unmarshal() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Unmarshal() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSource_MarshalJSON_OmitsAbsentFields(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(pagination.Source{TotalPagesSnake: intp(3), Page: intp(1)})
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if got, want := string(b), `{"page":1,"total_pages":3}`; got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}
