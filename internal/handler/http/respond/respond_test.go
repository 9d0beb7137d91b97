package respond

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		data     any
		wantCode int
		wantBody string
	}{
		{name: "map", code: http.StatusOK, data: map[string]int{"totalPages": 3}, wantCode: http.StatusOK, wantBody: `{"totalPages":3}` + "\n"},
		{name: "struct", code: http.StatusCreated, data: struct {
			ID int64 `json:"id"`
		}{ID: 123}, wantCode: http.StatusCreated, wantBody: `{"id":123}` + "\n"},
		{name: "bare array", code: http.StatusOK, data: []string{"a"}, wantCode: http.StatusOK, wantBody: `["a"]` + "\n"},
		{name: "unencodable", code: http.StatusOK, data: map[string]any{"f": func() {}}, wantCode: http.StatusInternalServerError, wantBody: `{"error":"internal error"}` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			JSON(w, tt.code, tt.data)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, w.Body.String())
			assert.Equal(t, len(tt.wantBody), int(w.Result().ContentLength))
		})
	}
}

func TestJSON_Nil(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Empty(t, w.Header().Get("Content-Type"))
}

func TestErrorShapes(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, http.StatusNotFound, "vendedor 9 no existe")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"vendedor 9 no existe"}`, w.Body.String())

	w = httptest.NewRecorder()
	Message(w, http.StatusBadRequest, "limit inválido")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"limit inválido"}`, w.Body.String())
}
