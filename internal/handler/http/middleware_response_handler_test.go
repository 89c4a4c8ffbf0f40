package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_CapturesStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusTeapot)
	n, err := w.Write([]byte("short and stout"))

	assert.NoError(t, err)
	assert.Equal(t, 15, n)
	assert.Equal(t, http.StatusTeapot, w.status)
	assert.Equal(t, 15, w.size)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	// Write without an explicit WriteHeader defaults to 200
	_, err := w.Write([]byte("ok"))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 2, w.size)
}

func TestResponseWriter_AccumulatesSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, _ = w.Write([]byte("one"))
	_, _ = w.Write([]byte("two"))

	assert.Equal(t, 6, w.size)
}
