package http

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr, start: time.Now()}
}

// ---- WriteHeader ----

func TestResponseWriter_WriteHeader_SetsStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusCreated)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.True(t, w.wroteHeader)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestResponseWriter_WriteHeader_CalledTwice_IgnoresSecond(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError) // should be ignored

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestResponseWriter_WriteHeader_StampsResponseTime(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr, start: time.Now().Add(-25 * time.Millisecond)}

	w.WriteHeader(http.StatusOK)

	ms, err := strconv.Atoi(rr.Header().Get(HeaderResponseTime))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ms, 25)
}

// ---- Write ----

func TestResponseWriter_Write_ImplicitOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	n, err := w.Write([]byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, "hello", rr.Body.String())
}

func TestResponseWriter_Write_AccumulatesSize(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
		want   int
	}{
		{name: "no writes", chunks: nil, want: 0},
		{name: "single", chunks: []string{"abc"}, want: 3},
		{name: "multiple", chunks: []string{"ab", "cde", ""}, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newResponseWriter(httptest.NewRecorder())
			for _, c := range tt.chunks {
				_, _ = w.Write([]byte(c))
			}
			assert.Equal(t, tt.want, w.size)
		})
	}
}

func TestResponseWriter_StatusOrOK(t *testing.T) {
	w := newResponseWriter(httptest.NewRecorder())
	assert.Equal(t, http.StatusOK, w.statusOrOK())

	w.WriteHeader(http.StatusTeapot)
	assert.Equal(t, http.StatusTeapot, w.statusOrOK())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	assert.Same(t, rr, w.Unwrap())
}
