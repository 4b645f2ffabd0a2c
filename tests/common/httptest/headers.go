//go:build unit || e2e

package httptest

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertPNG checks a binary image response such as a reservation ticket.
func AssertPNG(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	AssertHeaders(t, w, map[string]string{"Content-Type": "image/png"})
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), pngSignature), "body is not a PNG image")
}
