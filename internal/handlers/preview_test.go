package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getPreview(t *testing.T, query string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewPreviewHandler(testLimits())
	req := httptest.NewRequest(http.MethodGet, "/preview?"+query, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestPreviewHandler_RendersSwatches(t *testing.T) {
	rec := getPreview(t, "algorithm=equidistant&count=6")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, "Palette preview")
	assert.Contains(t, body, "equidistant")
	assert.Equal(t, 6, strings.Count(body, "<div"))
}

func TestPreviewHandler_SanitizesTitle(t *testing.T) {
	title := url.QueryEscape(`<script>alert(1)</script>Team colors`)
	rec := getPreview(t, "algorithm=golden_ratio&count=3&title="+title)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.NotContains(t, body, "<script>")
	assert.NotContains(t, body, "alert(1)")
	assert.Contains(t, body, "Team colors")
}

func TestPreviewHandler_RejectsBadCount(t *testing.T) {
	for _, query := range []string{"count=0", "count=-2", "count=17"} {
		rec := getPreview(t, query)
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestPreviewHandler_UnknownAlgorithm(t *testing.T) {
	rec := getPreview(t, "algorithm=perlin")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
