package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	csvBody := "product_id,product_name\nPRIME-24,Nova Prime 24\nLITE-23,Nova Lite 23\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dim_products.csv"), []byte(csvBody), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "product_reviews.json"), []byte("[]"), 0o644))

	router := gin.New()
	NewHandler(dir).SetupRoutes(router)
	return router, dir
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestListDatasets(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/datasets", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Datasets []struct {
			Name      string `json:"name"`
			SizeBytes int64  `json:"size_bytes"`
		} `json:"datasets"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Datasets, 2)

	names := []string{body.Datasets[0].Name, body.Datasets[1].Name}
	assert.Contains(t, names, "dim_products.csv")
	assert.Contains(t, names, "product_reviews.json")
}

func TestPreviewCSVDataset(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/datasets/dim_products.csv", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Headers []string   `json:"headers"`
		Rows    [][]string `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"product_id", "product_name"}, body.Headers)
	require.Len(t, body.Rows, 2)
	assert.Equal(t, "PRIME-24", body.Rows[0][0])
}

func TestPreviewUnknownDataset(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/datasets/nope.csv", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownloadDataset(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/datasets/product_reviews.json/download", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "product_reviews.json")
}
