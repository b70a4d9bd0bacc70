// Package api serves generated datasets over HTTP for quick inspection.
package api

import (
	"encoding/csv"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"novagen/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// previewRows caps how many rows a dataset preview returns.
const previewRows = 50

// Handler contains HTTP handlers
type Handler struct {
	dataDir string
}

// NewHandler creates a preview handler rooted at the given output directory.
func NewHandler(dataDir string) *Handler {
	return &Handler{dataDir: dataDir}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/datasets", h.listDatasets)
		v1.GET("/datasets/:name", h.previewDataset)
		v1.GET("/datasets/:name/download", h.downloadDataset)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// listDatasets returns the artifacts present in the output directory.
func (h *Handler) listDatasets(c *gin.Context) {
	entries, err := os.ReadDir(h.dataDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to read output directory",
		})
		return
	}

	datasets := make([]gin.H, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		datasets = append(datasets, gin.H{
			"name":       entry.Name(),
			"size_bytes": info.Size(),
			"modified":   info.ModTime().UTC(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"datasets": datasets})
}

// previewDataset returns the first rows of a CSV dataset, or the raw body
// for JSON and text artifacts.
func (h *Handler) previewDataset(c *gin.Context) {
	path, ok := h.resolve(c)
	if !ok {
		return
	}

	if filepath.Ext(path) != ".csv" {
		c.File(path)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
		return
	}
	defer f.Close()

	r := csv.NewReader(f)
	headers, err := r.Read()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read dataset"})
		return
	}

	rows := make([][]string, 0, previewRows)
	for len(rows) < previewRows {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read dataset"})
			return
		}
		rows = append(rows, row)
	}

	c.JSON(http.StatusOK, gin.H{
		"headers": headers,
		"rows":    rows,
	})
}

// downloadDataset streams the raw file.
func (h *Handler) downloadDataset(c *gin.Context) {
	path, ok := h.resolve(c)
	if !ok {
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}

// resolve maps the :name parameter to a file inside the output directory and
// rejects anything that escapes it.
func (h *Handler) resolve(c *gin.Context) (string, bool) {
	name := filepath.Base(c.Param("name"))
	path := filepath.Join(h.dataDir, name)

	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
		return "", false
	}
	return path, true
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
