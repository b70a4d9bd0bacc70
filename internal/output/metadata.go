package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FieldDoc documents one column or attribute of a dataset.
type FieldDoc struct {
	Name        string
	Type        string
	Description string
}

// DatasetInfo is the per-dataset metadata rendered into the data dictionary.
type DatasetInfo struct {
	Name        string
	Filename    string
	Description string
	RecordCount int
	DateRange   string // optional
	Fields      []FieldDoc
}

// LogEntry is one line of the generation run log.
type LogEntry struct {
	Timestamp   time.Time
	Dataset     string
	RecordCount int
	DateRange   string // optional
	Status      string
}

// WriteDataDictionary renders a human-readable data dictionary for the run.
func WriteDataDictionary(dir string, datasets []DatasetInfo) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir %s: %w", dir, err)
	}

	var b strings.Builder
	b.WriteString("# Nova Data Generator - Data Dictionary\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	for _, ds := range datasets {
		fmt.Fprintf(&b, "## %s\n\n", ds.Name)
		fmt.Fprintf(&b, "**File**: `%s`\n\n", ds.Filename)
		fmt.Fprintf(&b, "**Description**: %s\n\n", ds.Description)
		fmt.Fprintf(&b, "**Record Count**: %d\n\n", ds.RecordCount)
		if ds.DateRange != "" {
			fmt.Fprintf(&b, "**Date Range**: %s\n\n", ds.DateRange)
		}
		b.WriteString("**Fields**:\n\n")
		for _, f := range ds.Fields {
			fmt.Fprintf(&b, "- `%s` (%s): %s\n", f.Name, f.Type, f.Description)
		}
		b.WriteString("\n")
	}

	path := filepath.Join(dir, "DATA_DICTIONARY.md")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// WriteRunLog appends one entry per completed stage to the generation log.
func WriteRunLog(dir string, entries []LogEntry) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir %s: %w", dir, err)
	}

	var b strings.Builder
	b.WriteString("Nova Data Generator - Generation Log\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "[%s] %s\n", e.Timestamp.Format("2006-01-02 15:04:05"), e.Dataset)
		fmt.Fprintf(&b, "  Records: %d\n", e.RecordCount)
		if e.DateRange != "" {
			fmt.Fprintf(&b, "  Date Range: %s\n", e.DateRange)
		}
		fmt.Fprintf(&b, "  Status: %s\n\n", e.Status)
	}

	path := filepath.Join(dir, "generation.log")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
