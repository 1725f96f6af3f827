package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/massalabs/attest/framework"
)

// HTMLSink writes the HTML report of a run to
// <baseDir>/testrun-<runID>/results.html.
type HTMLSink struct {
	baseDir string
	title   string
	runID   string
	started time.Time
}

// NewHTMLSink creates a sink with a fresh run ID.
func NewHTMLSink(baseDir, title string) *HTMLSink {
	return &HTMLSink{
		baseDir: baseDir,
		title:   title,
		runID:   uuid.New().String(),
		started: time.Now(),
	}
}

func (s *HTMLSink) RunID() string { return s.runID }

// OutputDir is the directory the report is written to.
func (s *HTMLSink) OutputDir() string {
	return filepath.Join(s.baseDir, "testrun-"+s.runID)
}

// Complete renders the results and writes the report file, returning its path.
func (s *HTMLSink) Complete(results framework.Results) (string, error) {
	outputDir := s.OutputDir()
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	var buf bytes.Buffer
	page := Page{Title: s.title, RunID: s.runID, Timestamp: s.started, Results: results}
	if err := WriteHTML(&buf, page); err != nil {
		return "", err
	}

	htmlFile := filepath.Join(outputDir, "results.html")
	if err := os.WriteFile(htmlFile, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write HTML file: %w", err)
	}
	return htmlFile, nil
}
