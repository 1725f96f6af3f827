package report

import (
	"bytes"
	"net/http"
	"sync"
	"time"

	"github.com/massalabs/attest/framework"
)

// Handler serves the HTML report of the current run over HTTP. It is also a
// framework.TestLogger, so a page reloaded in a browser while the run is in
// progress shows the tests finished so far.
type Handler struct {
	logger  framework.Logger
	page    Page
	pending bool
	lock    sync.Mutex
}

// NewHandler creates a handler with an empty report. logger may be nil.
func NewHandler(title string, logger framework.Logger) *Handler {
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &Handler{
		logger: logger,
		page:   Page{Title: title, Timestamp: time.Now()},
	}
}

func (h *Handler) TestStarted(name string) {
	h.lock.Lock()
	h.pending = true
	h.lock.Unlock()
}

func (h *Handler) TestFinished(result framework.TestResult) {
	h.lock.Lock()
	h.page.Results.Tests = append(h.page.Results.Tests, result)
	if !result.Passed {
		h.page.Results.Failures = append(h.page.Results.Failures, result)
	}
	h.pending = false
	h.lock.Unlock()
}

func (h *Handler) TestSkipped(name string, reason string) {}

// Complete replaces the page with the final results of a run.
func (h *Handler) Complete(runID string, results framework.Results) {
	h.lock.Lock()
	h.page.RunID = runID
	h.page.Results = results
	h.pending = false
	h.lock.Unlock()
}

func (h *Handler) snapshot() (Page, bool) {
	h.lock.Lock()
	defer h.lock.Unlock()
	page := h.page
	page.Results.Tests = append([]framework.TestResult(nil), h.page.Results.Tests...)
	page.Results.Failures = append([]framework.TestResult(nil), h.page.Results.Failures...)
	return page, h.pending
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK) // lets a caller check that the listener is up
		return
	}
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if req.URL.Path != "/" && req.URL.Path != "" {
		h.logger.Printf("Received request for unrecognized URL path %s", req.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		return
	}

	page, pending := h.snapshot()
	var buf bytes.Buffer
	if err := WriteHTML(&buf, page); err != nil {
		h.logger.Printf("Unexpected error rendering report: %s", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if pending {
		w.Header().Set("Refresh", "1")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
