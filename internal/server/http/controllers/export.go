package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Arescoreadmin/ares-core/internal/entrylog"
	exportsvc "github.com/Arescoreadmin/ares-core/internal/services/export"
	logpkg "github.com/Arescoreadmin/ares-core/pkg/log"
)

// ExportController handles the export endpoint.
type ExportController struct {
	ex     *exportsvc.Pipeline
	logger logpkg.Logger
}

// NewExportController creates an export controller.
func NewExportController(ex *exportsvc.Pipeline, logger logpkg.Logger) *ExportController {
	return &ExportController{ex: ex, logger: logger}
}

// RegisterRoutes registers the export route with the given mux.
func (c *ExportController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/export", c.handleExport)
}

// handleExport runs the pipeline. With manifest=true (or an Accept header
// preferring JSON) the response is the bundle manifest; otherwise the
// rendered artifact streams back with integrity headers.
func (c *ExportController) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = exportsvc.FormatCSV
	}
	if format != exportsvc.FormatCSV && format != exportsvc.FormatText {
		writeError(w, http.StatusBadRequest, "unknown format: "+format)
		return
	}

	res, err := c.ex.Run(r.Context())
	if err != nil {
		c.respondExportError(w, err)
		return
	}

	wantManifest := r.URL.Query().Get("manifest") == "true" ||
		strings.Contains(r.Header.Get("Accept"), "application/json")
	if wantManifest {
		writeJSON(w, res)
		return
	}

	a, ok := res.Artifact(format)
	if !ok {
		writeError(w, http.StatusInternalServerError, "artifact missing from export")
		return
	}
	w.Header().Set("X-Export-Version", res.Version)
	w.Header().Set("X-Content-Sha256", a.SHA256)
	if format == exportsvc.FormatCSV {
		w.Header().Set("Content-Type", "text/csv")
	} else {
		w.Header().Set("Content-Type", "text/plain")
	}
	_, _ = w.Write(a.Bytes())
}

func (c *ExportController) respondExportError(w http.ResponseWriter, err error) {
	var eerr *exportsvc.ExportError
	var serr *entrylog.StorageError
	switch {
	case errors.As(err, &eerr):
		c.logger.Error("export failed", logpkg.Str("stage", eerr.Stage), logpkg.Err(eerr))
		writeError(w, http.StatusInternalServerError, "export failed: "+eerr.Stage)
	case errors.As(err, &serr):
		c.logger.Error("export snapshot failed", logpkg.Err(serr))
		writeError(w, http.StatusInternalServerError, "storage failure")
	default:
		c.logger.Error("export failed", logpkg.Err(err))
		writeError(w, http.StatusInternalServerError, "export failed")
	}
}
