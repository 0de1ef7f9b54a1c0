package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Arescoreadmin/ares-core/internal/entrylog"
	ingestsvc "github.com/Arescoreadmin/ares-core/internal/services/ingest"
	querysvc "github.com/Arescoreadmin/ares-core/internal/services/query"
	logpkg "github.com/Arescoreadmin/ares-core/pkg/log"
)

// LogsController handles the ingestion and query endpoints.
type LogsController struct {
	gw     *ingestsvc.Service
	qs     *querysvc.Service
	logger logpkg.Logger
}

// NewLogsController creates a logs controller.
func NewLogsController(gw *ingestsvc.Service, qs *querysvc.Service, logger logpkg.Logger) *LogsController {
	return &LogsController{gw: gw, qs: qs, logger: logger}
}

// RegisterRoutes registers the log routes with the given mux.
func (c *LogsController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/logs", c.handleLogs)
}

func (c *LogsController) handleLogs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		c.handleIngest(w, r)
	case http.MethodGet:
		c.handleQuery(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleIngest accepts a single JSON object or an array of them.
func (c *LogsController) handleIngest(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}
	defer r.Body.Close()

	subs, err := decodeSubmissions(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	seqs, err := c.gw.Ingest(r.Context(), r.Header.Get("Authorization"), subs)
	if err != nil {
		c.respondIngestError(w, err)
		return
	}
	writeCreated(w, ingestResp{Status: "ok", Seqs: seqs})
}

func (c *LogsController) respondIngestError(w http.ResponseWriter, err error) {
	var verr *ingestsvc.ValidationError
	var serr *entrylog.StorageError
	switch {
	case errors.Is(err, ingestsvc.ErrUnauthorized):
		w.Header().Set("WWW-Authenticate", `Bearer realm="ares-core"`)
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Error())
	case errors.As(err, &serr):
		c.logger.Error("ingest storage failure", logpkg.Err(serr))
		writeError(w, http.StatusInternalServerError, "storage failure")
	default:
		c.logger.Error("ingest failed", logpkg.Err(err))
		writeError(w, http.StatusInternalServerError, "ingest failed")
	}
}

func (c *LogsController) handleQuery(w http.ResponseWriter, r *http.Request) {
	level := r.URL.Query().Get("level")
	service := r.URL.Query().Get("service")

	entries, err := c.qs.Query(level, service)
	if err != nil {
		c.logger.Error("query failed", logpkg.Err(err))
		writeError(w, http.StatusInternalServerError, "storage failure")
		return
	}
	writeJSON(w, entries)
}

func decodeSubmissions(body []byte) ([]ingestsvc.Submission, error) {
	var raws []logSubmission
	trimmed := firstNonSpace(body)
	if trimmed == '[' {
		if err := json.Unmarshal(body, &raws); err != nil {
			return nil, err
		}
	} else {
		var one logSubmission
		if err := json.Unmarshal(body, &one); err != nil {
			return nil, err
		}
		raws = []logSubmission{one}
	}

	subs := make([]ingestsvc.Submission, len(raws))
	for i, raw := range raws {
		subs[i] = ingestsvc.Submission{
			Timestamp: raw.Timestamp,
			Level:     raw.Level,
			Service:   raw.Service,
			Message:   raw.Message,
		}
	}
	return subs, nil
}

func firstNonSpace(b []byte) byte {
	for _, c := range b {
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return c
	}
	return 0
}
