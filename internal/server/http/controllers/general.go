package controllers

import (
	"net/http"

	"github.com/Arescoreadmin/ares-core/internal/runtime"
	ingestsvc "github.com/Arescoreadmin/ares-core/internal/services/ingest"
	logpkg "github.com/Arescoreadmin/ares-core/pkg/log"
)

// GeneralController handles health and stats endpoints.
type GeneralController struct {
	rt     *runtime.Runtime
	gw     *ingestsvc.Service
	logger logpkg.Logger
}

// NewGeneralController creates a general controller.
func NewGeneralController(rt *runtime.Runtime, gw *ingestsvc.Service, logger logpkg.Logger) *GeneralController {
	return &GeneralController{rt: rt, gw: gw, logger: logger}
}

// RegisterRoutes registers health and stats routes with the given mux.
func (c *GeneralController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/healthz", c.handleHealth)
	mux.HandleFunc("/v1/stats", c.handleStats)
}

func (c *GeneralController) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := c.rt.CheckHealth(r.Context()); err != nil {
		c.logger.Error("health probe failed", logpkg.Err(err))
		writeError(w, http.StatusServiceUnavailable, "not_serving")
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}

func (c *GeneralController) handleStats(w http.ResponseWriter, r *http.Request) {
	last := c.rt.Store().LastSeq()
	writeJSON(w, statsResp{
		Ingested: c.gw.Count(),
		LastSeq:  last,
		// append-only store: entry count equals the last sequence
		Entries: last,
	})
}
