package httpserver

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Arescoreadmin/ares-core/internal/runtime"
	"github.com/Arescoreadmin/ares-core/internal/server/http/controllers"
	exportsvc "github.com/Arescoreadmin/ares-core/internal/services/export"
	ingestsvc "github.com/Arescoreadmin/ares-core/internal/services/ingest"
	querysvc "github.com/Arescoreadmin/ares-core/internal/services/query"
	logpkg "github.com/Arescoreadmin/ares-core/pkg/log"
)

// Server hosts the HTTP API.
type Server struct {
	rt     *runtime.Runtime
	srv    *http.Server
	lis    net.Listener
	logger logpkg.Logger
}

// New builds a Server with default service instances.
func New(rt *runtime.Runtime, logger logpkg.Logger) *Server {
	if logger == nil {
		logger = logpkg.NewLogger()
	}
	gw := ingestsvc.NewWithLogger(rt, logger.With(logpkg.Component("ingest")))
	qs := querysvc.NewWithLogger(rt, logger.With(logpkg.Component("query")))
	ex := exportsvc.NewWithLogger(rt, logger.With(logpkg.Component("export")))
	return NewWithServices(rt, gw, qs, ex, logger)
}

// NewWithServices builds a Server around shared service instances.
func NewWithServices(rt *runtime.Runtime, gw *ingestsvc.Service, qs *querysvc.Service, ex *exportsvc.Pipeline, logger logpkg.Logger) *Server {
	if logger == nil {
		logger = logpkg.NewLogger()
	}
	mux := http.NewServeMux()
	s := &Server{rt: rt, logger: logger}

	controllers.NewLogsController(gw, qs, logger).RegisterRoutes(mux)
	controllers.NewExportController(ex, logger).RegisterRoutes(mux)
	controllers.NewGeneralController(rt, gw, logger).RegisterRoutes(mux)

	s.srv = &http.Server{Handler: cors(s.requestID(mux))}
	return s
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.lis = l
	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(l) }()
	select {
	case <-ctx.Done():
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(cctx)
		return nil
	case err := <-errCh:
		return err
	}
}

// Close releases the listener.
func (s *Server) Close() {
	if s.lis != nil {
		_ = s.lis.Close()
	}
}

// Handler exposes the configured handler chain, mainly for tests.
func (s *Server) Handler() http.Handler { return s.srv.Handler }

// requestID tags each request with a UUID, echoes it in the response, and
// logs the request line at debug level.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		s.logger.Debug("request",
			logpkg.Str("request_id", id),
			logpkg.Str("method", r.Method),
			logpkg.Str("path", r.URL.Path),
		)
		next.ServeHTTP(w, r)
	})
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
