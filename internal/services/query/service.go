package querysvc

import (
	"github.com/Arescoreadmin/ares-core/internal/entrylog"
	"github.com/Arescoreadmin/ares-core/internal/runtime"
	logpkg "github.com/Arescoreadmin/ares-core/pkg/log"
)

// Service exposes filtered reads over the entry store.
type Service struct {
	rt     *runtime.Runtime
	logger logpkg.Logger
}

// New returns a Service using a default logger.
func New(rt *runtime.Runtime) *Service {
	return NewWithLogger(rt, nil)
}

// NewWithLogger constructs the service with an injected logger.
func NewWithLogger(rt *runtime.Runtime, logger logpkg.Logger) *Service {
	if logger == nil {
		logger = logpkg.NewLogger().With(logpkg.Component("query"))
	}
	return &Service{rt: rt, logger: logger}
}

// Query returns entries matching the filter in insertion order. Absent
// dimensions match everything; unknown values yield an empty slice.
func (s *Service) Query(level, service string) ([]entrylog.Entry, error) {
	return s.rt.Store().Query(entrylog.Filter{Level: level, Service: service})
}

// All returns every stored entry in insertion order.
func (s *Service) All() ([]entrylog.Entry, error) {
	return s.rt.Store().All()
}
