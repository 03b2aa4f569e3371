package mcp

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"github.com/viant/fluxor/model/types"
	"github.com/viant/intmap/intmap/registry"
	"github.com/viant/intmap/mcp/config"
)

// Service bundles configuration, the map registry, action services and the
// MCP tools derived from them. Bootstrap lives in bootstrap.go.
type Service struct {
	started  int32
	config   *config.Config
	registry *registry.Registry
	services []types.Service
	preset   registry.Handle

	// guard concurrent modifications.
	mu       sync.RWMutex
	mcpTools []toolEntry
}

// Config returns the effective configuration. Callers must treat the
// returned object as read-only.
func (s *Service) Config() *config.Config { return s.config }

// Registry returns the map registry backing all tools.
func (s *Service) Registry() *registry.Registry { return s.registry }

// Services returns the action services exposed as tools.
func (s *Service) Services() []types.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.Service{}, s.services...)
}

// Preset returns the handle of the map built from configured keys.
func (s *Service) Preset() (registry.Handle, bool) {
	return s.preset, s.preset != 0
}

// Option modifies a service instance before it is initialised.
type Option func(*Service)

// WithConfig sets a custom configuration instance. When omitted a zero value
// config is assumed.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithRegistry shares an existing registry instead of creating one from config.
func WithRegistry(reg *registry.Registry) Option {
	return func(s *Service) {
		s.registry = reg
	}
}

// WithServices registers additional action services exposed as tools.
func WithServices(services ...types.Service) Option {
	return func(s *Service) {
		s.services = append(s.services, services...)
	}
}

// New constructs a new service instance; see init in bootstrap.go.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// Start marks the service as running. Multiple invocations are safe.
func (s *Service) Start(_ context.Context) error {
	atomic.CompareAndSwapInt32(&s.started, 0, 1)
	return nil
}

// Shutdown destroys every live map. Additional invocations have no effect.
func (s *Service) Shutdown(_ context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 1, 2) {
		return nil
	}
	if count := s.registry.DestroyAll(); count > 0 {
		log.Printf("intmap: destroyed %d live map(s) on shutdown", count)
	}
	return nil
}
