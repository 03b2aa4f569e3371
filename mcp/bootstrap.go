package mcp

import (
	"context"
	"fmt"

	"github.com/viant/fluxor/model/types"
	"github.com/viant/intmap/intmap/registry"
	"github.com/viant/intmap/mcp/config"
	"github.com/viant/intmap/mcp/mapaction"
)

// init orchestrates the individual preparation steps once all options have
// been applied.
func (s *Service) init(ctx context.Context) error {
	s.initDefaults()

	// Validate configuration early to fail fast when possible.
	if err := s.config.Validate(); err != nil {
		return err
	}
	if err := s.initRegistry(); err != nil {
		return err
	}

	s.services = append([]types.Service{mapaction.New(s.registry)}, s.services...)
	s.buildMcpToolRegistry()

	if err := s.registerRemotes(ctx); err != nil {
		return fmt.Errorf("register remotes: %w", err)
	}
	return s.initPreset(ctx)
}

// initDefaults applies fall-back values for optional settings.
func (s *Service) initDefaults() {
	if s.config == nil {
		s.config = &config.Config{}
	}
	if len(s.config.Tools) == 0 { // expose every tool
		s.config.Tools = append(s.config.Tools, "*")
	}
}

func (s *Service) initRegistry() error {
	if s.registry != nil {
		return nil
	}
	opts, err := s.config.MapOptions()
	if err != nil {
		return err
	}
	s.registry = registry.New(opts...)
	return nil
}

// initPreset builds the map described by the configured key list.
func (s *Service) initPreset(ctx context.Context) error {
	keys, err := s.config.LoadKeys(ctx)
	if err != nil {
		return err
	}
	if s.config.Keys != nil {
		s.preset = s.registry.Create(keys)
	}
	return nil
}
