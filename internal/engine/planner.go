package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/tcplika/internal/config"
	"github.com/vk/tcplika/internal/ctxlog"
	"github.com/vk/tcplika/internal/endpoint"
)

// Planner reports what a run would do without doing it.
type Planner struct {
	settings  Settings
	endpoints []endpoint.RemoteEndpoint
	logf      LogFunc
}

var _ Factory = NewPlanner

// NewPlanner is the default Factory.
func NewPlanner(cfg config.Configuration, logf LogFunc) (Engine, error) {
	if logf == nil {
		return nil, errors.New("engine: a log function is required")
	}
	if len(cfg.RemoteEndpoints) == 0 {
		return nil, errors.New("engine: no remote endpoints to plan for")
	}
	return &Planner{
		settings:  EffectiveSettings(cfg),
		endpoints: cfg.RemoteEndpoints,
		logf:      logf,
	}, nil
}

// Start writes the plan through the log function: one settings line, one
// line per endpoint and a summary. It stops early when ctx is cancelled.
func (p *Planner) Start(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Planner started.", "endpoints", len(p.endpoints))

	s := p.settings
	nagle := "OFF"
	if s.Nagle {
		nagle = "ON"
	}
	p.logf(fmt.Sprintf("threads=%d connections=%d nagle=%s websocket=%t receive-buffer=%d send-buffer=%d connect-timeout=%s lifetime=%s",
		s.Threads, s.Connections, nagle, s.WebSocket, s.ReceiveBufferSize, s.SendBufferSize, s.ConnectTimeout, s.ConnectionLifetime))

	for i, ep := range p.endpoints {
		if err := ctx.Err(); err != nil {
			logger.Warn("Planner cancelled.", "reported", i, "endpoints", len(p.endpoints))
			return fmt.Errorf("planning interrupted: %w", err)
		}
		p.logf(fmt.Sprintf("target #%d %s", i+1, ep))
	}

	p.logf(fmt.Sprintf("planned %d target(s); no connections were opened", len(p.endpoints)))
	logger.Debug("Planner finished.")
	return nil
}
