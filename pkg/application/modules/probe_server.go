package modules

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"gamedeals/pkg/probe"
)

// ProbeServer answers liveness and readiness. Ready gates /ready.
type ProbeServer struct {
	Name            string
	Version         string
	ListenAddress   string
	ShutdownTimeout time.Duration
	Ready           probe.ReadinessFunc
}

func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group) {
	handler := probe.NewHandler(probe.Options{Name: p.Name, Version: p.Version}, p.Ready)

	HTTPServer{Name: "probe", ShutdownTimeout: p.ShutdownTimeout}.
		Run(ctx, g, p.ListenAddress, handler)
}
