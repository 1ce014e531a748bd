package modules

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"gamedeals/pkg/metrics"
)

type MetricServer struct {
	ListenAddress   string
	ShutdownTimeout time.Duration
}

func (m MetricServer) Run(ctx context.Context, g *errgroup.Group) {
	HTTPServer{Name: "metrics", ShutdownTimeout: m.ShutdownTimeout}.
		Run(ctx, g, m.ListenAddress, metrics.Handler())
}
