package main

import (
	"context"

	"github.com/buaazp/fasthttprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/lueurxax/singlell/internal/log"
)

type metricsServer struct {
	addr   string
	server *fasthttp.Server

	log log.Logger
}

// Serve blocks until ctx is done or the listener fails.
func (s *metricsServer) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- s.server.ListenAndServe(s.addr)
	}()

	s.log.WithField("addr", s.addr).Info("metrics server started")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.log.Debug("shutting down metrics server")
		return s.server.Shutdown()
	}
}

func newMetricsServer(addr string, logger log.Logger) *metricsServer {
	router := fasthttprouter.New()
	router.GET("/metrics", fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()))

	return &metricsServer{
		addr:   addr,
		server: &fasthttp.Server{Handler: router.Handler},
		log:    logger,
	}
}
