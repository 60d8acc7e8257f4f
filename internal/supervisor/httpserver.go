// CreatorPulse - Creator Analytics and Monetization Risk Engine
// Copyright 2026 CreatorPulse Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/creatorpulse/creatorpulse

package supervisor

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"

	"github.com/creatorpulse/creatorpulse/internal/config"
	"github.com/creatorpulse/creatorpulse/internal/logging"
)

// HTTPServer runs the API handler as a supervised service. A fresh
// http.Server is built on every Serve call because a shut-down server
// cannot be reused, and suture restarts crashed services.
type HTTPServer struct {
	cfg     *config.ServerConfig
	handler http.Handler
	bound   atomic.Pointer[net.TCPAddr]
}

// NewHTTPServer wraps handler in a supervised HTTP server.
func NewHTTPServer(cfg *config.ServerConfig, handler http.Handler) *HTTPServer {
	return &HTTPServer{cfg: cfg, handler: handler}
}

// Serve listens and serves until the context is canceled, then shuts down
// gracefully within the configured shutdown timeout.
func (s *HTTPServer) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.handler,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}
	if tcpAddr, ok := ln.Addr().(*net.TCPAddr); ok {
		s.bound.Store(tcpAddr)
	}

	httpLog := logging.WithComponent("http")
	httpLog.Info().Stringer("addr", ln.Addr()).Msg("http server listening")

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		httpLog.Warn().Err(err).Msg("graceful shutdown failed, closing")
		_ = srv.Close()
	}
	<-serveErr

	httpLog.Info().Msg("http server stopped")
	return ctx.Err()
}

// BoundAddr reports the address the server is actually listening on, which
// differs from the configured address when port 0 is requested. Nil until
// the listener is up.
func (s *HTTPServer) BoundAddr() *net.TCPAddr {
	return s.bound.Load()
}

// String names the service in suture's event log.
func (s *HTTPServer) String() string {
	return "http-server"
}
