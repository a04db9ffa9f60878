package preview

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/Aleph-Alpha/bsky-embed/v1/logger"
)

// Server is the preview HTTP server.
type Server struct {
	srv    *http.Server
	logger logger.Logger
	addr   net.Addr
}

// NewServer builds a server for h listening on cfg.Address.
func NewServer(cfg Config, h *Handler, log logger.Logger) *Server {
	address := cfg.Address
	if address == "" {
		address = DefaultAddress
	}
	return &Server{
		srv: &http.Server{
			Addr:              address,
			Handler:           h.Routes(),
			ReadHeaderTimeout: time.Duration(cfg.ReadHeaderTimeoutS) * time.Second,
		},
		logger: log,
	}
}

// Start binds the listener and serves in the background.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	s.addr = ln.Addr()
	s.logger.Info("Starting preview server", nil, map[string]interface{}{
		"address": s.addr.String(),
	})
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Preview server stopped", err, nil)
		}
	}()
	return nil
}

// Addr returns the bound address after Start, or nil.
func (s *Server) Addr() net.Addr {
	return s.addr
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down preview server", nil, nil)
	return s.srv.Shutdown(ctx)
}
