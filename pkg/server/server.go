package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"
)

type Server struct {
	*http.Server
	*http.ServeMux

	lock     sync.Mutex
	listener net.Listener
}

// NewServer creates a server for a listen address. The port 0
// selects a free port on Listen.
func NewServer(addr string) *Server {
	mux := http.NewServeMux()
	return &Server{
		Server: &http.Server{
			Addr:    addr,
			Handler: mux,
		},
		ServeMux: mux,
	}
}

// Listen binds the listen address without serving requests.
func (s *Server) Listen() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.listener != nil {
		return nil
	}
	l, err := net.Listen("tcp", s.Server.Addr)
	if err != nil {
		return err
	}
	s.listener = l
	log.Debug("listening on {{address}}", "address", l.Addr().String())
	return nil
}

// Address returns the bound address or the configured one
// if the server is not yet listening.
func (s *Server) Address() string {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.Server.Addr
}

// ServeContext serves requests until the context is cancelled.
// The server is shut down gracefully with the given timeout.
func (s *Server) ServeContext(ctx context.Context, shutdownTimeout time.Duration) error {
	err := s.Listen()
	if err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		// on graceful shutdown Serve always returns http.ErrServerClosed
		serverErr <- s.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Debug("shutting down {{address}}", "address", s.Address())
		err = s.Shutdown(ctx)
	case err = <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
	}
	return err
}
