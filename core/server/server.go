package server

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"fluid-server/core/logger"
	"fluid-server/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrNotListening is returned by Serve when the socket has not been bound yet.
var ErrNotListening = errors.New("server is not listening, call Listen first")

// Server serves a directory of static files over HTTP.
//
// Binding and serving are split so callers can learn the exact moment the
// socket is bound: Listen acquires the socket and closes the channel returned
// by Ready, then Serve accepts connections until Shutdown.
type Server struct {
	app   *fiber.App
	cfg   Config
	log   *zap.Logger
	ln    net.Listener
	ready chan struct{}
}

// New creates a server that serves cfg.Dir at the site root.
func New(cfg Config, log *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(rayid.New())
	app.Use(requestLogger(log))

	app.Static("/", cfg.Dir, fiber.Static{
		Browse: true,
		Index:  "index.html",
	})

	return &Server{
		app:   app,
		cfg:   cfg,
		log:   log,
		ready: make(chan struct{}),
	}
}

// Listen binds the configured address. It must be called once, before Serve.
// On success the Ready channel is closed.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", s.cfg.Addr(), err)
	}
	s.ln = ln
	s.log.Debug("Listener bound", zap.String("addr", ln.Addr().String()))
	close(s.ready)
	return nil
}

// Ready returns a channel that is closed once the listen socket is bound.
// Anything gated on the server being reachable should wait on it instead of
// sleeping.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Serve accepts connections on the bound socket. It blocks until Shutdown is
// called and returns nil on a clean stop.
func (s *Server) Serve() error {
	if s.ln == nil {
		return ErrNotListening
	}
	return s.app.Listener(s.ln)
}

// Shutdown stops the server gracefully, waiting at most the configured
// timeout for in-flight requests to finish.
func (s *Server) Shutdown() error {
	timeout := time.Duration(s.cfg.ShutdownTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return s.app.ShutdownWithTimeout(timeout)
}

// Addr returns the bound address, or the configured address before Listen.
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.cfg.Addr()
}

// URL returns the address a local browser should use to reach the server.
// After Listen it reflects the actual bound port.
func (s *Server) URL() string {
	port := s.cfg.Port
	if s.ln != nil {
		if addr, ok := s.ln.Addr().(*net.TCPAddr); ok {
			port = strconv.Itoa(addr.Port)
		}
	}
	return urlFor(s.cfg.Host, port)
}

// requestLogger logs every request with its RayID.
func requestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(log, c)

		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)

		err := c.Next()
		if err != nil {
			l.Error("Request error",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		return err
	}
}
