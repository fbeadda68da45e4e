package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/nowplaying/internal/repositories"
	"github.com/desertthunder/nowplaying/internal/services"
	"github.com/desertthunder/nowplaying/internal/shared"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// RelayOpts contains the dependencies of the relay's router.
type RelayOpts struct {
	Provider services.Provider
	Store    repositories.TokenStore // defaults to a fresh [repositories.MemoryTokenRepository]
	Logger   *log.Logger
	Clock    func() time.Time // defaults to [time.Now]
}

// NewRelayRouter wires the login, callback and currently-playing handlers onto a [BasicRouter]
// with request logging.
func NewRelayRouter(opts RelayOpts) *BasicRouter {
	if opts.Store == nil {
		opts.Store = repositories.NewMemoryTokenRepository()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil, shared.LogConfig{})
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	router := NewBasicRouter()
	router.Use(RequestLogger(opts.Logger))

	router.Handler(NewLoginHandler(opts.Provider))
	router.Handler(NewCallbackHandler(opts.Provider, opts.Store, opts.Clock, opts.Logger))
	router.Handler(NewNowPlayingHandler(opts.Provider, opts.Store, opts.Clock, opts.Logger))

	return router
}

// Serve accepts connections on ln until ctx is cancelled, then shuts the server down gracefully.
//
// Returns nil after a clean shutdown.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler, logger *log.Logger) error {
	httpServer := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("relay listening", "addr", ln.Addr().String())
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Info("shutting down relay")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// ListenAndServe listens on addr and calls [Serve].
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, logger *log.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return Serve(ctx, ln, handler, logger)
}
