package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/config"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"
)

type application struct {
	logger *slog.Logger

	router    chi.Router
	httpSrv   *http.Server
	consumers []Consumer
	starters  []Starter
	closers   []io.Closer
}

func New(logger *slog.Logger, cfg config.Config) *application {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(chimw.Recoverer)
	router.Use(middleware.Metrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Cors.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.UserIDHeader, middleware.UserRoleHeader},
	}))

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	httpSrv := &http.Server{
		Handler:           router,
		Addr:              net.JoinHostPort(cfg.Http.Host, cfg.Http.Port),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &application{
		logger:  logger,
		httpSrv: httpSrv,
		router:  router,
	}
}

type HTTPHandler interface {
	Init(r chi.Router)
}

func (a *application) SetHTTPHandlers(handlers ...HTTPHandler) {
	for _, h := range handlers {
		h.Init(a.router)
	}
}

type Consumer interface {
	Consume(ctx context.Context)
	Close() error
}

func (a *application) SetConsumers(consumers ...Consumer) {
	a.consumers = append(a.consumers, consumers...)
}

// Starter is run once before the server accepts requests.
type Starter interface {
	Start(ctx context.Context) error
}

func (a *application) SetStarters(starters ...Starter) {
	a.starters = append(a.starters, starters...)
}

// SetClosers registers resources released on Stop after consumers and the server.
func (a *application) SetClosers(closers ...io.Closer) {
	a.closers = append(a.closers, closers...)
}

func (a *application) Start(ctx context.Context) error {
	// ctx must outlive Start: starters may bind background work to it
	var g errgroup.Group
	for _, s := range a.starters {
		g.Go(func() error {
			return s.Start(ctx)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to run starters: %w", err)
	}

	for _, c := range a.consumers {
		go c.Consume(ctx)
	}

	ln, err := net.Listen("tcp", a.httpSrv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.httpSrv.Addr, err)
	}
	go a.serve(ln)

	a.logger.Info("application started", slog.String("addr", a.httpSrv.Addr))
	return nil
}

func (a *application) serve(ln net.Listener) {
	if err := a.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		a.logger.Error("http server stopped", slog.Any("error", err))
	}
}

const gracefulShutdownTimeout = 5 * time.Second

func (a *application) Stop() error {
	var errs []error
	for _, c := range a.consumers {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close consumer: %w", err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	if err := a.httpSrv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown http server: %w", err))
	}

	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	a.logger.Info("application stopped")
	return errors.Join(errs...)
}
