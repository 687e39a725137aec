package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/eshop-service/internal/config"
	mw "github.com/SergeyBogomolovv/eshop-service/internal/middleware"
	"github.com/SergeyBogomolovv/eshop-service/pkg/media"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

const (
	gracefulShutdownTimeout = 10 * time.Second
	readHeaderTimeout       = 5 * time.Second
)

type HttpHandler interface {
	Init(r chi.Router)
}

type Consumer interface {
	Consume(ctx context.Context)
	Close() error
}

type Starter interface {
	Start(ctx context.Context) error
}

// Waiter is a component with background work that must finish before exit.
type Waiter interface {
	Wait()
}

type application struct {
	logger *slog.Logger

	router    chi.Router
	api       chi.Router
	httpSrv   *http.Server
	consumers []Consumer
	starters  []Starter
	waiters   []Waiter

	wg sync.WaitGroup
}

func New(logger *slog.Logger, cfg config.Config) *application {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(mw.Logger(logger))
	router.Use(mw.Metrics)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Cors.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	router.Handle(media.URLPath+"/*", http.StripPrefix(media.URLPath, http.FileServer(http.Dir(cfg.Media.Dir))))

	api := chi.NewRouter()
	router.Mount(cfg.API.Prefix, api)

	httpSrv := &http.Server{
		Handler:           router,
		Addr:              net.JoinHostPort(cfg.Http.Host, cfg.Http.Port),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return &application{
		logger:  logger,
		httpSrv: httpSrv,
		router:  router,
		api:     api,
	}
}

// SetHTTPHandlers mounts handlers under the API prefix.
func (a *application) SetHTTPHandlers(handlers ...HttpHandler) {
	for _, h := range handlers {
		h.Init(a.api)
	}
}

func (a *application) SetConsumers(consumers ...Consumer) {
	a.consumers = append(a.consumers, consumers...)
}

func (a *application) SetStarters(starters ...Starter) {
	a.starters = append(a.starters, starters...)
}

func (a *application) SetWaiters(waiters ...Waiter) {
	a.waiters = append(a.waiters, waiters...)
}

func (a *application) Start(ctx context.Context) error {
	for _, s := range a.starters {
		if err := s.Start(ctx); err != nil {
			return fmt.Errorf("failed to run starter: %w", err)
		}
	}

	for _, c := range a.consumers {
		a.wg.Add(1)
		go func() {
			defer a.wg.Done()
			c.Consume(ctx)
		}()
	}

	ln, err := net.Listen("tcp", a.httpSrv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	go func() {
		a.logger.Info("starting http server", slog.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("http server stopped", slog.Any("error", err))
		}
	}()

	a.logger.Info("application started")
	return nil
}

// Stop shuts the server down, closes consumers and waits for background work.
func (a *application) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.httpSrv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown http server: %w", err))
	}

	for _, c := range a.consumers {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close consumer: %w", err))
		}
	}
	a.wg.Wait()

	for _, w := range a.waiters {
		w.Wait()
	}

	a.logger.Info("application stopped")
	return errors.Join(errs...)
}
