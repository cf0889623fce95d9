package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/NastyaGoryachaya/fav-crypto/internal/config"
	errs "github.com/NastyaGoryachaya/fav-crypto/internal/errors"
	"github.com/NastyaGoryachaya/fav-crypto/internal/infra/api_client"
	"github.com/NastyaGoryachaya/fav-crypto/internal/metrics"
	pricesvc "github.com/NastyaGoryachaya/fav-crypto/internal/service/prices"
	botpkg "github.com/NastyaGoryachaya/fav-crypto/internal/transport/bot"
	"github.com/NastyaGoryachaya/fav-crypto/internal/transport/httptransport"
	"github.com/labstack/echo/v4"
)

type App struct {
	cfg config.Config
	log *slog.Logger

	metrics *metrics.Fetch
	prices  *pricesvc.Service
}

func NewApp(cfg config.Config, log *slog.Logger) *App {
	return NewAppWithProvider(cfg, log, api_client.NewClient(cfg.CoinGecko))
}

// NewAppWithProvider - то же, что NewApp, но с произвольным источником цен (нужно тестам).
func NewAppWithProvider(cfg config.Config, log *slog.Logger, provider pricesvc.PriceProvider) *App {
	m := metrics.NewFetch()
	return &App{
		cfg:     cfg,
		log:     log,
		metrics: m,
		prices:  pricesvc.NewService(provider, m, log),
	}
}

// PrintOnce - один запрос, таблица в stdout; при ошибке "Error: <message>" в stderr.
// Ошибка возвращается наверх, чтобы main выставил код выхода.
func (a *App) PrintOnce(ctx context.Context, stdout, stderr io.Writer) error {
	out, err := a.prices.Report(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", errs.Cause(err).Error())
		return err
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}

// Serve - HTTP-сервер с /prices, /prices.json, /metrics до отмены ctx.
func (a *App) Serve(ctx context.Context) error {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	h := httptransport.NewPricesHandler(a.log, a.prices, a.cfg.Server.RequestTimeout)
	h.RegisterRoutes(e)
	httptransport.RegisterMetrics(e, a.metrics.Registry)

	srv := &http.Server{
		Addr:         a.cfg.Server.Addr,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
		Handler:      e,
	}

	errCh := make(chan error, 1)
	a.log.Info("starting server", slog.String("addr", a.cfg.Server.Addr))
	go func() {
		if err := e.StartServer(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			a.log.Error("http server error", slog.String("error", err.Error()))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	timeout := a.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// echo.Shutdown гасит только e.Server, а мы стартовали свой srv
	if err := srv.Shutdown(shCtx); err != nil {
		a.log.Error("http shutdown error", slog.String("error", err.Error()))
		return err
	}
	a.log.Info("server stopped")
	return nil
}

// RunBot - телеграм-бот до отмены ctx.
func (a *App) RunBot(ctx context.Context) error {
	b, err := botpkg.New(a.cfg.Telegram, a.prices, a.log)
	if err != nil {
		a.log.Error("telegram init failed", slog.String("error", err.Error()))
		return err
	}

	a.log.Info("starting bot")
	b.Start()
	<-ctx.Done()
	b.Stop()
	a.log.Info("bot stopped")
	return nil
}
