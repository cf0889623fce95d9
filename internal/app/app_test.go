package app

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/fav-crypto/internal/config"
	"github.com/NastyaGoryachaya/fav-crypto/internal/domain"
	errs "github.com/NastyaGoryachaya/fav-crypto/internal/errors"
	pricesmocks "github.com/NastyaGoryachaya/fav-crypto/internal/service/prices/mocks"
	"github.com/golang/mock/gomock"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestPrintOnce_Success(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quotes := make(map[domain.AssetID]domain.PriceRecord, len(domain.Assets))
	for _, id := range domain.Assets {
		quotes[id] = domain.PriceRecord{USD: 1, USD24hChange: -1}
	}
	api := pricesmocks.NewMockPriceProvider(ctrl)
	api.EXPECT().FetchPrices(gomock.Any(), domain.Assets).Return(quotes, nil).Times(1)

	a := NewAppWithProvider(config.Config{}, quietLogger(), api)

	var stdout, stderr bytes.Buffer
	if err := a.PrintOnce(context.Background(), &stdout, &stderr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stderr.Len() != 0 {
		t.Fatalf("stderr must be empty, got %q", stderr.String())
	}

	out := stdout.String()
	if !strings.HasSuffix(out, "+\n") || strings.HasSuffix(out, "\n\n") {
		t.Fatalf("table must end with exactly one newline: %q", out)
	}
	if got := strings.Count(out, "\n"); got != len(domain.Assets)+4 {
		t.Fatalf("expected %d lines, got %d", len(domain.Assets)+4, got)
	}
	if !strings.Contains(out, "| Ripple    | $1.00       | -1.00%         |") {
		t.Fatalf("ripple row missing:\n%s", out)
	}
}

// Scenario: DNS не резолвится, печатаем "Error: <сообщение транспорта>" и ничего в stdout
func TestPrintOnce_NetworkError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := pricesmocks.NewMockPriceProvider(ctrl)
	api.EXPECT().
		FetchPrices(gomock.Any(), gomock.Any()).
		Return(nil, &errs.NetworkError{Err: errors.New("dial tcp: lookup api.coingecko.com: no such host")}).
		Times(1)

	a := NewAppWithProvider(config.Config{}, quietLogger(), api)

	var stdout, stderr bytes.Buffer
	err := a.PrintOnce(context.Background(), &stdout, &stderr)
	if err == nil || !errors.Is(err, errs.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
	if stdout.Len() != 0 {
		t.Fatalf("no table expected, got %q", stdout.String())
	}
	if got := stderr.String(); got != "Error: dial tcp: lookup api.coingecko.com: no such host\n" {
		t.Fatalf("unexpected stderr: %q", got)
	}
}

// End-to-end через настоящий клиент: ответ без ripple даёт ParseError
func TestPrintOnce_MissingAssetEndToEnd(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"bitcoin":{"usd":1,"usd_24h_change":1}}`))
	}))
	defer srv.Close()

	cfg := config.Config{CoinGecko: config.CoinGeckoConfig{BaseURL: srv.URL, Timeout: time.Second}}
	a := NewApp(cfg, quietLogger())

	var stdout, stderr bytes.Buffer
	err := a.PrintOnce(context.Background(), &stdout, &stderr)
	if err == nil || !errors.Is(err, errs.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	if stdout.Len() != 0 {
		t.Fatalf("no table expected, got %q", stdout.String())
	}
	if !strings.HasPrefix(stderr.String(), "Error: missing asset \"ethereum\"") {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}

func TestServe_StopsOnCancel(t *testing.T) {
	t.Parallel()
	cfg := config.Config{Server: config.ServerConfig{Addr: "127.0.0.1:0", ShutdownTimeout: time.Second}}
	a := NewApp(cfg, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Serve(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunBot_EmptyToken(t *testing.T) {
	t.Parallel()
	a := NewApp(config.Config{}, quietLogger())
	if err := a.RunBot(context.Background()); err == nil {
		t.Fatal("expected error for empty telegram token")
	}
}
