package bot

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	errs "github.com/NastyaGoryachaya/fav-crypto/internal/errors"
	"gopkg.in/telebot.v4"
)

type fakeReport struct {
	out string
	err error
}

func (f fakeReport) Report(context.Context) (string, error) { return f.out, f.err }

func TestPricesMessage_OK(t *testing.T) {
	b := &Bot{svc: fakeReport{out: "| a<b |"}, logger: slog.Default(), timeout: time.Second}

	msg, opts := b.pricesMessage(context.Background())
	if msg != "<pre>| a&lt;b |</pre>" {
		t.Fatalf("unexpected message: %q", msg)
	}
	if len(opts) != 1 || opts[0] != telebot.ModeHTML {
		t.Fatalf("expected HTML parse mode, got %v", opts)
	}
}

func TestPricesMessage_Error(t *testing.T) {
	err := &errs.NetworkError{Err: errors.New("i/o timeout")}
	b := &Bot{svc: fakeReport{err: err}, logger: slog.Default(), timeout: time.Second}

	msg, opts := b.pricesMessage(context.Background())
	if msg != "Error: i/o timeout" {
		t.Fatalf("unexpected message: %q", msg)
	}
	if opts != nil {
		t.Fatalf("error message must be plain text, got %v", opts)
	}
}

type recordingRouter struct {
	endpoints []string
}

func (r *recordingRouter) Handle(endpoint interface{}, _ telebot.HandlerFunc, _ ...telebot.MiddlewareFunc) {
	r.endpoints = append(r.endpoints, endpoint.(string))
}

func TestRoutes(t *testing.T) {
	r := &recordingRouter{}
	(&Bot{}).routes(r)
	if len(r.endpoints) != 2 || r.endpoints[0] != "/start" || r.endpoints[1] != "/prices" {
		t.Fatalf("unexpected endpoints: %v", r.endpoints)
	}
}
