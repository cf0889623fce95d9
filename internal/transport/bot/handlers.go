package bot

import (
	"context"
	"html"
	"log/slog"

	errs "github.com/NastyaGoryachaya/fav-crypto/internal/errors"
	"gopkg.in/telebot.v4"
)

const helpText = "Привет! Доступные команды:\n" +
	"/prices - цены и изменение за 24ч по всем отслеживаемым монетам"

func (b *Bot) handleStart(c telebot.Context) error {
	return c.Send(helpText)
}

// handlePrices - одна свежая выборка на команду, таблица уходит моноширинным блоком
func (b *Bot) handlePrices(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()

	msg, opts := b.pricesMessage(ctx)
	return c.Send(msg, opts...)
}

func (b *Bot) pricesMessage(ctx context.Context) (string, []interface{}) {
	out, err := b.svc.Report(ctx)
	if err != nil {
		b.logger.Error("bot: prices failed", slog.String("error", err.Error()))
		return "Error: " + errs.Cause(err).Error(), nil
	}
	return "<pre>" + html.EscapeString(out) + "</pre>", []interface{}{telebot.ModeHTML}
}
