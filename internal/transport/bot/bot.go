package bot

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/fav-crypto/internal/config"
	"gopkg.in/telebot.v4"
)

// ReportService - то, что нужно боту от сервиса цен.
type ReportService interface {
	Report(ctx context.Context) (string, error)
}

// Bot - телеграм-бот, отвечающий таблицей цен
type Bot struct {
	bot     *telebot.Bot
	svc     ReportService
	logger  *slog.Logger
	timeout time.Duration
}

// New создаёт бота и регистрирует команды
func New(cfg config.TelegramConfig, svc ReportService, logger *slog.Logger) (*Bot, error) {
	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, errors.New("telegram token is empty")
	}
	poll := cfg.PollTimeout
	if poll <= 0 {
		poll = 10 * time.Second
	}

	b, err := telebot.NewBot(telebot.Settings{
		Token:  token,
		Poller: &telebot.LongPoller{Timeout: poll},
	})
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		bot:     b,
		svc:     svc,
		logger:  logger,
		timeout: 15 * time.Second,
	}
	bot.routes(b)
	return bot, nil
}

func (b *Bot) routes(r interface {
	Handle(endpoint interface{}, h telebot.HandlerFunc, m ...telebot.MiddlewareFunc)
}) {
	r.Handle("/start", b.handleStart)
	r.Handle("/prices", b.handlePrices)
}

// Start запускает long polling в отдельной горутине
func (b *Bot) Start() {
	go b.bot.Start()
}

// Stop останавливает бота
func (b *Bot) Stop() {
	b.bot.Stop()
}
