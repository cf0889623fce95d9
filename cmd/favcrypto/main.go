package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/NastyaGoryachaya/fav-crypto/internal/app"
	"github.com/NastyaGoryachaya/fav-crypto/internal/config"
	"github.com/NastyaGoryachaya/fav-crypto/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", slog.String("error", err.Error()))
	}

	// context + signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cliApp := &cli.App{
		Name:  "favcrypto",
		Usage: "prices and 24h change for a fixed set of coins as a text table",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file path",
				EnvVars: []string{"CONFIG_PATH"},
			},
		},
		Action: func(c *cli.Context) error {
			a, err := build(c)
			if err != nil {
				return err
			}
			return a.PrintOnce(c.Context, os.Stdout, os.Stderr)
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "serve the table over HTTP (/prices, /prices.json, /metrics)",
				Action: func(c *cli.Context) error {
					a, err := build(c)
					if err != nil {
						return err
					}
					return a.Serve(c.Context)
				},
			},
			{
				Name:  "bot",
				Usage: "answer /prices in Telegram (needs TELEGRAM_BOT_TOKEN)",
				Action: func(c *cli.Context) error {
					a, err := build(c)
					if err != nil {
						return err
					}
					return a.RunBot(c.Context)
				},
			},
		},
	}

	// ошибки уже напечатаны (Error: ... для CLI, логи для serve/bot), здесь только код выхода
	if err := cliApp.RunContext(ctx, os.Args); err != nil {
		os.Exit(1)
	}
}

func build(c *cli.Context) (*app.App, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		os.Stderr.WriteString("Error: config: " + err.Error() + "\n")
		return nil, err
	}
	log := logger.New(&cfg.Logger, os.Stderr)
	return app.NewApp(*cfg, log), nil
}
