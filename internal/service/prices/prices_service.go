package prices

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/fav-crypto/internal/domain"
	errs "github.com/NastyaGoryachaya/fav-crypto/internal/errors"
	"github.com/NastyaGoryachaya/fav-crypto/internal/metrics"
	"github.com/NastyaGoryachaya/fav-crypto/internal/pkg/table"
)

//go:generate mockgen -destination=mocks/mock_provider.go -package=mocks . PriceProvider

// PriceProvider - внешний источник котировок (CoinGecko).
type PriceProvider interface {
	FetchPrices(ctx context.Context, ids []domain.AssetID) (map[domain.AssetID]domain.PriceRecord, error)
}

type Service struct {
	provider PriceProvider
	metrics  *metrics.Fetch
	logger   *slog.Logger
}

// NewService - конструктор сервиса таблицы цен. m может быть nil.
func NewService(provider PriceProvider, m *metrics.Fetch, logger *slog.Logger) *Service {
	return &Service{
		provider: provider,
		metrics:  m,
		logger:   logger,
	}
}

// Rows - получает котировки и собирает строки таблицы строго в порядке domain.Assets.
// Любая ошибка провайдера прерывает выборку, частичного результата нет.
func (s *Service) Rows(ctx context.Context) ([]domain.Row, error) {
	started := time.Now()
	quotes, err := s.provider.FetchPrices(ctx, domain.Assets)
	s.metrics.Observe(started, err)
	if err != nil {
		// наверху ошибку печатает CLI или логирует транспорт
		s.logger.Debug("fetch prices failed", "err", err)
		return nil, fmt.Errorf("fetch prices: %w", err)
	}
	s.logger.Debug("prices fetched", slog.Int("count", len(quotes)), slog.Duration("duration", time.Since(started)))

	rows := make([]domain.Row, 0, len(domain.Assets))
	for _, id := range domain.Assets {
		rec, ok := quotes[id]
		if !ok {
			return nil, fmt.Errorf("fetch prices: %w", &errs.ParseError{Msg: fmt.Sprintf("no quote for %q", id)})
		}
		rows = append(rows, domain.NewRow(id, rec))
	}
	return rows, nil
}

// Report - таблица цен одной строкой, без завершающего перевода строки.
func (s *Service) Report(ctx context.Context) (string, error) {
	rows, err := s.Rows(ctx)
	if err != nil {
		return "", err
	}
	return Render(rows)
}

// Render - форматирует готовые строки в таблицу с заголовками domain.Headers.
func Render(rows []domain.Row) (string, error) {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, r.Cells())
	}
	out, err := table.Format(domain.Headers, cells)
	if err != nil {
		return "", fmt.Errorf("format table: %w", err)
	}
	return out, nil
}
