package api_client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/NastyaGoryachaya/fav-crypto/internal/config"
	"github.com/NastyaGoryachaya/fav-crypto/internal/domain"
	errs "github.com/NastyaGoryachaya/fav-crypto/internal/errors"
)

type Client struct {
	cfg        config.CoinGeckoConfig
	httpClient *http.Client
}

// simplePriceQuote - одна запись ответа /simple/price.
// Указатели нужны, чтобы отличить отсутствующее поле от нуля.
type simplePriceQuote struct {
	USD          *float64 `json:"usd"`
	USD24hChange *float64 `json:"usd_24h_change"`
}

// NewClient - Создаёт нового клиента для работы с API CoinGecko.
func NewClient(cfg config.CoinGeckoConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// FetchPrices - один запрос /simple/price за ценой в USD и изменением за 24ч для ids.
// Ответ без любой из запрошенных монет или без любого из полей считается ParseError.
// Повторов нет.
func (c *Client) FetchPrices(ctx context.Context, ids []domain.AssetID) (map[domain.AssetID]domain.PriceRecord, error) {
	endpoint, err := c.priceURL(ids)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	ua := c.cfg.UserAgent
	if ua == "" {
		ua = "fav-crypto/1.0"
	}
	req.Header.Set("User-Agent", ua)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &errs.NetworkError{Err: transportCause(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &errs.NetworkError{Err: fmt.Errorf("unexpected status: %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errs.NetworkError{Err: transportCause(err)}
	}

	return decodePrices(body, ids)
}

func (c *Client) priceURL(ids []domain.AssetID) (string, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	u = u.JoinPath("simple", "price")

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, string(id))
	}

	q := u.Query()
	q.Set("ids", strings.Join(names, ","))
	q.Set("vs_currencies", domain.Currency)
	q.Set("include_24hr_change", "true")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// decodePrices - строгий разбор тела ответа: все ids и оба поля обязательны.
func decodePrices(body []byte, ids []domain.AssetID) (map[domain.AssetID]domain.PriceRecord, error) {
	var raw map[string]*simplePriceQuote
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &errs.ParseError{Msg: "invalid price response", Err: err}
	}

	out := make(map[domain.AssetID]domain.PriceRecord, len(ids))
	for _, id := range ids {
		q, ok := raw[string(id)]
		if !ok || q == nil {
			return nil, &errs.ParseError{Msg: fmt.Sprintf("missing asset %q in price response", id)}
		}
		if q.USD == nil {
			return nil, &errs.ParseError{Msg: fmt.Sprintf("missing field \"usd\" for asset %q", id)}
		}
		if q.USD24hChange == nil {
			return nil, &errs.ParseError{Msg: fmt.Sprintf("missing field \"usd_24h_change\" for asset %q", id)}
		}
		out[id] = domain.PriceRecord{USD: *q.USD, USD24hChange: *q.USD24hChange}
	}
	return out, nil
}

// transportCause - снимает обёртку *url.Error ("Get \"...\": ..."), оставляя сообщение транспорта.
func transportCause(err error) error {
	var uErr *url.Error
	if errors.As(err, &uErr) && uErr.Err != nil {
		return uErr.Err
	}
	return err
}
