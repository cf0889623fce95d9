package domain

import "strings"

// AssetID - идентификатор монеты в CoinGecko (bitcoin, ethereum, ...)
type AssetID string

// Assets - фиксированный список отслеживаемых монет.
// Порядок важен: в нём же идут строки таблицы, независимо от порядка ключей в ответе API.
var Assets = []AssetID{
	"bitcoin",
	"ethereum",
	"solana",
	"uniswap",
	"arbitrum",
	"chainlink",
	"ripple",
}

// Currency - валюта котировок, не настраивается.
const Currency = "usd"

// DisplayName - id с заглавной первой буквой (bitcoin -> Bitcoin)
func (id AssetID) DisplayName() string {
	s := string(id)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// AssetIDs - список id строками, для query-параметра ids.
func AssetIDs() []string {
	out := make([]string, 0, len(Assets))
	for _, id := range Assets {
		out = append(out, string(id))
	}
	return out
}

// PriceRecord - котировка одной монеты из ответа API
type PriceRecord struct {
	USD          float64 `json:"usd"`            // Текущая цена в USD
	USD24hChange float64 `json:"usd_24h_change"` // Изменение за 24ч, %
}
