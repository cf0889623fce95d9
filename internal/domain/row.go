package domain

import "github.com/shopspring/decimal"

// Headers - заголовки таблицы цен
var Headers = []string{"Crypto", "Price (USD)", "24h Change (%)"}

// Row - готовая к выводу строка таблицы: все значения уже строки.
type Row struct {
	Name   string `json:"name"`
	Price  string `json:"price"`
	Change string `json:"change"`
}

// NewRow - собирает строку таблицы из котировки.
// Цена и изменение округляются до 2 знаков после запятой.
func NewRow(id AssetID, rec PriceRecord) Row {
	return Row{
		Name:   id.DisplayName(),
		Price:  "$" + FormatFixed2(rec.USD),
		Change: FormatFixed2(rec.USD24hChange) + "%",
	}
}

// Cells - строка в виде среза ячеек, в порядке Headers.
func (r Row) Cells() []string {
	return []string{r.Name, r.Price, r.Change}
}

// FormatFixed2 - число с ровно двумя знаками после запятой.
func FormatFixed2(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
