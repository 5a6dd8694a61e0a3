// Copyright 2022 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fmp

import (
	"context"

	"github.com/stockparfait/fmp/table"
)

// Stock is an entry of the list of all the traded symbols.
type Stock struct {
	Symbol            string  `json:"symbol"`
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	Exchange          string  `json:"exchange"`
	ExchangeShortName string  `json:"exchangeShortName"`
	Type              string  `json:"type"` // "stock", "etf", "trust", "fund"
}

var _ table.Row = Stock{}

// StockHeader is the table header matching Stock.CSV.
func StockHeader() []string {
	return []string{"Symbol", "Name", "Price", "Exchange", "Type"}
}

// CSV implements table.Row.
func (s Stock) CSV() []string {
	return []string{s.Symbol, s.Name, formatFloat(s.Price), s.ExchangeShortName, s.Type}
}

// SearchResult is a symbol matching a search query.
type SearchResult struct {
	Symbol            string `json:"symbol"`
	Name              string `json:"name"`
	Currency          string `json:"currency"`
	StockExchange     string `json:"stockExchange"`
	ExchangeShortName string `json:"exchangeShortName"`
}

var _ table.Row = SearchResult{}

// SearchResultHeader is the table header matching SearchResult.CSV.
func SearchResultHeader() []string {
	return []string{"Symbol", "Name", "Currency", "Exchange"}
}

// CSV implements table.Row.
func (r SearchResult) CSV() []string {
	return []string{r.Symbol, r.Name, r.Currency, r.ExchangeShortName}
}

// FetchStockList fetches all the symbols known to the server.
func FetchStockList(ctx context.Context) ([]Stock, error) {
	return get[[]Stock](ctx, "/v3/stock/list", nil)
}

// SearchStocks finds symbols and company names matching the query, optionally
// restricted to an exchange such as "NASDAQ". Non-positive limit means the
// server's default.
func SearchStocks(ctx context.Context, query, exchange string, limit int) ([]SearchResult, error) {
	q := limitQuery(limit)
	q.Set("query", query)
	if exchange != "" {
		q.Set("exchange", exchange)
	}
	return get[[]SearchResult](ctx, "/v3/search", q)
}
