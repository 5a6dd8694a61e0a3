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
	"strings"

	"github.com/stockparfait/fmp/table"
)

// ForexQuote is the latest quote of a currency pair. The numeric values are
// sent by the server as strings and are kept that way.
type ForexQuote struct {
	Ticker  string  `json:"ticker"` // e.g. "EUR/USD"
	Bid     string  `json:"bid"`
	Ask     string  `json:"ask"`
	Open    string  `json:"open"`
	Low     string  `json:"low"`
	High    string  `json:"high"`
	Changes float64 `json:"changes"`
	Date    string  `json:"date"`
}

var _ table.Row = ForexQuote{}

// ForexQuoteHeader is the table header matching ForexQuote.CSV.
func ForexQuoteHeader() []string {
	return []string{"Ticker", "Bid", "Ask", "Open", "Low", "High", "Changes", "Date"}
}

// CSV implements table.Row.
func (q ForexQuote) CSV() []string {
	return []string{q.Ticker, q.Bid, q.Ask, q.Open, q.Low, q.High,
		formatFloat(q.Changes), q.Date}
}

// FetchForexQuotes fetches the quotes of all the available currency pairs.
func FetchForexQuotes(ctx context.Context) ([]ForexQuote, error) {
	return get[[]ForexQuote](ctx, "/v3/fx", nil)
}

// FetchForexPair fetches the quote of a single currency pair, such as "EURUSD"
// or "EUR/USD".
func FetchForexPair(ctx context.Context, pair string) ([]ForexQuote, error) {
	return get[[]ForexQuote](ctx, symbolPath("/v3/fx/", strings.ReplaceAll(pair, "/", "")), nil)
}
