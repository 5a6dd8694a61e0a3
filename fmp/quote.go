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
	"strconv"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/fmp/table"
)

// Quote is a real-time quote of a single symbol.
type Quote struct {
	Symbol               string  `json:"symbol"`
	Name                 string  `json:"name"`
	Price                float64 `json:"price"`
	ChangesPercentage    float64 `json:"changesPercentage"`
	Change               float64 `json:"change"`
	DayLow               float64 `json:"dayLow"`
	DayHigh              float64 `json:"dayHigh"`
	YearHigh             float64 `json:"yearHigh"`
	YearLow              float64 `json:"yearLow"`
	MarketCap            float64 `json:"marketCap"`
	PriceAvg50           float64 `json:"priceAvg50"`
	PriceAvg200          float64 `json:"priceAvg200"`
	Exchange             string  `json:"exchange"`
	Volume               int64   `json:"volume"`
	AvgVolume            int64   `json:"avgVolume"`
	Open                 float64 `json:"open"`
	PreviousClose        float64 `json:"previousClose"`
	EPS                  float64 `json:"eps"`
	PE                   float64 `json:"pe"`
	EarningsAnnouncement string  `json:"earningsAnnouncement"`
	SharesOutstanding    float64 `json:"sharesOutstanding"`
	Timestamp            int64   `json:"timestamp"`
}

var _ table.Row = Quote{}

// QuoteHeader is the table header matching Quote.CSV.
func QuoteHeader() []string {
	return []string{"Symbol", "Name", "Price", "Change", "Change %", "Day Low",
		"Day High", "Volume", "Market Cap", "Exchange"}
}

// CSV implements table.Row.
func (q Quote) CSV() []string {
	return []string{
		q.Symbol,
		q.Name,
		formatFloat(q.Price),
		formatFloat(q.Change),
		formatFloat(q.ChangesPercentage),
		formatFloat(q.DayLow),
		formatFloat(q.DayHigh),
		strconv.FormatInt(q.Volume, 10),
		formatFloat(q.MarketCap),
		q.Exchange,
	}
}

// FetchQuotes fetches the quotes for one or more symbols in a single request.
func FetchQuotes(ctx context.Context, symbols ...string) ([]Quote, error) {
	if len(symbols) == 0 {
		return nil, errors.Reason("no symbols to quote")
	}
	return get[[]Quote](ctx, symbolPath("/v3/quote/", symbols...), nil)
}
