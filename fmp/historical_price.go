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
	"math"
	"strconv"

	"github.com/stockparfait/fmp/table"

	"gonum.org/v1/gonum/stat"
)

// HistoricalPrice is the daily price of a symbol.
type HistoricalPrice struct {
	Date             string  `json:"date"` // YYYY-MM-DD
	Open             float64 `json:"open"`
	High             float64 `json:"high"`
	Low              float64 `json:"low"`
	Close            float64 `json:"close"`
	AdjClose         float64 `json:"adjClose"`
	Volume           float64 `json:"volume"`
	UnadjustedVolume float64 `json:"unadjustedVolume"`
	Change           float64 `json:"change"`
	ChangePercent    float64 `json:"changePercent"`
	VWAP             float64 `json:"vwap"`
	Label            string  `json:"label"`
	ChangeOverTime   float64 `json:"changeOverTime"`
}

var _ table.Row = HistoricalPrice{}

// HistoricalPriceHeader is the table header matching HistoricalPrice.CSV.
func HistoricalPriceHeader() []string {
	return []string{"Date", "Open", "High", "Low", "Close", "Adj Close", "Volume"}
}

// CSV implements table.Row.
func (p HistoricalPrice) CSV() []string {
	return []string{
		p.Date,
		formatFloat(p.Open),
		formatFloat(p.High),
		formatFloat(p.Low),
		formatFloat(p.Close),
		formatFloat(p.AdjClose),
		formatFloat(p.Volume),
	}
}

// HistoricalPrices is the daily price history of a symbol. The server lists
// the most recent date first.
type HistoricalPrices struct {
	Symbol     string            `json:"symbol"`
	Historical []HistoricalPrice `json:"historical"`
}

// FetchHistoricalPrices fetches the daily prices of the symbol between the two
// dates, inclusive, in YYYY-MM-DD format. Empty dates are omitted from the
// query. An unknown symbol results in an empty HistoricalPrices.
func FetchHistoricalPrices(ctx context.Context, symbol, from, to string) (HistoricalPrices, error) {
	return get[HistoricalPrices](ctx, symbolPath("/v3/historical-price-full/", symbol),
		dateRange(from, to))
}

// PriceSummary is the statistics of daily log-returns of adjusted close
// prices.
type PriceSummary struct {
	Symbol  string
	From    string // the oldest date
	To      string // the most recent date
	Returns int    // the number of daily returns
	Mean    float64
	StdDev  float64
	Total   float64 // total log-return over the period
}

var _ table.Row = PriceSummary{}

// PriceSummaryHeader is the table header matching PriceSummary.CSV.
func PriceSummaryHeader() []string {
	return []string{"Symbol", "From", "To", "Returns", "Mean", "Std Dev", "Total"}
}

// CSV implements table.Row.
func (s PriceSummary) CSV() []string {
	return []string{
		s.Symbol,
		s.From,
		s.To,
		strconv.Itoa(s.Returns),
		strconv.FormatFloat(s.Mean, 'f', 6, 64),
		strconv.FormatFloat(s.StdDev, 'f', 6, 64),
		strconv.FormatFloat(s.Total, 'f', 6, 64),
	}
}

// Summary computes the statistics of daily log-returns. Prices with
// non-positive adjusted close are skipped. With fewer than two returns the
// standard deviation is 0.
func (h HistoricalPrices) Summary() PriceSummary {
	s := PriceSummary{Symbol: h.Symbol}
	var returns []float64
	prev := 0.0
	// Walk from the oldest price.
	for i := len(h.Historical) - 1; i >= 0; i-- {
		p := h.Historical[i]
		if p.AdjClose <= 0 {
			continue
		}
		if s.From == "" {
			s.From = p.Date
		}
		s.To = p.Date
		if prev > 0 {
			returns = append(returns, math.Log(p.AdjClose/prev))
		}
		prev = p.AdjClose
	}
	s.Returns = len(returns)
	switch len(returns) {
	case 0:
	case 1:
		s.Mean = returns[0]
	default:
		s.Mean, s.StdDev = stat.MeanStdDev(returns, nil)
	}
	for _, r := range returns {
		s.Total += r
	}
	return s
}
