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
	"net/url"

	"github.com/stockparfait/fmp/table"
)

// Earning is a single earnings report, either historical or scheduled. Absent
// values are nil.
type Earning struct {
	Date             string   `json:"date"`
	Symbol           string   `json:"symbol"`
	EPS              *float64 `json:"eps"`
	EPSEstimated     *float64 `json:"epsEstimated"`
	Time             string   `json:"time"` // "bmo" or "amc"
	Revenue          *float64 `json:"revenue"`
	RevenueEstimated *float64 `json:"revenueEstimated"`
	FiscalDateEnding string   `json:"fiscalDateEnding"`
	UpdatedFromDate  string   `json:"updatedFromDate"`
}

var _ table.Row = Earning{}

// EarningHeader is the table header matching Earning.CSV.
func EarningHeader() []string {
	return []string{"Date", "Symbol", "EPS", "EPS Estimated", "Revenue",
		"Revenue Estimated", "Fiscal Date Ending"}
}

func optFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}

// CSV implements table.Row.
func (e Earning) CSV() []string {
	return []string{
		e.Date,
		e.Symbol,
		optFloat(e.EPS),
		optFloat(e.EPSEstimated),
		optFloat(e.Revenue),
		optFloat(e.RevenueEstimated),
		e.FiscalDateEnding,
	}
}

// FetchEarnings fetches the historical and upcoming earnings of the symbol,
// most recent first. Non-positive limit means the server's default.
func FetchEarnings(ctx context.Context, symbol string, limit int) ([]Earning, error) {
	return get[[]Earning](ctx, symbolPath("/v3/historical/earning_calendar/", symbol),
		limitQuery(limit))
}

// FetchEarningsCalendar fetches the earnings of all companies between the two
// dates, inclusive, in YYYY-MM-DD format. Empty dates are omitted from the
// query.
func FetchEarningsCalendar(ctx context.Context, from, to string) ([]Earning, error) {
	return get[[]Earning](ctx, "/v3/earning_calendar", dateRange(from, to))
}

// dateRange creates a query with the optional "from" and "to" dates.
func dateRange(from, to string) url.Values {
	q := make(url.Values)
	if from != "" {
		q.Set("from", from)
	}
	if to != "" {
		q.Set("to", to)
	}
	return q
}
