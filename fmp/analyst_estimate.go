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

	"github.com/stockparfait/fmp/table"
)

// AnalystEstimate is the consensus of analysts' estimates for a fiscal period.
type AnalystEstimate struct {
	Symbol                        string  `json:"symbol"`
	Date                          string  `json:"date"`
	EstimatedRevenueLow           float64 `json:"estimatedRevenueLow"`
	EstimatedRevenueHigh          float64 `json:"estimatedRevenueHigh"`
	EstimatedRevenueAvg           float64 `json:"estimatedRevenueAvg"`
	EstimatedEbitdaLow            float64 `json:"estimatedEbitdaLow"`
	EstimatedEbitdaHigh           float64 `json:"estimatedEbitdaHigh"`
	EstimatedEbitdaAvg            float64 `json:"estimatedEbitdaAvg"`
	EstimatedEbitLow              float64 `json:"estimatedEbitLow"`
	EstimatedEbitHigh             float64 `json:"estimatedEbitHigh"`
	EstimatedEbitAvg              float64 `json:"estimatedEbitAvg"`
	EstimatedNetIncomeLow         float64 `json:"estimatedNetIncomeLow"`
	EstimatedNetIncomeHigh        float64 `json:"estimatedNetIncomeHigh"`
	EstimatedNetIncomeAvg         float64 `json:"estimatedNetIncomeAvg"`
	EstimatedSgaExpenseLow        float64 `json:"estimatedSgaExpenseLow"`
	EstimatedSgaExpenseHigh       float64 `json:"estimatedSgaExpenseHigh"`
	EstimatedSgaExpenseAvg        float64 `json:"estimatedSgaExpenseAvg"`
	EstimatedEpsAvg               float64 `json:"estimatedEpsAvg"`
	EstimatedEpsHigh              float64 `json:"estimatedEpsHigh"`
	EstimatedEpsLow               float64 `json:"estimatedEpsLow"`
	NumberAnalystEstimatedRevenue int     `json:"numberAnalystEstimatedRevenue"`
	NumberAnalystsEstimatedEps    int     `json:"numberAnalystsEstimatedEps"`
}

var _ table.Row = AnalystEstimate{}

// AnalystEstimateHeader is the table header matching AnalystEstimate.CSV.
func AnalystEstimateHeader() []string {
	return []string{"Date", "Symbol", "Revenue Avg", "EBITDA Avg", "Net Income Avg",
		"EPS Low", "EPS Avg", "EPS High", "Analysts"}
}

// CSV implements table.Row.
func (e AnalystEstimate) CSV() []string {
	return []string{
		e.Date,
		e.Symbol,
		formatFloat(e.EstimatedRevenueAvg),
		formatFloat(e.EstimatedEbitdaAvg),
		formatFloat(e.EstimatedNetIncomeAvg),
		formatFloat(e.EstimatedEpsLow),
		formatFloat(e.EstimatedEpsAvg),
		formatFloat(e.EstimatedEpsHigh),
		strconv.Itoa(e.NumberAnalystsEstimatedEps),
	}
}

// FetchAnalystEstimates fetches the estimates for the symbol's annual or
// quarterly periods. Non-positive limit means the server's default.
func FetchAnalystEstimates(ctx context.Context, symbol string, period Period, limit int) ([]AnalystEstimate, error) {
	q := limitQuery(limit)
	q.Set("period", period.Query())
	return get[[]AnalystEstimate](ctx, symbolPath("/v3/analyst-estimates/", symbol), q)
}
