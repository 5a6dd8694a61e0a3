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

// StatementHeader is common to all the financial statements.
type StatementHeader struct {
	Date             string `json:"date"`
	Symbol           string `json:"symbol"`
	ReportedCurrency string `json:"reportedCurrency"`
	CIK              string `json:"cik"`
	FillingDate      string `json:"fillingDate"`
	AcceptedDate     string `json:"acceptedDate"`
	CalendarYear     string `json:"calendarYear"`
	Period           string `json:"period"` // "FY", "Q1".."Q4"
	Link             string `json:"link"`
	FinalLink        string `json:"finalLink"`
}

// IncomeStatement of a company for a fiscal period.
type IncomeStatement struct {
	StatementHeader
	Revenue                      float64 `json:"revenue"`
	CostOfRevenue                float64 `json:"costOfRevenue"`
	GrossProfit                  float64 `json:"grossProfit"`
	GrossProfitRatio             float64 `json:"grossProfitRatio"`
	ResearchAndDevelopment       float64 `json:"researchAndDevelopmentExpenses"`
	SellingGeneralAdministrative float64 `json:"sellingGeneralAndAdministrativeExpenses"`
	OperatingExpenses            float64 `json:"operatingExpenses"`
	OperatingIncome              float64 `json:"operatingIncome"`
	OperatingIncomeRatio         float64 `json:"operatingIncomeRatio"`
	InterestExpense              float64 `json:"interestExpense"`
	DepreciationAndAmortization  float64 `json:"depreciationAndAmortization"`
	EBITDA                       float64 `json:"ebitda"`
	IncomeBeforeTax              float64 `json:"incomeBeforeTax"`
	IncomeTaxExpense             float64 `json:"incomeTaxExpense"`
	NetIncome                    float64 `json:"netIncome"`
	NetIncomeRatio               float64 `json:"netIncomeRatio"`
	EPS                          float64 `json:"eps"`
	EPSDiluted                   float64 `json:"epsdiluted"`
	WeightedAverageShares        float64 `json:"weightedAverageShsOut"`
	WeightedAverageSharesDiluted float64 `json:"weightedAverageShsOutDil"`
}

var _ table.Row = IncomeStatement{}

// IncomeStatementHeader is the table header matching IncomeStatement.CSV.
func IncomeStatementHeader() []string {
	return []string{"Date", "Period", "Currency", "Revenue", "Gross Profit",
		"Operating Income", "Net Income", "EPS", "EPS Diluted"}
}

// CSV implements table.Row.
func (s IncomeStatement) CSV() []string {
	return []string{
		s.Date,
		s.Period,
		s.ReportedCurrency,
		formatFloat(s.Revenue),
		formatFloat(s.GrossProfit),
		formatFloat(s.OperatingIncome),
		formatFloat(s.NetIncome),
		formatFloat(s.EPS),
		formatFloat(s.EPSDiluted),
	}
}

// BalanceSheet of a company at the end of a fiscal period.
type BalanceSheet struct {
	StatementHeader
	CashAndCashEquivalents     float64 `json:"cashAndCashEquivalents"`
	ShortTermInvestments       float64 `json:"shortTermInvestments"`
	NetReceivables             float64 `json:"netReceivables"`
	Inventory                  float64 `json:"inventory"`
	TotalCurrentAssets         float64 `json:"totalCurrentAssets"`
	PropertyPlantEquipmentNet  float64 `json:"propertyPlantEquipmentNet"`
	Goodwill                   float64 `json:"goodwill"`
	LongTermInvestments        float64 `json:"longTermInvestments"`
	TotalNonCurrentAssets      float64 `json:"totalNonCurrentAssets"`
	TotalAssets                float64 `json:"totalAssets"`
	AccountPayables            float64 `json:"accountPayables"`
	ShortTermDebt              float64 `json:"shortTermDebt"`
	TotalCurrentLiabilities    float64 `json:"totalCurrentLiabilities"`
	LongTermDebt               float64 `json:"longTermDebt"`
	TotalNonCurrentLiabilities float64 `json:"totalNonCurrentLiabilities"`
	TotalLiabilities           float64 `json:"totalLiabilities"`
	CommonStock                float64 `json:"commonStock"`
	RetainedEarnings           float64 `json:"retainedEarnings"`
	TotalStockholdersEquity    float64 `json:"totalStockholdersEquity"`
	TotalDebt                  float64 `json:"totalDebt"`
	NetDebt                    float64 `json:"netDebt"`
}

// CashFlowStatement of a company for a fiscal period.
type CashFlowStatement struct {
	StatementHeader
	NetIncome                   float64 `json:"netIncome"`
	DepreciationAndAmortization float64 `json:"depreciationAndAmortization"`
	StockBasedCompensation      float64 `json:"stockBasedCompensation"`
	OperatingCashFlow           float64 `json:"operatingCashFlow"`
	CapitalExpenditure          float64 `json:"capitalExpenditure"`
	NetCashUsedForInvesting     float64 `json:"netCashUsedForInvestingActivites"`
	DebtRepayment               float64 `json:"debtRepayment"`
	CommonStockRepurchased      float64 `json:"commonStockRepurchased"`
	DividendsPaid               float64 `json:"dividendsPaid"`
	NetCashUsedForFinancing     float64 `json:"netCashUsedProvidedByFinancingActivities"`
	NetChangeInCash             float64 `json:"netChangeInCash"`
	FreeCashFlow                float64 `json:"freeCashFlow"`
}

func statementQuery(period Period, limit int) url.Values {
	q := limitQuery(limit)
	q.Set("period", period.Query())
	return q
}

// FetchIncomeStatements fetches the income statements of the symbol, most
// recent first. Non-positive limit means the server's default.
func FetchIncomeStatements(ctx context.Context, symbol string, period Period, limit int) ([]IncomeStatement, error) {
	return get[[]IncomeStatement](ctx, symbolPath("/v3/income-statement/", symbol),
		statementQuery(period, limit))
}

// FetchBalanceSheets fetches the balance sheets of the symbol, most recent
// first. Non-positive limit means the server's default.
func FetchBalanceSheets(ctx context.Context, symbol string, period Period, limit int) ([]BalanceSheet, error) {
	return get[[]BalanceSheet](ctx, symbolPath("/v3/balance-sheet-statement/", symbol),
		statementQuery(period, limit))
}

// FetchCashFlowStatements fetches the cash flow statements of the symbol, most
// recent first. Non-positive limit means the server's default.
func FetchCashFlowStatements(ctx context.Context, symbol string, period Period, limit int) ([]CashFlowStatement, error) {
	return get[[]CashFlowStatement](ctx, symbolPath("/v3/cash-flow-statement/", symbol),
		statementQuery(period, limit))
}
