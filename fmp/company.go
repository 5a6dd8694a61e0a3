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

// CompanyProfile is the general information about a company.
type CompanyProfile struct {
	Symbol            string  `json:"symbol"`
	Price             float64 `json:"price"`
	Beta              float64 `json:"beta"`
	VolAvg            int64   `json:"volAvg"`
	MktCap            float64 `json:"mktCap"`
	LastDiv           float64 `json:"lastDiv"`
	Range             string  `json:"range"`
	Changes           float64 `json:"changes"`
	CompanyName       string  `json:"companyName"`
	Currency          string  `json:"currency"`
	CIK               string  `json:"cik"`
	ISIN              string  `json:"isin"`
	CUSIP             string  `json:"cusip"`
	Exchange          string  `json:"exchange"`
	ExchangeShortName string  `json:"exchangeShortName"`
	Industry          string  `json:"industry"`
	Website           string  `json:"website"`
	Description       string  `json:"description"`
	CEO               string  `json:"ceo"`
	Sector            string  `json:"sector"`
	Country           string  `json:"country"`
	FullTimeEmployees string  `json:"fullTimeEmployees"`
	Phone             string  `json:"phone"`
	Address           string  `json:"address"`
	City              string  `json:"city"`
	State             string  `json:"state"`
	Zip               string  `json:"zip"`
	DCFDiff           float64 `json:"dcfDiff"`
	DCF               float64 `json:"dcf"`
	Image             string  `json:"image"`
	IPODate           string  `json:"ipoDate"`
	DefaultImage      bool    `json:"defaultImage"`
	IsETF             bool    `json:"isEtf"`
	IsActivelyTrading bool    `json:"isActivelyTrading"`
	IsADR             bool    `json:"isAdr"`
	IsFund            bool    `json:"isFund"`
}

var _ table.Row = CompanyProfile{}

// CompanyProfileHeader is the table header matching CompanyProfile.CSV.
func CompanyProfileHeader() []string {
	return []string{"Symbol", "Name", "Exchange", "Sector", "Industry",
		"Country", "Market Cap", "Beta", "Website"}
}

// CSV implements table.Row.
func (p CompanyProfile) CSV() []string {
	return []string{
		p.Symbol,
		p.CompanyName,
		p.ExchangeShortName,
		p.Sector,
		p.Industry,
		p.Country,
		formatFloat(p.MktCap),
		formatFloat(p.Beta),
		p.Website,
	}
}

// KeyExecutive is a member of the company's management.
type KeyExecutive struct {
	Title       string  `json:"title"`
	Name        string  `json:"name"`
	Pay         float64 `json:"pay"`
	CurrencyPay string  `json:"currencyPay"`
	Gender      string  `json:"gender"`
	YearBorn    int     `json:"yearBorn"`
	TitleSince  int64   `json:"titleSince"`
}

var _ table.Row = KeyExecutive{}

// KeyExecutiveHeader is the table header matching KeyExecutive.CSV.
func KeyExecutiveHeader() []string {
	return []string{"Name", "Title", "Pay", "Currency", "Year Born"}
}

// CSV implements table.Row.
func (e KeyExecutive) CSV() []string {
	born := ""
	if e.YearBorn > 0 {
		born = strconv.Itoa(e.YearBorn)
	}
	return []string{e.Name, e.Title, formatFloat(e.Pay), e.CurrencyPay, born}
}

// FetchCompanyProfile fetches the profile of the company. The server responds
// with a list, which is empty for unknown symbols.
func FetchCompanyProfile(ctx context.Context, symbol string) ([]CompanyProfile, error) {
	return get[[]CompanyProfile](ctx, symbolPath("/v3/profile/", symbol), nil)
}

// FetchKeyExecutives fetches the list of the company's key executives.
func FetchKeyExecutives(ctx context.Context, symbol string) ([]KeyExecutive, error) {
	return get[[]KeyExecutive](ctx, symbolPath("/v3/key-executives/", symbol), nil)
}
