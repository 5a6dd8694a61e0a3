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

// NewsArticle is a stock related news item.
type NewsArticle struct {
	Symbol        string `json:"symbol"`
	PublishedDate string `json:"publishedDate"`
	Title         string `json:"title"`
	Image         string `json:"image"`
	Site          string `json:"site"`
	Text          string `json:"text"`
	URL           string `json:"url"`
}

var _ table.Row = NewsArticle{}

// NewsArticleHeader is the table header matching NewsArticle.CSV.
func NewsArticleHeader() []string {
	return []string{"Published", "Symbol", "Site", "Title", "URL"}
}

// CSV implements table.Row.
func (n NewsArticle) CSV() []string {
	return []string{n.PublishedDate, n.Symbol, n.Site, n.Title, n.URL}
}

// FetchStockNews fetches the latest news, most recent first, optionally
// restricted to the given tickers. Non-positive limit means the server's
// default.
func FetchStockNews(ctx context.Context, limit int, tickers ...string) ([]NewsArticle, error) {
	q := limitQuery(limit)
	if len(tickers) > 0 {
		q.Set("tickers", strings.Join(tickers, ","))
	}
	return get[[]NewsArticle](ctx, "/v3/stock_news", q)
}
