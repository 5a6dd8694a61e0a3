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

package main

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/fmp/fmp"
	"github.com/stockparfait/fmp/table"
	"github.com/stockparfait/iterator"
	"github.com/stockparfait/logging"

	toml "github.com/pelletier/go-toml/v2"
)

type Flags struct {
	Config      string // default: ~/.fmp/config.toml
	LogLevel    logging.Level
	CSV         bool // dump CSV format; default: text.
	Diagnostics bool // force diagnostic mode regardless of the config
	// Exactly one of the following must be present.
	Quote     string // comma separated symbols
	Profile   string // comma separated symbols
	History   string // symbol
	Forex     bool
	News      string // comma separated symbols
	Estimates string // symbol
	Income    string // symbol
	Search    string // query
	// Optional modifiers.
	From     string // YYYY-MM-DD, for -history
	To       string // YYYY-MM-DD, for -history
	Summary  bool   // print -history summary statistics instead of prices
	Limit    int
	Period   fmp.Period
	Exchange string // for -search
}

func parseFlags(args []string) (*Flags, error) {
	var flags Flags
	fs := flag.NewFlagSet("fmp", flag.ExitOnError)
	fs.StringVar(&flags.Config, "config",
		filepath.Join(os.Getenv("HOME"), ".fmp", "config.toml"),
		"configuration file")
	flags.LogLevel = logging.Info
	fs.Var(&flags.LogLevel, "log-level", "Log level: debug, info, warning, error")
	fs.BoolVar(&flags.CSV, "csv", false, "print table in CSV format; default: text")
	fs.BoolVar(&flags.Diagnostics, "diagnostics", false,
		"log raw response bodies which fail to decode")
	fs.StringVar(&flags.Quote, "quote", "", "comma separated symbols to quote")
	fs.StringVar(&flags.Profile, "profile", "", "comma separated symbols to print company profiles for")
	fs.StringVar(&flags.History, "history", "", "symbol to print daily prices for")
	fs.BoolVar(&flags.Forex, "forex", false, "print all currency pair quotes")
	fs.StringVar(&flags.News, "news", "", "comma separated symbols to print news for")
	fs.StringVar(&flags.Estimates, "estimates", "", "symbol to print analyst estimates for")
	fs.StringVar(&flags.Income, "income", "", "symbol to print income statements for")
	fs.StringVar(&flags.Search, "search", "", "find symbols by name")
	fs.StringVar(&flags.From, "from", "", "start date YYYY-MM-DD for -history")
	fs.StringVar(&flags.To, "to", "", "end date YYYY-MM-DD for -history")
	fs.BoolVar(&flags.Summary, "summary", false, "print log-return statistics for -history")
	fs.IntVar(&flags.Limit, "limit", 0, "max. number of results; 0 = server's default")
	flags.Period = fmp.Annual
	fs.Var(&flags.Period, "period", "annual or quarter, for -estimates and -income")
	fs.StringVar(&flags.Exchange, "exchange", "", "restrict -search to this exchange")

	err := fs.Parse(args)
	if err != nil {
		return nil, err
	}
	kinds := 0
	for _, s := range []string{flags.Quote, flags.Profile, flags.History,
		flags.News, flags.Estimates, flags.Income, flags.Search} {
		if s != "" {
			kinds++
		}
	}
	if flags.Forex {
		kinds++
	}
	if kinds != 1 {
		return nil, errors.Reason("expected exactly one of -quote, -profile, " +
			"-history, -forex, -news, -estimates, -income or -search")
	}
	if flags.Limit < 0 {
		return nil, errors.Reason("-limit must be non-negative")
	}
	return &flags, nil
}

type Config struct {
	Key         string `toml:"key"`         // user key for Financial Modeling Prep
	Endpoint    string `toml:"endpoint"`    // default: fmp.URL
	Diagnostics bool   `toml:"diagnostics"` // see fmp.Options
	Workers     int    `toml:"workers"`     // parallel requests; default: 2*NumCPU
}

func parseConfig(filePath string) (*Config, error) {
	if _, err := os.Stat(filePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sample := `key = "YourSecretFMPKey"
diagnostics = false
`
			return nil, errors.Annotate(err,
				"config file '%s' does not exist.\nPlease create config file containing:\n%s",
				filePath, sample)
		}
		return nil, errors.Annotate(err,
			"cannot check config file for existence: '%s'", filePath)
	}
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Annotate(err, "failed to open config file %s", filePath)
	}
	defer f.Close()

	var c Config
	if err := toml.NewDecoder(f).Decode(&c); err != nil {
		return nil, errors.Annotate(err, "failed to read config file %s", filePath)
	}
	if c.Key == "" {
		return nil, errors.Reason("missing key in config file %s", filePath)
	}
	if c.Endpoint == "" {
		c.Endpoint = fmp.URL
	}
	if c.Workers <= 0 {
		c.Workers = 2 * runtime.NumCPU()
	}
	return &c, nil
}

// symbols splits a comma separated list, dropping empty entries.
func symbols(s string) []string {
	var res []string
	for _, sym := range strings.Split(s, ",") {
		if sym = strings.ToUpper(strings.TrimSpace(sym)); sym != "" {
			res = append(res, sym)
		}
	}
	return res
}

func rows[T table.Row](xs []T) []table.Row {
	res := make([]table.Row, len(xs))
	for i, x := range xs {
		res[i] = x
	}
	return res
}

// profilesTable fetches the profiles in parallel, one request per symbol.
// Symbols which fail to fetch are skipped.
func profilesTable(ctx context.Context, syms []string, workers int) *table.Table {
	f := func(symbol string) []fmp.CompanyProfile {
		p, err := fmp.FetchCompanyProfile(ctx, symbol)
		if err != nil {
			logging.Warningf(ctx, "failed to fetch profile for %s: %s", symbol, err.Error())
			return nil
		}
		return p
	}
	pm := iterator.ParallelMap(ctx, workers, iterator.FromSlice(syms), f)
	defer pm.Close()

	profiles := iterator.Reduce[[]fmp.CompanyProfile, []fmp.CompanyProfile](
		pm, nil, func(p, acc []fmp.CompanyProfile) []fmp.CompanyProfile {
			return append(acc, p...)
		})
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].Symbol < profiles[j].Symbol
	})
	tbl := table.NewTable(fmp.CompanyProfileHeader()...)
	tbl.AddRow(rows(profiles)...)
	return tbl
}

func historyTable(ctx context.Context, flags *Flags) (*table.Table, error) {
	h, err := fmp.FetchHistoricalPrices(ctx, flags.History, flags.From, flags.To)
	if err != nil {
		return nil, errors.Annotate(err, "failed to fetch prices for %s", flags.History)
	}
	if flags.Summary {
		tbl := table.NewTable(fmp.PriceSummaryHeader()...)
		tbl.AddRow(h.Summary())
		return tbl, nil
	}
	tbl := table.NewTable(fmp.HistoricalPriceHeader()...)
	tbl.AddRow(rows(h.Historical)...)
	return tbl, nil
}

func fetchTable(ctx context.Context, flags *Flags, workers int) (*table.Table, error) {
	switch {
	case flags.Quote != "":
		quotes, err := fmp.FetchQuotes(ctx, symbols(flags.Quote)...)
		if err != nil {
			return nil, errors.Annotate(err, "failed to fetch quotes")
		}
		tbl := table.NewTable(fmp.QuoteHeader()...)
		tbl.AddRow(rows(quotes)...)
		return tbl, nil
	case flags.Profile != "":
		return profilesTable(ctx, symbols(flags.Profile), workers), nil
	case flags.History != "":
		return historyTable(ctx, flags)
	case flags.Forex:
		fx, err := fmp.FetchForexQuotes(ctx)
		if err != nil {
			return nil, errors.Annotate(err, "failed to fetch forex quotes")
		}
		tbl := table.NewTable(fmp.ForexQuoteHeader()...)
		tbl.AddRow(rows(fx)...)
		return tbl, nil
	case flags.News != "":
		news, err := fmp.FetchStockNews(ctx, flags.Limit, symbols(flags.News)...)
		if err != nil {
			return nil, errors.Annotate(err, "failed to fetch news")
		}
		tbl := table.NewTable(fmp.NewsArticleHeader()...)
		tbl.AddRow(rows(news)...)
		return tbl, nil
	case flags.Estimates != "":
		est, err := fmp.FetchAnalystEstimates(ctx, flags.Estimates, flags.Period, flags.Limit)
		if err != nil {
			return nil, errors.Annotate(err, "failed to fetch estimates for %s", flags.Estimates)
		}
		tbl := table.NewTable(fmp.AnalystEstimateHeader()...)
		tbl.AddRow(rows(est)...)
		return tbl, nil
	case flags.Income != "":
		st, err := fmp.FetchIncomeStatements(ctx, flags.Income, flags.Period, flags.Limit)
		if err != nil {
			return nil, errors.Annotate(err, "failed to fetch income statements for %s", flags.Income)
		}
		tbl := table.NewTable(fmp.IncomeStatementHeader()...)
		tbl.AddRow(rows(st)...)
		return tbl, nil
	case flags.Search != "":
		res, err := fmp.SearchStocks(ctx, flags.Search, flags.Exchange, flags.Limit)
		if err != nil {
			return nil, errors.Annotate(err, "failed to search for '%s'", flags.Search)
		}
		tbl := table.NewTable(fmp.SearchResultHeader()...)
		tbl.AddRow(rows(res)...)
		return tbl, nil
	}
	return nil, errors.Reason("nothing to fetch")
}

// printData fetches the requested data and prints it to w. Requests use the
// HTTP client from fetch.UseClient, if any.
func printData(ctx context.Context, flags *Flags, w io.Writer) error {
	config, err := parseConfig(flags.Config)
	if err != nil {
		return errors.Annotate(err, "failed to parse config")
	}
	ctx = fmp.UseClient(ctx, fmp.NewClient(config.Endpoint, config.Key))
	ctx = fmp.UseFetcher(ctx, fmp.NewFetcher(fmp.Options{
		Diagnostics: config.Diagnostics || flags.Diagnostics,
	}))

	tbl, err := fetchTable(ctx, flags, config.Workers)
	if err != nil {
		return err
	}
	if flags.CSV {
		if err := tbl.WriteCSV(w, table.Params{}); err != nil {
			return errors.Annotate(err, "failed to print CSV")
		}
		return nil
	}
	if err := tbl.WriteText(w, table.Params{MaxColWidth: 60}); err != nil {
		return errors.Annotate(err, "failed to print text")
	}
	return nil
}

func main() {
	ctx := context.Background()
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		ctx = logging.Use(ctx, logging.DefaultGoLogger(logging.Info))
		logging.Errorf(ctx, "failed to parse flags: %s", err.Error())
		os.Exit(1)
	}
	ctx = logging.Use(ctx, logging.DefaultGoLogger(flags.LogLevel))

	if err := printData(ctx, flags, os.Stdout); err != nil {
		logging.Errorf(ctx, err.Error())
		os.Exit(1)
	}
}
