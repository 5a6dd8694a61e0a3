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
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stockparfait/fetch"
	"github.com/stockparfait/fmp/fmp"
	"github.com/stockparfait/logging"
	"github.com/stockparfait/testutil"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(t *testing.T) {
	t.Parallel()

	tmpdir, tmpdirErr := os.MkdirTemp("", "test_fmp_app")
	defer os.RemoveAll(tmpdir)

	Convey("Setup succeeded", t, func() {
		So(tmpdirErr, ShouldBeNil)
	})

	Convey("parseFlags", t, func() {
		Convey("all the modifiers", func() {
			flags, err := parseFlags([]string{
				"-config", "path/to/config.toml", "-log-level", "warning",
				"-income", "AAPL", "-period", "quarter", "-limit", "4", "-csv"})
			So(err, ShouldBeNil)
			So(flags.Config, ShouldEqual, "path/to/config.toml")
			So(flags.LogLevel, ShouldEqual, logging.Warning)
			So(flags.Income, ShouldEqual, "AAPL")
			So(flags.Period, ShouldEqual, fmp.Quarter)
			So(flags.Limit, ShouldEqual, 4)
			So(flags.CSV, ShouldBeTrue)
		})

		Convey("defaults", func() {
			flags, err := parseFlags([]string{"-forex"})
			So(err, ShouldBeNil)
			So(flags.Period, ShouldEqual, fmp.Annual)
			So(flags.LogLevel, ShouldEqual, logging.Info)
			So(filepath.Base(flags.Config), ShouldEqual, "config.toml")
		})

		Convey("exactly one request", func() {
			_, err := parseFlags([]string{"-quote", "AAPL", "-forex"})
			So(err, ShouldNotBeNil)
			_, err = parseFlags([]string{"-csv"})
			So(err, ShouldNotBeNil)
		})

		Convey("negative limit", func() {
			_, err := parseFlags([]string{"-news", "AAPL", "-limit", "-1"})
			So(err, ShouldNotBeNil)
		})
	})

	Convey("parseConfig", t, func() {
		configFile := filepath.Join(tmpdir, "config.toml")

		Convey("full config", func() {
			So(testutil.WriteFile(configFile, `key = "testKey"
endpoint = "http://localhost/api"
diagnostics = true
workers = 3
`), ShouldBeNil)
			c, err := parseConfig(configFile)
			So(err, ShouldBeNil)
			So(c, ShouldResemble, &Config{
				Key:         "testKey",
				Endpoint:    "http://localhost/api",
				Diagnostics: true,
				Workers:     3,
			})
		})

		Convey("defaults", func() {
			So(testutil.WriteFile(configFile, `key = "testKey"`), ShouldBeNil)
			c, err := parseConfig(configFile)
			So(err, ShouldBeNil)
			So(c.Endpoint, ShouldEqual, fmp.URL)
			So(c.Diagnostics, ShouldBeFalse)
			So(c.Workers, ShouldBeGreaterThan, 0)
		})

		Convey("missing key", func() {
			So(testutil.WriteFile(configFile, `diagnostics = true`), ShouldBeNil)
			_, err := parseConfig(configFile)
			So(err, ShouldNotBeNil)
		})

		Convey("missing file", func() {
			_, err := parseConfig(filepath.Join(tmpdir, "missing.toml"))
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "YourSecretFMPKey")
		})
	})

	Convey("symbols", t, func() {
		So(symbols(" aapl, MSFT,,goog "), ShouldResemble, []string{"AAPL", "MSFT", "GOOG"})
		So(symbols(""), ShouldBeNil)
	})

	Convey("printData with canned responses", t, func() {
		server := testutil.NewTestServer()
		defer server.Close()
		server.ResponseBody = []string{"[]"}

		configFile := filepath.Join(tmpdir, "canned.toml")
		So(testutil.WriteFile(configFile, fmt.Sprintf(`key = "testKey"
endpoint = "%s/api"
`, server.URL())), ShouldBeNil)
		ctx := fetch.UseClient(context.Background(), server.Client())

		Convey("quote CSV", func() {
			server.ResponseBody = []string{`[{"symbol": "AAPL", "name": "Apple",
  "price": 150.5, "volume": 100, "exchange": "NASDAQ"}]`}
			flags, err := parseFlags([]string{"-config", configFile,
				"-quote", "aapl", "-csv"})
			So(err, ShouldBeNil)
			var buf bytes.Buffer
			So(printData(ctx, flags, &buf), ShouldBeNil)
			So(server.RequestPath, ShouldEqual, "/api/v3/quote/AAPL")
			So(server.RequestQuery.Get("apikey"), ShouldEqual, "testKey")
			So("\n"+buf.String(), ShouldEqual, `
Symbol,Name,Price,Change,Change %,Day Low,Day High,Volume,Market Cap,Exchange
AAPL,Apple,150.5,0,0,0,0,100,0,NASDAQ
`)
		})

		Convey("forex text", func() {
			server.ResponseBody = []string{`[{"ticker": "EUR/USD", "bid": "1.13",
  "ask": "1.14", "open": "1.12", "low": "1.11", "high": "1.15", "changes": 0.5,
  "date": "2022-01-03"}]`}
			flags, err := parseFlags([]string{"-config", configFile, "-forex"})
			So(err, ShouldBeNil)
			var buf bytes.Buffer
			So(printData(ctx, flags, &buf), ShouldBeNil)
			So(server.RequestPath, ShouldEqual, "/api/v3/fx")
			So("\n"+buf.String(), ShouldEqual, `
 Ticker |  Bid |  Ask | Open |  Low | High | Changes |       Date
------- | ---- | ---- | ---- | ---- | ---- | ------- | ----------
EUR/USD | 1.13 | 1.14 | 1.12 | 1.11 | 1.15 |     0.5 | 2022-01-03
`)
		})

		Convey("history summary", func() {
			server.ResponseBody = []string{`{"symbol": "AAPL", "historical": [
  {"date": "2020-01-03", "adjClose": 121},
  {"date": "2020-01-02", "adjClose": 110},
  {"date": "2020-01-01", "adjClose": 100}
]}`}
			flags, err := parseFlags([]string{"-config", configFile,
				"-history", "AAPL", "-from", "2020-01-01", "-summary", "-csv"})
			So(err, ShouldBeNil)
			var buf bytes.Buffer
			So(printData(ctx, flags, &buf), ShouldBeNil)
			So(server.RequestQuery.Get("from"), ShouldEqual, "2020-01-01")
			So("\n"+buf.String(), ShouldEqual, `
Symbol,From,To,Returns,Mean,Std Dev,Total
AAPL,2020-01-01,2020-01-03,2,0.095310,0.000000,0.190620
`)
		})

		Convey("malformed response fails", func() {
			server.ResponseBody = []string{`{"not": "a list"}`}
			flags, err := parseFlags([]string{"-config", configFile,
				"-search", "apple", "-diagnostics"})
			So(err, ShouldBeNil)
			var buf bytes.Buffer
			So(printData(ctx, flags, &buf), ShouldNotBeNil)
		})
	})

	Convey("printData fans out profiles", t, func() {
		server := testutil.NewTestServer()
		defer server.Close()
		for _, sym := range []string{"MSFT", "AAPL", "GOOG"} {
			server.ResponseBodyMap["/api/v3/profile/"+sym] = []string{fmt.Sprintf(
				`[{"symbol": "%s", "companyName": "Name %s", "sector": "Tech"}]`,
				sym, sym)}
		}
		server.ResponseStatusMap["/api/v3/profile/BAD"] = []int{http.StatusNotFound}

		// The test server records requests in shared fields; fetch one profile
		// at a time.
		configFile := filepath.Join(tmpdir, "profiles.toml")
		So(testutil.WriteFile(configFile, fmt.Sprintf(`key = "testKey"
endpoint = "%s/api"
workers = 1
`, server.URL())), ShouldBeNil)

		flags, err := parseFlags([]string{"-config", configFile,
			"-profile", "MSFT,BAD,AAPL,GOOG", "-csv"})
		So(err, ShouldBeNil)
		ctx := fetch.UseClient(context.Background(), server.Client())
		var buf bytes.Buffer
		So(printData(ctx, flags, &buf), ShouldBeNil)
		So(server.BodyWriteError, ShouldBeNil)
		So("\n"+buf.String(), ShouldEqual, `
Symbol,Name,Exchange,Sector,Industry,Country,Market Cap,Beta,Website
AAPL,Name AAPL,,Tech,,,0,0,
GOOG,Name GOOG,,Tech,,,0,0,
MSFT,Name MSFT,,Tech,,,0,0,
`)
	})

	Convey("printData reports status failures", t, func() {
		server := testutil.NewTestServer()
		defer server.Close()
		server.ResponseStatus = []int{http.StatusUnauthorized}

		configFile := filepath.Join(tmpdir, "unauthorized.toml")
		So(testutil.WriteFile(configFile, fmt.Sprintf(`key = "wrongKey"
endpoint = "%s"
`, server.URL())), ShouldBeNil)
		flags, err := parseFlags([]string{"-config", configFile, "-quote", "AAPL"})
		So(err, ShouldBeNil)
		ctx := fetch.UseClient(context.Background(), server.Client())
		var buf bytes.Buffer
		err = printData(ctx, flags, &buf)
		So(err, ShouldNotBeNil)
		So(fmp.StatusCode(err), ShouldEqual, http.StatusUnauthorized)
		So(err.Error(), ShouldContainSubstring, "HTTP 401")
		So(buf.String(), ShouldEqual, "")
	})
}
