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
	"flag"
	"strings"

	"github.com/stockparfait/errors"

	"golang.org/x/exp/slices"
)

// Period of financial statements and estimates.
type Period string

// Values of Period.
const (
	Annual  Period = "annual"
	Quarter Period = "quarter"
)

var periods = []Period{Annual, Quarter}

var _ flag.Value = new(Period)

// ParsePeriod converts a string, case insensitive, into a Period.
func ParsePeriod(s string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(periods, p) {
		return "", errors.Reason("unknown period: '%s'", s)
	}
	return p, nil
}

// String implements flag.Value.
func (p Period) String() string {
	if p == "" {
		return string(Annual)
	}
	return string(p)
}

// Set implements flag.Value.
func (p *Period) Set(s string) error {
	v, err := ParsePeriod(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// UnmarshalText allows a Period in text configs such as TOML.
func (p *Period) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}

// Query value of the period. The zero Period is Annual, which is also the
// server's default.
func (p Period) Query() string {
	return p.String()
}
