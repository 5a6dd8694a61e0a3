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
	"strconv"
	"strings"

	"github.com/stockparfait/errors"
)

type contextKey int

const (
	clientContextKey contextKey = iota
	fetcherContextKey
)

// URL is the default base URL of the server. It may be overwritten in tests
// before creating a new client.
var URL = "https://financialmodelingprep.com/api"

// Client holds the API origin and the key used to compose request URLs. It is
// never modified after creation.
type Client struct {
	base   string // the base URL of the server
	apiKey string // your very own secret key
}

// NewClient creates a new client. The arguments are not validated; a malformed
// endpoint surfaces as a transport failure on the first request.
func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		base:   endpoint,
		apiKey: apiKey,
	}
}

// Base URL of the server.
func (c *Client) Base() string { return c.base }

// APIKey of the client.
func (c *Client) APIKey() string { return c.apiKey }

// Endpoint formats a fully qualified URL for the given path, such as
// "/v3/quote/AAPL". The API key is added to a copy of query, so the caller's
// values are left intact.
func (c *Client) Endpoint(path string, query url.Values) string {
	q := make(url.Values, len(query)+1)
	for k, v := range query {
		q[k] = v
	}
	q.Set("apikey", c.apiKey)
	return c.base + path + "?" + q.Encode()
}

// UseClient injects the client into the context.
func UseClient(ctx context.Context, c *Client) context.Context {
	return context.WithValue(ctx, clientContextKey, c)
}

// GetClient extracts the Client from the context, if any.
func GetClient(ctx context.Context) *Client {
	c, ok := ctx.Value(clientContextKey).(*Client)
	if !ok {
		return nil
	}
	return c
}

// UseFetcher injects the request pipeline used by the accessors into the
// context.
func UseFetcher(ctx context.Context, f *Fetcher) context.Context {
	return context.WithValue(ctx, fetcherContextKey, f)
}

// GetFetcher extracts the Fetcher from the context. Without one, it returns a
// production mode Fetcher using the HTTP client from fetch.UseClient, or
// http.DefaultClient.
func GetFetcher(ctx context.Context) *Fetcher {
	f, ok := ctx.Value(fetcherContextKey).(*Fetcher)
	if !ok || f == nil {
		return defaultFetcher
	}
	return f
}

// symbolPath appends the comma separated symbols to the path prefix, escaping
// each one as a path segment.
func symbolPath(prefix string, symbols ...string) string {
	escaped := make([]string, len(symbols))
	for i, s := range symbols {
		escaped[i] = url.PathEscape(s)
	}
	return prefix + strings.Join(escaped, ",")
}

// get runs the request for the path and query through the pipeline, using the
// Client and the Fetcher from the context.
func get[T any](ctx context.Context, path string, query url.Values) (T, error) {
	client := GetClient(ctx)
	if client == nil {
		var zero T
		return zero, errors.Reason("no client in context")
	}
	return Fetch[T](ctx, GetFetcher(ctx), client.Endpoint(path, query))
}

// limitQuery returns the query with the "limit" parameter, if positive.
func limitQuery(limit int) url.Values {
	q := make(url.Values)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
