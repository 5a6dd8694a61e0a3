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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/fetch"
	"github.com/stockparfait/logging"
)

// StatusError is the only kind of error returned by Fetch. Code is an HTTP
// status: either the one reported by the server, or a local classification of
// the failure (see the package documentation).
type StatusError struct {
	Code int
	Err  error // the underlying cause, if any
}

var _ error = &StatusError{}

func newStatusError(code int, err error) *StatusError {
	return &StatusError{Code: code, Err: err}
}

func (e *StatusError) Error() string {
	s := fmt.Sprintf("HTTP %d %s", e.Code, http.StatusText(e.Code))
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// StatusCode extracts the status code from an error returned by Fetch, also
// when annotated. It returns 0 for nil and for errors of any other kind.
func StatusCode(err error) int {
	var e *StatusError
	if errors.As(err, &e) {
		return e.Code
	}
	return 0
}

// Logger receives the error reports of the pipeline. The classification
// returned to the caller does not depend on it.
type Logger interface {
	Errorf(ctx context.Context, format string, args ...interface{})
}

// contextLogger forwards to the logger installed in the context by
// logging.Use.
type contextLogger struct{}

func (contextLogger) Errorf(ctx context.Context, format string, args ...interface{}) {
	logging.Errorf(ctx, format, args...)
}

// Options for creating a Fetcher.
type Options struct {
	HTTPClient  *http.Client // default: fetch.GetClient(ctx) or http.DefaultClient
	Logger      Logger       // default: the context logger
	Diagnostics bool         // buffer response bodies and log them on decode errors
}

// Fetcher is the request pipeline shared by all the accessors. It holds no
// per-request state.
type Fetcher struct {
	client      *http.Client
	logger      Logger
	diagnostics bool
}

var defaultFetcher = NewFetcher(Options{})

// NewFetcher creates a new Fetcher.
func NewFetcher(opts Options) *Fetcher {
	f := &Fetcher{
		client:      opts.HTTPClient,
		logger:      opts.Logger,
		diagnostics: opts.Diagnostics,
	}
	if f.logger == nil {
		f.logger = contextLogger{}
	}
	return f
}

// httpClient returns the client to send the request with. Without one in
// Options, tests may supply it in the context via fetch.UseClient.
func (f *Fetcher) httpClient(ctx context.Context) *http.Client {
	if f.client != nil {
		return f.client
	}
	if c := fetch.GetClient(ctx); c != nil {
		return c
	}
	return http.DefaultClient
}

// Diagnostics reports whether the Fetcher runs in diagnostic mode.
func (f *Fetcher) Diagnostics() bool {
	return f.diagnostics
}

// statusCoder is implemented by transport errors which know the peer's status.
type statusCoder interface {
	StatusCode() int
}

// causeOf strips the request URL, which carries the API key, from transport
// errors.
func causeOf(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err
	}
	return err
}

func transportStatus(err error) (int, bool) {
	var sc statusCoder
	if errors.As(err, &sc) && sc.StatusCode() != 0 {
		return sc.StatusCode(), true
	}
	return 0, false
}

// Fetch issues a single GET request to uri and decodes the JSON body of a 200
// response into T. Any failure is returned as a *StatusError. A nil f means the
// default production mode Fetcher.
func Fetch[T any](ctx context.Context, f *Fetcher, uri string) (T, error) {
	var res T
	if f == nil {
		f = defaultFetcher
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		err = causeOf(err)
		f.logger.Errorf(ctx, "failed to create request: %s", err.Error())
		return res, newStatusError(http.StatusBadRequest,
			errors.Annotate(err, "failed to create request"))
	}
	resp, err := f.httpClient(ctx).Do(req)
	if err != nil {
		err = causeOf(err)
		if code, ok := transportStatus(err); ok {
			return res, newStatusError(code, err)
		}
		f.logger.Errorf(ctx, "request failed: %s", err.Error())
		return res, newStatusError(http.StatusBadRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return res, newStatusError(resp.StatusCode, nil)
	}
	if f.diagnostics {
		return decodeText[T](ctx, f.logger, resp.Body)
	}
	return decodeStream[T](ctx, f.logger, resp.Body)
}

// decodeText reads the entire body before decoding it, so the payload can be
// reported when it doesn't match T.
func decodeText[T any](ctx context.Context, logger Logger, body io.Reader) (T, error) {
	var res T
	content, err := io.ReadAll(body)
	if err != nil {
		logger.Errorf(ctx, "failed to read response body: %s", err.Error())
		return res, newStatusError(http.StatusBadRequest,
			errors.Annotate(err, "failed to read response body"))
	}
	if err := json.Unmarshal(content, &res); err != nil {
		logger.Errorf(ctx, "unable to deserialize: %s\npayload: %s",
			err.Error(), string(content))
		var zero T
		return zero, newStatusError(http.StatusInternalServerError,
			errors.Annotate(err, "failed to decode response"))
	}
	return res, nil
}

// decodeStream decodes the body as it arrives, without retaining it. The body
// must hold exactly one JSON value.
func decodeStream[T any](ctx context.Context, logger Logger, body io.Reader) (T, error) {
	var res T
	dec := json.NewDecoder(body)
	err := dec.Decode(&res)
	if err == nil {
		if _, err = dec.Token(); err == io.EOF {
			return res, nil
		}
		if err == nil {
			err = errors.Reason("unexpected data after the JSON value")
		}
	}
	logger.Errorf(ctx, "failed to decode response: %s", err.Error())
	var zero T
	return zero, newStatusError(http.StatusBadRequest,
		errors.Annotate(err, "failed to decode response"))
}
