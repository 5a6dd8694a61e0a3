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

// Package fmp implements a typed client for the Financial Modeling Prep (FMP)
// REST API.
//
// Official documentation is at https://site.financialmodelingprep.com/developer/docs .
//
// All the accessors share a single request pipeline, Fetch, which issues one GET
// request, classifies the outcome as an HTTP status code and decodes the JSON
// payload into the requested type. Every failure is a *StatusError carrying
// exactly one status code:
//
//   - the response status, when the server replied with anything but 200 OK;
//   - the status associated with a transport error, if the error exposes one;
//   - 400 Bad Request for any other transport or body read failure;
//   - in diagnostic mode, 500 Internal Server Error when a 200 response body
//     does not decode; in production mode the same case is 400 Bad Request.
//
// Diagnostic mode buffers the whole body and logs it on decode failures.
// Production mode streams the body into the decoder and never logs it.
//
// A typical use:
//
//   ctx = fmp.UseClient(ctx, fmp.NewClient(fmp.URL, apiKey))
//   quotes, err := fmp.FetchQuotes(ctx, "AAPL", "MSFT")
//   if fmp.StatusCode(err) == http.StatusNotFound {
//     ...
//   }
//
// Nothing is retried, cached or rate-limited. The Client and Fetcher are
// immutable after construction and safe to share across goroutines.
package fmp
