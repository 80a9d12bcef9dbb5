// Package apiclient is the consumer-side counterpart of the API: a thin HTTP
// client that collapses every outcome into the uniform {code, data, message}
// response, so callers branch on code instead of juggling transport errors.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const requestTimeout = 10 * time.Second

// failedMessage is what callers see for any failure that never produced a
// well-formed response: connection refused, timeout, garbage body.
const failedMessage = "請求失敗"

// Response is the normalized result of any call. Code mirrors the embedded
// status of the server envelope, falling back to the HTTP status code.
type Response struct {
	Code    int    `json:"code"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// UnmarshalJSON accepts both the server's "status" key and an already
// normalized "code" key. When both are present, "code" wins.
func (r *Response) UnmarshalJSON(b []byte) error {
	var raw struct {
		Status  int    `json:"status"`
		Code    int    `json:"code"`
		Data    any    `json:"data"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	r.Code = raw.Code
	if r.Code == 0 {
		r.Code = raw.Status
	}
	r.Data = raw.Data
	r.Message = raw.Message
	return nil
}

// Client issues envelope-normalized requests against a base URL.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Get issues a GET with optional query parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values) *Response {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) *Response {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) *Response {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

// Delete issues a DELETE; body and query are both optional.
func (c *Client) Delete(ctx context.Context, path string, query url.Values, body any) *Response {
	return c.do(ctx, http.MethodDelete, path, query, body)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) *Response {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return transportFailure()
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return transportFailure()
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportFailure()
	}
	defer resp.Body.Close()

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return transportFailure()
	}
	if out.Code == 0 {
		out.Code = resp.StatusCode
	}
	return &out
}

func transportFailure() *Response {
	return &Response{Code: http.StatusInternalServerError, Data: nil, Message: failedMessage}
}
