// Package envelope defines the uniform response wrapper every handler
// produces: {status, data, message}. Field presence and naming are
// load-bearing — call sites destructure them directly — so this package is the
// single source of truth for the shape.
package envelope

import "encoding/json"

// Envelope wraps every API response, success or failure. Data is null on
// failure. Status mirrors the HTTP status of the response.
type Envelope struct {
	Status  int    `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// OK builds a 200 envelope.
func OK(data any, message string) *Envelope {
	return &Envelope{Status: 200, Data: data, Message: message}
}

// Created builds a 201 envelope.
func Created(data any, message string) *Envelope {
	return &Envelope{Status: 201, Data: data, Message: message}
}

// Fail builds a failure envelope with null data.
func Fail(status int, message string) *Envelope {
	return &Envelope{Status: status, Data: nil, Message: message}
}

// UnmarshalJSON accepts both the canonical "status" key and the legacy "code"
// key some backends emit. When both are present, "code" wins; a zero status is
// left for the caller to backfill from the transport layer.
func (e *Envelope) UnmarshalJSON(b []byte) error {
	var raw struct {
		Status  int    `json:"status"`
		Code    int    `json:"code"`
		Data    any    `json:"data"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	e.Status = raw.Code
	if e.Status == 0 {
		e.Status = raw.Status
	}
	e.Data = raw.Data
	e.Message = raw.Message
	return nil
}
