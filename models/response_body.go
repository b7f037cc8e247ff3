// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrBodyNotJSON is returned by [ResponseBody.Decode] when the body could not
// be parsed as JSON and was kept as raw bytes.
var ErrBodyNotJSON = errors.New("response body is not json")

// BodyKind tells which variant a [ResponseBody] holds.
type BodyKind int

const (
	// BodyRaw marks an opaque payload: empty, binary, plain text or
	// malformed JSON.
	BodyRaw BodyKind = iota

	// BodyJSON marks a payload that parsed as a JSON document.
	BodyJSON
)

// String returns a short label for the kind, used in logs.
func (k BodyKind) String() string {
	switch k {
	case BodyJSON:
		return "json"
	default:
		return "raw"
	}
}

// ResponseBody is a tagged variant over JSON(value) | Raw(bytes).
// The received bytes are retained for both variants.
type ResponseBody struct {
	kind  BodyKind
	value any
	raw   []byte
}

// NewResponseBody classifies raw. A payload holding exactly one JSON value
// becomes [BodyJSON]; anything else, including an empty payload or trailing
// data, is [BodyRaw]. Parse failures never surface as errors. Numbers are
// kept as [json.Number] so they render digit for digit.
func NewResponseBody(raw []byte) ResponseBody {
	if len(bytes.TrimSpace(raw)) == 0 {
		return RawBody(raw)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return RawBody(raw)
	}
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return RawBody(raw)
	}

	return ResponseBody{kind: BodyJSON, value: value, raw: raw}
}

// RawBody builds an opaque body.
func RawBody(raw []byte) ResponseBody {
	return ResponseBody{kind: BodyRaw, raw: raw}
}

// Kind returns the variant tag.
func (b ResponseBody) Kind() BodyKind {
	return b.kind
}

// IsJSON reports whether the body parsed as JSON.
func (b ResponseBody) IsJSON() bool {
	return b.kind == BodyJSON
}

// JSON returns the decoded value (map[string]any, []any, string,
// json.Number, bool or nil) and true for JSON bodies, or nil and false for raw ones.
func (b ResponseBody) JSON() (any, bool) {
	if b.kind != BodyJSON {
		return nil, false
	}
	return b.value, true
}

// Raw returns the payload exactly as received.
func (b ResponseBody) Raw() []byte {
	return b.raw
}

// Decode unmarshals a JSON body into dst. Raw bodies yield [ErrBodyNotJSON].
func (b ResponseBody) Decode(dst any) error {
	if b.kind != BodyJSON {
		return ErrBodyNotJSON
	}
	if err := json.Unmarshal(b.raw, dst); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// String renders JSON bodies compactly with sorted object keys and raw
// bodies verbatim. Numbers and the characters <, > and & are written as
// received.
func (b ResponseBody) String() string {
	if b.kind == BodyJSON {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(b.value); err == nil {
			return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
		}
	}
	return string(b.raw)
}
