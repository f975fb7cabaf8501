package service

import (
	"bytes"
	"encoding/json"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Prediction is one entry of a serving response: either an object carrying
// an "output" field or any other JSON value.
type Prediction struct {
	Value     json.RawMessage
	HasOutput bool
}

// DecodePrediction resolves the shape of raw once. When raw is an object with
// an "output" field, Value is that field.
func DecodePrediction(raw json.RawMessage) Prediction {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &wrapper); err == nil {
			if output, ok := wrapper["output"]; ok {
				return Prediction{Value: output, HasOutput: true}
			}
		}
	}
	return Prediction{Value: trimmed}
}

// Text renders the prediction value. Strings are returned unquoted, any
// other value as compact JSON (null, true, {"a":1}).
func (p Prediction) Text() string {
	value := bytes.TrimSpace(p.Value)
	if len(value) == 0 {
		return ""
	}

	if value[0] == '"' {
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			return s
		}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, value); err != nil {
		return string(value)
	}
	return buf.String()
}

// RepairMojibake undoes UTF-8 text that was decoded as Latin-1 upstream
// ("Ã¤" -> "ä"). If s has a rune outside Latin-1, or its Latin-1 bytes are
// not valid UTF-8, s is returned unchanged.
func RepairMojibake(s string) string {
	if s == "" {
		return s
	}

	encoded, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil || encoded == "" || !utf8.ValidString(encoded) {
		return s
	}
	return encoded
}
