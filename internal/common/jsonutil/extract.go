// Package jsonutil pulls JSON objects out of free-form model output.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	apperrors "sentence-analyzer/internal/common/errors"
)

// objectSpan is greedy: first '{' to last '}'.
var objectSpan = regexp.MustCompile(`(?s)\{.*\}`)

// Sanitize locates the JSON object in raw and strips every run of trailing
// commas before '}' and ']'. Commas inside string literals are kept.
// Sanitize(Sanitize(x)) == Sanitize(x).
func Sanitize(raw string) (string, error) {
	span := objectSpan.FindString(raw)
	if span == "" {
		return "", apperrors.NewExtractionError("no JSON object found in model output", raw, nil)
	}
	return stripTrailingCommas(span), nil
}

func stripTrailingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			b.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case ',':
			j := i + 1
			for j < len(s) && (s[j] == ',' || isSpace(s[j])) {
				j++
			}
			if j < len(s) && (s[j] == '}' || s[j] == ']') {
				// keep the layout, drop the commas
				for k := i + 1; k < j; k++ {
					if s[k] != ',' {
						b.WriteByte(s[k])
					}
				}
				i = j - 1
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// Extract sanitizes raw and decodes it into a JSON object. Numbers are kept
// as json.Number so values survive stringification unchanged.
func Extract(raw string) (map[string]interface{}, error) {
	cleaned, err := Sanitize(raw)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(strings.NewReader(cleaned))
	dec.UseNumber()

	var out map[string]interface{}
	if err := dec.Decode(&out); err != nil {
		return nil, apperrors.NewExtractionError(
			fmt.Sprintf("invalid JSON: %v; candidate: %s", err, cleaned), raw, err)
	}
	if dec.More() {
		return nil, apperrors.NewExtractionError(
			fmt.Sprintf("trailing data after JSON object; candidate: %s", cleaned), raw, nil)
	}
	return out, nil
}

// Stringify renders a JSON value as parameter text. Strings are returned raw;
// everything else uses its compact JSON encoding.
func Stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case json.Number:
		return val.String()
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimRight(buf.String(), "\n")
}

// Compact encodes v as compact JSON text for the response payload.
func Compact(v interface{}) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
