package backend

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jmespath-community/go-jmespath"

	apperrors "github.com/target/storefront-admin/internal/errors"
)

const defaultFailureMessage = "The store API rejected the request"

// unwrap returns the JSON payload of a successful response.
// Bodies shaped {status, message, data} yield the envelope expression's result;
// anything else is returned whole. A failing status or success flag is an error
// even when the HTTP status was 2xx.
func (c *Client) unwrap(body []byte) ([]byte, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return []byte("null"), nil
	}

	doc, err := decodeJSON(body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUpstream, "The store API returned invalid JSON")
	}

	m, ok := doc.(map[string]any)
	if !ok {
		return body, nil
	}
	if failure := envelopeFailure(m); failure != nil {
		return nil, failure
	}
	if _, enveloped := m["data"]; !enveloped {
		return body, nil
	}

	selected, err := jmespath.Search(c.envelope, m)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUpstream, "Unexpected response envelope")
	}
	out, err := json.Marshal(selected)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUpstream, "Unexpected response envelope")
	}
	return out, nil
}

func decodeJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// envelopeFailure inspects the status and success fields of an envelope.
func envelopeFailure(m map[string]any) *apperrors.AppError {
	msg, _ := m["message"].(string)
	msg = strings.TrimSpace(msg)
	if msg == "" {
		msg = defaultFailureMessage
	}

	for _, field := range []string{"status", "success"} {
		switch v := m[field].(type) {
		case bool:
			if !v {
				return apperrors.Upstream(0, msg)
			}
		case json.Number:
			if n, err := v.Int64(); err == nil && n >= http.StatusBadRequest {
				return apperrors.Upstream(int(n), msg)
			}
		case string:
			switch strings.ToLower(strings.TrimSpace(v)) {
			case "error", "failed", "failure", "fail":
				return apperrors.Upstream(0, msg)
			}
		}
	}
	return nil
}

// statusError builds the error for a non-2xx response, preferring the API's own message.
func statusError(status int, body []byte) error {
	msg := ""
	if doc, err := decodeJSON(body); err == nil {
		if m, ok := doc.(map[string]any); ok {
			for _, key := range []string{"message", "title", "error"} {
				if s, ok := m[key].(string); ok && strings.TrimSpace(s) != "" {
					msg = strings.TrimSpace(s)
					break
				}
			}
		}
	}
	if msg == "" {
		switch status {
		case http.StatusUnauthorized:
			msg = "Your session is no longer accepted by the store API"
		case http.StatusForbidden:
			msg = "You are not allowed to do that"
		case http.StatusNotFound:
			msg = "Not found"
		default:
			msg = defaultFailureMessage
		}
	}
	return apperrors.Upstream(status, msg)
}
