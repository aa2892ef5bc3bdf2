package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// Claim names issued by the store API's token service.
const (
	ClaimRole   = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
	ClaimName   = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"
	ClaimUserID = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	ClaimExpiry = "exp"
)

// Decode failure reasons.
const (
	ReasonMalformed    = "malformed"
	ReasonSignature    = "signature"
	ReasonMissingClaim = "missing_claim"
	ReasonExpiry       = "expiry"
)

// ErrDecode is matched by every *DecodeError via errors.Is.
var ErrDecode = errors.New("token decode failed")

// DecodeError reports why a token could not be turned into Claims.
type DecodeError struct {
	Reason string
	Claim  string
	Err    error
}

func (e *DecodeError) Error() string {
	msg := "decode token: " + e.Reason
	if e.Claim != "" {
		msg += " (" + e.Claim + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is lets callers test with errors.Is(err, ErrDecode).
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// ClaimsFromMap extracts Claims from a decoded token payload.
// Every claim is required; no partially populated Claims is ever returned.
func ClaimsFromMap(m map[string]any) (Claims, error) {
	role, err := stringClaim(m, ClaimRole)
	if err != nil {
		return Claims{}, err
	}
	name, err := stringClaim(m, ClaimName)
	if err != nil {
		return Claims{}, err
	}
	uid, err := stringClaim(m, ClaimUserID)
	if err != nil {
		return Claims{}, err
	}
	exp, err := expiryClaim(m)
	if err != nil {
		return Claims{}, err
	}
	return Claims{
		Identity:  Identity{Name: name, UserID: uid, Role: Role(role)},
		ExpiresAt: exp,
	}, nil
}

// stringClaim reads a non-blank string claim. Multi-valued claims use the first entry.
func stringClaim(m map[string]any, key string) (string, error) {
	raw, ok := m[key]
	if !ok {
		return "", &DecodeError{Reason: ReasonMissingClaim, Claim: key}
	}
	if list, isList := raw.([]any); isList {
		if len(list) == 0 {
			return "", &DecodeError{Reason: ReasonMissingClaim, Claim: key}
		}
		raw = list[0]
	}
	s, ok := raw.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", &DecodeError{Reason: ReasonMissingClaim, Claim: key}
	}
	return s, nil
}

// Bounds of exp in Unix seconds: 0001-01-01 through 9999-12-31 UTC.
const (
	minExpiry = -62135596800
	maxExpiry = 253402300799
)

func expiryClaim(m map[string]any) (time.Time, error) {
	raw, ok := m[ClaimExpiry]
	if !ok {
		return time.Time{}, &DecodeError{Reason: ReasonMissingClaim, Claim: ClaimExpiry}
	}
	var secs float64
	switch v := raw.(type) {
	case float64:
		secs = v
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return time.Time{}, &DecodeError{Reason: ReasonExpiry, Claim: ClaimExpiry, Err: err}
		}
		secs = f
	default:
		return time.Time{}, &DecodeError{Reason: ReasonExpiry, Claim: ClaimExpiry, Err: fmt.Errorf("unexpected type %T", raw)}
	}
	if math.IsNaN(secs) || math.IsInf(secs, 0) {
		return time.Time{}, &DecodeError{Reason: ReasonExpiry, Claim: ClaimExpiry}
	}
	if secs < minExpiry || secs > maxExpiry {
		return time.Time{}, &DecodeError{Reason: ReasonExpiry, Claim: ClaimExpiry, Err: fmt.Errorf("out of range: %g", secs)}
	}
	whole, frac := math.Modf(secs)
	return time.Unix(int64(whole), int64(frac*1e9)).UTC(), nil
}
