package domain

import (
	"encoding/json"
	"math"
	"slices"
	"time"
)

// Claims is the caller-controlled payload of a signed token.
//
// Values are kept in canonical form (see CanonicalClaimValue) so a verified token
// returns exactly the claims it was issued with.
type Claims map[string]any

// ReservedClaims are set by the token service at issuance and stripped on verification.
var ReservedClaims = []string{"exp", "iat", "nbf", "jti", "iss"}

// IsReservedClaim reports whether name is managed by the token service.
func IsReservedClaim(name string) bool {
	return slices.Contains(ReservedClaims, name)
}

// IssuedToken is a freshly signed token with its identifying metadata.
type IssuedToken struct {
	Token     string
	ID        string
	ExpiresAt time.Time
}

// CanonicalClaimValue converts v to the form a claim has after travelling through a
// token: integral numbers become int64, other numbers float64, arrays []any and objects
// map[string]any. Values a token cannot carry fail with ErrInvalidClaim.
func CanonicalClaimValue(v any) (any, error) {
	switch x := v.(type) {
	case nil, string, bool, int64:
		return x, nil
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case uint:
		return canonicalUint(uint64(x))
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint64:
		return canonicalUint(x)
	case float32:
		return canonicalFloat(float64(x))
	case float64:
		return canonicalFloat(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i, nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, ErrInvalidClaim
		}
		return canonicalFloat(f)
	case []string:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = item
		}
		return out, nil
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			c, err := CanonicalClaimValue(item)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, item := range x {
			c, err := CanonicalClaimValue(item)
			if err != nil {
				return nil, err
			}
			out[k] = c
		}
		return out, nil
	default:
		return nil, ErrInvalidClaim
	}
}

func canonicalUint(u uint64) (any, error) {
	if u > math.MaxInt64 {
		return nil, ErrInvalidClaim
	}
	return int64(u), nil
}

// canonicalFloat keeps integral values that fit int64 as int64, since JSON encodes
// them without a fraction and they decode as integers.
func canonicalFloat(f float64) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, ErrInvalidClaim
	}
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f), nil
	}
	return f, nil
}
