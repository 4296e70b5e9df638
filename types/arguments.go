package types

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"healthcall/utils"
)

// ErrInvalidArguments is returned when tool-call arguments cannot be decoded into an object.
var ErrInvalidArguments = errors.New("invalid tool call arguments")

// ArgumentsKind tags which form the arguments arrived in.
type ArgumentsKind int

const (
	ArgumentsEmpty   ArgumentsKind = iota // absent or null
	ArgumentsRawJSON                      // JSON object encoded inside a string
	ArgumentsDecoded                      // already an object
	ArgumentsInvalid                      // anything else; fails on Resolve
)

// Arguments is either a JSON-encoded string or an already decoded object.
// Resolve turns both into the same Params.
type Arguments struct {
	kind    ArgumentsKind
	raw     string
	decoded map[string]any
}

// RawJSONArguments wraps a JSON-encoded argument string.
func RawJSONArguments(s string) Arguments {
	return Arguments{kind: ArgumentsRawJSON, raw: s}
}

// DecodedArguments wraps an already decoded argument object.
func DecodedArguments(m map[string]any) Arguments {
	return Arguments{kind: ArgumentsDecoded, decoded: m}
}

// Kind 返回参数形态
func (a Arguments) Kind() ArgumentsKind {
	return a.kind
}

// UnmarshalJSON never fails on shape; unsupported shapes are kept and rejected by Resolve
// so the dispatcher can abort the batch the same way for every decode failure.
func (a *Arguments) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		*a = Arguments{}
	case trimmed[0] == '"':
		var s string
		if err := utils.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*a = RawJSONArguments(s)
	case trimmed[0] == '{':
		var m map[string]any
		if err := utils.Unmarshal(trimmed, &m); err != nil {
			return err
		}
		*a = DecodedArguments(m)
	default:
		*a = Arguments{kind: ArgumentsInvalid, raw: string(trimmed)}
	}
	return nil
}

// MarshalJSON keeps the original form.
func (a Arguments) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case ArgumentsRawJSON:
		return utils.Marshal(a.raw)
	case ArgumentsDecoded:
		return utils.Marshal(a.decoded)
	case ArgumentsInvalid:
		return []byte(a.raw), nil
	default:
		return []byte("null"), nil
	}
}

// Resolve decodes the arguments into Params.
func (a Arguments) Resolve() (Params, error) {
	switch a.kind {
	case ArgumentsEmpty:
		return Params{}, nil
	case ArgumentsDecoded:
		if a.decoded == nil {
			return Params{}, nil
		}
		return Params(a.decoded), nil
	case ArgumentsRawJSON:
		raw := strings.TrimSpace(a.raw)
		if raw == "" {
			return Params{}, nil
		}
		var m map[string]any
		if err := utils.UnmarshalFromString(raw, &m); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
		}
		if m == nil {
			return Params{}, nil
		}
		return Params(m), nil
	default:
		return nil, fmt.Errorf("%w: expected an object or a JSON-encoded string, got %s", ErrInvalidArguments, a.raw)
	}
}
