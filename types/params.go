package types

import (
	"fmt"
	"strings"
)

// Params 工具调用的已解码参数
type Params map[string]any

// Has reports whether key is present, even if its value is empty.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// String returns the trimmed string value of key; ok is false when absent or not a string.
func (p Params) String(key string) (string, bool) {
	v, ok := p[key].(string)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// StringSlice accepts a list of strings or a single comma separated string.
func (p Params) StringSlice(key string) ([]string, error) {
	switch v := p[key].(type) {
	case nil:
		return nil, fmt.Errorf("%s is required", key)
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s[%d] must be a string", key, i)
			}
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out, nil
	case string:
		out := []string{}
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s must be a list of strings", key)
	}
}
