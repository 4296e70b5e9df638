package utils

import (
	"bytes"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
)

// JSON 与标准库行为一致的 jsoniter 配置
var JSON = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal JSON编码
func Marshal(v any) ([]byte, error) {
	return JSON.Marshal(v)
}

// Unmarshal JSON解码
func Unmarshal(data []byte, v any) error {
	return JSON.Unmarshal(data, v)
}

// UnmarshalFromString 从字符串解码
func UnmarshalFromString(s string, v any) error {
	return JSON.UnmarshalFromString(s, v)
}

// MarshalToString JSON编码为字符串
func MarshalToString(v any) string {
	s, err := JSON.MarshalToString(v)
	if err != nil {
		return ""
	}
	return s
}

// MarshalIndentToString JSON编码为格式化字符串
func MarshalIndentToString(v any) string {
	bf := bytes.NewBuffer([]byte{})
	encoder := JSON.NewEncoder(bf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(v)
	return bf.String()
}

// Truncate shortens s for log output to at most max bytes, never splitting a rune.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
