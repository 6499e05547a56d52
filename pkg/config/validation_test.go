package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidAPIKeyFormat(t *testing.T) {
	type testCase struct {
		name  string
		key   any
		valid bool
	}

	testCases := []testCase{
		{name: "lowercase alphanumeric", key: "lw_abcdefghijklmnopqrstuvwxyz123456", valid: true},
		{name: "uppercase", key: "lw_ABCDEFGHIJKLMNOPQRSTUVWXYZ123456", valid: true},
		{name: "mixed case", key: "lw_AbCdEfGhIjKlMnOpQrStUvWxYz123456", valid: true},
		{name: "hyphens", key: "lw_abcdefghij-klmnopqrst-uvwxyz1234", valid: true},
		{name: "underscores", key: "lw_abcdefghij_klmnopqrst_uvwxyz1234", valid: true},
		{name: "digits only", key: "lw_12345678901234567890123456789012", valid: true},

		{name: "empty string", key: "", valid: false},
		{name: "wrong prefix", key: "lx_abcdefghijklmnopqrstuvwxyz123456", valid: false},
		{name: "uppercase prefix", key: "LW_abcdefghijklmnopqrstuvwxyz123456", valid: false},
		{name: "missing prefix", key: "abcdefghijklmnopqrstuvwxyz123456", valid: false},
		{name: "31 chars after prefix", key: "lw_" + strings.Repeat("a", 31), valid: false},
		{name: "33 chars after prefix", key: "lw_" + strings.Repeat("a", 33), valid: false},
		{name: "40 chars after prefix", key: "lw_" + strings.Repeat("a", 40), valid: false},
		{name: "prefix only", key: "lw_", valid: false},
		{name: "trailing space", key: "lw_abcdefghijklmnopqrstuvwxyz12345 ", valid: false},
		{name: "invalid char dot", key: "lw_abcdefghijklmnopqrstuvwxyz.12345", valid: false},
		{name: "invalid char bang", key: "lw_abcdefghijklmnopqrstuvwxyz12345!", valid: false},

		{name: "non-string int", key: 12345, valid: false},
		{name: "non-string nil", key: nil, valid: false},
		{name: "non-string bool", key: true, valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equalf(t, tc.valid, ValidAPIKeyFormat(tc.key), "key %v", tc.key)
		})
	}
}

func TestValidURL(t *testing.T) {
	type testCase struct {
		name  string
		url   string
		valid bool
	}

	testCases := []testCase{
		{name: "http localhost with port", url: "http://localhost:3000", valid: true},
		{name: "https with domain", url: "https://logs.example.com", valid: true},
		{name: "https with subdomain", url: "https://api.logs.example.com", valid: true},
		{name: "http with IP", url: "http://192.168.1.1:8080", valid: true},
		{name: "https with path", url: "https://example.com/api/logs", valid: true},
		{name: "http localhost no port", url: "http://localhost", valid: true},
		{name: "any scheme counts", url: "ftp://logs.example.com", valid: true},

		{name: "empty", url: "", valid: false},
		{name: "missing scheme with port", url: "localhost:3000", valid: false},
		{name: "missing scheme with domain", url: "logs.example.com", valid: false},
		{name: "scheme only", url: "http://", valid: false},
		{name: "no host", url: "file:///path/to/file", valid: false},
		{name: "unparseable", url: "http://[::1", valid: false},
		{name: "plain words", url: "not a url", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equalf(t, tc.valid, validURL(tc.url), "url %q", tc.url)
		})
	}
}

func TestAsInt(t *testing.T) {
	type testCase struct {
		value any
		want  int
		ok    bool
	}

	testCases := []testCase{
		{value: 7, want: 7, ok: true},
		{value: int32(7), want: 7, ok: true},
		{value: int64(7), want: 7, ok: true},
		{value: 7.0, want: 7, ok: true},
		{value: float32(7), want: 7, ok: true},
		{value: -3, want: -3, ok: true},

		{value: 7.5, ok: false},
		{value: "7", ok: false},
		{value: true, ok: false},
		{value: nil, ok: false},
	}

	for _, tc := range testCases {
		got, ok := asInt(tc.value)
		assert.Equalf(t, tc.ok, ok, "asInt(%v) acceptance", tc.value)
		if tc.ok {
			assert.Equalf(t, tc.want, got, "asInt(%v) value", tc.value)
		}
	}
}

func TestAsFloat(t *testing.T) {
	got, ok := asFloat(2)
	assert.True(t, ok)
	assert.Equal(t, 2.0, got)

	got, ok = asFloat(2.5)
	assert.True(t, ok)
	assert.Equal(t, 2.5, got)

	got, ok = asFloat(int64(3))
	assert.True(t, ok)
	assert.Equal(t, 3.0, got)

	_, ok = asFloat("2.5")
	assert.False(t, ok)

	_, ok = asFloat(nil)
	assert.False(t, ok)
}
