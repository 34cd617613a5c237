package httpx

import (
	"net/url"
	"strings"
	"testing"
)

type payload struct {
	Name string `json:"name"`
}

func TestDecodeJSON(t *testing.T) {
	var p payload
	if err := DecodeJSON(strings.NewReader(`{"name":"Jane"}`), &p); err != nil {
		t.Fatalf("DecodeJSON error: %v", err)
	}
	if p.Name != "Jane" {
		t.Fatalf("name = %q", p.Name)
	}
}

func TestDecodeJSONUnknownField(t *testing.T) {
	var p payload
	if err := DecodeJSON(strings.NewReader(`{"name":"Jane","extra":1}`), &p); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestDecodeJSONTrailingData(t *testing.T) {
	var p payload
	if err := DecodeJSON(strings.NewReader(`{"name":"Jane"}{"name":"Bob"}`), &p); err == nil {
		t.Fatal("expected error for trailing data")
	}
}

func TestParseLimitOffsetDefaults(t *testing.T) {
	limit, offset, err := ParseLimitOffset(url.Values{}, 20, 100)
	if err != nil {
		t.Fatalf("ParseLimitOffset error: %v", err)
	}
	if limit != 20 || offset != 0 {
		t.Fatalf("limit=%d offset=%d, want 20 0", limit, offset)
	}
}

func TestParseLimitOffsetClamped(t *testing.T) {
	values := url.Values{"limit": {"500"}, "offset": {"40"}}
	limit, offset, err := ParseLimitOffset(values, 20, 100)
	if err != nil {
		t.Fatalf("ParseLimitOffset error: %v", err)
	}
	if limit != 100 || offset != 40 {
		t.Fatalf("limit=%d offset=%d, want 100 40", limit, offset)
	}
}

func TestParseLimitOffsetInvalid(t *testing.T) {
	for _, values := range []url.Values{
		{"limit": {"abc"}},
		{"limit": {"0"}},
		{"limit": {"-1"}},
		{"offset": {"-5"}},
		{"offset": {"x"}},
	} {
		if _, _, err := ParseLimitOffset(values, 20, 100); err == nil {
			t.Fatalf("expected error for %v", values)
		}
	}
}
