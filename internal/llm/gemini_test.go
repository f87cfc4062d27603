package llm

import (
	"testing"
	"time"
)

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}

	for _, c := range cases {
		got := StripCodeFence(c.in)
		if got != c.want {
			t.Errorf("StripCodeFence(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRateLimitErrorMessage(t *testing.T) {
	err := &RateLimitError{RetryAfter: 30 * time.Second}
	if err.Error() != "rate limited, retry in 30s" {
		t.Errorf("unexpected message: %s", err.Error())
	}

	bare := &RateLimitError{}
	if bare.Error() != "rate limited" {
		t.Errorf("unexpected message: %s", bare.Error())
	}
}

func TestSanitizeKey(t *testing.T) {
	if sanitizeKey(` "abc123" `) != "abc123" {
		t.Errorf("quotes and whitespace should be stripped")
	}
	if sanitizeKey("undefined") != "" {
		t.Errorf("literal undefined should be treated as missing")
	}
}
