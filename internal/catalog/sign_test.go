package catalog

import (
	"net/url"
	"strings"
	"testing"
)

func TestSignQuery_canonicalForm(t *testing.T) {
	t.Parallel()

	params := url.Values{}
	params.Set("Zebra", "last")
	params.Set("Keywords", "deluxe widget")
	params.Set("AWSAccessKeyId", "AKTEST")

	q := signQuery("webservices.amazon.com", "/onca/xml", params, "secret")

	// Parameters are sorted and RFC 3986 encoded.
	if !strings.HasPrefix(q, "AWSAccessKeyId=AKTEST&Keywords=deluxe%20widget&Zebra=last") {
		t.Errorf("canonical query wrong: %q", q)
	}
	if strings.Contains(q, "+") {
		t.Errorf("form encoding leaked into canonical query: %q", q)
	}
	if !strings.Contains(q, "&Signature=") {
		t.Errorf("signature missing: %q", q)
	}
}

func TestSignQuery_deterministic(t *testing.T) {
	t.Parallel()

	params := url.Values{}
	params.Set("Operation", "ItemSearch")
	params.Set("Keywords", "widget")

	a := signQuery("host", "/path", params, "secret")
	b := signQuery("host", "/path", params, "secret")
	if a != b {
		t.Errorf("signature not deterministic:\n%q\n%q", a, b)
	}

	// The signature depends on the secret and the target.
	c := signQuery("host", "/path", params, "other-secret")
	if a == c {
		t.Errorf("signature ignores the secret")
	}
	d := signQuery("other-host", "/path", params, "secret")
	if a == d {
		t.Errorf("signature ignores the host")
	}
}

func TestPercentEncode(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"deluxe widget": "deluxe%20widget",
		"a&b=c":         "a%26b%3Dc",
		"tilde~ok":      "tilde~ok",
	}
	for in, want := range cases {
		if got := percentEncode(in); got != want {
			t.Errorf("percentEncode(%q) = %q, want %q", in, got, want)
		}
	}
}
