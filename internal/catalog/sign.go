package catalog

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/url"
	"sort"
	"strings"
)

// signQuery builds the canonical sorted query string for params, computes
// the HmacSHA256 request signature over it, and returns the query with the
// Signature parameter appended. The string-to-sign is
// "GET\n<host>\n<path>\n<canonical query>".
func signQuery(host, path string, params url.Values, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, percentEncode(k)+"="+percentEncode(params.Get(k)))
	}
	canonical := strings.Join(pairs, "&")

	msg := "GET\n" + host + "\n" + path + "\n" + canonical
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(msg))
	sig := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return canonical + "&Signature=" + percentEncode(sig)
}

// percentEncode escapes per RFC 3986 (space as %20, '~' unreserved), which
// is stricter than url.QueryEscape's form encoding.
func percentEncode(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	escaped = strings.ReplaceAll(escaped, "%7E", "~")
	return escaped
}
