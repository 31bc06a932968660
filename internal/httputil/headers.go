package httputil

import "net/http"

// APIHeaders returns the header set for catalog API requests.
func APIHeaders() http.Header {
	h := http.Header{}
	h.Set("Accept", "text/xml,application/xml;q=0.9,*/*;q=0.8")
	h.Set("Accept-Encoding", "gzip, br")
	h.Set("Connection", "keep-alive")
	h.Set("User-Agent", "arbscout/1.0 (+https://github.com/mkress81/arbscout)")
	return h
}
