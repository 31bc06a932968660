package catalog

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"

	"github.com/mkress81/arbscout/internal/httputil"
)

// ResponseGroups selects the detail sections every engine call needs:
// attributes for parsing, offers for pricing, rank, and variation data for
// parent/child expansion.
const ResponseGroups = "ItemAttributes,OfferFull,SalesRank,Variations"

// SearchParams describes one page of a keyword search.
type SearchParams struct {
	SearchIndex string
	Keywords    string
	Page        int   // 1-based
	MinPrice    int64 // minor currency units; 0 = no bound
	MaxPrice    int64
}

// Config holds the client's credentials and endpoint.
type Config struct {
	Endpoint     string // e.g. https://webservices.amazon.com/onca/xml
	AccessKey    string
	SecretKey    string
	AssociateTag string
}

// Client wraps the product catalog API. One method call is one signed HTTP
// round trip; pacing comes from the shared rate limiter, and the client
// never sleeps or retries on its own.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	now     func() time.Time
}

// NewClient creates a catalog client. limiter may be nil to disable pacing
// (tests); httpClient defaults to httputil.NewHTTPClient(nil).
func NewClient(cfg Config, httpClient *http.Client, limiter *rate.Limiter) *Client {
	if httpClient == nil {
		httpClient = httputil.NewHTTPClient(nil)
	}
	return &Client{cfg: cfg, http: httpClient, limiter: limiter, now: time.Now}
}

// RequestError is a failed catalog call. StatusCode is the HTTP status when
// one was received, 0 for transport-level failures.
type RequestError struct {
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%v code %d", e.Err, e.StatusCode)
	}
	return e.Err.Error()
}

func (e *RequestError) Unwrap() error { return e.Err }

// Search performs one ItemSearch call and returns the page's raw items.
func (c *Client) Search(ctx context.Context, p SearchParams) ([]Item, error) {
	params := c.baseParams("ItemSearch")
	params.Set("SearchIndex", p.SearchIndex)
	params.Set("Keywords", p.Keywords)
	if p.Page > 0 {
		params.Set("ItemPage", strconv.Itoa(p.Page))
	}
	if p.MinPrice > 0 {
		params.Set("MinimumPrice", strconv.FormatInt(p.MinPrice, 10))
	}
	if p.MaxPrice > 0 {
		params.Set("MaximumPrice", strconv.FormatInt(p.MaxPrice, 10))
	}

	body, err := c.do(ctx, params)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := decodeXML(body, &resp); err != nil {
		return nil, &RequestError{Err: fmt.Errorf("decode search response: %w", err)}
	}
	if err := resp.Items.Request.check(); err != nil {
		return nil, err
	}
	return resp.Items.Items, nil
}

// Lookup performs one ItemLookup call for a single ASIN. The API returns a
// one-element collection for single-id lookups.
func (c *Client) Lookup(ctx context.Context, asin string) ([]Item, error) {
	params := c.baseParams("ItemLookup")
	params.Set("ItemId", asin)

	body, err := c.do(ctx, params)
	if err != nil {
		return nil, err
	}

	var resp lookupResponse
	if err := decodeXML(body, &resp); err != nil {
		return nil, &RequestError{Err: fmt.Errorf("decode lookup response: %w", err)}
	}
	if err := resp.Items.Request.check(); err != nil {
		return nil, err
	}
	return resp.Items.Items, nil
}

func (c *Client) baseParams(operation string) url.Values {
	params := url.Values{}
	params.Set("Service", "AWSECommerceService")
	params.Set("Operation", operation)
	params.Set("AWSAccessKeyId", c.cfg.AccessKey)
	params.Set("AssociateTag", c.cfg.AssociateTag)
	params.Set("ResponseGroup", ResponseGroups)
	params.Set("SignatureMethod", "HmacSHA256")
	params.Set("SignatureVersion", "2")
	params.Set("Timestamp", c.now().UTC().Format(time.RFC3339))
	return params
}

func (c *Client) do(ctx context.Context, params url.Values) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &RequestError{Err: err}
		}
	}

	endpoint, err := url.Parse(c.cfg.Endpoint)
	if err != nil {
		return nil, &RequestError{Err: fmt.Errorf("endpoint: %w", err)}
	}
	query := signQuery(endpoint.Host, endpoint.Path, params, c.cfg.SecretKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"?"+query, nil)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	for k, v := range httputil.APIHeaders() {
		req.Header[k] = v
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	defer resp.Body.Close()

	body, err := httputil.ReadBody(resp)
	if err != nil {
		return nil, &RequestError{StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &RequestError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("catalog request failed"),
		}
	}
	return body, nil
}

// check surfaces API-level errors embedded in a 200 response.
func (r *requestEcho) check() error {
	if len(r.Errors) > 0 {
		e := r.Errors[0]
		return &RequestError{Err: fmt.Errorf("%s: %s", e.Code, e.Message)}
	}
	if r.IsValid != "" && r.IsValid != "True" {
		return &RequestError{Err: fmt.Errorf("catalog rejected request")}
	}
	return nil
}

// decodeXML decodes body into v, tolerating non-UTF-8 charsets declared by
// the API.
func decodeXML(body []byte, v any) error {
	dec := xml.NewDecoder(bytes.NewReader(body))
	dec.CharsetReader = charset.NewReaderLabel
	return dec.Decode(v)
}
