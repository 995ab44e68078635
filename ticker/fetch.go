package ticker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/cryptoalloc"
)

// Client fetches quotes from a Source.
type Client struct {
	http *http.Client
	now  func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient uses c to perform requests.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// WithCache keeps successful responses in dir for ttl. An empty dir
// disables the cache.
func WithCache(dir string, ttl time.Duration) Option {
	return func(cl *Client) {
		if dir == "" || ttl <= 0 {
			return
		}
		base := cl.http.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		c := *cl.http
		c.Transport = &diskCache{base: base, dir: dir, ttl: ttl, now: cl.now}
		cl.http = &c
	}
}

// New returns a Client. Options are applied in order.
func New(opts ...Option) *Client {
	c := &Client{http: new(http.Client), now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch gets all quotes of src and returns them as a market snapshot.
// Errors wrap cryptoalloc.ErrDataSource.
func (c *Client) Fetch(ctx context.Context, src Source) (*cryptoalloc.MarketSnapshot, error) {
	var body bytes.Buffer
	if err := c.get(ctx, src.URL, &body); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", cryptoalloc.ErrDataSource, src.Name, err)
	}
	return ReadSnapshot(ctx, &body, src, c.now())
}

// ReadSnapshot decodes a ticker response of src, as saved in a file for
// instance, into a market snapshot dated on. Records without a price are
// skipped. Errors wrap cryptoalloc.ErrDataSource.
func ReadSnapshot(ctx context.Context, r io.Reader, src Source, on time.Time) (*cryptoalloc.MarketSnapshot, error) {
	raws, err := Decode(ctx, r, src)
	if err != nil {
		return nil, err
	}

	quotes := make([]cryptoalloc.AssetQuote, 0, len(raws))
	for _, raw := range raws {
		if raw.Price == nil {
			log.Printf("%s: %v has no price, skipped", src.Name, raw.Symbol)
			continue
		}
		q, err := cryptoalloc.ParseQuote(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src.Name, err)
		}
		quotes = append(quotes, q)
	}
	m := cryptoalloc.NewMarketSnapshot(on, quotes)
	if dup := len(quotes) - m.Len(); dup > 0 {
		log.Printf("%s: %d duplicate quotes ignored", src.Name, dup)
	}
	log.Printf("%s: %d quotes", src.Name, m.Len())
	return m, nil
}

// get performs an HTTP GET request to addr and copies the body into w.
func (c *Client) get(ctx context.Context, addr string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	_, err = io.Copy(w, resp.Body)
	return err
}

// Decode reads a ticker response and extracts the raw records described by
// src. Errors wrap cryptoalloc.ErrDataSource.
func Decode(ctx context.Context, r io.Reader, src Source) ([]cryptoalloc.RawQuote, error) {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s: %s", cryptoalloc.ErrDataSource, src.Name, fmt.Sprintf(format, args...))
	}

	dec := json.NewDecoder(r)
	dec.UseNumber() // keep prices exact
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fail("invalid JSON: %v", err)
	}

	list, err := jsonpath.Get(src.List, doc)
	if err != nil {
		return nil, fail("no records at %s: %v", src.List, err)
	}
	records, ok := list.([]any)
	if !ok {
		return nil, fail("records at %s are %T, not a list", src.List, list)
	}

	symbol, err := jsonpath.New(src.Symbol)
	if err != nil {
		return nil, fail("symbol path: %v", err)
	}
	price, err := jsonpath.New(src.Price)
	if err != nil {
		return nil, fail("price path: %v", err)
	}
	capUSD, err := jsonpath.New(src.Cap)
	if err != nil {
		return nil, fail("cap path: %v", err)
	}

	raws := make([]cryptoalloc.RawQuote, 0, len(records))
	for i, rec := range records {
		var raw cryptoalloc.RawQuote
		if raw.Symbol, err = symbol(ctx, rec); err != nil {
			return nil, fail("record %d: symbol: %v", i, err)
		}
		if raw.Price, err = price(ctx, rec); err != nil {
			return nil, fail("record %d (%v): price: %v", i, raw.Symbol, err)
		}
		// a record without cap is valid, it is just not weighted.
		if raw.Cap, err = capUSD(ctx, rec); err != nil {
			raw.Cap = nil
		}
		raws = append(raws, raw)
	}
	return raws, nil
}
