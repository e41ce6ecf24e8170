// Package backend is the REST client for the rental backend API.  Every
// response is decoded into the entity model and checked against the data
// contract before it reaches a view.  The client makes exactly one request
// per call: there is no caching and no retrying.
package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/zizaimai/rental-manager/internal/model"
	"github.com/zizaimai/rental-manager/internal/utils"
)

// ErrNotFound is returned when the backend answers 404.
var ErrNotFound = errors.New("backend: not found")

// ErrContract is wrapped by errors for responses that decode but violate the
// entity contract (unknown rating, non-positive id, ...).
var ErrContract = errors.New("backend: response violates data contract")

// StatusError reports an unexpected HTTP status.
type StatusError struct {
	Status int
	URL    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend: unexpected status %d from %s", e.Status, e.URL)
}

// Options configures a Client.
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	// RPS throttles outgoing requests; zero or less disables the throttle.
	RPS float64
	// JWTSecret, when set, signs a short lived bearer token for every call.
	JWTSecret string
	JWTTTL    time.Duration
	// HTTPClient overrides the default transport, mainly for tests.
	HTTPClient *http.Client
}

// Client talks to the backend API.  It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	secret     string
	ttl        time.Duration

	mu    sync.Mutex
	token utils.ServiceToken
}

// New builds a Client.
func New(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		hc = &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	c := &Client{
		httpClient: hc,
		baseURL:    opts.BaseURL,
		userAgent:  opts.UserAgent,
		secret:     opts.JWTSecret,
		ttl:        opts.JWTTTL,
	}
	if c.userAgent == "" {
		c.userAgent = "rental-manager"
	}
	if c.ttl <= 0 {
		c.ttl = 5 * time.Minute
	}
	if opts.RPS > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(opts.RPS), 1)
	}
	return c
}

// bearer returns a valid service token, minting a new one when the cached
// token is about to expire.
func (c *Client) bearer() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.token.Expired(time.Now()) {
		return c.token.Token, nil
	}
	tok, err := utils.NewServiceToken(c.secret, "rental-manager", c.ttl)
	if err != nil {
		return "", err
	}
	c.token = tok
	return tok.Token, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, target any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.secret != "" {
		tok, err := c.bearer()
		if err != nil {
			return fmt.Errorf("backend: sign service token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Status: resp.StatusCode, URL: u}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("backend: decode %s: %w", path, err)
	}
	if err := model.Validate(target); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrContract, path, err)
	}
	return nil
}

func pageValues(q model.ListQuery) url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("page_size", strconv.Itoa(q.PageSize))
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}

func list[T any](ctx context.Context, c *Client, path string, q model.ListQuery, v url.Values) (model.Page[T], error) {
	var p model.Page[T]
	if err := c.get(ctx, path, v, &p); err != nil {
		return model.Page[T]{}, err
	}
	if p.Page == 0 {
		p.Page = q.Page
	}
	if p.PageSize == 0 {
		p.PageSize = q.PageSize
	}
	return p, nil
}

func one[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	if err := c.get(ctx, path, nil, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func idPath(prefix string, id uint64) string {
	return prefix + "/" + strconv.FormatUint(id, 10)
}

// ListFilms fetches one page of films.  Categories are sent as repeated
// "category" keys without indexes.
func (c *Client) ListFilms(ctx context.Context, q model.FilmQuery) (model.Page[model.Film], error) {
	q = q.Normalize()
	v := pageValues(q.ListQuery)
	if q.Rating != "" {
		v.Set("rating", string(q.Rating))
	}
	for _, cat := range q.Categories {
		v.Add("category", string(cat))
	}
	return list[model.Film](ctx, c, "/film", q.ListQuery, v)
}

// GetFilm fetches one film with its language and categories.
func (c *Client) GetFilm(ctx context.Context, id uint64) (model.Film, error) {
	return one[model.Film](ctx, c, idPath("/film", id))
}

// ListActors fetches one page of actors.
func (c *Client) ListActors(ctx context.Context, q model.ListQuery) (model.Page[model.Actor], error) {
	q = q.Normalize()
	return list[model.Actor](ctx, c, "/actor", q, pageValues(q))
}

// GetActor fetches one actor with their films.
func (c *Client) GetActor(ctx context.Context, id uint64) (model.Actor, error) {
	return one[model.Actor](ctx, c, idPath("/actor", id))
}

// ListRentals fetches one page of rentals, newest first.
func (c *Client) ListRentals(ctx context.Context, q model.ListQuery) (model.Page[model.Rental], error) {
	q = q.Normalize()
	return list[model.Rental](ctx, c, "/rental", q, pageValues(q))
}

// GetRental fetches one rental with staff, customer, inventory and payments.
func (c *Client) GetRental(ctx context.Context, id uint64) (model.Rental, error) {
	return one[model.Rental](ctx, c, idPath("/rental", id))
}

// GetCustomer fetches one customer with address, rentals and payments.
func (c *Client) GetCustomer(ctx context.Context, id uint64) (model.Customer, error) {
	return one[model.Customer](ctx, c, idPath("/customer", id))
}

// Ping checks that the backend answers at all.  Any HTTP response counts.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}
