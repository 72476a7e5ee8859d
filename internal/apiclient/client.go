package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tair/property-browser/internal/config"
	"github.com/tair/property-browser/internal/domain"
	"github.com/tair/property-browser/pkg/logger"
)

// maxErrorBody bounds how much of an error response is kept for logs
const maxErrorBody = 512

// Client talks to the remote property API
type Client struct {
	httpClient *http.Client
	balancer   *RoundRobin
	breaker    *CircuitBreaker
	metrics    *Metrics
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithMetrics records every call in m
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithBreaker replaces the default circuit breaker
func WithBreaker(cb *CircuitBreaker) Option {
	return func(c *Client) { c.breaker = cb }
}

// New creates a property API client
func New(cfg config.APIConfig, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		balancer: NewRoundRobin(cfg.BaseURLs),
		breaker:  NewCircuitBreaker("property-api", 5, 30*time.Second),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Breaker exposes the circuit breaker for health reporting
func (c *Client) Breaker() *CircuitBreaker {
	return c.breaker
}

// Servers returns the configured API base URLs
func (c *Client) Servers() []string {
	return c.balancer.Servers()
}

// ListUsers handles GET /api/users
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     config.UsersPath,
		endpoint: config.UsersPath,
		out:      &users,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser handles GET /api/users/{id}
func (c *Client) GetUser(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     config.UserPath(id),
		endpoint: config.UsersPath + "/{id}",
		out:      &user,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &user, nil
}

// ListProperties handles GET /api/properties
func (c *Client) ListProperties(ctx context.Context) ([]domain.Property, error) {
	var properties []domain.Property
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     config.PropertiesPath,
		endpoint: config.PropertiesPath,
		out:      &properties,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return properties, nil
}

// ListFavorites handles GET /api/Favorites
func (c *Client) ListFavorites(ctx context.Context) (domain.Favorites, error) {
	var favorites domain.Favorites
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     config.FavoritesPath,
		endpoint: config.FavoritesPath,
		out:      &favorites,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return favorites, nil
}

// userFavoriteRow accepts both favorite rows and bare property rows
type userFavoriteRow struct {
	domain.Favorite
	Title string `json:"title"`
}

// ListUserFavoriteProperties handles GET /api/Favorites/user/{userId}/properties.
// Bare property rows are normalized into favorites of userID.
func (c *Client) ListUserFavoriteProperties(ctx context.Context, userID int) (domain.Favorites, error) {
	var rows []userFavoriteRow
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     config.UserFavoritePropertiesPath(userID),
		endpoint: config.FavoritesPath + "/user/{userId}/properties",
		out:      &rows,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites of user %d: %w", userID, err)
	}

	favorites := make(domain.Favorites, 0, len(rows))
	for _, row := range rows {
		fav := row.Favorite
		if fav.PropertyID == 0 && fav.Property == nil && row.Title != "" && fav.ID != nil {
			fav.Property = &domain.PropertySummary{ID: *fav.ID, Title: row.Title}
			fav.PropertyID = *fav.ID
			fav.ID = nil
		}
		if fav.UserID == 0 {
			fav.UserID = userID
		}
		favorites = append(favorites, fav)
	}
	return favorites, nil
}

// CreateFavorite handles POST /api/Favorites
func (c *Client) CreateFavorite(ctx context.Context, in domain.FavoriteInput) (*domain.Favorite, error) {
	var created domain.Favorite
	err := c.do(ctx, call{
		method:       http.MethodPost,
		path:         config.FavoritesPath,
		endpoint:     config.FavoritesPath,
		body:         in,
		out:          &created,
		optionalBody: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create favorite: %w", err)
	}

	if created.UserID == 0 && created.PropertyID == 0 {
		created.UserID = in.UserID
		created.PropertyID = in.PropertyID
	}
	return &created, nil
}

// Ping issues a GET against path and only checks for a 2xx answer
func (c *Client) Ping(ctx context.Context, base, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, config.URL(base, path), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: http.MethodGet, Path: path, StatusCode: resp.StatusCode}
	}
	return nil
}

type call struct {
	method   string
	path     string
	endpoint string
	body     interface{}
	out      interface{}
	// optionalBody accepts an empty 2xx body
	optionalBody bool
}

// do sends one request through the circuit breaker and records metrics
func (c *Client) do(ctx context.Context, cl call) error {
	var payload []byte
	if cl.body != nil {
		var err error
		payload, err = json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
	}

	start := time.Now()
	var (
		status  int
		callErr error
	)
	breakerErr := c.breaker.Call(func() error {
		status, callErr = c.send(ctx, cl, payload)
		if errors.Is(callErr, ErrUnreachable) || status >= 500 {
			return callErr
		}
		return nil
	})
	if breakerErr != nil && callErr == nil {
		callErr = breakerErr
	}

	duration := time.Since(start)
	c.metrics.observe(cl.method, cl.endpoint, status, duration)

	if callErr != nil {
		logger.Warn(ctx).
			Err(callErr).
			Str("method", cl.method).
			Str("endpoint", cl.endpoint).
			Int("status", status).
			Dur("duration", duration).
			Msg("Property API request failed")
		return callErr
	}

	logger.Debug(ctx).
		Str("method", cl.method).
		Str("endpoint", cl.endpoint).
		Int("status", status).
		Dur("duration", duration).
		Msg("Property API request completed")
	return nil
}

func (c *Client) send(ctx context.Context, cl call, payload []byte) (int, error) {
	target := config.URL(c.balancer.Next(), cl.path)

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, target, body)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, fmt.Errorf("%s %s: %w", cl.method, cl.path, ctxErr)
		}
		return 0, fmt.Errorf("%w: %s %s: %v", ErrUnreachable, cl.method, cl.path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%w: %s %s: %v", ErrUnreachable, cl.method, cl.path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := strings.TrimSpace(string(data))
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return resp.StatusCode, &StatusError{
			Method:     cl.method,
			Path:       cl.path,
			StatusCode: resp.StatusCode,
			Body:       snippet,
		}
	}

	if cl.out == nil {
		return resp.StatusCode, nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		if cl.optionalBody {
			return resp.StatusCode, nil
		}
		return resp.StatusCode, fmt.Errorf("%w: %s %s: empty body", ErrDecode, cl.method, cl.path)
	}
	if err := json.Unmarshal(data, cl.out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: %s %s: %v", ErrDecode, cl.method, cl.path, err)
	}
	return resp.StatusCode, nil
}
