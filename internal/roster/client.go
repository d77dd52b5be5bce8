// Package roster acquires the employee roster from the remote people API and
// enriches each record with generated HR data.
package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const (
	DefaultBaseURL = "https://dummyjson.com"
	DefaultLimit   = 20
	DefaultTimeout = 10 * time.Second
)

// RawPerson is a person record as served by the upstream API.
type RawPerson struct {
	ID        int64      `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Age       int        `json:"age"`
	Phone     string     `json:"phone"`
	Image     string     `json:"image"`
	Address   RawAddress `json:"address"`
}

type RawAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type Config struct {
	BaseURL string
	Limit   int
	Timeout time.Duration
}

type Client struct {
	http   *resty.Client
	limit  int
	logger *slog.Logger
}

func NewClient(config Config, logger *slog.Logger) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	limit := config.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
		limit:  limit,
		logger: logger,
	}
}

// FetchPeople issues a single GET /users?limit=N. A non-2xx status, a body that
// is not JSON, or a body without a users array is an error.
func (c *Client) FetchPeople(ctx context.Context) ([]RawPerson, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(c.limit)).
		Get("/users")
	if err != nil {
		return nil, fmt.Errorf("request people: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("people API returned status %d", resp.StatusCode())
	}

	body := resp.Body()
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("people API returned invalid JSON")
	}

	users := gjson.GetBytes(body, "users")
	if !users.IsArray() {
		return nil, fmt.Errorf("people API response has no users array")
	}

	var people []RawPerson
	if err := json.Unmarshal([]byte(users.Raw), &people); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	c.logger.Debug("fetched people", "count", len(people), "limit", c.limit)
	return people, nil
}
