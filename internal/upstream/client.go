// Package upstream is the gateway to the external football-data provider.
// It owns the only I/O in the system: rate-limited, breaker-protected
// HTTP fetches with a fixture fallback for non-production deployments.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/avilanova/barcarate/internal/model"
)

const defaultBaseURL = "https://v3.football.api-sports.io"

// Gateway is the capability the rest of the service needs from the
// provider: player search, the home squad, and a readiness probe.
type Gateway interface {
	SearchPlayers(ctx context.Context, query string) ([]model.PlayerRecord, error)
	FetchSquad(ctx context.Context) (model.Team, []model.PlayerRecord, error)
	Ping(ctx context.Context) error
}

// Config carries the provider settings the client needs.
type Config struct {
	BaseURL     string
	APIKey      string
	LeagueID    int
	Season      int
	SquadTeamID int64
	Timeout     time.Duration
	// RequestInterval spaces outgoing calls; the provider's free tier is
	// tightly rate limited.
	RequestInterval time.Duration
	// MockFallback serves the fixture dataset on fetch failure instead of
	// propagating the error. Never enable it in production.
	MockFallback bool
}

// Client implements Gateway against api-football v3.
type Client struct {
	http    *http.Client
	cfg     Config
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
	log     zerolog.Logger
}

var _ Gateway = (*Client)(nil)

// NewClient builds a provider client. The circuit breaker trips after
// repeated failures so a dead provider fails fast instead of burning the
// request quota on timeouts.
func NewClient(cfg Config, logger zerolog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RequestInterval <= 0 {
		cfg.RequestInterval = 200 * time.Millisecond
	}

	l := logger.With().Str("module", "upstream").Str("component", "client").Logger()

	settings := gobreaker.Settings{
		Name:    "football-api",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			l.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	}

	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Every(cfg.RequestInterval), 1),
		breaker: gobreaker.NewCircuitBreaker(settings),
		log:     l,
	}
}

// SearchPlayers queries the provider's player search scoped to the
// configured league and season.
func (c *Client) SearchPlayers(ctx context.Context, query string) ([]model.PlayerRecord, error) {
	endpoint := fmt.Sprintf("/players?search=%s&league=%d&season=%d",
		url.QueryEscape(query), c.cfg.LeagueID, c.cfg.Season)

	raw, err := c.fetch(ctx, endpoint)
	if err != nil {
		if c.cfg.MockFallback {
			c.log.Warn().Err(err).Msg("provider fetch failed, serving mock search results")
			return mapSearchEntries(mockSearchEntries()), nil
		}
		return nil, err
	}

	var entries []searchEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: decoding search response: %v", ErrBadPayload, err)
	}
	return mapSearchEntries(entries), nil
}

// FetchSquad retrieves the configured home club's current roster.
func (c *Client) FetchSquad(ctx context.Context) (model.Team, []model.PlayerRecord, error) {
	endpoint := fmt.Sprintf("/players/squads?team=%d", c.cfg.SquadTeamID)

	raw, err := c.fetch(ctx, endpoint)
	if err != nil {
		if c.cfg.MockFallback {
			c.log.Warn().Err(err).Msg("provider fetch failed, serving mock squad")
			team, players := mapSquadEntry(mockSquadEntry())
			return team, players, nil
		}
		return model.Team{}, nil, err
	}

	var entries []squadEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return model.Team{}, nil, fmt.Errorf("%w: decoding squad response: %v", ErrBadPayload, err)
	}
	if len(entries) == 0 {
		return model.Team{}, nil, fmt.Errorf("%w: empty squad response", ErrBadPayload)
	}

	team, players := mapSquadEntry(entries[0])
	return team, players, nil
}

// Ping probes the provider's status endpoint; used by readiness checks.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.fetch(ctx, "/status")
	return err
}

// fetch runs one rate-limited, breaker-protected GET and returns the raw
// response array from the provider envelope.
func (c *Client) fetch(ctx context.Context, endpoint string) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	out, err := c.breaker.Execute(func() (interface{}, error) {
		return c.doRequest(ctx, endpoint)
	})
	if err != nil {
		c.log.Error().Err(err).Str("endpoint", endpoint).Dur("took", time.Since(start)).Msg("provider request failed")
		if errors.Is(err, ErrBadPayload) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	c.log.Debug().Str("endpoint", endpoint).Dur("took", time.Since(start)).Msg("provider request ok")
	return out.(json.RawMessage), nil
}

func (c *Client) doRequest(ctx context.Context, endpoint string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-RapidAPI-Key", c.cfg.APIKey)
	req.Header.Set("X-RapidAPI-Host", "v3.football.api-sports.io")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: status %d", endpoint, resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: decoding envelope: %v", ErrBadPayload, err)
	}
	if hasAPIErrors(env.Errors) {
		return nil, fmt.Errorf("provider reported errors: %s", string(env.Errors))
	}
	return env.Response, nil
}
