package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"news-portal/config"

	"github.com/dghubble/oauth1"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const createTweetURL = "https://api.twitter.com/2/tweets"

// SocialPoster publishes a short public announcement. Publish returns the
// remote post id on success.
type SocialPoster interface {
	Enabled() bool
	Publish(ctx context.Context, text string) (string, error)
}

// xPoster posts to the X API v2 create-tweet endpoint with OAuth1 user
// context. Outbound calls are rate limited and guarded by a circuit
// breaker so a dead API cannot pile up goroutines behind HTTP timeouts.
type xPoster struct {
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	limiter *rate.Limiter
	enabled bool
}

func NewXPoster(cfg config.SocialConfig) SocialPoster {
	if !cfg.Enabled || cfg.APIKey == "" || cfg.APISecret == "" ||
		cfg.AccessToken == "" || cfg.AccessSecret == "" {
		return &xPoster{enabled: false}
	}

	oauthConfig := oauth1.NewConfig(cfg.APIKey, cfg.APISecret)
	token := oauth1.NewToken(cfg.AccessToken, cfg.AccessSecret)
	client := oauthConfig.Client(oauth1.NoContext, token)
	client.Timeout = 10 * time.Second

	return &xPoster{
		client: client,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "x-api",
			Timeout: 2 * time.Minute,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 5),
		enabled: true,
	}
}

func (p *xPoster) Enabled() bool {
	return p.enabled
}

func (p *xPoster) Publish(ctx context.Context, text string) (string, error) {
	if !p.enabled {
		return "", fmt.Errorf("social posting is disabled")
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return "", err
	}

	result, err := p.breaker.Execute(func() (interface{}, error) {
		return p.createTweet(ctx, text)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (p *xPoster) createTweet(ctx context.Context, text string) (string, error) {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, createTweetURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("create tweet returned %d: %s", resp.StatusCode, body)
	}

	var tweetResp struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tweetResp); err != nil {
		return "", err
	}
	return tweetResp.Data.ID, nil
}
