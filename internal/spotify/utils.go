package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	config         *Config
	configOnce     sync.Once
	configErr      error
	httpClient     *http.Client
	httpClientOnce sync.Once

	// Spotify allows bursts but throttles sustained traffic; stay under it.
	limiter = rate.NewLimiter(rate.Limit(10), 20)
)

const (
	spotifyAPIURL = "https://api.spotify.com/v1"
	maxRetries    = 3
)

func init() {
	httpClientOnce.Do(func() {
		transport := &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		}
		httpClient = &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
		}
	})
}

type Config struct {
	ClientId     string
	ClientSecret string
}

func GetConfig() (*Config, error) {
	configOnce.Do(func() {
		config, configErr = loadConfig()
	})
	return config, configErr
}

func loadConfig() (*Config, error) {
	config := &Config{
		ClientId:     os.Getenv("SPOTIFY_CLIENT_ID"),
		ClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
	}

	if config.ClientId == "" || config.ClientSecret == "" {
		return nil, fmt.Errorf("SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET must be set")
	}

	return config, nil
}

func fetchItem[T any](ctx context.Context, token string, url string) (*T, error) {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff
			waitTime := time.Duration(attempt*3) * time.Second
			logger.Info("Retrying request",
				zap.Int("attempt", attempt+1),
				zap.Duration("waitTime", waitTime),
				zap.String("url", url))
			time.Sleep(waitTime)
		}

		if err := limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
		if err != nil {
			logger.Error("Error creating HTTP request", zap.Error(err), zap.String("url", url))
			lastErr = err
			continue
		}
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

		resp, err := httpClient.Do(req)
		if err != nil {
			logger.Error("Error making GET request", zap.Error(err), zap.String("url", url))
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()

			logger.Error("Error response from Spotify server",
				zap.Int("statusCode", resp.StatusCode),
				zap.String("url", url))

			if resp.StatusCode == http.StatusTooManyRequests {
				retryAfter := 60
				if retryHeader := resp.Header.Get("Retry-After"); retryHeader != "" {
					if seconds, err := time.ParseDuration(retryHeader + "s"); err == nil {
						retryAfter = int(seconds.Seconds())
					}
				}
				logger.Warn("Rate limited by Spotify",
					zap.Int("retryAfterSeconds", retryAfter),
					zap.String("url", url))
				time.Sleep(time.Duration(retryAfter) * time.Second)
				lastErr = fmt.Errorf("rate limited, retrying after %d seconds", retryAfter)
				continue
			} else if resp.StatusCode == http.StatusNotFound {
				return nil, ErrNotFound
			} else if resp.StatusCode >= 500 {
				// Server errors might be temporary
				lastErr = fmt.Errorf("server returned status code %d, may retry", resp.StatusCode)
				continue
			} else {
				// Client errors (4xx) except 429 are likely not recoverable with retries
				return nil, &APIError{URL: url, Err: fmt.Errorf("server returned status code %d", resp.StatusCode)}
			}
		} else {
			defer resp.Body.Close()
			var result T
			if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
				logger.Error("Error decoding Spotify response body", zap.Error(err), zap.String("url", url))
				lastErr = err
				continue
			}

			return &result, nil
		}
	}

	logger.Error("All Spotify request attempts failed",
		zap.Int("attempts", maxRetries),
		zap.String("url", url),
		zap.Error(lastErr))
	return nil, &APIError{URL: url, Err: fmt.Errorf("all %d attempts failed, last error: %v", maxRetries, lastErr)}
}

func getItem[T any](ctx context.Context, url string) (*T, error) {
	token, err := getAccessToken(ctx)
	if err != nil {
		return nil, &APIError{URL: url, Err: err}
	}
	return fetchItem[T](ctx, token, url)
}
