package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// accountsTokenURL is a variable so tests can point the exchange at a stub.
var accountsTokenURL = "https://accounts.spotify.com/api/token"

// Cache structure holding token, expiration, and mutex
var tokenCache struct {
	sync.RWMutex
	token            string
	expiresAt        time.Time
	lastFetchAttempt time.Time
	fetchErr         error
}

// expirationBuffer defines how close to expiration we trigger a refresh.
const expirationBuffer = 60 * time.Second

// retryCooldown defines minimum time before retrying after a failed fetch
const retryCooldown = 15 * time.Second

// fetchNewToken performs the client-credentials exchange against the
// accounts service and returns the bearer token with its expiry.
func fetchNewToken(ctx context.Context) (string, time.Time, error) {
	logger.Debug("Fetching a new client-credentials token")

	cfg, err := GetConfig()
	if err != nil {
		return "", time.Time{}, err
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, "POST", accountsTokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to create request for %s: %w", accountsTokenURL, err)
	}
	req.SetBasicAuth(cfg.ClientId, cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to execute request to %s: %w", accountsTokenURL, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to read response body (status %d) from %s: %w", resp.StatusCode, accountsTokenURL, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", time.Time{}, fmt.Errorf("received non-OK status code %d (%s) from %s: %s",
			resp.StatusCode, http.StatusText(resp.StatusCode), accountsTokenURL, string(bodyBytes))
	}

	var result tokenResponse
	err = json.Unmarshal(bodyBytes, &result)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to unmarshal token JSON response from %s: %w. Body: %s", accountsTokenURL, err, string(bodyBytes))
	}
	if result.AccessToken == "" {
		return "", time.Time{}, fmt.Errorf("parsed access token is empty in response from %s. Body: %s", accountsTokenURL, string(bodyBytes))
	}
	if result.ExpiresIn <= 0 {
		return "", time.Time{}, fmt.Errorf("invalid expires_in %d received from %s", result.ExpiresIn, accountsTokenURL)
	}

	expirationTime := time.Now().Add(time.Duration(result.ExpiresIn) * time.Second)

	logger.Debug("Successfully fetched new token",
		zap.Time("expiresAt", expirationTime))
	return result.AccessToken, expirationTime, nil
}

func getAccessToken(ctx context.Context) (string, error) {
	now := time.Now()

	// --- Fast path: Check cache with Read Lock ---
	tokenCache.RLock()
	if tokenCache.token != "" && now.Before(tokenCache.expiresAt.Add(-expirationBuffer)) {
		token := tokenCache.token // Copy value while holding lock
		tokenCache.RUnlock()
		return token, nil
	}
	// Token is invalid or doesn't exist, need to potentially fetch.
	tokenCache.RUnlock()

	// --- Slow path: Acquire Write Lock to Update ---
	tokenCache.Lock()
	defer tokenCache.Unlock()

	// Double-check validity after acquiring write lock; another goroutine
	// might have refreshed the token while we waited.
	now = time.Now()
	if tokenCache.token != "" && now.Before(tokenCache.expiresAt.Add(-expirationBuffer)) {
		return tokenCache.token, nil
	}

	// Prevent rapid-fire retries if the last fetch failed recently
	if tokenCache.fetchErr != nil && now.Before(tokenCache.lastFetchAttempt.Add(retryCooldown)) {
		return "", fmt.Errorf("token refresh failed recently, try again after %v: %w", retryCooldown, tokenCache.fetchErr)
	}

	newToken, newExpiresAt, err := fetchNewToken(ctx)
	tokenCache.lastFetchAttempt = time.Now()

	if err != nil {
		logger.Error("Failed to fetch new token", zap.Error(err))
		tokenCache.fetchErr = err
		return "", err
	}

	tokenCache.token = newToken
	tokenCache.expiresAt = newExpiresAt
	tokenCache.fetchErr = nil

	return tokenCache.token, nil
}
