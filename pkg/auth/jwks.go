package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/singleflight"
)

// minForcedRefresh bounds how often an unknown kid may trigger a fetch.
const minForcedRefresh = time.Minute

// JWKSCache caches the issuer's RSA signing keys by kid.
// It is safe for concurrent use. Fetches run outside the lock and concurrent
// refreshes share one request.
type JWKSCache struct {
	uri        string
	httpClient *http.Client
	ttl        time.Duration
	cooldown   time.Duration

	group singleflight.Group

	mu          sync.RWMutex
	keys        map[string]*rsa.PublicKey
	fetched     time.Time
	lastAttempt time.Time
	lastErr     error
}

// NewJWKSCache creates a cache for the key set published at uri.
func NewJWKSCache(uri string, client *http.Client, ttl time.Duration) *JWKSCache {
	if client == nil {
		client = &http.Client{
			Timeout: 10 * time.Second,
		}
	}
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &JWKSCache{
		uri:        uri,
		httpClient: client,
		ttl:        ttl,
		cooldown:   minForcedRefresh,
		keys:       make(map[string]*rsa.PublicKey),
	}
}

// GetKey returns the key for kid, refreshing the set when it is stale or kid is unknown.
// An unknown kid triggers at most one fetch per cooldown. A cached key is still
// served if the refresh fails.
func (c *JWKSCache) GetKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	c.mu.RLock()
	key, ok := c.keys[kid]
	expired := time.Since(c.fetched) > c.ttl
	recent := time.Since(c.lastAttempt) < c.cooldown
	c.mu.RUnlock()

	if ok && !expired {
		return key, nil
	}
	if !ok && !expired && recent {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, kid)
	}

	keys, err := c.refresh(ctx)
	if err != nil {
		if ok {
			return key, nil
		}
		return nil, err
	}

	key, ok = keys[kid]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, kid)
	}

	return key, nil
}

// refresh fetches the key set once for all concurrent callers.
func (c *JWKSCache) refresh(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	v, err, _ := c.group.Do(c.uri, func() (any, error) {
		// within the cooldown the last outcome is reused, stale keys included
		c.mu.RLock()
		if time.Since(c.lastAttempt) < c.cooldown {
			keys, lastErr := c.keys, c.lastErr
			c.mu.RUnlock()
			if len(keys) == 0 && lastErr != nil {
				return nil, lastErr
			}
			return keys, nil
		}
		c.mu.RUnlock()

		keys, err := c.fetch(ctx)

		c.mu.Lock()
		defer c.mu.Unlock()
		c.lastAttempt = time.Now()
		c.lastErr = err
		if err != nil {
			return nil, err
		}
		c.keys = keys
		c.fetched = c.lastAttempt
		return keys, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]*rsa.PublicKey), nil
}

func (c *JWKSCache) fetch(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.uri, http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch JWKS: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("JWKS fetch failed with status %d", resp.StatusCode)
	}

	var jwks struct {
		Keys []struct {
			Kty string `json:"kty"`
			Kid string `json:"kid"`
			Use string `json:"use"`
			N   string `json:"n"`
			E   string `json:"e"`
		} `json:"keys"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&jwks); err != nil {
		return nil, fmt.Errorf("decode JWKS: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(jwks.Keys))
	for _, k := range jwks.Keys {
		if k.Kty != "RSA" || (k.Use != "" && k.Use != "sig") {
			continue
		}

		nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
		if err != nil {
			continue
		}
		eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
		if err != nil {
			continue
		}

		e := 0
		for _, b := range eBytes {
			e = e<<8 + int(b)
		}

		keys[k.Kid] = &rsa.PublicKey{
			N: new(big.Int).SetBytes(nBytes),
			E: e,
		}
	}

	return keys, nil
}
