package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront/internal/cache"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CookieName is the session cookie set on login and cleared on logout.
const CookieName = "session_id"

const sessionKeyPrefix = "session:"

// ErrNoSession means the token resolved to no live session.
var ErrNoSession = errors.New("no active session")

var (
	newToken      = uuid.NewString
	jsonMarshal   = json.Marshal
	jsonUnmarshal = json.Unmarshal
)

// Session is the principal record stored in redis for a logged-in account.
type Session struct {
	AccountID string `json:"accountId"`
	Username  string `json:"username"`
}

// CreateSession stores a fresh session and returns its opaque token.
func CreateSession(ctx context.Context, rdb cache.Cache, sess Session, ttl time.Duration) (string, error) {
	token := newToken()
	payload, err := jsonMarshal(sess)
	if err != nil {
		return "", fmt.Errorf("CreateSession: %w", err)
	}
	if err := rdb.Set(ctx, sessionKeyPrefix+token, payload, ttl).Err(); err != nil {
		return "", fmt.Errorf("CreateSession: %w", err)
	}
	return token, nil
}

// GetSession resolves a token to its session, or ErrNoSession.
func GetSession(ctx context.Context, rdb cache.Cache, token string) (*Session, error) {
	payload, err := rdb.Get(ctx, sessionKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("GetSession: %w", err)
	}
	sess := &Session{}
	if err := jsonUnmarshal(payload, sess); err != nil {
		return nil, fmt.Errorf("GetSession: %w", err)
	}
	return sess, nil
}

// DeleteSession revokes a token. Deleting an expired token is not an error.
func DeleteSession(ctx context.Context, rdb cache.Cache, token string) error {
	if err := rdb.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("DeleteSession: %w", err)
	}
	return nil
}
