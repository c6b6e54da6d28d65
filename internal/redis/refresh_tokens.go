package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/careviah/care-scheduler/internal/config"
	"github.com/careviah/care-scheduler/internal/model"
	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"
)

const sessionPrefix = "session:"

// RefreshTokenRepository keeps refresh sessions in redis with a TTL.
// Keys are the opaque session tokens, values the user id.
type RefreshTokenRepository struct {
	pool   *redis.Pool
	logger *zap.SugaredLogger
}

func NewRefreshTokenRepository(pool *redis.Pool, logger *zap.SugaredLogger) *RefreshTokenRepository {
	return &RefreshTokenRepository{
		pool:   pool,
		logger: logger,
	}
}

// Add stores a new session. A token collision yields
// model.ErrAlreadyExists so the caller can retry with a fresh token.
func (r *RefreshTokenRepository) Add(ctx context.Context, session string, id string) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer r.closeConn(conn)

	reply, err := redis.String(conn.Do("SET", sessionPrefix+session, id,
		"NX", "EX", int(config.SessionTTl().Seconds())))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return model.ErrAlreadyExists
		}
		return fmt.Errorf("SET session: %w", err)
	}

	if reply != "OK" {
		return model.ErrAlreadyExists
	}

	return nil
}

// Get returns the user id of a session, model.ErrNoRecord when the
// session is unknown or expired.
func (r *RefreshTokenRepository) Get(ctx context.Context, session string) (string, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return "", fmt.Errorf("get connection: %w", err)
	}
	defer r.closeConn(conn)

	id, err := redis.String(conn.Do("GET", sessionPrefix+session))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return "", model.ErrNoRecord
		}
		return "", fmt.Errorf("GET session: %w", err)
	}

	return id, nil
}

// Refresh atomically replaces an old session with a new one, keeping
// the same user id.
func (r *RefreshTokenRepository) Refresh(ctx context.Context, old, new string) error {
	id, err := r.Get(ctx, old)
	if err != nil {
		return err
	}

	if err := r.Add(ctx, new, id); err != nil {
		return err
	}

	return r.Delete(ctx, old)
}

// Delete removes a session, model.ErrNoRecord when it does not exist.
func (r *RefreshTokenRepository) Delete(ctx context.Context, session string) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer r.closeConn(conn)

	removed, err := redis.Int(conn.Do("DEL", sessionPrefix+session))
	if err != nil {
		return fmt.Errorf("DEL session: %w", err)
	}

	if removed == 0 {
		return model.ErrNoRecord
	}

	return nil
}

func (r *RefreshTokenRepository) closeConn(conn redis.Conn) {
	if err := conn.Close(); err != nil {
		r.logger.Errorw("Failed closing redis connection", "err", err)
	}
}
