package cartrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yukta0302/rentwala/model"
)

// Carts live in redis, one list per user, lines as JSON. The TTL matches the
// token lifetime so an abandoned cart dies with its session.
type Repo interface {
	Append(ctx context.Context, userID int64, line model.CartLine) error
	Lines(ctx context.Context, userID int64) ([]model.CartLine, error)
	Clear(ctx context.Context, userID int64) error
}

type repo struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) Repo { return &repo{rdb: rdb, ttl: ttl} }

func key(userID int64) string { return fmt.Sprintf("cart:%d", userID) }

func (r *repo) Append(ctx context.Context, userID int64, line model.CartLine) error {
	b, err := json.Marshal(line)
	if err != nil {
		return err
	}
	k := key(userID)
	pipe := r.rdb.TxPipeline()
	pipe.RPush(ctx, k, b)
	pipe.Expire(ctx, k, r.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (r *repo) Lines(ctx context.Context, userID int64) ([]model.CartLine, error) {
	raw, err := r.rdb.LRange(ctx, key(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]model.CartLine, 0, len(raw))
	for _, s := range raw {
		var line model.CartLine
		if err := json.Unmarshal([]byte(s), &line); err != nil {
			return nil, err
		}
		out = append(out, line)
	}
	return out, nil
}

func (r *repo) Clear(ctx context.Context, userID int64) error {
	return r.rdb.Del(ctx, key(userID)).Err()
}
