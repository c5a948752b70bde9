package lobby

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisRepo struct {
	rdb *redis.Client
}

func NewRedisRepo(rdb *redis.Client) Repo {
	return &redisRepo{rdb: rdb}
}

// key layout:
//
//	set: lobby:queue            -> Set(playerID,...)
//	kv : lobby:player:{id}      -> "1", with TTL so stale entries expire
const queueKey = "lobby:queue"

func playerKey(id string) string {
	return fmt.Sprintf("lobby:player:%s", id)
}

func (r *redisRepo) Enqueue(ctx context.Context, playerID string, ttlSeconds int) error {
	p := r.rdb.Pipeline()
	p.SAdd(ctx, queueKey, playerID)
	p.Set(ctx, playerKey(playerID), "1", time.Duration(ttlSeconds)*time.Second)
	_, err := p.Exec(ctx)
	return err
}

func (r *redisRepo) PopTable(ctx context.Context, n int) ([]string, error) {
	// Check-and-pop must be atomic or two concurrent joins can strand a
	// partial table. SPOP COUNT inside the script pops n random members.
	// KEYS[1] = queue set, ARGV[1] = n
	script := `
        if redis.call("SCARD", KEYS[1]) < tonumber(ARGV[1]) then
            return {}
        end
        local ids = redis.call("SPOP", KEYS[1], tonumber(ARGV[1]))
        for _, id in ipairs(ids) do
            redis.call("DEL", "lobby:player:" .. id)
        end
        return ids
    `
	res, err := r.rdb.Eval(ctx, script, []string{queueKey}, n).StringSlice()
	if err != nil && err != redis.Nil {
		return nil, err
	}
	return res, nil
}

func (r *redisRepo) Remove(ctx context.Context, playerID string) error {
	p := r.rdb.Pipeline()
	p.SRem(ctx, queueKey, playerID)
	p.Del(ctx, playerKey(playerID))
	_, err := p.Exec(ctx)
	return err
}

func (r *redisRepo) Count(ctx context.Context) (int64, error) {
	return r.rdb.SCard(ctx, queueKey).Result()
}
