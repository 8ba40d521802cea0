package repo

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"player-registry/internal/domain"
)

const redisKeyPrefix = "player-registry"

// 所有玩家存放在一个 hash 里：field = id，value = JSON
func playersKey() string   { return redisKeyPrefix + ":players" }
func playerSeqKey() string { return redisKeyPrefix + ":players:seq" }

// redisPlayer 存储格式；枚举按原样保存字符串
type redisPlayer struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Title          string `json:"title"`
	Race           string `json:"race"`
	Profession     string `json:"profession"`
	Experience     int    `json:"experience"`
	Level          int    `json:"level"`
	UntilNextLevel int    `json:"untilNextLevel"`
	Birthday       int64  `json:"birthday"` // epoch millis
	Banned         bool   `json:"banned"`
}

func toRedisPlayer(p *domain.Player) redisPlayer {
	return redisPlayer{
		ID:             p.ID,
		Name:           p.Name,
		Title:          p.Title,
		Race:           string(p.Race),
		Profession:     string(p.Profession),
		Experience:     p.Experience,
		Level:          p.Level,
		UntilNextLevel: p.UntilNextLevel,
		Birthday:       p.Birthday.UnixMilli(),
		Banned:         p.Banned,
	}
}

func (rp redisPlayer) toDomain() domain.Player {
	return domain.Player{
		ID:             rp.ID,
		Name:           rp.Name,
		Title:          rp.Title,
		Race:           domain.Race(rp.Race),
		Profession:     domain.Profession(rp.Profession),
		Experience:     rp.Experience,
		Level:          rp.Level,
		UntilNextLevel: rp.UntilNextLevel,
		Birthday:       time.UnixMilli(rp.Birthday).UTC(),
		Banned:         rp.Banned,
	}
}

type RedisPlayerRepo struct {
	rdb *redis.Client
}

func NewRedisPlayerRepo(rdb *redis.Client) *RedisPlayerRepo { return &RedisPlayerRepo{rdb: rdb} }

var _ domain.PlayerRepository = (*RedisPlayerRepo)(nil)

func (r *RedisPlayerRepo) LoadAll(ctx context.Context) ([]domain.Player, error) {
	all, err := r.rdb.HGetAll(ctx, playersKey()).Result()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Player, 0, len(all))
	for _, raw := range all {
		var rp redisPlayer
		if err := json.Unmarshal([]byte(raw), &rp); err != nil {
			return nil, err
		}
		out = append(out, rp.toDomain())
	}
	slices.SortFunc(out, func(a, b domain.Player) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (r *RedisPlayerRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return r.rdb.HExists(ctx, playersKey(), strconv.FormatInt(id, 10)).Result()
}

func (r *RedisPlayerRepo) Get(ctx context.Context, id int64) (*domain.Player, error) {
	raw, err := r.rdb.HGet(ctx, playersKey(), strconv.FormatInt(id, 10)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrPlayerNotFound
	}
	if err != nil {
		return nil, err
	}
	var rp redisPlayer
	if err := json.Unmarshal(raw, &rp); err != nil {
		return nil, err
	}
	p := rp.toDomain()
	return &p, nil
}

func (r *RedisPlayerRepo) Save(ctx context.Context, p *domain.Player) (*domain.Player, error) {
	cp := *p
	if cp.ID == 0 {
		id, err := r.rdb.Incr(ctx, playerSeqKey()).Result()
		if err != nil {
			return nil, err
		}
		cp.ID = id
	}
	b, err := json.Marshal(toRedisPlayer(&cp))
	if err != nil {
		return nil, err
	}
	if err := r.rdb.HSet(ctx, playersKey(), strconv.FormatInt(cp.ID, 10), b).Err(); err != nil {
		return nil, err
	}
	out := toRedisPlayer(&cp).toDomain()
	return &out, nil
}

func (r *RedisPlayerRepo) Delete(ctx context.Context, id int64) error {
	return r.rdb.HDel(ctx, playersKey(), strconv.FormatInt(id, 10)).Err()
}

func (r *RedisPlayerRepo) Close() error { return r.rdb.Close() }
