package ban

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	strikeKeyPrefix = "ratelimit:strikes:"
	banKeyPrefix    = "ratelimit:ban:"
	// DailyBanLogKey holds one JSON BanLogEntry per ban issued.
	DailyBanLogKey = "ratelimit:banlog:daily"
)

type BanLogEntry struct {
	Target  string    `json:"target"`
	Route   string    `json:"route"`
	Strikes int64     `json:"strikes"`
	Time    time.Time `json:"time"`
}

// Service counts rate-limit strikes per client and bans clients that collect
// too many of them inside the strike window.
type Service struct {
	rdb      *redis.Client
	strikes  int64
	window   time.Duration
	duration time.Duration
}

func NewService(rdb *redis.Client, strikes int, window, duration time.Duration) *Service {
	return &Service{
		rdb:      rdb,
		strikes:  int64(strikes),
		window:   window,
		duration: duration,
	}
}

func (s *Service) IsBanned(ctx context.Context, target string) (bool, error) {
	n, err := s.rdb.Exists(ctx, banKeyPrefix+target).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check ban: %w", err)
	}
	return n > 0, nil
}

// AddStrike records one strike for target and bans it once the threshold is
// reached. It reports whether the target is now banned.
func (s *Service) AddStrike(ctx context.Context, target, route string) (bool, error) {
	key := strikeKeyPrefix + target

	strikes, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to record strike: %w", err)
	}
	if strikes == 1 {
		// the window starts with the first strike
		if err := s.rdb.Expire(ctx, key, s.window).Err(); err != nil {
			return false, fmt.Errorf("failed to set strike window: %w", err)
		}
	}
	if strikes < s.strikes {
		return false, nil
	}

	if err := s.rdb.Set(ctx, banKeyPrefix+target, strikes, s.duration).Err(); err != nil {
		return false, fmt.Errorf("failed to ban %s: %w", target, err)
	}
	if err := s.rdb.Del(ctx, key).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return true, fmt.Errorf("failed to reset strikes: %w", err)
	}
	if err := s.logBanEvent(ctx, target, route, strikes); err != nil {
		return true, err
	}
	return true, nil
}

func (s *Service) logBanEvent(ctx context.Context, target, route string, strikes int64) error {
	entry := BanLogEntry{
		Target:  target,
		Route:   route,
		Strikes: strikes,
		Time:    time.Now().UTC(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode ban log entry: %w", err)
	}
	if err := s.rdb.RPush(ctx, DailyBanLogKey, data).Err(); err != nil {
		return fmt.Errorf("failed to append ban log: %w", err)
	}
	return nil
}

// BanLog returns the recorded bans, oldest first.
func (s *Service) BanLog(ctx context.Context) ([]BanLogEntry, error) {
	items, err := s.rdb.LRange(ctx, DailyBanLogKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]BanLogEntry, 0, len(items))
	for _, item := range items {
		var entry BanLogEntry
		if err := json.Unmarshal([]byte(item), &entry); err == nil {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}
