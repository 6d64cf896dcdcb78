package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"logic-looper-backend/internal/config"
	"logic-looper-backend/internal/models"

	"github.com/redis/go-redis/v9"
)

type RedisService struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisService(cfg *config.Config) (*RedisService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()

	_, err := client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %v", err)
	}

	service := &RedisService{
		client: client,
		ctx:    ctx,
	}

	return service, nil
}

func (s *RedisService) Close() error {
	return s.client.Close()
}

func (s *RedisService) Ping() error {
	return s.client.Ping(s.ctx).Err()
}

func (s *RedisService) CreateUser(user *models.User) error {
	emailKey := fmt.Sprintf(KeyUserByEmail, user.Email)

	ok, err := s.client.SetNX(s.ctx, emailKey, user.ID, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to reserve email: %v", err)
	}
	if !ok {
		return fmt.Errorf("user already exists")
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %v", err)
	}

	return s.client.Set(s.ctx, fmt.Sprintf(KeyUserInfo, user.ID), data, 0).Err()
}

func (s *RedisService) GetUserByEmail(email string) (*models.User, error) {
	userID, err := s.client.Get(s.ctx, fmt.Sprintf(KeyUserByEmail, email)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to look up user: %v", err)
	}
	return s.GetUser(userID)
}

func (s *RedisService) GetUser(userID string) (*models.User, error) {
	data, err := s.client.Get(s.ctx, fmt.Sprintf(KeyUserInfo, userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("user not found: %s", userID)
		}
		return nil, fmt.Errorf("failed to get user: %v", err)
	}

	var user models.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %v", err)
	}
	return &user, nil
}

// UpsertScores stores the pushed daily scores in the user's score hash,
// keyed by date, and returns the total points that were new to the store.
// Re-syncing the same day replaces its record; the delta only counts score
// the leaderboard has not credited yet.
func (s *RedisService) UpsertScores(userID string, scores []models.DailyActivity) (int, error) {
	key := fmt.Sprintf(KeyUserScores, userID)

	existing, err := s.client.HGetAll(s.ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read score hash: %v", err)
	}

	delta := 0
	pipe := s.client.TxPipeline()
	for _, sc := range scores {
		prev := 0
		if raw, ok := existing[sc.Date]; ok {
			var old models.DailyActivity
			if err := json.Unmarshal([]byte(raw), &old); err == nil {
				prev = old.Score
			}
		}
		delta += sc.Score - prev

		data, err := json.Marshal(sc)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal score for %s: %v", sc.Date, err)
		}
		pipe.HSet(s.ctx, key, sc.Date, data)
	}

	if _, err := pipe.Exec(s.ctx); err != nil {
		return 0, fmt.Errorf("failed to store scores: %v", err)
	}
	return delta, nil
}

// GetScores returns every stored daily score for a user.
func (s *RedisService) GetScores(userID string) ([]models.DailyActivity, error) {
	raw, err := s.client.HGetAll(s.ctx, fmt.Sprintf(KeyUserScores, userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get scores: %v", err)
	}

	scores := make([]models.DailyActivity, 0, len(raw))
	for _, data := range raw {
		var sc models.DailyActivity
		if err := json.Unmarshal([]byte(data), &sc); err != nil {
			continue
		}
		scores = append(scores, sc)
	}
	return scores, nil
}

func (s *RedisService) SaveStats(stats *models.UserStats) error {
	stats.UpdatedAt = time.Now()

	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %v", err)
	}
	return s.client.Set(s.ctx, fmt.Sprintf(KeyUserStats, stats.UserID), data, 0).Err()
}

func (s *RedisService) GetStats(userID string) (*models.UserStats, error) {
	data, err := s.client.Get(s.ctx, fmt.Sprintf(KeyUserStats, userID)).Result()
	if err == redis.Nil {
		return &models.UserStats{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %v", err)
	}

	var stats models.UserStats
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats: %v", err)
	}
	return &stats, nil
}

// CreditLeaderboards adds newly synced points to the all-time, weekly and
// daily boards. The windowed keys expire on their own once stale.
func (s *RedisService) CreditLeaderboards(userID string, points int, now time.Time) error {
	if points == 0 {
		return nil
	}

	weekKey := fmt.Sprintf(KeyLeaderboardWeek, isoWeek(now))
	dayKey := fmt.Sprintf(KeyLeaderboardToday, now.Format("2006-01-02"))

	pipe := s.client.TxPipeline()
	pipe.ZIncrBy(s.ctx, KeyLeaderboardAll, float64(points), userID)
	pipe.ZIncrBy(s.ctx, weekKey, float64(points), userID)
	pipe.ZIncrBy(s.ctx, dayKey, float64(points), userID)
	pipe.Expire(s.ctx, weekKey, TTLLeaderboardWeek)
	pipe.Expire(s.ctx, dayKey, TTLLeaderboardToday)

	if _, err := pipe.Exec(s.ctx); err != nil {
		return fmt.Errorf("failed to credit leaderboards: %v", err)
	}
	return nil
}

// Leaderboard returns the top ranked users for a timeframe window.
func (s *RedisService) Leaderboard(tf models.Timeframe, now time.Time, limit int64) ([]models.LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var key string
	switch tf {
	case models.TimeframeWeek:
		key = fmt.Sprintf(KeyLeaderboardWeek, isoWeek(now))
	case models.TimeframeToday:
		key = fmt.Sprintf(KeyLeaderboardToday, now.Format("2006-01-02"))
	default:
		key = KeyLeaderboardAll
	}

	ranked, err := s.client.ZRevRangeWithScores(s.ctx, key, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %v", err)
	}

	entries := make([]models.LeaderboardEntry, 0, len(ranked))
	for i, z := range ranked {
		userID, ok := z.Member.(string)
		if !ok {
			continue
		}

		displayName := userID
		solved := 0
		if user, err := s.GetUser(userID); err == nil && user.DisplayName != "" {
			displayName = user.DisplayName
		}
		if stats, err := s.GetStats(userID); err == nil {
			solved = stats.PuzzlesSolved
		}

		entries = append(entries, models.LeaderboardEntry{
			UserID:        userID,
			DisplayName:   displayName,
			TotalScore:    int(z.Score),
			PuzzlesSolved: solved,
			Rank:          i + 1,
		})
	}
	return entries, nil
}

func (s *RedisService) CheckRateLimit(userID string, action string, limit int, window time.Duration) (bool, error) {
	key := fmt.Sprintf(KeyRateLimit, userID, action)

	count, err := s.client.Incr(s.ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit: %v", err)
	}

	if count == 1 {
		s.client.Expire(s.ctx, key, window)
	}

	return count <= int64(limit), nil
}

func (s *RedisService) DeleteUser(userID string) error {
	user, err := s.GetUser(userID)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(s.ctx, fmt.Sprintf(KeyUserByEmail, user.Email))
	pipe.Del(s.ctx, fmt.Sprintf(KeyUserInfo, userID))
	pipe.Del(s.ctx, fmt.Sprintf(KeyUserScores, userID))
	pipe.Del(s.ctx, fmt.Sprintf(KeyUserStats, userID))
	pipe.ZRem(s.ctx, KeyLeaderboardAll, userID)
	_, err = pipe.Exec(s.ctx)
	return err
}

func isoWeek(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
