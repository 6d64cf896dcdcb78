package services

import "time"

const (
	KeyUserByEmail = "user:email:%s"
	KeyUserInfo    = "user:%s:info"
	KeyUserScores  = "user:%s:scores"
	KeyUserStats   = "user:%s:stats"

	KeyLeaderboardAll   = "leaderboard:alltime"
	KeyLeaderboardWeek  = "leaderboard:week:%s" // ISO year-week, e.g. 2026-W35
	KeyLeaderboardToday = "leaderboard:day:%s"  // ISO date

	KeyRateLimit = "ratelimit:%s:%s"

	TTLLeaderboardWeek  = 14 * 24 * time.Hour
	TTLLeaderboardToday = 2 * 24 * time.Hour

	DefaultRateLimitSync = 30 // max 30 sync pushes per minute
)
