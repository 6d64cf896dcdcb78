package services

// Broadcaster pushes live score events out to connected websocket clients.
type Broadcaster interface {
	BroadcastScoresSynced(userID string, puzzlesSolved, totalPoints, streak int)
	BroadcastLeaderboardChanged(timeframes []string)
}
