package storage

// GameScores binds a Store to one game id so it can serve as that game's
// high-score collaborator.
type GameScores struct {
	store  *Store
	gameID string
}

// ForGame returns the high-score view of the store for gameID.
func (s *Store) ForGame(gameID string) *GameScores {
	return &GameScores{store: s, gameID: gameID}
}

// HighScore returns the best recorded score.
func (g *GameScores) HighScore() (int, error) {
	return g.store.HighScore(g.gameID)
}

// SetHighScore records a new best score.
func (g *GameScores) SetHighScore(score int) error {
	return g.store.SetHighScore(g.gameID, score)
}
