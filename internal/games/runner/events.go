package runner

// EventKind identifies a discrete simulation event.
type EventKind int

const (
	EventGameOver EventKind = iota
	EventItemCollected
)

func (k EventKind) String() string {
	switch k {
	case EventGameOver:
		return "game-over"
	case EventItemCollected:
		return "item-collected"
	default:
		return "unknown"
	}
}

// Event is emitted by the collision detector. ScoreDelta is set for
// EventItemCollected; Entity names the obstacle or collectible involved.
type Event struct {
	Kind       EventKind
	ScoreDelta int
	Entity     EntityID
}
