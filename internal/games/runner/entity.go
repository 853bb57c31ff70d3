// Package runner implements the Jungle Runner simulation core: a tick-driven
// entity pipeline that integrates physics, scrolls the world, spawns obstacles
// and bananas, detects collisions and drives the game state machine.
package runner

import (
	"fmt"

	"github.com/vovakirdan/jungle-runner/internal/core"
)

// Kind discriminates the entity variants.
type Kind int

const (
	KindPlayer Kind = iota
	KindGround
	KindBackground
	KindObstacle
	KindCollectible
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindGround:
		return "ground"
	case KindBackground:
		return "background"
	case KindObstacle:
		return "obstacle"
	case KindCollectible:
		return "collectible"
	default:
		return "unknown"
	}
}

// EntityID is a stable opaque identifier. Seq is unique within a kind for the
// lifetime of a session; spawned kinds take it from their spawner's counter.
type EntityID struct {
	Kind Kind
	Seq  uint64
}

func (id EntityID) String() string {
	return fmt.Sprintf("%s#%d", id.Kind, id.Seq)
}

// ObstacleType is the visual/semantic variant of an obstacle.
type ObstacleType int

const (
	ObstacleStone ObstacleType = iota
	ObstacleLog
	ObstacleHole
)

// obstacleTypes is the uniform draw set for the obstacle spawner.
var obstacleTypes = [...]ObstacleType{ObstacleStone, ObstacleLog, ObstacleHole}

func (t ObstacleType) String() string {
	switch t {
	case ObstacleStone:
		return "stone"
	case ObstacleLog:
		return "log"
	case ObstacleHole:
		return "hole"
	default:
		return "unknown"
	}
}

// Body is the kind-specific record of an entity. The set of implementations is closed.
type Body interface {
	kind() Kind
	clone() Body
}

// PlayerBody is the runner controlled by jump and slide commands.
type PlayerBody struct {
	Position         core.Vec2
	Velocity         core.Vec2
	IsJumping        bool
	IsSliding        bool
	SlideRemainingMs float64 // Simulated time left before IsSliding clears
}

// GroundBody is one of the two ground tiles.
type GroundBody struct {
	Position core.Vec2
}

// BackgroundBody is a parallax tile; higher layers scroll slower.
type BackgroundBody struct {
	Position core.Vec2
	Layer    int
}

// ObstacleBody is a ground hazard; touching it ends the run.
type ObstacleBody struct {
	Position core.Vec2
	Type     ObstacleType
}

// CollectibleBody is a banana worth points. AnimationPhase is a vertical bob
// offset applied at render time only.
type CollectibleBody struct {
	Position       core.Vec2
	AnimationPhase float64
}

func (*PlayerBody) kind() Kind      { return KindPlayer }
func (*GroundBody) kind() Kind      { return KindGround }
func (*BackgroundBody) kind() Kind  { return KindBackground }
func (*ObstacleBody) kind() Kind    { return KindObstacle }
func (*CollectibleBody) kind() Kind { return KindCollectible }

func (b *PlayerBody) clone() Body      { c := *b; return &c }
func (b *GroundBody) clone() Body      { c := *b; return &c }
func (b *BackgroundBody) clone() Body  { c := *b; return &c }
func (b *ObstacleBody) clone() Body    { c := *b; return &c }
func (b *CollectibleBody) clone() Body { c := *b; return &c }

// Entity is a tagged variant: ID.Kind always matches the dynamic type of Body.
type Entity struct {
	ID   EntityID
	Body Body
}

// NewEntity builds an entity whose id kind is derived from the body.
func NewEntity(seq uint64, body Body) Entity {
	return Entity{ID: EntityID{Kind: body.kind(), Seq: seq}, Body: body}
}

// Kind returns the entity discriminant.
func (e Entity) Kind() Kind {
	return e.ID.Kind
}

// Position returns the top-left position of any entity variant.
func (e Entity) Position() core.Vec2 {
	switch b := e.Body.(type) {
	case *PlayerBody:
		return b.Position
	case *GroundBody:
		return b.Position
	case *BackgroundBody:
		return b.Position
	case *ObstacleBody:
		return b.Position
	case *CollectibleBody:
		return b.Position
	}
	return core.Vec2{}
}
