package runner

import (
	"testing"

	"github.com/vovakirdan/jungle-runner/internal/core"
)

func TestNewWorldLayout(t *testing.T) {
	cfg := testConfig()
	w := NewWorld(&cfg)

	counts := map[Kind]int{
		KindPlayer:      1,
		KindGround:      2,
		KindBackground:  2 * len(cfg.Backgrounds.Layers),
		KindObstacle:    0,
		KindCollectible: 0,
	}
	for kind, want := range counts {
		if got := w.Store.Count(kind); got != want {
			t.Errorf("Count(%s) = %d, want %d", kind, got, want)
		}
	}

	p := mustPlayer(t, w.Store)
	if p.Position.X != cfg.Player.X || p.Position.Y != cfg.PlayerGroundY() {
		t.Errorf("player at %v, want (%v, %v)", p.Position, cfg.Player.X, cfg.PlayerGroundY())
	}

	grounds := w.Store.Grounds()
	if grounds[0].Body.Position.X != 0 || grounds[1].Body.Position.X != cfg.Screen.Width {
		t.Errorf("ground tiles at %v and %v", grounds[0].Body.Position.X, grounds[1].Body.Position.X)
	}

	if w.Obstacles != (SpawnerState{}) || w.Collectibles != (SpawnerState{}) {
		t.Error("spawner state not zero in a new world")
	}
}

func TestStoreAddRemove(t *testing.T) {
	s := NewStore()
	e := NewEntity(7, &ObstacleBody{Type: ObstacleLog})

	if e.ID != (EntityID{Kind: KindObstacle, Seq: 7}) {
		t.Fatalf("id = %v", e.ID)
	}
	s.Add(e)
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	if _, ok := s.Get(e.ID); !ok {
		t.Fatal("Get missed added entity")
	}
	if !s.Remove(e.ID) {
		t.Fatal("Remove returned false for live entity")
	}
	if s.Remove(e.ID) {
		t.Fatal("Remove returned true twice")
	}
}

func TestStoreKindsDoNotCollide(t *testing.T) {
	s := NewStore()
	s.Add(NewEntity(0, &ObstacleBody{}))
	s.Add(NewEntity(0, &CollectibleBody{}))

	if s.Len() != 2 {
		t.Fatalf("same seq in different kinds collided: Len = %d", s.Len())
	}
}

func TestStoreAddDerivesKindFromBody(t *testing.T) {
	s := NewStore()
	id, ok := s.Add(Entity{ID: EntityID{Kind: KindGround, Seq: 7}, Body: &ObstacleBody{Type: ObstacleLog}})
	if !ok {
		t.Fatal("entity with a body was rejected")
	}
	if id != (EntityID{Kind: KindObstacle, Seq: 7}) {
		t.Errorf("stored id = %v, want obstacle#7", id)
	}

	obs := s.Obstacles()
	if len(obs) != 1 || obs[0].Body.Type != ObstacleLog {
		t.Fatalf("mismatched entity hidden from Obstacles(): %v", obs)
	}
	if len(s.Grounds()) != 0 || s.Count(KindGround) != 0 {
		t.Error("entity counted under the kind from its literal id")
	}

	if _, ok := s.Add(Entity{ID: EntityID{Kind: KindPlayer}}); ok || s.Len() != 1 {
		t.Errorf("bodiless entity accepted: Len = %d", s.Len())
	}
}

func TestStoreTypedIterationOrdered(t *testing.T) {
	s := NewStore()
	for _, seq := range []uint64{5, 1, 3} {
		s.Add(NewEntity(seq, &ObstacleBody{}))
	}

	obs := s.Obstacles()
	for i := 1; i < len(obs); i++ {
		if obs[i-1].ID.Seq >= obs[i].ID.Seq {
			t.Fatalf("obstacles not ordered by seq: %v then %v", obs[i-1].ID, obs[i].ID)
		}
	}
}

func TestEntitiesAreCopies(t *testing.T) {
	cfg := testConfig()
	w := NewWorld(&cfg)

	snap := w.Store.Entities()
	for _, e := range snap {
		if p, ok := e.Body.(*PlayerBody); ok {
			p.Position.Y = -1000
		}
	}

	if p := mustPlayer(t, w.Store); p.Position.Y == -1000 {
		t.Fatal("mutating a snapshot entity changed the store")
	}

	if snap[0].Kind() != KindPlayer {
		t.Errorf("first entity kind = %s, want player", snap[0].Kind())
	}
}

func TestEntityPosition(t *testing.T) {
	pos := core.Vec2{X: 12, Y: 34}
	tests := []Body{
		&PlayerBody{Position: pos},
		&GroundBody{Position: pos},
		&BackgroundBody{Position: pos, Layer: 2},
		&ObstacleBody{Position: pos},
		&CollectibleBody{Position: pos},
	}
	for _, b := range tests {
		e := NewEntity(0, b)
		if e.Position() != pos {
			t.Errorf("%s: Position() = %v, want %v", e.Kind(), e.Position(), pos)
		}
	}
}

func TestEntityIDString(t *testing.T) {
	id := EntityID{Kind: KindCollectible, Seq: 4}
	if got := id.String(); got != "collectible#4" {
		t.Errorf("String() = %q", got)
	}
}
