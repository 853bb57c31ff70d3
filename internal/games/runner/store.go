package runner

import (
	"sort"
)

// Ref pairs an entity id with its typed body. Bodies are pointers into the
// store, so systems mutate them in place.
type Ref[B Body] struct {
	ID   EntityID
	Body B
}

// Store maps entity ids to entities. It is owned by one session and touched
// by one goroutine at a time.
type Store struct {
	entities map[EntityID]Entity
}

// NewStore creates an empty entity store.
func NewStore() *Store {
	return &Store{entities: make(map[EntityID]Entity)}
}

// Add inserts or replaces an entity and returns the id it is stored under.
// The id kind always comes from the body, so a hand-built Entity with a
// mismatched kind is corrected rather than hidden from typed iteration.
// An entity without a body is rejected.
func (s *Store) Add(e Entity) (EntityID, bool) {
	if e.Body == nil {
		return EntityID{}, false
	}
	e.ID.Kind = e.Body.kind()
	s.entities[e.ID] = e
	return e.ID, true
}

// Remove deletes an entity and reports whether it existed.
func (s *Store) Remove(id EntityID) bool {
	if _, ok := s.entities[id]; !ok {
		return false
	}
	delete(s.entities, id)
	return true
}

// Get looks up an entity by id.
func (s *Store) Get(id EntityID) (Entity, bool) {
	e, ok := s.entities[id]
	return e, ok
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	return len(s.entities)
}

// Count returns the number of live entities of one kind.
func (s *Store) Count(kind Kind) int {
	n := 0
	for id := range s.entities {
		if id.Kind == kind {
			n++
		}
	}
	return n
}

// Player returns the player body, or false when no player exists.
func (s *Store) Player() (*PlayerBody, bool) {
	players := collect[*PlayerBody](s, KindPlayer)
	if len(players) == 0 {
		return nil, false
	}
	return players[0].Body, true
}

// Grounds returns the ground tiles ordered by seq.
func (s *Store) Grounds() []Ref[*GroundBody] {
	return collect[*GroundBody](s, KindGround)
}

// Backgrounds returns the parallax tiles ordered by seq.
func (s *Store) Backgrounds() []Ref[*BackgroundBody] {
	return collect[*BackgroundBody](s, KindBackground)
}

// Obstacles returns the live obstacles ordered by seq.
func (s *Store) Obstacles() []Ref[*ObstacleBody] {
	return collect[*ObstacleBody](s, KindObstacle)
}

// Collectibles returns the live collectibles ordered by seq.
func (s *Store) Collectibles() []Ref[*CollectibleBody] {
	return collect[*CollectibleBody](s, KindCollectible)
}

// Entities returns deep copies of every entity, ordered by kind then seq.
func (s *Store) Entities() []Entity {
	out := make([]Entity, 0, len(s.entities))
	for _, e := range s.entities {
		out = append(out, Entity{ID: e.ID, Body: e.Body.clone()})
	}
	sort.Slice(out, func(i, j int) bool {
		return lessID(out[i].ID, out[j].ID)
	})
	return out
}

// Clone returns an independent copy of the store.
func (s *Store) Clone() *Store {
	c := &Store{entities: make(map[EntityID]Entity, len(s.entities))}
	for id, e := range s.entities {
		c.entities[id] = Entity{ID: id, Body: e.Body.clone()}
	}
	return c
}

// collect gathers the entities of one kind in seq order so every system
// visits them deterministically.
func collect[B Body](s *Store, kind Kind) []Ref[B] {
	var refs []Ref[B]
	for id, e := range s.entities {
		if id.Kind != kind {
			continue
		}
		if b, ok := e.Body.(B); ok {
			refs = append(refs, Ref[B]{ID: id, Body: b})
		}
	}
	sort.Slice(refs, func(i, j int) bool {
		return refs[i].ID.Seq < refs[j].ID.Seq
	})
	return refs
}

func lessID(a, b EntityID) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	return a.Seq < b.Seq
}
