package runner

import (
	"math"
	"math/rand"
	"testing"
)

// With ticks every stepMs and intervals that are multiples of it, the first
// tick past the interval is interval+stepMs after the previous spawn.
func TestSpawnerCountOverRun(t *testing.T) {
	cfg := testConfig()
	const stepMs = 10

	for _, total := range []float64{0, 2000, 2009, 2010, 4019, 4020, 10000, 60000} {
		store := NewStore()
		rng := rand.New(rand.NewSource(42))
		var obs, col SpawnerState

		for now := 0.0; now <= total; now += stepMs {
			obs = SpawnObstacle(obs, store, now, &cfg, rng)
			col = SpawnCollectible(col, store, now, &cfg, rng)
		}

		wantObs := int(math.Floor(total / (cfg.Obstacles.SpawnIntervalMs + stepMs)))
		wantCol := int(math.Floor(total / (cfg.Collectibles.SpawnIntervalMs + stepMs)))
		if got := store.Count(KindObstacle); got != wantObs {
			t.Errorf("T=%v: %d obstacles, want %d", total, got, wantObs)
		}
		if got := store.Count(KindCollectible); got != wantCol {
			t.Errorf("T=%v: %d collectibles, want %d", total, got, wantCol)
		}
		if obs.NextID != uint64(wantObs) || col.NextID != uint64(wantCol) {
			t.Errorf("T=%v: next ids %d/%d", total, obs.NextID, col.NextID)
		}

		for i, o := range store.Obstacles() {
			if o.ID.Seq != uint64(i) {
				t.Errorf("T=%v: obstacle %d has seq %d", total, i, o.ID.Seq)
			}
		}
	}
}

func TestSpawnObstaclePlacement(t *testing.T) {
	cfg := testConfig()
	store := NewStore()
	rng := &fakeRand{ints: []int{2}}

	now := cfg.Obstacles.SpawnIntervalMs + 1
	st := SpawnObstacle(SpawnerState{}, store, now, &cfg, rng)
	if st.NextID != 1 || st.LastSpawnMs != now {
		t.Fatalf("state = %+v", st)
	}

	o := store.Obstacles()[0].Body
	if o.Type != ObstacleHole {
		t.Errorf("type = %s, want hole", o.Type)
	}
	if want := cfg.Screen.Width + cfg.Obstacles.SpawnMargin; o.Position.X != want {
		t.Errorf("x = %v, want %v", o.Position.X, want)
	}
	if want := cfg.GroundY() - cfg.Obstacles.Height; o.Position.Y != want {
		t.Errorf("y = %v, want %v", o.Position.Y, want)
	}
}

func TestSpawnObstacleNotDue(t *testing.T) {
	cfg := testConfig()
	store := NewStore()
	before := SpawnerState{LastSpawnMs: 1000, NextID: 3}

	after := SpawnObstacle(before, store, 1000+cfg.Obstacles.SpawnIntervalMs-1, &cfg, &fakeRand{})
	if after != before || store.Len() != 0 {
		t.Errorf("spawned early: state %+v, %d entities", after, store.Len())
	}
}

func TestSpawnIntervalBoundary(t *testing.T) {
	cfg := testConfig()
	last := SpawnerState{LastSpawnMs: 500, NextID: 4}

	tests := []struct {
		name      string
		elapsed   float64
		wantSpawn bool
	}{
		{"just before", cfg.Obstacles.SpawnIntervalMs - 0.001, false},
		{"exactly interval", cfg.Obstacles.SpawnIntervalMs, false},
		{"just past", cfg.Obstacles.SpawnIntervalMs + 0.001, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := last.LastSpawnMs + tt.elapsed

			obsStore := NewStore()
			obs := SpawnObstacle(last, obsStore, now, &cfg, &fakeRand{})
			if got := obsStore.Count(KindObstacle) == 1; got != tt.wantSpawn {
				t.Errorf("obstacle spawned = %v, want %v", got, tt.wantSpawn)
			}
			if tt.wantSpawn && (obs.NextID != 5 || obs.LastSpawnMs != now) {
				t.Errorf("obstacle state = %+v", obs)
			}
			if !tt.wantSpawn && obs != last {
				t.Errorf("obstacle state changed without spawn: %+v", obs)
			}

			colStore := NewStore()
			colElapsed := tt.elapsed - cfg.Obstacles.SpawnIntervalMs + cfg.Collectibles.SpawnIntervalMs
			SpawnCollectible(last, colStore, last.LastSpawnMs+colElapsed, &cfg, &fakeRand{})
			if got := colStore.Count(KindCollectible) == 1; got != tt.wantSpawn {
				t.Errorf("collectible spawned = %v, want %v", got, tt.wantSpawn)
			}
		})
	}
}

func TestSpawnCollectibleHeightBand(t *testing.T) {
	cfg := testConfig()
	cc := cfg.Collectibles

	tests := []struct {
		draw  float64
		wantY float64
	}{
		{0, cfg.GroundY() - cc.MinHeight},
		{0.5, cfg.GroundY() - (cc.MinHeight+cc.MaxHeight)/2},
		{0.999, cfg.GroundY() - (cc.MinHeight + 0.999*(cc.MaxHeight-cc.MinHeight))},
	}
	for _, tt := range tests {
		store := NewStore()
		SpawnCollectible(SpawnerState{}, store, cc.SpawnIntervalMs+1, &cfg, &fakeRand{floats: []float64{tt.draw}})

		c := store.Collectibles()[0].Body
		if c.Position.Y != tt.wantY {
			t.Errorf("draw %v: y = %v, want %v", tt.draw, c.Position.Y, tt.wantY)
		}
		if c.Position.X != cfg.Screen.Width+cc.SpawnMargin {
			t.Errorf("draw %v: x = %v", tt.draw, c.Position.X)
		}
	}
}

func TestObstacleTypesUniform(t *testing.T) {
	cfg := testConfig()
	store := NewStore()
	rng := rand.New(rand.NewSource(7))
	var st SpawnerState

	for i := 1; i <= 300; i++ {
		st = SpawnObstacle(st, store, float64(i)*(cfg.Obstacles.SpawnIntervalMs+1), &cfg, rng)
	}

	seen := map[ObstacleType]int{}
	for _, o := range store.Obstacles() {
		seen[o.Body.Type]++
	}
	for _, typ := range obstacleTypes {
		if seen[typ] == 0 {
			t.Errorf("type %s never spawned in 300 draws", typ)
		}
	}
}
