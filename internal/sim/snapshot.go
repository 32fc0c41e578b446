package sim

import (
	"math"

	"github.com/padprobe/padprobe/internal/core"
)

// PlayerView is the renderable player state.
type PlayerView struct {
	X, Y         float64
	BoostActive  bool
	ShieldActive bool
	Energy       float64
	EnergyMax    float64
}

// EnemyView carries the variant-specific geometry a renderer needs. Radius
// is the visual radius (asteroid only); Segments are the snake chain, head
// first.
type EnemyView struct {
	Kind     EnemyKind
	X, Y     float64
	Radius   float64
	Segments []core.Vec
}

// Snapshot is a read-only copy of the renderable world state. Every slice
// is freshly allocated so the renderer can never alias live collections.
type Snapshot struct {
	Width, Height float64

	Stars       []Star
	PlayerShots []Projectile
	EnemyShots  []Projectile
	Enemies     []EnemyView
	Shards      []Shard

	Player PlayerView
	Score  int
}

// Snapshot captures the current renderable state. The renderer must not
// mutate the world; this copy enforces that at the type level.
func (w *World) Snapshot() Snapshot {
	enemies := make([]EnemyView, len(w.enemies))
	for i := range w.enemies {
		e := &w.enemies[i]
		ev := EnemyView{Kind: e.Kind, X: e.X, Y: e.Y, Radius: e.Radius}
		if len(e.Segments) > 0 {
			ev.Segments = append([]core.Vec(nil), e.Segments...)
		}
		enemies[i] = ev
	}

	return Snapshot{
		Width:  w.w,
		Height: w.h,

		Stars:       append([]Star(nil), w.stars...),
		PlayerShots: append([]Projectile(nil), w.playerShots...),
		EnemyShots:  append([]Projectile(nil), w.enemyShots...),
		Enemies:     enemies,
		Shards:      append([]Shard(nil), w.shards...),

		Player: PlayerView{
			X:            w.px,
			Y:            w.py,
			BoostActive:  w.boostActive,
			ShieldActive: w.shieldActive,
			Energy:       w.energy,
			EnergyMax:    w.tun.EnergyMax,
		},
		Score: w.score,
	}
}

// Hash folds the snapshot into a single value for determinism testing.
func (s Snapshot) Hash() uint64 {
	h := uint64(17)
	mix := func(v float64) {
		h = h*31 + math.Float64bits(v)
	}
	mix(s.Player.X)
	mix(s.Player.Y)
	mix(s.Player.Energy)
	h = h*31 + uint64(s.Score)
	for _, st := range s.Stars {
		mix(st.X)
		mix(st.Y)
	}
	for _, p := range s.PlayerShots {
		mix(p.X)
		mix(p.Y)
	}
	for _, p := range s.EnemyShots {
		mix(p.X)
		mix(p.Y)
	}
	for _, e := range s.Enemies {
		h = h*31 + uint64(e.Kind)
		mix(e.X)
		mix(e.Y)
		for _, seg := range e.Segments {
			mix(seg.X)
			mix(seg.Y)
		}
	}
	for _, sh := range s.Shards {
		mix(sh.X)
		mix(sh.Y)
		mix(sh.TTL)
	}
	return h
}
