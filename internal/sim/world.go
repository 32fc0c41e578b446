// Package sim implements the side-scrolling shooter simulation embedded in
// padprobe. The world is advanced by the host exactly once per frame via
// Step and read back through Snapshot; there is no other way in or out.
// The simulation is single-threaded, never blocks, and has no error path:
// all inputs are pre-validated by the caller and every numeric operation is
// defined for all reachable states.
package sim

import "math/rand"

// Playfield margins.
const (
	playerInset  = 20.0 // player position clamp inset, both axes
	shipTipX     = 18.0 // player shots spawn this far right of the ship
	enemySpawnY  = 40.0 // vertical margin for enemy spawn positions
	enemyCullX   = -80.0
	enemyCullY   = 80.0 // vertical overshoot before an enemy is culled
	initialSpawn = 1.0  // seconds until the first enemy
)

// Player hitbox dimensions, centered on the ship position.
const (
	PlayerHitW = 24.0
	PlayerHitH = 20.0
)

// World holds the complete simulation state. It exclusively owns every
// entity collection; nothing outside the package mutates it.
type World struct {
	w, h float64
	rng  *rand.Rand
	tun  Tuning

	// Player scalars
	px, py       float64
	energy       float64
	boostActive  bool
	shieldActive bool
	shootCD      float64
	score        int

	// Entity collections
	stars       []Star
	playerShots []Projectile
	enemyShots  []Projectile
	enemies     []Enemy
	shards      []Shard

	spawnTimer float64
}

// New creates a world for a width x height pixel playfield with the stock
// tuning. The seed feeds the world-owned random source; equal seeds and
// equal input sequences produce identical worlds.
func New(width, height float64, seed int64) *World {
	return NewWithTuning(width, height, seed, DefaultTuning())
}

// NewWithTuning creates a world with custom gameplay constants.
func NewWithTuning(width, height float64, seed int64, tun Tuning) *World {
	w := &World{
		w:   width,
		h:   height,
		rng: rand.New(rand.NewSource(seed)),
		tun: tun,

		px:     width * 0.18,
		py:     height * 0.5,
		energy: tun.EnergyStart,

		spawnTimer: initialSpawn,
	}

	w.stars = make([]Star, tun.StarCount)
	for i := range w.stars {
		w.stars[i] = Star{
			X:     w.rng.Float64() * width,
			Y:     w.rng.Float64() * height,
			Layer: StarLayers[w.rng.Intn(len(StarLayers))],
		}
	}
	return w
}

// Size returns the playfield dimensions in pixels.
func (w *World) Size() (width, height float64) {
	return w.w, w.h
}

// Score returns the current kill count. It never decreases.
func (w *World) Score() int {
	return w.score
}

// Energy returns the current energy level in [0, EnergyMax].
func (w *World) Energy() float64 {
	return w.energy
}
