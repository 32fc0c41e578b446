package sim

import "github.com/padprobe/padprobe/internal/core"

// Projectile hitbox dimensions, shared by both factions.
const (
	ProjectileW = 14.0
	ProjectileH = 3.0
)

// Shard pickup hitbox is an 8x8 square centered on the shard.
const shardSize = 8.0

// dragDecay is the velocity damping factor shared by shard drift and blob
// vertical impulses, in fraction lost per second.
const dragDecay = 0.4

// Star is a background decoration scrolling on one of five parallax layers.
// Stars never collide and never die; they wrap around horizontally forever.
type Star struct {
	X, Y  float64
	Layer float64 // one of 0.6, 0.8, 1.0, 1.2, 1.4
}

// StarLayers are the available parallax factors.
var StarLayers = [...]float64{0.6, 0.8, 1.0, 1.2, 1.4}

// Projectile is a laser bolt. Faction is implied by which world collection
// holds it: player shots travel right and test against enemies, enemy shots
// travel toward the player's position at fire time and test against the
// player hitbox.
type Projectile struct {
	X, Y   float64
	VX, VY float64
}

// Rect returns the projectile's fixed 14x3 hitbox centered on its position.
func (p Projectile) Rect() core.Rect {
	return core.RectAround(p.X, p.Y, ProjectileW, ProjectileH)
}

// Shard is a collectible energy pickup scattered when an enemy dies.
// Velocity decays by a 0.4/s drag factor on both axes.
type Shard struct {
	X, Y   float64
	VX, VY float64
	TTL    float64 // seconds until the shard evaporates
	Value  float64 // energy restored on pickup
}

// Rect returns the shard's pickup hitbox.
func (s Shard) Rect() core.Rect {
	return core.RectAround(s.X, s.Y, shardSize, shardSize)
}

// EnemyKind tags the enemy variant. Kinematics, hitboxes, and drawing all
// dispatch on this tag; the Enemy struct is a flat sum type carrying only
// the fields each variant needs.
type EnemyKind uint8

const (
	KindAsteroid EnemyKind = iota // drifting rock, circular hitbox radius+4
	KindBlob                      // jittering blob, circular hitbox r=18
	KindRed                       // aimed shooter, square hitbox 24x24
	KindSnake                     // sine head with 8-segment tail, head circle r=16
)

// String returns the variant name.
func (k EnemyKind) String() string {
	switch k {
	case KindAsteroid:
		return "asteroid"
	case KindBlob:
		return "blob"
	case KindRed:
		return "red"
	case KindSnake:
		return "snake"
	default:
		return "unknown"
	}
}

// Per-variant constants.
const (
	blobHitRadius  = 18.0
	blobSpeed      = 140.0
	blobKickChance = 0.1 // per frame
	blobKickMax    = 60.0

	redSize       = 24.0
	redSpeed      = 120.0
	redHP         = 4.0
	redMuzzleBack = 16.0 // enemy shots spawn this far left of the body

	snakeHitRadius = 16.0
	snakeSpeed     = 130.0
	snakeHP        = 6.0
	snakeSegments  = 8
	snakeSegGap    = 16.0
	snakeChaseStep = 100.0 // px/s max per-segment chase speed
	snakeWaveAmp   = 40.0
	snakePhaseRate = 2.0  // rad/s
	snakeXFreq     = 0.02 // rad per px of horizontal travel

	asteroidHitPad = 4.0 // hitbox extends this far past the visual radius
)

// Enemy is one hostile entity. Variant-specific fields are zero for kinds
// that do not use them: Radius (asteroid), ShootCD (red), Phase and
// Segments (snake). Segments hold plain coordinates, head first; they never
// reference back into the enemy.
type Enemy struct {
	Kind   EnemyKind
	X, Y   float64
	VX, VY float64
	HP     float64

	Radius   float64
	ShootCD  float64
	Phase    float64
	Segments []core.Vec
}

// Rect returns the enemy's bounding square, used for the red variant's
// collision test and by the renderer for sizing.
func (e *Enemy) Rect() core.Rect {
	if e.Kind == KindRed {
		return core.RectAround(e.X, e.Y, redSize, redSize)
	}
	r := e.hitRadius()
	return core.RectAround(e.X, e.Y, r*2, r*2)
}

// hitRadius returns the circular hitbox radius for non-red variants.
func (e *Enemy) hitRadius() float64 {
	switch e.Kind {
	case KindAsteroid:
		return e.Radius + asteroidHitPad
	case KindSnake:
		return snakeHitRadius
	default:
		return blobHitRadius
	}
}

// Hit reports whether a friendly projectile strikes this enemy, using the
// variant's hitbox predicate: circle distance for asteroid, blob, and snake
// (head only), rectangle intersection for red.
func (e *Enemy) Hit(p Projectile) bool {
	switch e.Kind {
	case KindRed:
		return p.Rect().Intersects(e.Rect())
	default:
		return core.InCircle(p.X, p.Y, e.X, e.Y, e.hitRadius())
	}
}
