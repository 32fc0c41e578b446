package sim

import (
	"math"

	"github.com/padprobe/padprobe/internal/core"
	"github.com/padprobe/padprobe/internal/intent"
)

// Step advances the world by one frame. dt is elapsed seconds, always > 0,
// capped by the host (1/fps per tick). Stage order is fixed and load-
// bearing: later stages observe earlier stages' results within the frame.
func (w *World) Step(dt float64, in intent.Intent) {
	w.drainEnergy(dt, in)
	w.movePlayer(dt, in)
	w.updateShooting(dt, in)
	w.scrollStars(dt, in.MoveX)
	w.moveProjectiles(dt)
	w.tickSpawner(dt)
	w.moveEnemies(dt)
	w.cullEnemies()
	w.resolvePlayerShots()
	w.resolveDeaths()
	w.resolveEnemyShots()
	w.updateShards(dt)
}

// drainEnergy activates boost/shield for the frame and applies their energy
// cost. Both require energy > 0 to engage; drains are additive and the
// level floors at zero.
func (w *World) drainEnergy(dt float64, in intent.Intent) {
	w.boostActive = in.Boost && w.energy > 0
	w.shieldActive = in.Shield && w.energy > 0

	drain := 0.0
	if w.boostActive {
		drain += w.tun.BoostDrain * dt
	}
	if w.shieldActive {
		drain += w.tun.ShieldDrain * dt
	}
	w.energy = math.Max(0, w.energy-drain)
}

// movePlayer integrates the intent vector and clamps the ship to the inset
// margins.
func (w *World) movePlayer(dt float64, in intent.Intent) {
	speed := w.tun.BaseSpeed
	if w.boostActive {
		speed *= w.tun.BoostMul
	}
	w.px = core.Clamp(w.px+in.MoveX*speed*dt, playerInset, w.w-playerInset)
	w.py = core.Clamp(w.py+in.MoveY*speed*dt, playerInset, w.h-playerInset)
}

// updateShooting cools the weapon down and fires a shot from the ship tip
// when requested and ready.
func (w *World) updateShooting(dt float64, in intent.Intent) {
	w.shootCD = math.Max(0, w.shootCD-dt)
	if in.Shoot && w.shootCD <= 0 {
		w.playerShots = append(w.playerShots, Projectile{
			X:  w.px + shipTipX,
			Y:  w.py,
			VX: w.tun.PlayerShotSpeed,
		})
		w.shootCD = w.tun.ShootCooldown
	}
}

// scrollStars moves the background left, faster on nearer layers and when
// the player pushes right. Stars leaving the left edge respawn at the right
// with a small x jitter and a fresh random y.
func (w *World) scrollStars(dt, moveX float64) {
	par := math.Max(0, moveX) * 60.0
	for i := range w.stars {
		s := &w.stars[i]
		s.X -= (35.0 + par) * s.Layer * dt
		if s.X < -2 {
			s.X = w.w + w.rng.Float64()*60
			s.Y = w.rng.Float64() * w.h
		}
	}
}

// moveProjectiles integrates both factions and culls shots that leave the
// playfield. Margins are asymmetric per faction, reflecting travel
// direction: player shots get room on the right, enemy shots on the left.
func (w *World) moveProjectiles(dt float64) {
	for i := range w.playerShots {
		w.playerShots[i].X += w.playerShots[i].VX * dt
		w.playerShots[i].Y += w.playerShots[i].VY * dt
	}
	for i := range w.enemyShots {
		w.enemyShots[i].X += w.enemyShots[i].VX * dt
		w.enemyShots[i].Y += w.enemyShots[i].VY * dt
	}

	kept := w.playerShots[:0]
	for _, p := range w.playerShots {
		if p.X >= -40 && p.X <= w.w+80 && p.Y >= -40 && p.Y <= w.h+40 {
			kept = append(kept, p)
		}
	}
	w.playerShots = kept

	kept = w.enemyShots[:0]
	for _, p := range w.enemyShots {
		if p.X >= -80 && p.X <= w.w+40 && p.Y >= -40 && p.Y <= w.h+40 {
			kept = append(kept, p)
		}
	}
	w.enemyShots = kept
}

// tickSpawner counts the spawn timer down and spawns one enemy on expiry.
func (w *World) tickSpawner(dt float64) {
	w.spawnTimer -= dt
	if w.spawnTimer <= 0 {
		w.spawnEnemy()
		w.spawnTimer = w.uniform(w.tun.SpawnMin, w.tun.SpawnMax)
	}
}

// cullEnemies drops enemies that drifted past the left edge or far outside
// the vertical bounds without dying. No score is credited.
func (w *World) cullEnemies() {
	kept := w.enemies[:0]
	for i := range w.enemies {
		e := w.enemies[i]
		if e.X > enemyCullX && e.Y > -enemyCullY && e.Y < w.h+enemyCullY {
			kept = append(kept, e)
		}
	}
	w.enemies = kept
}

// resolvePlayerShots tests every friendly projectile against every live
// enemy. A projectile damages at most one enemy (first match in collection
// order) and is consumed by the hit.
func (w *World) resolvePlayerShots() {
	kept := w.playerShots[:0]
	for _, p := range w.playerShots {
		hit := false
		for i := range w.enemies {
			if w.enemies[i].Hit(p) {
				w.enemies[i].HP -= 1.0
				hit = true
				break
			}
		}
		if !hit {
			kept = append(kept, p)
		}
	}
	w.playerShots = kept
}

// resolveDeaths removes enemies whose hitpoints reached zero, scattering
// shards at their last position and crediting one score point each.
func (w *World) resolveDeaths() {
	alive := w.enemies[:0]
	for i := range w.enemies {
		e := w.enemies[i]
		if e.HP <= 0 {
			w.scatterShards(e.X, e.Y)
			w.score++
			continue
		}
		alive = append(alive, e)
	}
	w.enemies = alive
}

// scatterShards spawns 2-5 shards in a leftward cone with decaying outward
// velocity, randomized ttl and energy value.
func (w *World) scatterShards(x, y float64) {
	n := 2 + w.rng.Intn(4)
	for i := 0; i < n; i++ {
		ang := w.uniform(-0.6, 0.6)
		sp := w.uniform(80, 160)
		w.shards = append(w.shards, Shard{
			X:     x,
			Y:     y,
			VX:    -sp * math.Cos(ang),
			VY:    sp * math.Sin(ang) * 0.5,
			TTL:   w.uniform(3, 6),
			Value: w.uniform(6, 12),
		})
	}
}

// resolveEnemyShots tests hostile projectiles against the player hitbox.
// An active shield absorbs the hit; otherwise energy drops by the hit
// damage, floored at zero. The projectile is consumed either way.
func (w *World) resolveEnemyShots() {
	prect := w.playerRect()
	kept := w.enemyShots[:0]
	for _, p := range w.enemyShots {
		if p.Rect().Intersects(prect) {
			if !w.shieldActive {
				w.energy = math.Max(0, w.energy-w.tun.HitDamage)
			}
			continue
		}
		kept = append(kept, p)
	}
	w.enemyShots = kept
}

// updateShards integrates shard motion with drag, expires dead shards, and
// collects overlapping ones into the energy reserve, capped at the maximum.
func (w *World) updateShards(dt float64) {
	prect := w.playerRect()
	kept := w.shards[:0]
	for i := range w.shards {
		s := w.shards[i]
		s.X += s.VX * dt
		s.Y += s.VY * dt
		s.VX *= 1.0 - dragDecay*dt
		s.VY *= 1.0 - dragDecay*dt
		s.TTL -= dt
		if s.TTL <= 0 {
			continue
		}
		if prect.Intersects(s.Rect()) {
			w.energy = math.Min(w.tun.EnergyMax, w.energy+s.Value)
			continue
		}
		kept = append(kept, s)
	}
	w.shards = kept
}

// playerRect returns the fixed 24x20 player hitbox centered on the ship.
func (w *World) playerRect() core.Rect {
	return core.RectAround(w.px, w.py, PlayerHitW, PlayerHitH)
}

// uniform draws from [lo, hi).
func (w *World) uniform(lo, hi float64) float64 {
	return lo + w.rng.Float64()*(hi-lo)
}
