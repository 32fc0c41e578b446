package sim

import (
	"math"

	"github.com/padprobe/padprobe/internal/core"
)

// spawnEnemy creates one enemy of a weighted-random kind just off the right
// edge, at a random y inside the vertical spawn margins.
func (w *World) spawnEnemy() {
	y := w.uniform(enemySpawnY, w.h-enemySpawnY)

	switch w.pickKind() {
	case KindAsteroid:
		r := float64(12 + w.rng.Intn(17)) // 12..28
		speed := w.uniform(80, 160)
		w.enemies = append(w.enemies, Enemy{
			Kind:   KindAsteroid,
			X:      w.w + 40,
			Y:      y,
			VX:     -speed,
			HP:     1.0 + r/10.0,
			Radius: r,
		})

	case KindBlob:
		w.enemies = append(w.enemies, Enemy{
			Kind: KindBlob,
			X:    w.w + 40,
			Y:    y,
			VX:   -blobSpeed,
			HP:   3.0,
		})

	case KindRed:
		w.enemies = append(w.enemies, Enemy{
			Kind:    KindRed,
			X:       w.w + 50,
			Y:       y,
			VX:      -redSpeed,
			HP:      redHP,
			ShootCD: w.uniform(0.6, 1.5),
		})

	case KindSnake:
		segs := make([]core.Vec, snakeSegments)
		for i := range segs {
			segs[i] = core.Vec{X: w.w + 60 + float64(i)*snakeSegGap, Y: y}
		}
		w.enemies = append(w.enemies, Enemy{
			Kind:     KindSnake,
			X:        w.w + 60,
			Y:        y,
			VX:       -snakeSpeed,
			HP:       snakeHP,
			Phase:    w.uniform(0, 2*math.Pi),
			Segments: segs,
		})
	}
}

// pickKind draws an enemy kind using the tuning weights.
func (w *World) pickKind() EnemyKind {
	wa := w.tun.WeightAsteroid
	wb := w.tun.WeightBlob
	wr := w.tun.WeightRed
	ws := w.tun.WeightSnake

	total := wa + wb + wr + ws
	if total <= 0 {
		return KindAsteroid
	}

	r := w.rng.Intn(total)
	switch {
	case r < wa:
		return KindAsteroid
	case r < wa+wb:
		return KindBlob
	case r < wa+wb+wr:
		return KindRed
	default:
		return KindSnake
	}
}

// moveEnemies advances every enemy per its variant rule.
func (w *World) moveEnemies(dt float64) {
	for i := range w.enemies {
		e := &w.enemies[i]
		switch e.Kind {
		case KindAsteroid:
			e.X += e.VX * dt
		case KindBlob:
			w.moveBlob(e, dt)
		case KindRed:
			w.moveRed(e, dt)
		case KindSnake:
			w.moveSnake(e, dt)
		}
	}
}

// moveBlob drifts left with randomized vertical impulses, damped and
// clamped to the playfield.
func (w *World) moveBlob(e *Enemy, dt float64) {
	e.X += e.VX * dt
	if w.rng.Float64() < blobKickChance {
		e.VY += w.uniform(-blobKickMax, blobKickMax)
	}
	e.VY *= 1.0 - dragDecay*dt
	e.Y = core.Clamp(e.Y+e.VY*dt, playerInset, w.h-playerInset)
}

// moveRed drifts left and periodically fires a hostile projectile aimed at
// the player's position at fire time. The shot flies straight and never
// retargets. A coincident spawn point falls back to unit distance instead
// of dividing by zero.
func (w *World) moveRed(e *Enemy, dt float64) {
	e.X += e.VX * dt
	e.ShootCD = math.Max(0, e.ShootCD-dt)
	if e.ShootCD <= 0 {
		dx := w.px - e.X
		dy := w.py - e.Y
		dist := core.SafeDist(dx, dy)
		sp := w.tun.EnemyShotSpeed
		w.enemyShots = append(w.enemyShots, Projectile{
			X:  e.X - redMuzzleBack,
			Y:  e.Y,
			VX: sp * dx / dist,
			VY: sp * dy / dist,
		})
		e.ShootCD = w.uniform(1.0, 1.8)
	}
}

// moveSnake drifts left while the head rides a sine wave of the phase
// accumulator and horizontal position. Tail segments chase the segment
// ahead at a capped step, never overshooting.
func (w *World) moveSnake(e *Enemy, dt float64) {
	e.X += e.VX * dt
	e.Phase += dt * snakePhaseRate
	headY := e.Y + math.Sin(e.Phase+e.X*snakeXFreq)*snakeWaveAmp

	if len(e.Segments) == 0 {
		return
	}
	e.Segments[0] = core.Vec{X: e.X, Y: headY}
	for i := 1; i < len(e.Segments); i++ {
		prev := e.Segments[i-1]
		cur := e.Segments[i]
		dx := prev.X - cur.X
		dy := prev.Y - cur.Y
		dist := core.SafeDist(dx, dy)
		step := math.Min(snakeChaseStep*dt, dist)
		e.Segments[i] = core.Vec{
			X: cur.X + dx/dist*step,
			Y: cur.Y + dy/dist*step,
		}
	}
	e.Y = headY
}
