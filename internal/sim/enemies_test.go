package sim

import (
	"math"
	"testing"

	"github.com/padprobe/padprobe/internal/core"
	"github.com/padprobe/padprobe/internal/intent"
)

func TestSpawnPositions(t *testing.T) {
	w := New(800, 600, 33)

	for i := 0; i < 200; i++ {
		w.spawnEnemy()
	}
	for _, e := range w.enemies {
		if e.X <= w.w {
			t.Errorf("%s spawned inside the playfield at x=%.1f", e.Kind, e.X)
		}
		if e.Y < enemySpawnY || e.Y > w.h-enemySpawnY {
			t.Errorf("%s spawned outside vertical margins at y=%.1f", e.Kind, e.Y)
		}
	}
}

func TestSpawnKindDistribution(t *testing.T) {
	w := New(800, 600, 33)

	counts := map[EnemyKind]int{}
	for i := 0; i < 400; i++ {
		w.spawnEnemy()
	}
	for _, e := range w.enemies {
		counts[e.Kind]++
	}

	for _, k := range []EnemyKind{KindAsteroid, KindBlob, KindRed, KindSnake} {
		if counts[k] == 0 {
			t.Errorf("kind %s never spawned in 400 draws", k)
		}
	}
	// Asteroids carry the highest weight
	if counts[KindAsteroid] <= counts[KindSnake] {
		t.Errorf("asteroid count %d not above snake count %d", counts[KindAsteroid], counts[KindSnake])
	}
}

func TestAsteroidStats(t *testing.T) {
	w := New(800, 600, 5)

	for i := 0; i < 300; i++ {
		w.spawnEnemy()
	}
	for _, e := range w.enemies {
		if e.Kind != KindAsteroid {
			continue
		}
		if e.Radius < 12 || e.Radius > 28 {
			t.Errorf("asteroid radius %.0f outside [12, 28]", e.Radius)
		}
		if want := 1.0 + e.Radius/10.0; e.HP != want {
			t.Errorf("asteroid r=%.0f has HP %.2f, want %.2f", e.Radius, e.HP, want)
		}
		if e.VX > -80 || e.VX < -160 {
			t.Errorf("asteroid speed %.1f outside [-160, -80]", e.VX)
		}
	}
}

func TestBlobStaysInVerticalBounds(t *testing.T) {
	w := New(800, 600, 77)
	noSpawns(w)

	// Stationary horizontally so it never drifts out and gets culled
	w.enemies = append(w.enemies, Enemy{Kind: KindBlob, X: 400, Y: 30, HP: 3})

	for i := 0; i < 1200; i++ {
		w.Step(frameDT, intent.Intent{})
		e := w.enemies[0]
		if e.Y < playerInset || e.Y > w.h-playerInset {
			t.Fatalf("frame %d: blob at y=%.2f outside [%.0f, %.0f]", i, e.Y, playerInset, w.h-playerInset)
		}
	}
}

func TestRedShotAimsAtPlayer(t *testing.T) {
	w := New(800, 600, 1)
	noSpawns(w)

	e := Enemy{Kind: KindRed, X: 600, Y: 400, HP: redHP}
	w.enemies = append(w.enemies, e)

	w.Step(frameDT, intent.Intent{})

	if len(w.enemyShots) != 1 {
		t.Fatalf("expected 1 hostile shot, got %d", len(w.enemyShots))
	}
	shot := w.enemyShots[0]

	// Velocity points from the muzzle toward the player's position at fire
	// time. Aim is computed from the body position, not the muzzle.
	src := w.enemies[0]
	dx := w.px - src.X
	dy := w.py - src.Y
	gotAngle := math.Atan2(shot.VY, shot.VX)
	wantAngle := math.Atan2(dy, dx)
	if math.Abs(gotAngle-wantAngle) > 1e-9 {
		t.Errorf("shot angle %.4f, want %.4f", gotAngle, wantAngle)
	}

	speed := math.Hypot(shot.VX, shot.VY)
	if math.Abs(speed-w.tun.EnemyShotSpeed) > 1e-6 {
		t.Errorf("shot speed %.2f, want %.0f", speed, w.tun.EnemyShotSpeed)
	}
}

func TestRedShotFromCoincidentPosition(t *testing.T) {
	// Firing from exactly the player's position must not divide by zero.
	w := New(800, 600, 1)
	noSpawns(w)

	w.enemies = append(w.enemies, Enemy{Kind: KindRed, X: w.px, Y: w.py, HP: redHP})
	w.Step(frameDT, intent.Intent{})

	for _, p := range w.enemyShots {
		if math.IsNaN(p.VX) || math.IsNaN(p.VY) || math.IsInf(p.VX, 0) || math.IsInf(p.VY, 0) {
			t.Fatalf("degenerate aim produced velocity (%v, %v)", p.VX, p.VY)
		}
	}
}

func TestRedRefireWindow(t *testing.T) {
	w := New(800, 600, 9)
	noSpawns(w)

	w.enemies = append(w.enemies, Enemy{Kind: KindRed, X: 600, Y: 300, HP: redHP})
	w.Step(frameDT, intent.Intent{})

	if cd := w.enemies[0].ShootCD; cd < 1.0 || cd > 1.8 {
		t.Errorf("refire cooldown %.2f outside [1.0, 1.8]", cd)
	}
}

func TestSnakeSegmentsNeverOvershoot(t *testing.T) {
	w := New(800, 600, 21)
	noSpawns(w)

	segs := make([]core.Vec, snakeSegments)
	for i := range segs {
		segs[i] = core.Vec{X: 500 + float64(i)*snakeSegGap, Y: 300}
	}
	w.enemies = append(w.enemies, Enemy{
		Kind:     KindSnake,
		X:        500,
		Y:        300,
		VX:       -snakeSpeed,
		HP:       snakeHP,
		Segments: segs,
	})

	maxStep := snakeChaseStep*frameDT + 1e-9
	for i := 0; i < 300; i++ {
		prev := make([]core.Vec, snakeSegments)
		copy(prev, w.enemies[0].Segments)

		w.Step(frameDT, intent.Intent{})
		if len(w.enemies) == 0 {
			break // drifted off the left edge
		}

		cur := w.enemies[0].Segments
		for j := 1; j < len(cur); j++ {
			moved := math.Hypot(cur[j].X-prev[j].X, cur[j].Y-prev[j].Y)
			if moved > maxStep {
				t.Fatalf("frame %d: segment %d moved %.4f, cap %.4f", i, j, moved, maxStep)
			}
			// A chasing segment never passes the point it chases
			ahead := prev[j-1]
			dist := math.Hypot(ahead.X-prev[j].X, ahead.Y-prev[j].Y)
			if moved > dist+1e-9 {
				t.Fatalf("frame %d: segment %d overshot its target", i, j)
			}
		}
	}
}

func TestSnakeHeadRidesWave(t *testing.T) {
	w := New(800, 600, 21)
	noSpawns(w)

	segs := make([]core.Vec, snakeSegments)
	for i := range segs {
		segs[i] = core.Vec{X: 500 + float64(i)*snakeSegGap, Y: 300}
	}
	w.enemies = append(w.enemies, Enemy{
		Kind:     KindSnake,
		X:        500,
		Y:        300,
		VX:       -snakeSpeed,
		HP:       snakeHP,
		Segments: segs,
	})

	minY, maxY := 300.0, 300.0
	for i := 0; i < 180; i++ {
		w.Step(frameDT, intent.Intent{})
		if len(w.enemies) == 0 {
			break // wave carried it past the cull bounds
		}
		head := w.enemies[0].Segments[0]
		minY = math.Min(minY, head.Y)
		maxY = math.Max(maxY, head.Y)
	}

	if maxY-minY < 10 {
		t.Errorf("head barely oscillated: span %.2f", maxY-minY)
	}
}

func TestSnakeHitHeadOnly(t *testing.T) {
	segs := make([]core.Vec, snakeSegments)
	for i := range segs {
		segs[i] = core.Vec{X: 500 + float64(i)*snakeSegGap, Y: 300}
	}
	e := Enemy{Kind: KindSnake, X: 500, Y: 300, HP: snakeHP, Segments: segs}

	if !e.Hit(Projectile{X: 500, Y: 300}) {
		t.Error("shot at the head missed")
	}
	// Last tail segment is outside the head circle
	tail := segs[len(segs)-1]
	if e.Hit(Projectile{X: tail.X, Y: tail.Y}) {
		t.Error("shot at the tail registered a hit")
	}
}

func TestRedHitUsesRect(t *testing.T) {
	e := Enemy{Kind: KindRed, X: 500, Y: 300, HP: redHP}

	if !e.Hit(Projectile{X: 500 + redSize/2 + ProjectileW/2 - 1, Y: 300}) {
		t.Error("grazing shot inside the rectangle missed")
	}
	if e.Hit(Projectile{X: 500 + redSize/2 + ProjectileW/2 + 1, Y: 300}) {
		t.Error("shot past the rectangle edge registered a hit")
	}
}

func TestAsteroidHitPad(t *testing.T) {
	e := Enemy{Kind: KindAsteroid, X: 500, Y: 300, HP: 2, Radius: 12}

	if !e.Hit(Projectile{X: 515, Y: 300}) {
		t.Error("shot inside the padded radius missed")
	}
	if e.Hit(Projectile{X: 517, Y: 300}) {
		t.Error("shot outside the padded radius registered a hit")
	}
}
