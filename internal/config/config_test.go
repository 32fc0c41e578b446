package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/padprobe/padprobe/internal/sim"
)

func TestDefaultMatchesStockTuning(t *testing.T) {
	cfg := Default()
	if cfg.Tuning() != sim.DefaultTuning() {
		t.Error("Default().Tuning() diverged from stock tuning")
	}
	if cfg.Playfield.Width != 800 || cfg.Playfield.Height != 600 {
		t.Errorf("default playfield %vx%v, want 800x600",
			cfg.Playfield.Width, cfg.Playfield.Height)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")

	content := `
playfield:
  width: 1024
  height: 768
player:
  base_speed: 300
weapons:
  hit_damage: 20
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Playfield.Width != 1024 || cfg.Playfield.Height != 768 {
		t.Errorf("playfield %vx%v, want 1024x768", cfg.Playfield.Width, cfg.Playfield.Height)
	}
	if cfg.Player.BaseSpeed != 300 {
		t.Errorf("base speed %v, want 300", cfg.Player.BaseSpeed)
	}
	if cfg.Weapons.HitDamage != 20 {
		t.Errorf("hit damage %v, want 20", cfg.Weapons.HitDamage)
	}

	// Untouched fields keep their defaults
	def := Default()
	if cfg.Player.EnergyMax != def.Player.EnergyMax {
		t.Errorf("energy max %v, want default %v", cfg.Player.EnergyMax, def.Player.EnergyMax)
	}
	if cfg.Spawning != def.Spawning {
		t.Error("spawning section altered by partial override")
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() with missing explicit path should fail")
	}
}

func TestLoadInvalidYAMLFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("playfield: ["), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with unparseable explicit file should fail")
	}
}
