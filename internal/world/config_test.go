package world

import (
	"errors"
	"testing"
)

func TestBuildAppliesDefaults(t *testing.T) {
	cfg, err := Build(map[string]any{"name": "w1"})
	if err != nil {
		t.Fatalf("Failed to build config: %v", err)
	}

	if cfg.Name != "w1" {
		t.Errorf("Expected name 'w1', got %q", cfg.Name)
	}
	if cfg.Width != DefaultWidth || cfg.Height != DefaultHeight {
		t.Errorf("Expected default %dx%d, got %dx%d", DefaultWidth, DefaultHeight, cfg.Width, cfg.Height)
	}
	if cfg.Obstacles != DefaultObstacles {
		t.Errorf("Expected default obstacles %v, got %v", DefaultObstacles, cfg.Obstacles)
	}
	if cfg.Holes != DefaultHoles {
		t.Errorf("Expected default holes %v, got %v", DefaultHoles, cfg.Holes)
	}
}

func TestBuildReadsAllKeys(t *testing.T) {
	cfg, err := Build(map[string]any{
		"name":      "w1",
		"width":     10,
		"height":    12,
		"obstacles": 0.1,
		"holes":     0.05,
	})
	if err != nil {
		t.Fatalf("Failed to build config: %v", err)
	}

	if cfg.Width != 10 || cfg.Height != 12 {
		t.Errorf("Expected 10x12, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Obstacles != 0.1 || cfg.Holes != 0.05 {
		t.Errorf("Expected densities 0.1/0.05, got %v/%v", cfg.Obstacles, cfg.Holes)
	}
}

func TestBuildCoercesDecodedNumbers(t *testing.T) {
	// YAML decoders hand over int for whole numbers and float64 otherwise
	cfg, err := Build(map[string]any{
		"name":      "w1",
		"width":     float64(10),
		"height":    int64(12),
		"obstacles": 0,
	})
	if err != nil {
		t.Fatalf("Failed to build config: %v", err)
	}
	if cfg.Width != 10 || cfg.Height != 12 {
		t.Errorf("Expected 10x12, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Obstacles != 0 {
		t.Errorf("Expected obstacles 0, got %v", cfg.Obstacles)
	}
}

func TestBuildRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name  string
		raw   map[string]any
		field string
	}{
		{"missing name", map[string]any{}, "name"},
		{"empty name", map[string]any{"name": ""}, "name"},
		{"name wrong type", map[string]any{"name": 7}, "name"},
		{"zero width", map[string]any{"name": "w", "width": 0}, "width"},
		{"negative height", map[string]any{"name": "w", "height": -3}, "height"},
		{"fractional width", map[string]any{"name": "w", "width": 10.5}, "width"},
		{"width wrong type", map[string]any{"name": "w", "width": "wide"}, "width"},
		{"obstacles above one", map[string]any{"name": "w", "obstacles": 1.2}, "obstacles"},
		{"negative holes", map[string]any{"name": "w", "holes": -0.1}, "holes"},
		{"holes wrong type", map[string]any{"name": "w", "holes": "few"}, "holes"},
		{"unrecognized key", map[string]any{"name": "w", "tileset": "x"}, "tileset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.raw)
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Expected ConfigurationError, got %v", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("Expected field %q, got %q", tt.field, cfgErr.Field)
			}
		})
	}
}

func TestCopyLeavesOriginalUntouched(t *testing.T) {
	original, err := Build(map[string]any{"name": "w1", "width": 10, "height": 10})
	if err != nil {
		t.Fatalf("Failed to build config: %v", err)
	}

	derived := original.Copy(WithName("w2"), WithWidth(20), WithObstacles(0.5))

	if derived.Name != "w2" || derived.Width != 20 || derived.Obstacles != 0.5 {
		t.Errorf("Overrides not applied: %+v", derived)
	}
	if derived.Height != 10 {
		t.Errorf("Unoverridden height changed: got %d, want 10", derived.Height)
	}
	if original.Name != "w1" || original.Width != 10 || original.Obstacles != DefaultObstacles {
		t.Errorf("Original mutated by copy: %+v", original)
	}
}

func TestCopyWithoutOverridesIsIdentical(t *testing.T) {
	original, err := Build(map[string]any{"name": "w1"})
	if err != nil {
		t.Fatalf("Failed to build config: %v", err)
	}

	if derived := original.Copy(); derived != original {
		t.Errorf("Copy without overrides differs: %+v vs %+v", derived, original)
	}
}

func TestValidateBounds(t *testing.T) {
	valid := Config{Name: "w", Width: 1, Height: 1, Obstacles: 1, Holes: 0}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected edge values to validate, got %v", err)
	}

	invalid := valid.Copy(WithHoles(1.01))
	if err := invalid.Validate(); err == nil {
		t.Error("Expected holes above 1 to fail validation")
	}
}
