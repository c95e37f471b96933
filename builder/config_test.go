// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"
)

// TestIDSchemeOptions verifies that id options are applied in order.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	// 1. Default configuration: identity
	cfgDefault := newBuilderConfig()
	if got := cfgDefault.id(7); got != 7 {
		t.Errorf("default id: expected 7, got %d", got)
	}

	// 2. WithIDOffset shifts every id
	cfgOffset := newBuilderConfig(WithIDOffset(1))
	if got := cfgOffset.id(0); got != 1 {
		t.Errorf("WithIDOffset(1): expected 1, got %d", got)
	}

	// 3. WithIDScheme is applied after the offset
	cfgScheme := newBuilderConfig(WithIDOffset(1), WithIDScheme(func(i int) int { return 10 * i }))
	if got := cfgScheme.id(2); got != 30 {
		t.Errorf("WithIDScheme: expected 30, got %d", got)
	}

	// 4. base moves the block
	cfgBase := newBuilderConfig()
	cfgBase.base = 5
	if got := cfgBase.id(1); got != 6 {
		t.Errorf("base: expected 6, got %d", got)
	}
}

// TestRNGOptions verifies that RNG options configure the rng field correctly.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. By default, rng is nil
	if cfg := newBuilderConfig(); cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}

	// 2. WithRand attaches the given rng
	expRNG := rand.New(rand.NewSource(123))
	if cfg := newBuilderConfig(WithRand(expRNG)); cfg.rng != expRNG {
		t.Errorf("WithRand: expected rng %v, got %v", expRNG, cfg.rng)
	}

	// 3. WithSeed is reproducible
	a := newBuilderConfig(WithSeed(42)).rng.Int63()
	b := newBuilderConfig(WithSeed(42)).rng.Int63()
	if a != b {
		t.Errorf("WithSeed: expected equal draws, got %d and %d", a, b)
	}
}

// TestOptionPanics verifies option constructors fail fast on nil.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]func(){
		"WithIDScheme(nil)": func() { WithIDScheme(nil) },
		"WithRand(nil)":     func() { WithRand(nil) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}
