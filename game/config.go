// Package game implements the snake simulation: one Session per
// play-through, advanced one Tick at a time by an external fixed-rate
// loop, and a Controller that strings sessions together across replays.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"snakego/core"
)

// Classic board: 40x30 blocks of 20px, stepped 15 times per second.
const (
	DefaultWidth     = 800
	DefaultHeight    = 600
	DefaultBlockSize = 20
	DefaultTickRate  = 15
)

// FoodScore is awarded once per food eaten.
const FoodScore = 10

// Config carries the tunables of a session. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	// Board size in pixels. Both must be positive multiples of
	// BlockSize.
	Width  int
	Height int

	// BlockSize is the side of one grid cell in pixels. Snake and
	// food positions are always aligned to it.
	BlockSize int

	// TickRate is the target simulation rate in ticks per second.
	// The core itself does no timing; front-ends read this to drive
	// their clocks.
	TickRate int

	// Seed fixes the food placement sequence for reproducible runs.
	// Zero draws a seed from the wall clock.
	Seed int64

	// Logger receives session diagnostics. The zero value discards
	// everything.
	Logger zerolog.Logger
}

// DefaultConfig returns the classic board configuration with logging
// disabled.
func DefaultConfig() Config {
	return Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		BlockSize: DefaultBlockSize,
		TickRate:  DefaultTickRate,
		Logger:    zerolog.Nop(),
	}
}

// Validate reports every problem with the configuration, not just the
// first one found.
func (c Config) Validate() error {
	var errs *multierror.Error

	if c.BlockSize <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("block size must be positive, got %d", c.BlockSize))
	}
	if c.Width <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("width must be positive, got %d", c.Width))
	} else if c.BlockSize > 0 && c.Width%c.BlockSize != 0 {
		errs = multierror.Append(errs, fmt.Errorf("width %d is not a multiple of block size %d", c.Width, c.BlockSize))
	}
	if c.Height <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("height must be positive, got %d", c.Height))
	} else if c.BlockSize > 0 && c.Height%c.BlockSize != 0 {
		errs = multierror.Append(errs, fmt.Errorf("height %d is not a multiple of block size %d", c.Height, c.BlockSize))
	}
	if c.TickRate <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("tick rate must be positive, got %d", c.TickRate))
	}

	// A playable board needs room for the snake plus one food.
	if errs.ErrorOrNil() == nil && c.Grid().Capacity() < 2 {
		errs = multierror.Append(errs, fmt.Errorf("board of %dx%d blocks cannot hold a snake and food",
			c.Grid().Columns(), c.Grid().Rows()))
	}

	return errs.ErrorOrNil()
}

// Grid returns the board geometry described by the configuration.
func (c Config) Grid() core.Grid {
	return core.Grid{Width: c.Width, Height: c.Height, BlockSize: c.BlockSize}
}

func (c Config) newRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
