package game

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mangle func(*Config)
	}{
		{"zero block size", func(c *Config) { c.BlockSize = 0 }},
		{"negative width", func(c *Config) { c.Width = -800 }},
		{"width not a block multiple", func(c *Config) { c.Width = 810 }},
		{"height not a block multiple", func(c *Config) { c.Height = 590 }},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
		{"single-cell board", func(c *Config) { c.Width = 20; c.Height = 20 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mangle(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestConfigValidateCollectsAllProblems(t *testing.T) {
	cfg := Config{}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() on the zero Config = nil, want error")
	}

	var merr *multierror.Error
	if !errors.As(err, &merr) {
		t.Fatalf("Validate() error is %T, want *multierror.Error", err)
	}
	if len(merr.Errors) != 4 {
		t.Errorf("got %d problems, want 4: %v", len(merr.Errors), merr)
	}
}

func TestConfigGrid(t *testing.T) {
	g := DefaultConfig().Grid()
	if g.Columns() != 40 || g.Rows() != 30 {
		t.Errorf("Grid() = %dx%d blocks, want 40x30", g.Columns(), g.Rows())
	}
}
