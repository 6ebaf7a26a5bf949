package main

import (
	"flag"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/i582/cfmt/cmd/cfmt"
	"github.com/rs/zerolog"

	"snakego/engine/term"
	"snakego/game"
)

// The terminal draws one character per board cell, so the defaults
// are smaller than the desktop ones to fit an 80x24 terminal.
const (
	defaultWidth  = 600
	defaultHeight = 400
)

func main() {
	widthFlag := flag.Int("width", defaultWidth, "board width in pixels")
	heightFlag := flag.Int("height", defaultHeight, "board height in pixels")
	blockFlag := flag.Int("block", game.DefaultBlockSize, "cell size in pixels")
	tickFlag := flag.Int("tps", game.DefaultTickRate, "simulation ticks per second")
	seedFlag := flag.Int64("seed", 0, "food placement seed, 0 picks one")
	logFlag := flag.String("log", "", "write logs to this file")
	flag.Parse()

	// Logs cannot share the terminal with the board, so they are off
	// unless routed to a file.
	logger := zerolog.Nop()
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			printErr("opening log file:", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = zerolog.New(f).With().Timestamp().Logger()
	}

	cfg := game.Config{
		Width:     *widthFlag,
		Height:    *heightFlag,
		BlockSize: *blockFlag,
		TickRate:  *tickFlag,
		Seed:      *seedFlag,
		Logger:    logger,
	}
	if err := cfg.Validate(); err != nil {
		printErr("invalid configuration:", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		printErr("creating screen:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		printErr("initializing screen:", err)
		os.Exit(1)
	}

	eng, err := term.New(cfg, screen)
	if err != nil {
		screen.Fini()
		printErr("setting up game:", err)
		os.Exit(1)
	}
	if err := eng.Run(); err != nil {
		printErr("running game:", err)
		os.Exit(1)
	}
}

func printErr(m string, err error) {
	cfmt.Printf("{{error:}}::lightRed|bold %s %v\n", m, err)
}
