package main

import (
	"flag"
	"os"

	"github.com/i582/cfmt/cmd/cfmt"
	"github.com/rs/zerolog"

	"snakego/engine/gui"
	"snakego/game"
)

func main() {
	widthFlag := flag.Int("width", game.DefaultWidth, "board width in pixels")
	heightFlag := flag.Int("height", game.DefaultHeight, "board height in pixels")
	blockFlag := flag.Int("block", game.DefaultBlockSize, "cell size in pixels")
	tickFlag := flag.Int("tps", game.DefaultTickRate, "simulation ticks per second")
	seedFlag := flag.Int64("seed", 0, "food placement seed, 0 picks one")
	verboseFlag := flag.Bool("v", false, "log debug details")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verboseFlag {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

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

	if err := gui.Run(cfg); err != nil {
		printErr("running game:", err)
		os.Exit(1)
	}
}

func printErr(m string, err error) {
	cfmt.Printf("{{error:}}::lightRed|bold %s %v\n", m, err)
}
