package main

import (
	"fmt"
	"os"

	"github.com/diegok/pixbreak/internal/app"
	"github.com/diegok/pixbreak/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pixbreak [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --fps <n>            Ticks per second, 30-240 (default: 100)")
	fmt.Fprintln(os.Stderr, "  --lives <n>          Balls per round (default: 3)")
	fmt.Fprintln(os.Stderr, "  --gravity <g>        Downward pull added to the ball each tick (default: 0)")
	fmt.Fprintln(os.Stderr, "  --paddle-speed <v>   Paddle pixels per tick (default: 4)")
	fmt.Fprintln(os.Stderr, "  --classic            Plain vertical bounce off the paddle")
	fmt.Fprintln(os.Stderr, "  --no-bricks          Play without the brick wall")
	fmt.Fprintln(os.Stderr, "  --config <file>      Load settings from a TOML file")
	fmt.Fprintln(os.Stderr, "  --debug              Write a debug log to logs/pixbreak.log")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  ←/→, a/d, h/l        Move the paddle")
	fmt.Fprintln(os.Stderr, "  q, Esc               Quit")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  pixbreak")
	fmt.Fprintln(os.Stderr, "  pixbreak --classic --lives 5")
	fmt.Fprintln(os.Stderr, "  pixbreak --no-bricks --gravity 0.05")
}
