package main

import (
	"fmt"
	"os"

	"github.com/diegok/crankpong/internal/app"
	"github.com/diegok/crankpong/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
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
	fmt.Fprintln(os.Stderr, "  crankpong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --tuning <file>     TOML file with gameplay tuning")
	fmt.Fprintln(os.Stderr, "  --points <n>        Points to win (default: 11)")
	fmt.Fprintln(os.Stderr, "  --seed <n>          Random seed (default: time-based)")
	fmt.Fprintln(os.Stderr, "  --mute              Disable sound")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  w / up       move paddle up")
	fmt.Fprintln(os.Stderr, "  s / down     move paddle down")
	fmt.Fprintln(os.Stderr, "  [ / ]        turn the crank (when undocked)")
	fmt.Fprintln(os.Stderr, "  c            dock / undock the crank")
	fmt.Fprintln(os.Stderr, "  enter        restart after game over")
	fmt.Fprintln(os.Stderr, "  q            quit")
}
