package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"brawler/internal/character"
	"brawler/internal/config"
	"brawler/internal/game"
)

func main() {
	configPath := flag.String("config", "", "YAML tuning file (defaults when empty)")
	rig := flag.String("rig", "hybrid", "rig variant: proxy, ragdoll or hybrid")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil && *configPath == "" {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	tuning, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	kind, err := character.ParseRigKind(*rig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	g := game.New(tuning, kind, *seed)
	g.Run()
}
