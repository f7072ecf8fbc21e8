// Headless arena runner: plays rounds without a window and reports outcomes
// and step timing.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"brawler/internal/arena"
	"brawler/internal/character"
	"brawler/internal/config"
)

func main() {
	configPath := flag.String("config", "", "YAML tuning file (defaults when empty)")
	rounds := flag.Int("rounds", 5, "rounds to play")
	rig := flag.String("rig", "hybrid", "rig variant: proxy, ragdoll, hybrid or all")
	seed := flag.Int64("seed", 42, "random seed")
	maxTicks := flag.Int("max-ticks", 60*60*3, "tick limit per round before it counts as a timeout")
	fighters := flag.Int("fighters", 0, "fighters per team (0 keeps the configured value)")
	bench := flag.Bool("bench", false, "report per-tick timing")
	dumpConfig := flag.Bool("dump-config", false, "print the effective tuning as YAML and exit")
	flag.Parse()

	tuning, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *fighters > 0 {
		tuning.Round.FightersPerTeam = *fighters
	}
	if *dumpConfig {
		data, err := tuning.Marshal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	var kinds []character.RigKind
	if *rig == "all" {
		kinds = []character.RigKind{character.RigSingleProxy, character.RigFullRagdoll, character.RigHybrid}
	} else {
		kind, err := character.ParseRigKind(*rig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		kinds = []character.RigKind{kind}
	}

	for _, kind := range kinds {
		run(tuning, kind, *seed, *rounds, *maxTicks, *bench)
	}
}

func run(tuning *config.Tuning, kind character.RigKind, seed int64, rounds, maxTicks int, bench bool) {
	// Reset right away so each Step loop below sees exactly one round.
	t := *tuning
	t.Round.ResetDelay = 1
	a := arena.New(&t, rand.New(rand.NewSource(seed)), kind)

	var (
		results   []arena.Result
		hits      int
		knockouts int
		throws    int
	)
	a.RoundOver.AddListener(func(r arena.Result) { results = append(results, r) })
	a.Events.AddListener(func(e character.Event) {
		switch e.Kind {
		case character.EventHit:
			hits++
		case character.EventKnockedOut:
			knockouts++
		case character.EventThrown:
			throws++
		}
	})

	fmt.Printf("%s rig, %d per team, seed %d\n", kind, t.Round.FightersPerTeam, seed)
	a.StartRound()

	var total time.Duration
	ticks, timeouts := 0, 0
	for r := 1; r <= rounds; r++ {
		ended := len(results)
		start := time.Now()
		n := 0
		for ; n < maxTicks && len(results) == ended; n++ {
			a.Step()
		}
		elapsed := time.Since(start)
		total += elapsed
		ticks += n

		if len(results) == ended {
			timeouts++
			fmt.Printf("  round %d: timeout after %d ticks\n", r, n)
			a.Reset()
			continue
		}
		fmt.Printf("  %s after %d ticks (%.1fs simulated)", results[len(results)-1], n, float32(n)*t.World.TimeStep)
		if bench {
			fmt.Printf(" | %v/tick", (elapsed / time.Duration(max(n, 1))).Round(time.Microsecond))
		}
		fmt.Println()
	}

	blue, red, draws := a.Scores()
	fmt.Printf("  blue %d, red %d, draws %d, timeouts %d | hits %d, knockouts %d, throws %d\n",
		blue, red, draws, timeouts, hits, knockouts, throws)
	if bench && ticks > 0 {
		fmt.Printf("  %d ticks in %v (%v/tick, %d bodies)\n",
			ticks, total.Round(time.Millisecond), (total / time.Duration(ticks)).Round(time.Microsecond), a.World().DynamicBodyCount())
	}
	fmt.Println()
}
