package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/Garsondee/DragonFire/internal/game"
	"github.com/prometheus/client_golang/prometheus"
)

type runStats struct {
	runIndex int
	seed     int64
	runID    string

	firstSpawnTick   int
	firstKillTick    int
	firstEscapeTick  int
	killLifetimes    []int // ticks from spawn to destroyed, per destroyed drone
	survivorsAtClose int

	stats game.SessionStats
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var scenario string
	var spawnChance float64
	var metricsOut string

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 3600, "ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenario, "scenario", "autopilot", "scenario name (autopilot, idle)")
	flag.Float64Var(&spawnChance, "spawn-chance", game.DefaultConfig().SpawnChance, "per-tick drone spawn probability")
	flag.StringVar(&metricsOut, "metrics-out", "", "write Prometheus text exposition of all runs to this file")
	flag.Parse()

	if err := checkFlags(runs, ticks, scenario, spawnChance); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	reg := prometheus.NewRegistry()
	metrics := game.NewMetrics(reg)

	fmt.Printf("=== Headless DragonFire Report ===\n")
	fmt.Printf("scenario=%s runs=%d ticks=%d seed_base=%d seed_step=%d spawn_chance=%.3f\n\n",
		scenario, runs, ticks, seedBase, seedStep, spawnChance)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runScenario(i+1, seed, ticks, scenario, spawnChance, metrics)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)

	if metricsOut != "" {
		if err := prometheus.WriteToTextfile(metricsOut, reg); err != nil {
			log.Fatalf("write metrics: %v", err)
		}
		log.Printf("metrics written to %s", metricsOut)
	}
}

// checkFlags rejects flag values that would make a run meaningless or
// fail config validation.
func checkFlags(runs, ticks int, scenario string, spawnChance float64) error {
	switch {
	case runs <= 0:
		return errors.New("-runs must be > 0")
	case ticks <= 0:
		return errors.New("-ticks must be > 0")
	case scenario != "autopilot" && scenario != "idle":
		return fmt.Errorf("unsupported scenario %q (supported: autopilot, idle)", scenario)
	case spawnChance < 0 || spawnChance > 1:
		return fmt.Errorf("-spawn-chance %v outside [0,1]", spawnChance)
	}
	return nil
}

func runScenario(runIndex int, seed int64, ticks int, scenario string, spawnChance float64, metrics *game.Metrics) runStats {
	opts := []game.SimOption{
		game.WithSeed(seed),
		game.WithSpawnChance(spawnChance),
	}
	if metrics != nil {
		opts = append(opts, game.WithSink(metrics.Run(strconv.Itoa(runIndex))))
	}
	ts := game.NewTestSim(opts...)

	switch scenario {
	case "autopilot":
		ts.RunAutopilot(ticks)
	default:
		ts.RunTicks(ticks, game.Input{})
	}

	entries := ts.SimLog.Entries()
	return runStats{
		runIndex:         runIndex,
		seed:             seed,
		runID:            ts.Sim.RunID(),
		firstSpawnTick:   firstTick(entries, "drone", game.EventSpawn.String()),
		firstKillTick:    firstTick(entries, "drone", game.EventDestroyed.String()),
		firstEscapeTick:  firstTick(entries, "drone", game.EventEscaped.String()),
		killLifetimes:    killLifetimes(entries),
		survivorsAtClose: len(ts.Sim.Drones()),
		stats:            ts.Stats,
	}
}

func firstTick(entries []game.SimLogEntry, category, key string) int {
	for _, e := range entries {
		if e.Category == category && e.Key == key {
			return e.Tick
		}
	}
	return -1
}

// killLifetimes pairs each destroyed drone with its spawn entry and returns
// the tick spans, in kill order.
func killLifetimes(entries []game.SimLogEntry) []int {
	spawned := map[string]int{}
	var out []int
	for _, e := range entries {
		if e.Category != "drone" {
			continue
		}
		switch e.Key {
		case game.EventSpawn.String():
			spawned[e.Drone] = e.Tick
		case game.EventDestroyed.String():
			if t, ok := spawned[e.Drone]; ok {
				out = append(out, e.Tick-t)
			}
		}
	}
	return out
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d id=%s) ---\n", rs.runIndex, rs.seed, rs.runID)
	fmt.Printf("phase_markers: first_spawn=%d first_kill=%d first_escape=%d\n",
		rs.firstSpawnTick, rs.firstKillTick, rs.firstEscapeTick)
	fmt.Printf("totals: %s\n", rs.stats)
	fmt.Printf("time_to_kill: %s survivors_at_close=%d\n", avgTickString(rs.killLifetimes), rs.survivorsAtClose)
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalSpawned := 0
	totalDestroyed := 0
	totalEscaped := 0
	totalHits := 0
	peak := 0

	killTicks := make([]int, 0, len(all))
	escapeTicks := make([]int, 0, len(all))
	var lifetimes []int
	ratios := make([]float64, 0, len(all))

	for _, rs := range all {
		totalSpawned += rs.stats.Spawned
		totalDestroyed += rs.stats.Destroyed
		totalEscaped += rs.stats.Escaped
		totalHits += rs.stats.HitTicks
		if rs.stats.PeakLive > peak {
			peak = rs.stats.PeakLive
		}
		if rs.firstKillTick >= 0 {
			killTicks = append(killTicks, rs.firstKillTick)
		}
		if rs.firstEscapeTick >= 0 {
			escapeTicks = append(escapeTicks, rs.firstEscapeTick)
		}
		lifetimes = append(lifetimes, rs.killLifetimes...)
		ratios = append(ratios, rs.stats.KillRatio())
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d\n", len(all))
	fmt.Printf("avg_per_run: spawned=%.1f destroyed=%.1f escaped=%.1f hit_ticks=%.1f peak_live_max=%d\n",
		avg(totalSpawned, len(all)), avg(totalDestroyed, len(all)), avg(totalEscaped, len(all)), avg(totalHits, len(all)), peak)
	fmt.Printf("phase_marker_avg_ticks: first_kill=%s first_escape=%s\n",
		avgTickString(killTicks), avgTickString(escapeTicks))
	fmt.Printf("time_to_kill: avg=%s median=%s\n", avgTickString(lifetimes), medianTickString(lifetimes))
	fmt.Printf("kill_ratio_per_run: [%s]\n", joinRatios(ratios))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func medianTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sorted := append([]int(nil), vals...)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return fmt.Sprintf("%d", sorted[mid])
	}
	return fmt.Sprintf("%.1f", float64(sorted[mid-1]+sorted[mid])/2)
}

func joinRatios(rs []float64) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = fmt.Sprintf("%.2f", r)
	}
	return strings.Join(parts, ",")
}
