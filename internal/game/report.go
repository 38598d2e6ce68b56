package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// sessionReport renders a plain-text snapshot of the session for bug
// reports: run id, config, counters and every live drone.
func sessionReport(sim *Simulation, stats SessionStats) string {
	cfg := sim.Config()
	t := sim.Turret()

	var b strings.Builder
	fmt.Fprintf(&b, "--- DragonFire session report ---\n")
	fmt.Fprintf(&b, "run=%s tick=%d\n", sim.RunID(), sim.Tick())
	fmt.Fprintf(&b, "screen=%dx%d tps=%d spawn_chance=%.3f beam=%.0f damage=%.2f drone=%.0fx%.0f\n",
		cfg.ScreenWidth, cfg.ScreenHeight, cfg.TPS, cfg.SpawnChance,
		cfg.BeamLength, cfg.BeamDamage, cfg.DroneWidth, cfg.DroneHeight)
	fmt.Fprintf(&b, "turret: pos=(%.0f,%.0f) angle=%d firing=%v\n", t.Pos().X, t.Pos().Y, t.Angle(), t.Firing())
	fmt.Fprintf(&b, "stats: %s\n", stats)

	drones := sim.Drones()
	fmt.Fprintf(&b, "live drones: %d\n", len(drones))
	for _, d := range drones {
		r := d.Bounds()
		flag := ""
		if d.BeingHit() {
			flag = " HIT"
		}
		fmt.Fprintf(&b, "  D%-3d box=[%.1f,%.1f %.1f,%.1f] v=(%+.2f,%.2f) hp=%.2f%s\n",
			d.ID(), r.X.Lo, r.Y.Lo, r.X.Hi, r.Y.Hi, d.Velocity().X, d.Velocity().Y, d.Health(), flag)
	}
	return b.String()
}

// copyToClipboard puts text on the system clipboard.
func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy report: %w", err)
	}
	return nil
}
