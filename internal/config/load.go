package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML tuning file on top of Default. Fields missing from the
// file keep their default values. An empty path returns the defaults.
func Load(path string) (*Tuning, error) {
	t := Default()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	log.Printf("Config: loaded tuning from %s", path)
	return t, nil
}

// Marshal encodes the tuning as YAML, in the same shape Load accepts.
func (t *Tuning) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return data, nil
}

// Validate reports every out-of-range field at once.
func (t *Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(t.World.TimeStep > 0, "world.time_step must be positive, got %v", t.World.TimeStep)
	check(t.World.SolverIterations > 0, "world.solver_iterations must be positive, got %d", t.World.SolverIterations)
	check(t.World.FloorY < t.Platform.Top, "world.floor_y (%v) must be below platform.top (%v)", t.World.FloorY, t.Platform.Top)
	check(t.Platform.Size > 0 && t.Platform.Thickness > 0, "platform size and thickness must be positive")

	check(t.Balance.CriticalTilt > 0 && t.Balance.CriticalTilt < 180, "balance.critical_tilt must be in (0, 180) degrees, got %v", t.Balance.CriticalTilt)
	check(t.Balance.Blend >= 0 && t.Balance.Blend <= 1, "balance.blend must be in [0, 1], got %v", t.Balance.Blend)
	check(t.Balance.PoseHold >= 0 && t.Balance.PoseHold <= 1, "balance.pose_hold must be in [0, 1], got %v", t.Balance.PoseHold)
	check(t.Balance.MinVerticalVel < t.Balance.MaxVerticalVel, "balance.min_vertical_vel must be below max_vertical_vel")

	check(t.AI.ThinkInterval > 0, "ai.think_interval must be positive, got %d", t.AI.ThinkInterval)
	check(t.AI.EdgeBlendRadius < t.AI.SafeRadius, "ai.edge_blend_radius (%v) must be below ai.safe_radius (%v)", t.AI.EdgeBlendRadius, t.AI.SafeRadius)
	check(t.AI.SafeRadius < t.Platform.HalfSize(), "ai.safe_radius (%v) must be inside the platform (%v)", t.AI.SafeRadius, t.Platform.HalfSize())
	check(t.AI.CooldownMin >= 0 && t.AI.CooldownSpread >= 0, "ai cooldowns must not be negative")

	check(t.Combat.MaxHealth > 0, "combat.max_health must be positive")
	check(t.Combat.StunTicks >= 0, "combat.stun_ticks must not be negative, got %d", t.Combat.StunTicks)
	check(t.Combat.MaxKnockbackSpeed > 0, "combat.max_knockback_speed must be positive, got %v", t.Combat.MaxKnockbackSpeed)
	check(t.Combat.PunchWeight+t.Combat.DropkickWeight+t.Combat.JumpAttackWeight+t.Combat.HeadbuttWeight > 0,
		"combat attack weights must not all be zero")

	for name, a := range t.Attacks.byName() {
		check(a.Ticks >= 2, "attacks.%s.ticks must be at least 2, got %d", name, a.Ticks)
		check(a.Range > 0, "attacks.%s.range must be positive", name)
		check(a.Damage >= 0, "attacks.%s.damage must not be negative", name)
	}

	check(t.Knockout.MinTicks > 0 && t.Knockout.MaxTicks >= t.Knockout.MinTicks,
		"knockout ticks must satisfy 0 < min_ticks <= max_ticks, got %d..%d", t.Knockout.MinTicks, t.Knockout.MaxTicks)
	check(t.Knockout.GrabbedWakeRate >= t.Knockout.FreeWakeRate,
		"knockout.grabbed_wake_rate (%v) must not be below free_wake_rate (%v)", t.Knockout.GrabbedWakeRate, t.Knockout.FreeWakeRate)
	check(t.Knockout.WakeHealth > 0 && t.Knockout.WakeHealth <= t.Combat.MaxHealth, "knockout.wake_health must be in (0, max_health]")

	check(t.Grab.ThrowRadius < t.Platform.HalfSize(), "grab.throw_radius must be inside the platform")
	check(t.Boost.Ticks > 0, "boost.ticks must be positive, got %d", t.Boost.Ticks)
	check(t.Round.FightersPerTeam > 0, "round.fighters_per_team must be positive, got %d", t.Round.FightersPerTeam)
	check(t.Round.ResetDelay >= 0, "round.reset_delay must not be negative")

	return errors.Join(errs...)
}

func (s AttackSet) byName() map[string]AttackTuning {
	return map[string]AttackTuning{
		"jab":         s.Jab,
		"cross":       s.Cross,
		"hook":        s.Hook,
		"uppercut":    s.Uppercut,
		"headbutt":    s.Headbutt,
		"jump_attack": s.JumpAttack,
		"dropkick":    s.Dropkick,
	}
}
