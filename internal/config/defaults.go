package config

// Default returns the canonical constant set. Knockback, throw and escape
// speeds are capped so ordinary hits never launch a character off-screen.
func Default() *Tuning {
	return &Tuning{
		World: WorldTuning{
			Gravity:          -25,
			TimeStep:         1.0 / 60.0,
			SolverIterations: 10,
			FloorY:           -40,
		},
		Platform: PlatformTuning{
			Size:      30,
			Thickness: 2,
			Top:       -4,
		},
		Balance: BalanceTuning{
			GroundBand:      0.5,
			Deadband:        0.05,
			UpGain:          60,
			DownGain:        25,
			MinVerticalVel:  -3,
			MaxVerticalVel:  1,
			AngularDamp:     0.3,
			YawDamp:         0.85,
			Blend:           0.08,
			CriticalTilt:    70,
			ProbeDistance:   6,
			PoseHold:        0.5,
			LimbAngularDamp: 0.3,
			LimbLinearDamp:  0.5,
			LimbReturnGain:  40,
			HeadAngularDamp: 0.2,
			HeadLinearDamp:  0.6,
		},
		AI: AITuning{
			ThinkInterval:   20,
			AttackRange:     3.5,
			LeaveRange:      5,
			StrikeRange:     2.6,
			MoveAccel:       25,
			MaxSpeed:        5,
			TurnRate:        0.15,
			EdgeBlendRadius: 10,
			SafeRadius:      13,
			EdgePushAccel:   30,
			EdgeVelDamp:     0.7,
			CircleMin:       2.5,
			CircleMax:       4.5,
			CircleAccel:     18,
			ApproachAccel:   20,
			RetreatAccel:    18,
			CooldownMin:     50,
			CooldownSpread:  50,
			ComboWindow:     60,
			MaxCombo:        3,
		},
		Combat: CombatTuning{
			MaxHealth:          100,
			KnockbackPerDamage: 0.15,
			LiftPerDamage:      0.05,
			MaxKnockbackSpeed:  6,
			StunTicks:          12,
			SlipChance:         0.15,
			SlipSpeed:          3,
			PunchWeight:        0.55,
			DropkickWeight:     0.30,
			JumpAttackWeight:   0.10,
			HeadbuttWeight:     0.05,
		},
		Attacks: AttackSet{
			Jab:        AttackTuning{Ticks: 12, Damage: 15, Range: 2.2, Reach: 1.0, WindupAccel: 40, StrikeAccel: 160, LungeSpeed: 1.0, Weight: 0.40},
			Cross:      AttackTuning{Ticks: 15, Damage: 25, Range: 2.0, Reach: 1.0, WindupAccel: 50, StrikeAccel: 190, LungeSpeed: 1.5, Spin: 1.5, Weight: 0.30},
			Hook:       AttackTuning{Ticks: 18, Damage: 28, Range: 2.3, Reach: 0.9, WindupAccel: 45, StrikeAccel: 170, LungeSpeed: 1.0, Spin: 2.0, Weight: 0.15},
			Uppercut:   AttackTuning{Ticks: 16, Damage: 30, Range: 1.8, Reach: 0.8, WindupAccel: 45, StrikeAccel: 170, LungeSpeed: 0.5, LiftSpeed: 1.0, Weight: 0.15},
			Headbutt:   AttackTuning{Ticks: 14, Damage: 20, Range: 1.8, Reach: 0.7, WindupAccel: 30, StrikeAccel: 80, LungeSpeed: 2.5, Weight: 1},
			JumpAttack: AttackTuning{Ticks: 24, Damage: 30, Range: 2.4, Reach: 1.2, LungeSpeed: 5, LiftSpeed: 6, Weight: 1},
			Dropkick:   AttackTuning{Ticks: 20, Damage: 35, Range: 2.5, Reach: 1.5, LungeSpeed: 6, LiftSpeed: 4, Spin: 2, Weight: 1},
		},
		Knockout: KnockoutTuning{
			MinTicks:        180,
			MaxTicks:        300,
			SpinSpeed:       2,
			FreeWakeRate:    0,
			GrabbedWakeRate: 2,
			WakeHealth:      50,
			EscapeUpSpeed:   6,
			EscapeSideSpeed: 3,
			GrabberPush:     4,
			HopSpeed:        2,
		},
		Grab: GrabTuning{
			Range:         3,
			ApproachAccel: 20,
			CarryAccel:    20,
			CarrySpeed:    2.5,
			CarryOffset:   1.2,
			CarryLift:     0.5,
			ThrowRadius:   13,
			ThrowSpeed:    14,
			ThrowDrop:     4,
			ThrowSpin:     5,
		},
		Boost: BoostTuning{
			Strength: 2,
			Speed:    1.5,
			Heal:     50,
			Ticks:    600,
		},
		Round: RoundTuning{
			FightersPerTeam: 1,
			ResetDelay:      180,
			BlueSpawnX:      -8,
			RedSpawnX:       8,
			SpawnSpacing:    2,
		},
		Debug: DebugTuning{
			LogEvents: true,
		},
	}
}
