package config

// Tuning holds every simulation constant. Forces are expressed as
// accelerations (units/s²) and impulses as velocity changes (units/s) so the
// same values drive rigs of different masses.
type Tuning struct {
	World    WorldTuning    `yaml:"world"`
	Platform PlatformTuning `yaml:"platform"`
	Balance  BalanceTuning  `yaml:"balance"`
	AI       AITuning       `yaml:"ai"`
	Combat   CombatTuning   `yaml:"combat"`
	Attacks  AttackSet      `yaml:"attacks"`
	Knockout KnockoutTuning `yaml:"knockout"`
	Grab     GrabTuning     `yaml:"grab"`
	Boost    BoostTuning    `yaml:"boost"`
	Round    RoundTuning    `yaml:"round"`
	Debug    DebugTuning    `yaml:"debug"`
}

type WorldTuning struct {
	Gravity          float32 `yaml:"gravity"`
	TimeStep         float32 `yaml:"time_step"`
	SolverIterations int     `yaml:"solver_iterations"`
	FloorY           float32 `yaml:"floor_y"` // characters below this are dead
}

type PlatformTuning struct {
	Size      float32 `yaml:"size"` // width and depth
	Thickness float32 `yaml:"thickness"`
	Top       float32 `yaml:"top"`
}

// HalfSize is the distance from the platform center to an edge.
func (p PlatformTuning) HalfSize() float32 {
	return p.Size / 2
}

type BalanceTuning struct {
	GroundBand     float32 `yaml:"ground_band"`
	Deadband       float32 `yaml:"deadband"`
	UpGain         float32 `yaml:"up_gain"`
	DownGain       float32 `yaml:"down_gain"`
	MinVerticalVel float32 `yaml:"min_vertical_vel"`
	MaxVerticalVel float32 `yaml:"max_vertical_vel"`
	AngularDamp    float32 `yaml:"angular_damp"` // X/Z angular velocity kept per tick
	YawDamp        float32 `yaml:"yaw_damp"`
	Blend          float32 `yaml:"blend"`
	CriticalTilt   float32 `yaml:"critical_tilt"` // degrees
	ProbeDistance  float32 `yaml:"probe_distance"`
	PoseHold       float32 `yaml:"pose_hold"` // share of a posed part's offset removed per tick

	// Limb and head damping are the fraction of velocity relative to the
	// main body kept per tick.
	LimbAngularDamp float32 `yaml:"limb_angular_damp"`
	LimbLinearDamp  float32 `yaml:"limb_linear_damp"`
	LimbReturnGain  float32 `yaml:"limb_return_gain"`
	HeadAngularDamp float32 `yaml:"head_angular_damp"`
	HeadLinearDamp  float32 `yaml:"head_linear_damp"`
}

type AITuning struct {
	ThinkInterval   int     `yaml:"think_interval"`
	AttackRange     float32 `yaml:"attack_range"`
	LeaveRange      float32 `yaml:"leave_range"`
	StrikeRange     float32 `yaml:"strike_range"`
	MoveAccel       float32 `yaml:"move_accel"`
	MaxSpeed        float32 `yaml:"max_speed"`
	TurnRate        float32 `yaml:"turn_rate"`
	EdgeBlendRadius float32 `yaml:"edge_blend_radius"`
	SafeRadius      float32 `yaml:"safe_radius"`
	EdgePushAccel   float32 `yaml:"edge_push_accel"`
	EdgeVelDamp     float32 `yaml:"edge_vel_damp"` // outward velocity kept per tick past the safe radius
	CircleMin       float32 `yaml:"circle_min"`
	CircleMax       float32 `yaml:"circle_max"`
	CircleAccel     float32 `yaml:"circle_accel"`
	ApproachAccel   float32 `yaml:"approach_accel"`
	RetreatAccel    float32 `yaml:"retreat_accel"`
	CooldownMin     int     `yaml:"cooldown_min"`
	CooldownSpread  int     `yaml:"cooldown_spread"`
	ComboWindow     int     `yaml:"combo_window"`
	MaxCombo        int     `yaml:"max_combo"`
}

type CombatTuning struct {
	MaxHealth          float32 `yaml:"max_health"`
	KnockbackPerDamage float32 `yaml:"knockback_per_damage"`
	LiftPerDamage      float32 `yaml:"lift_per_damage"`
	MaxKnockbackSpeed  float32 `yaml:"max_knockback_speed"`
	StunTicks          int     `yaml:"stun_ticks"`
	SlipChance         float32 `yaml:"slip_chance"`
	SlipSpeed          float32 `yaml:"slip_speed"`

	PunchWeight      float32 `yaml:"punch_weight"`
	DropkickWeight   float32 `yaml:"dropkick_weight"`
	JumpAttackWeight float32 `yaml:"jump_attack_weight"`
	HeadbuttWeight   float32 `yaml:"headbutt_weight"`
}

// AttackTuning describes one attack. Ticks is the full duration; the strike
// begins at the midpoint and the hit check resolves when it runs out.
type AttackTuning struct {
	Ticks       int     `yaml:"ticks"`
	Damage      float32 `yaml:"damage"`
	Range       float32 `yaml:"range"`
	Reach       float32 `yaml:"reach"`
	WindupAccel float32 `yaml:"windup_accel"`
	StrikeAccel float32 `yaml:"strike_accel"`
	LungeSpeed  float32 `yaml:"lunge_speed"`
	LiftSpeed   float32 `yaml:"lift_speed"`
	Spin        float32 `yaml:"spin"`   // yaw for punches, pitch for airborne attacks
	Weight      float32 `yaml:"weight"` // selection weight within its family
}

type AttackSet struct {
	Jab        AttackTuning `yaml:"jab"`
	Cross      AttackTuning `yaml:"cross"`
	Hook       AttackTuning `yaml:"hook"`
	Uppercut   AttackTuning `yaml:"uppercut"`
	Headbutt   AttackTuning `yaml:"headbutt"`
	JumpAttack AttackTuning `yaml:"jump_attack"`
	Dropkick   AttackTuning `yaml:"dropkick"`
}

type KnockoutTuning struct {
	MinTicks        int     `yaml:"min_ticks"`
	MaxTicks        int     `yaml:"max_ticks"`
	SpinSpeed       float32 `yaml:"spin_speed"`
	FreeWakeRate    float32 `yaml:"free_wake_rate"`
	GrabbedWakeRate float32 `yaml:"grabbed_wake_rate"`
	WakeHealth      float32 `yaml:"wake_health"`
	EscapeUpSpeed   float32 `yaml:"escape_up_speed"`
	EscapeSideSpeed float32 `yaml:"escape_side_speed"`
	GrabberPush     float32 `yaml:"grabber_push"`
	HopSpeed        float32 `yaml:"hop_speed"`
}

type GrabTuning struct {
	Range         float32 `yaml:"range"`
	ApproachAccel float32 `yaml:"approach_accel"`
	CarryAccel    float32 `yaml:"carry_accel"`
	CarrySpeed    float32 `yaml:"carry_speed"`
	CarryOffset   float32 `yaml:"carry_offset"`
	CarryLift     float32 `yaml:"carry_lift"`
	ThrowRadius   float32 `yaml:"throw_radius"`
	ThrowSpeed    float32 `yaml:"throw_speed"`
	ThrowDrop     float32 `yaml:"throw_drop"`
	ThrowSpin     float32 `yaml:"throw_spin"`
}

type BoostTuning struct {
	Strength float32 `yaml:"strength"`
	Speed    float32 `yaml:"speed"`
	Heal     float32 `yaml:"heal"`
	Ticks    int     `yaml:"ticks"`
}

type RoundTuning struct {
	FightersPerTeam    int     `yaml:"fighters_per_team"`
	ResetDelay         int     `yaml:"reset_delay"`
	PowerEventInterval int     `yaml:"power_event_interval"` // 0 disables random boosts
	BlueSpawnX         float32 `yaml:"blue_spawn_x"`
	RedSpawnX          float32 `yaml:"red_spawn_x"`
	SpawnSpacing       float32 `yaml:"spawn_spacing"`
}

type DebugTuning struct {
	LogEvents bool `yaml:"log_events"`
}
