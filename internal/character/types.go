package character

import "fmt"

type Team int

const (
	TeamBlue Team = iota
	TeamRed
)

func (t Team) String() string {
	if t == TeamRed {
		return "red"
	}
	return "blue"
}

func (t Team) Opponent() Team {
	if t == TeamRed {
		return TeamBlue
	}
	return TeamRed
}

// Posture overlays the AI state and decides whether AI and balance run.
type Posture int

const (
	PostureActive Posture = iota
	PostureStunned
	PostureKnockedOut
)

func (p Posture) String() string {
	switch p {
	case PostureStunned:
		return "stunned"
	case PostureKnockedOut:
		return "knocked-out"
	}
	return "active"
}

type AIState int

const (
	StateIdle AIState = iota
	StateSeeking
	StateAttacking
	StateGrabbing
)

func (s AIState) String() string {
	switch s {
	case StateSeeking:
		return "seeking"
	case StateAttacking:
		return "attacking"
	case StateGrabbing:
		return "grabbing"
	}
	return "idle"
}

// RigKind selects how a character is represented physically.
type RigKind int

const (
	RigSingleProxy RigKind = iota
	RigFullRagdoll
	RigHybrid
)

var rigKindNames = map[RigKind]string{
	RigSingleProxy: "proxy",
	RigFullRagdoll: "ragdoll",
	RigHybrid:      "hybrid",
}

func (k RigKind) String() string {
	if name, ok := rigKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Next cycles through the rig kinds, used by the viewer's toggle.
func (k RigKind) Next() RigKind {
	return (k + 1) % RigKind(len(rigKindNames))
}

func ParseRigKind(s string) (RigKind, error) {
	for k, name := range rigKindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown rig kind %q (want proxy, ragdoll or hybrid)", s)
}

// Part names one anatomical segment. Which parts are simulated depends on
// the rig kind.
type Part int

const (
	PartTorso Part = iota
	PartHips
	PartSpine
	PartChest
	PartNeck
	PartHead
	PartUpperArmL
	PartForearmL
	PartHandL
	PartUpperArmR
	PartForearmR
	PartHandR
	PartThighL
	PartShinL
	PartFootL
	PartThighR
	PartShinR
	PartFootR
	partCount
)

var partNames = [partCount]string{
	"torso", "hips", "spine", "chest", "neck", "head",
	"upper-arm-l", "forearm-l", "hand-l",
	"upper-arm-r", "forearm-r", "hand-r",
	"thigh-l", "shin-l", "foot-l",
	"thigh-r", "shin-r", "foot-r",
}

func (p Part) String() string {
	if p >= 0 && p < partCount {
		return partNames[p]
	}
	return "unknown"
}
