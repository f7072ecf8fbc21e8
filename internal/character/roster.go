package character

// Registry answers target queries for a character's AI and hit checks.
type Registry interface {
	// Opponents returns the living characters on the other team.
	Opponents(of *Character) []*Character
}

// Roster is the registry used by the arena. Order is spawn order.
type Roster struct {
	members []*Character
}

func NewRoster() *Roster {
	return &Roster{}
}

func (r *Roster) Add(c *Character) {
	if c == nil {
		return
	}
	for _, m := range r.members {
		if m == c {
			return
		}
	}
	r.members = append(r.members, c)
}

func (r *Roster) Remove(c *Character) {
	for i, m := range r.members {
		if m == c {
			r.members = append(r.members[:i:i], r.members[i+1:]...)
			return
		}
	}
}

// Members returns a copy so callers may add or remove while iterating.
func (r *Roster) Members() []*Character {
	return append([]*Character(nil), r.members...)
}

func (r *Roster) Len() int {
	return len(r.members)
}

// Living counts alive characters on team.
func (r *Roster) Living(team Team) int {
	n := 0
	for _, m := range r.members {
		if m.IsAlive() && m.Team == team {
			n++
		}
	}
	return n
}

func (r *Roster) Opponents(of *Character) []*Character {
	var out []*Character
	for _, m := range r.members {
		if m != of && m.IsAlive() && m.Team != of.Team {
			out = append(out, m)
		}
	}
	return out
}

type noRegistry struct{}

func (noRegistry) Opponents(*Character) []*Character { return nil }
