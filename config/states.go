package config

// StateID identifies the movement state of an actor.
type StateID int

const (
	StateNone StateID = iota
	Grounded
	Falling
	Jumping
)

func (s StateID) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Falling:
		return "falling"
	case Jumping:
		return "jumping"
	}
	return "none"
}
