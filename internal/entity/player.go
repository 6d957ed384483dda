package entity

// Player identifies one of the two sides. NoPlayer marks the absence of one.
type Player int

const (
	NoPlayer  Player = 0
	PlayerOne Player = 1
	PlayerTwo Player = 2
)

// Human and Computer name the sides in vs-computer games.
const (
	Human    = PlayerOne
	Computer = PlayerTwo
)

// Opponent returns the other side.
func (that Player) Opponent() Player {
	if that == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}
