package entity

// Side is one of the two participants of a match. The mark mapping is fixed
// for the whole session: the player always plays X, the bot always plays O.
type Side string

const (
	SidePlayer Side = "player"
	SideBot    Side = "bot"
)

// Next returns the side that moves after this one.
func (that Side) Next() Side {
	if that == SidePlayer {
		return SideBot
	}

	return SidePlayer
}

func (that Side) Mark() string {
	if that == SidePlayer {
		return MarkX
	}

	return MarkO
}
