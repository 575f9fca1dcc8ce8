package entity

// Scoreboard is the running tally for one session: how many matches the
// player won, lost, or drew against the bot. It holds aggregate counters
// only, never per-match records.
type Scoreboard struct {
	SessionID string `json:"session_id"`
	Wins      int    `json:"wins"`
	Losses    int    `json:"losses"`
	Draws     int    `json:"draws"`
}

func NewScoreboard(sessionID string) *Scoreboard {
	return &Scoreboard{SessionID: sessionID}
}

// Apply counts a decided match. The winner value follows the board
// convention: MarkX for the player, MarkO for the bot, MarkTie for a draw.
func (that *Scoreboard) Apply(winner string) {
	switch winner {
	case MarkX:
		that.Wins++
	case MarkO:
		that.Losses++
	case MarkTie:
		that.Draws++
	}
}

func (that *Scoreboard) Total() int {
	return that.Wins + that.Losses + that.Draws
}
