package domain

// Phase represents the lifecycle stage of a round.
type Phase string

const (
	// PhaseLobby is the state before cards are dealt.
	PhaseLobby Phase = "lobby"
	// PhasePlaying is the state while players draw and discard.
	PhasePlaying Phase = "playing"
	// PhaseEnded is the state after a player declares or the turn limit is hit.
	PhaseEnded Phase = "ended"
)

// Player holds state for a participant in a round.
type Player struct {
	UserID string
	Seat   int // 1-based seat number
	Hand   Hand
	Points int
}

// Game holds authoritative state for one round.
type Game struct {
	ID       string
	Phase    Phase
	Players  map[string]*Player
	Seats    []string // userIDs in turn order
	Deck     *Deck
	WildFace Face

	HandSize    int
	CurrentTurn string
	Turns       int
	Winner      string
}

// NextSeat returns the userID seated after the given one.
func (g *Game) NextSeat(userID string) string {
	for i, id := range g.Seats {
		if id == userID {
			return g.Seats[(i+1)%len(g.Seats)]
		}
	}
	if len(g.Seats) == 0 {
		return ""
	}
	return g.Seats[0]
}
