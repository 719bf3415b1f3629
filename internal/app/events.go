package app

import "rummy/internal/domain"

// EventKind identifies emitted game events.
type EventKind string

const (
	EventGameStarted    EventKind = "game_started"
	EventHandDealt      EventKind = "hand_dealt"
	EventDiscardTaken   EventKind = "discard_taken"
	EventCardDrawn      EventKind = "card_drawn"
	EventCardDiscarded  EventKind = "card_discarded"
	EventDeckReshuffled EventKind = "deck_reshuffled"
	EventGameEnded      EventKind = "game_ended"
)

// Event is an app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type GameStartedPayload struct {
	GameID          string
	Phase           domain.Phase
	FirstTurnUserID string
	Discard         domain.Card
	WildFace        domain.Face
}

type HandDealtPayload struct {
	UserID string
	Hand   domain.Hand
	Score  int
	Points int
}

type DiscardTakenPayload struct {
	UserID string
	Card   domain.Card
}

// CardDrawnPayload is sent to the drawing player only.
type CardDrawnPayload struct {
	UserID string
	Card   domain.Card
}

type CardDiscardedPayload struct {
	UserID         string
	Card           domain.Card
	NextTurnUserID string
}

type DeckReshuffledPayload struct {
	Remaining int
}

type GameEndedPayload struct {
	GameID string
	Winner string // empty when the turn limit or the deck ran out
	Turns  int
	Points map[string]int
}
