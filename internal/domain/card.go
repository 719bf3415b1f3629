package domain

import (
	"errors"
	"fmt"
)

// Suit is a card suit. The zero value marks a joker.
type Suit int8

const (
	NoSuit Suit = iota
	Hearts
	Diamonds
	Spades
	Clubs
)

// Face is a card face. The zero value marks a joker.
type Face int8

const (
	NoFace Face = iota
	Ace
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// FacesPerSuit is the number of faces in one suit.
const FacesPerSuit = 13

var (
	ErrInvalidSuit  = errors.New("invalid suit")
	ErrInvalidFace  = errors.New("invalid face")
	ErrInvalidJoker = errors.New("invalid joker id")
	ErrInvalidDeck  = errors.New("invalid deck index")
)

var facePoints = [...]int{
	NoFace: 0,
	Ace:    10,
	Two:    2,
	Three:  3,
	Four:   4,
	Five:   5,
	Six:    6,
	Seven:  7,
	Eight:  8,
	Nine:   9,
	Ten:    10,
	Jack:   10,
	Queen:  10,
	King:   10,
}

// Valid reports whether s is one of the four playing suits.
func (s Suit) Valid() bool { return s >= Hearts && s <= Clubs }

// Valid reports whether f is one of the thirteen playing faces.
func (f Face) Valid() bool { return f >= Ace && f <= King }

// Points returns the deadwood value of the face.
func (f Face) Points() int {
	if !f.Valid() {
		return 0
	}
	return facePoints[f]
}

// Card is an immutable playing card or joker. Cards compare with ==.
type Card struct {
	suit  Suit
	face  Face
	joker int
	deck  int
}

// NewCard returns a normal card from the given deck.
func NewCard(face Face, suit Suit, deck int) (Card, error) {
	if !face.Valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidFace, face)
	}
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidSuit, suit)
	}
	if deck < 0 {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidDeck, deck)
	}
	return Card{suit: suit, face: face, deck: deck}, nil
}

// NewJoker returns the joker with the given id. Ids start at 1.
func NewJoker(id int) (Card, error) {
	if id < 1 {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidJoker, id)
	}
	return Card{joker: id}, nil
}

// MustCard is NewCard for callers holding known-good values. It panics on error.
func MustCard(face Face, suit Suit, deck int) Card {
	c, err := NewCard(face, suit, deck)
	if err != nil {
		panic(err)
	}
	return c
}

// MustJoker is NewJoker that panics on error.
func MustJoker(id int) Card {
	c, err := NewJoker(id)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Suit() Suit   { return c.suit }
func (c Card) Face() Face   { return c.face }
func (c Card) JokerID() int { return c.joker }
func (c Card) Deck() int    { return c.deck }

// IsJoker reports whether c is a joker.
func (c Card) IsJoker() bool { return c.joker > 0 }

// Valid reports whether c was built by NewCard or NewJoker.
func (c Card) Valid() bool {
	if c.joker > 0 {
		return c.suit == NoSuit && c.face == NoFace
	}
	return c.joker == 0 && c.suit.Valid() && c.face.Valid() && c.deck >= 0
}

// Value orders cards suit-major then face. Jokers have value -1.
func (c Card) Value() int {
	if c.IsJoker() {
		return -1
	}
	return int(c.suit-Hearts)*FacesPerSuit + int(c.face-Ace)
}

// Points returns the deadwood value of the card.
func (c Card) Points() int { return c.face.Points() }

// IsAce reports whether c is an ace.
func (c Card) IsAce() bool { return c.face == Ace }
