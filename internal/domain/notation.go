package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidNotation = errors.New("invalid card notation")

var faceNames = [...]string{
	NoFace: "",
	Ace:    "A",
	Two:    "2",
	Three:  "3",
	Four:   "4",
	Five:   "5",
	Six:    "6",
	Seven:  "7",
	Eight:  "8",
	Nine:   "9",
	Ten:    "10",
	Jack:   "J",
	Queen:  "Q",
	King:   "K",
}

var suitSymbols = [...]string{
	NoSuit:   "",
	Hearts:   "♥",
	Diamonds: "♦",
	Spades:   "♠",
	Clubs:    "♣",
}

func (f Face) String() string {
	if !f.Valid() {
		return "?"
	}
	return faceNames[f]
}

func (s Suit) String() string {
	if !s.Valid() {
		return "?"
	}
	return suitSymbols[s]
}

// String renders the card as e.g. "10♦" or "jk2".
func (c Card) String() string {
	if c.IsJoker() {
		return "jk" + strconv.Itoa(c.joker)
	}
	return c.face.String() + c.suit.String()
}

// ParseFace reads a face token such as "A", "10", "T" or "q".
func ParseFace(s string) (Face, error) {
	switch strings.ToUpper(s) {
	case "A", "1":
		return Ace, nil
	case "T", "10":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 2 || n > 9 {
		return NoFace, fmt.Errorf("%w: %q", ErrInvalidFace, s)
	}
	return Face(n), nil
}

// ParseSuit reads a suit letter (H, D, S, C) or symbol.
func ParseSuit(s string) (Suit, error) {
	switch strings.ToUpper(s) {
	case "H", "♥":
		return Hearts, nil
	case "D", "♦":
		return Diamonds, nil
	case "S", "♠":
		return Spades, nil
	case "C", "♣":
		return Clubs, nil
	}
	return NoSuit, fmt.Errorf("%w: %q", ErrInvalidSuit, s)
}

// ParseHand parses whitespace or comma separated cards. Repeated cards are
// assigned increasing deck indices and bare "jk" tokens increasing joker ids.
func ParseHand(s string) (Hand, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	hand := make(Hand, 0, len(fields))
	copies := make(map[Card]int)
	usedJokers := make(map[int]bool)
	nextJoker := 1

	for _, tok := range fields {
		lower := strings.ToLower(tok)
		if strings.HasPrefix(lower, "jk") {
			id := 0
			if rest := lower[2:]; rest != "" {
				n, err := strconv.Atoi(rest)
				if err != nil {
					return nil, fmt.Errorf("%w: %q", ErrInvalidNotation, tok)
				}
				id = n
			} else {
				for usedJokers[nextJoker] {
					nextJoker++
				}
				id = nextJoker
			}
			j, err := NewJoker(id)
			if err != nil {
				return nil, fmt.Errorf("%q: %w", tok, err)
			}
			if usedJokers[id] {
				return nil, fmt.Errorf("%w: duplicate joker %q", ErrInvalidNotation, tok)
			}
			usedJokers[id] = true
			hand = append(hand, j)
			continue
		}

		c, err := parseCardToken(tok)
		if err != nil {
			return nil, err
		}
		deck := copies[c]
		copies[c] = deck + 1
		hand = append(hand, Card{suit: c.suit, face: c.face, deck: deck})
	}
	return hand, nil
}

// MustParseHand is ParseHand that panics on error.
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(err)
	}
	return h
}

func parseCardToken(tok string) (Card, error) {
	runes := []rune(tok)
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidNotation, tok)
	}
	suit, err := ParseSuit(string(runes[len(runes)-1]))
	if err != nil {
		return Card{}, fmt.Errorf("%q: %w", tok, err)
	}
	face, err := ParseFace(string(runes[:len(runes)-1]))
	if err != nil {
		return Card{}, fmt.Errorf("%q: %w", tok, err)
	}
	return NewCard(face, suit, 0)
}
