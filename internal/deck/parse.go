package deck

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidCard is returned when a card notation cannot be parsed.
var ErrInvalidCard = errors.New("invalid card")

// ParseCards parses a string of card notation into a slice of cards.
// Format: "AsKsQsJsTs" where each card is [Rank][Suit]; spaces and commas
// are ignored.
// Ranks: A, K, Q, J, T (or 10), 9, 8, 7, 6, 5, 4, 3, 2
// Suits: s/♠ (spades), h/♥ (hearts), d/♦ (diamonds), c/♣ (clubs)
func ParseCards(s string) ([]Card, error) {
	s = strings.NewReplacer(" ", "", ",", "", "\t", "").Replace(s)

	cards := []Card{}
	for pos := 0; pos < len(s); {
		rank, n, err := parseRank(s[pos:])
		if err != nil {
			return nil, fmt.Errorf("%w at position %d: %w", ErrInvalidCard, pos, err)
		}
		pos += n
		if pos >= len(s) {
			return nil, fmt.Errorf("%w: incomplete card at position %d", ErrInvalidCard, pos-n)
		}

		suit, n, err := parseSuit(s[pos:])
		if err != nil {
			return nil, fmt.Errorf("%w at position %d: %w", ErrInvalidCard, pos, err)
		}
		pos += n

		cards = append(cards, NewCard(suit, rank))
	}

	return cards, nil
}

// ParseCard parses exactly one card.
func ParseCard(s string) (Card, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Card{}, err
	}
	if len(cards) != 1 {
		return Card{}, fmt.Errorf("%w: %q is not a single card", ErrInvalidCard, s)
	}
	return cards[0], nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func parseRank(s string) (Rank, int, error) {
	if strings.HasPrefix(s, "10") {
		return Ten, 2, nil
	}
	switch c := s[0]; c {
	case 'A', 'a':
		return Ace, 1, nil
	case 'K', 'k':
		return King, 1, nil
	case 'Q', 'q':
		return Queen, 1, nil
	case 'J', 'j':
		return Jack, 1, nil
	case 'T', 't':
		return Ten, 1, nil
	case '9', '8', '7', '6', '5', '4', '3', '2':
		return Rank(c - '0'), 1, nil
	default:
		r, _ := utf8.DecodeRuneInString(s)
		return 0, 0, fmt.Errorf("unknown rank '%c'", r)
	}
}

func parseSuit(s string) (Suit, int, error) {
	r, size := utf8.DecodeRuneInString(s)
	switch r {
	case 's', 'S', '♠':
		return Spades, size, nil
	case 'h', 'H', '♥':
		return Hearts, size, nil
	case 'd', 'D', '♦':
		return Diamonds, size, nil
	case 'c', 'C', '♣':
		return Clubs, size, nil
	default:
		return 0, 0, fmt.Errorf("unknown suit '%c'", r)
	}
}
