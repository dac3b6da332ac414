package blackjack

import "strconv"

var suits = [...]string{"S", "H", "D", "C"}

// Card ранг 1 (туз) - 13 (король)
type Card struct {
	Rank int
	Suit string
}

func (c Card) String() string {
	var r string
	switch c.Rank {
	case 1:
		r = "A"
	case 11:
		r = "J"
	case 12:
		r = "Q"
	case 13:
		r = "K"
	default:
		r = strconv.Itoa(c.Rank)
	}
	return r + c.Suit
}

// NewDeck упорядоченная колода из 52 карт
func NewDeck() []Card {
	deck := make([]Card, 0, len(suits)*13)
	for _, s := range suits {
		for r := 1; r <= 13; r++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// Total очки руки. Туз считается за 11, пока нет перебора
func Total(hand []Card) (total int, soft bool) {
	aces := 0
	for _, c := range hand {
		switch {
		case c.Rank == 1:
			aces++
			total += 11
		case c.Rank >= 10:
			total += 10
		default:
			total += c.Rank
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces > 0
}

func isNatural(hand []Card) bool {
	t, _ := Total(hand)
	return len(hand) == 2 && t == 21
}

func labels(hand []Card) []string {
	out := make([]string, len(hand))
	for i, c := range hand {
		out[i] = c.String()
	}
	return out
}
