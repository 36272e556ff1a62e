package app

import (
	"encoding/json"
	"fmt"

	"github.com/Biz-Hub01/pureez/internal/cart/domain"
)

const storeKey = "cart"

func encodeLines(lines []domain.CartLine) (string, error) {
	if lines == nil {
		lines = []domain.CartLine{}
	}
	b, err := json.Marshal(lines)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeLines parses a persisted cart and restores the one-line-per-id and
// positive-quantity invariants in case the stored value was edited by hand.
func decodeLines(raw string) ([]domain.CartLine, error) {
	var stored []domain.CartLine
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}

	lines := make([]domain.CartLine, 0, len(stored))
	index := make(map[string]int, len(stored))
	for _, l := range stored {
		if l.ID == "" || l.Quantity < 1 {
			continue
		}
		if i, ok := index[l.ID]; ok {
			lines[i].Quantity += l.Quantity
			continue
		}
		index[l.ID] = len(lines)
		lines = append(lines, l)
	}
	return lines, nil
}
