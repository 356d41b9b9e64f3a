// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wheel

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
	"sort"

	"github.com/danielhkuo/food-wheel/models"
)

type weightedFood struct {
	food          string
	cumulativeSum int
}

var drawRandomInt = secureRandomInt

// Draw picks one contribution with probability proportional to its count.
// The pick happens server-side so the recorded result cannot be spoofed by
// a client.
func Draw(foods map[string]models.Food) (string, error) {
	if len(foods) == 0 {
		return "", ErrNoFoods
	}

	// Map iteration order is random; sort for a stable cumulative layout.
	userIDs := make([]string, 0, len(foods))
	for userID := range foods {
		userIDs = append(userIDs, userID)
	}
	sort.Strings(userIDs)

	weighted := make([]weightedFood, 0, len(foods))
	total := 0
	for _, userID := range userIDs {
		entry := foods[userID]
		if entry.Count <= 0 {
			continue
		}
		total += entry.Count
		weighted = append(weighted, weightedFood{food: entry.Food, cumulativeSum: total})
	}
	if total <= 0 {
		return "", ErrNoFoods
	}

	picked, err := drawRandomInt(total)
	if err != nil {
		return "", fmt.Errorf("failed to pick random ticket: %w", err)
	}

	target := picked + 1 // 1-based index into the cumulative sums
	idx := sort.Search(len(weighted), func(i int) bool {
		return weighted[i].cumulativeSum >= target
	})
	return weighted[idx].food, nil
}

func secureRandomInt(max int) (int, error) {
	n, err := crand.Int(crand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}
