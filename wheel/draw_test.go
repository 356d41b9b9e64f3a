// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wheel

import (
	"errors"
	"testing"

	"github.com/danielhkuo/food-wheel/models"
)

func stubDraw(t *testing.T, picks []int) {
	t.Helper()
	i := 0
	orig := drawRandomInt
	drawRandomInt = func(max int) (int, error) {
		if i >= len(picks) {
			t.Fatalf("drawRandomInt called more than %d times", len(picks))
		}
		pick := picks[i]
		i++
		if pick >= max {
			t.Fatalf("stubbed pick %d out of range %d", pick, max)
		}
		return pick, nil
	}
	t.Cleanup(func() { drawRandomInt = orig })
}

func TestDrawEmpty(t *testing.T) {
	_, err := Draw(map[string]models.Food{})
	if !errors.Is(err, ErrNoFoods) {
		t.Errorf("Expected ErrNoFoods, got %v", err)
	}
}

func TestDrawSingle(t *testing.T) {
	foods := map[string]models.Food{
		"u1": {Food: "Pizza", Count: 1},
	}

	for i := 0; i < 20; i++ {
		winner, err := Draw(foods)
		if err != nil {
			t.Fatalf("Draw failed: %v", err)
		}
		if winner != "Pizza" {
			t.Fatalf("Single contribution must always win, got %q", winner)
		}
	}
}

func TestDrawWeights(t *testing.T) {
	// Sorted user order: u1 (weight 2, tickets 0-1), u2 (weight 1, ticket 2)
	foods := map[string]models.Food{
		"u1": {Food: "Pizza", Count: 2},
		"u2": {Food: "Sushi", Count: 1},
	}

	tests := []struct {
		pick int
		want string
	}{
		{0, "Pizza"},
		{1, "Pizza"},
		{2, "Sushi"},
	}

	for _, tt := range tests {
		stubDraw(t, []int{tt.pick})
		winner, err := Draw(foods)
		if err != nil {
			t.Fatalf("Draw failed: %v", err)
		}
		if winner != tt.want {
			t.Errorf("pick %d: expected %q, got %q", tt.pick, tt.want, winner)
		}
	}
}

func TestDrawSkipsZeroWeight(t *testing.T) {
	foods := map[string]models.Food{
		"u1": {Food: "Pizza", Count: 0},
		"u2": {Food: "Sushi", Count: 1},
	}

	for i := 0; i < 20; i++ {
		winner, err := Draw(foods)
		if err != nil {
			t.Fatalf("Draw failed: %v", err)
		}
		if winner != "Sushi" {
			t.Fatalf("Zero-weight contribution must never win, got %q", winner)
		}
	}
}

func TestDrawAllZeroWeights(t *testing.T) {
	foods := map[string]models.Food{
		"u1": {Food: "Pizza", Count: 0},
	}

	_, err := Draw(foods)
	if !errors.Is(err, ErrNoFoods) {
		t.Errorf("Expected ErrNoFoods, got %v", err)
	}
}

func TestDrawIsMember(t *testing.T) {
	foods := map[string]models.Food{
		"u1": {Food: "Pizza", Count: 1},
		"u2": {Food: "Sushi", Count: 3},
		"u3": {Food: "Tacos", Count: 2},
	}
	valid := map[string]bool{"Pizza": true, "Sushi": true, "Tacos": true}

	for i := 0; i < 50; i++ {
		winner, err := Draw(foods)
		if err != nil {
			t.Fatalf("Draw failed: %v", err)
		}
		if !valid[winner] {
			t.Fatalf("Draw returned a non-contribution: %q", winner)
		}
	}
}
