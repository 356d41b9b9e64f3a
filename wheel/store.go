// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wheel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/food-wheel/ident"
	"github.com/danielhkuo/food-wheel/kvstore"
	"github.com/danielhkuo/food-wheel/models"
)

// Key layout in the kv store
const (
	keyLatestWheelID  = "latest_wheel_id"
	keyRefreshTrigger = "refresh_trigger"
	wheelKeyPrefix    = "wheel:"
)

var (
	ErrNotFound     = errors.New("wheel not found")
	ErrNoLatest     = errors.New("no wheel created yet")
	ErrFoodRequired = errors.New("food and userId are required")
	ErrNoFoods      = errors.New("no foods to spin")
)

// Store reads and writes wheel sessions and the global pointers.
type Store struct {
	kv           *kvstore.Store
	historyLimit int
}

func NewStore(kv *kvstore.Store, historyLimit int) *Store {
	return &Store{kv: kv, historyLimit: historyLimit}
}

func wheelKey(id string) string {
	return wheelKeyPrefix + id
}

// Create makes a new empty session, points latest_wheel_id at it and bumps
// refresh_trigger so polling clients reconnect to the new wheel.
func (s *Store) Create(ctx context.Context) (*models.WheelSession, error) {
	id, err := ident.NewWheelID()
	if err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	session := &models.WheelSession{
		ID:        id,
		Foods:     map[string]models.Food{},
		History:   []models.HistoryEntry{},
		CreatedAt: now,
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to encode wheel %s: %w", id, err)
	}
	if err := s.kv.Put(ctx, wheelKey(id), string(raw)); err != nil {
		return nil, err
	}
	if err := s.kv.Put(ctx, keyLatestWheelID, id); err != nil {
		return nil, err
	}
	// Nanosecond resolution keeps back-to-back creates from reusing a value.
	if err := s.kv.Put(ctx, keyRefreshTrigger, strconv.FormatInt(time.Now().UnixNano(), 10)); err != nil {
		return nil, err
	}

	return session, nil
}

// Get loads a session by id.
func (s *Store) Get(ctx context.Context, id string) (*models.WheelSession, error) {
	session, _, err := s.load(ctx, id)
	return session, err
}

// Latest resolves latest_wheel_id to its session. Returns ErrNoLatest when
// no wheel was ever created and ErrNotFound when the pointer is stale.
func (s *Store) Latest(ctx context.Context) (*models.WheelSession, error) {
	id, _, ok, err := s.kv.Get(ctx, keyLatestWheelID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoLatest
	}
	session, _, err := s.load(ctx, id)
	return session, err
}

// RefreshTrigger returns the current trigger value, "0" when unset.
func (s *Store) RefreshTrigger(ctx context.Context) (string, error) {
	value, _, ok, err := s.kv.Get(ctx, keyRefreshTrigger)
	if err != nil {
		return "", err
	}
	if !ok {
		return "0", nil
	}
	return value, nil
}

const mutateAttempts = 3

// Mutate applies one action to a session and persists it. The write is
// guarded by the kv version, so a concurrent mutation triggers a re-read and
// re-apply instead of a lost update. Unknown wheel ids fail with ErrNotFound.
func (s *Store) Mutate(ctx context.Context, id string, req models.MutateRequest) (*models.WheelSession, error) {
	var lastErr error
	for attempt := 0; attempt < mutateAttempts; attempt++ {
		session, version, err := s.load(ctx, id)
		if err != nil {
			return nil, err
		}

		if err := s.apply(session, req); err != nil {
			return nil, err
		}

		raw, err := json.Marshal(session)
		if err != nil {
			return nil, fmt.Errorf("failed to encode wheel %s: %w", id, err)
		}

		err = s.kv.PutVersion(ctx, wheelKey(id), string(raw), version)
		if err == nil {
			return session, nil
		}
		if !errors.Is(err, kvstore.ErrVersionConflict) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (s *Store) load(ctx context.Context, id string) (*models.WheelSession, int64, error) {
	raw, version, ok, err := s.kv.Get(ctx, wheelKey(id))
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return nil, 0, ErrNotFound
	}

	var session models.WheelSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, 0, fmt.Errorf("failed to decode wheel %s: %w", id, err)
	}
	return &session, version, nil
}

func (s *Store) apply(session *models.WheelSession, req models.MutateRequest) error {
	switch req.Action {
	case models.ActionAddFood:
		if strings.TrimSpace(req.Food) == "" || strings.TrimSpace(req.UserID) == "" {
			return ErrFoodRequired
		}
		if session.Foods == nil {
			session.Foods = map[string]models.Food{}
		}
		// One active contribution per user; repeats overwrite the food
		// and raise the draw weight.
		entry := session.Foods[req.UserID]
		entry.Food = req.Food
		entry.Count++
		session.Foods[req.UserID] = entry

	case models.ActionSpin:
		winner, err := Draw(session.Foods)
		if err != nil {
			return err
		}
		session.Spinning = true
		session.Result = ""
		session.PendingResult = winner

	case models.ActionResult:
		// The server-side draw wins over whatever the client submitted;
		// the client value only matters for legacy result-without-spin calls.
		outcome := session.PendingResult
		if outcome == "" {
			outcome = req.Food
		}
		session.Spinning = false
		session.Result = outcome
		session.History = append(session.History, models.HistoryEntry{
			Result:    outcome,
			Timestamp: time.Now().UnixMilli(),
		})
		if len(session.History) > s.historyLimit {
			session.History = session.History[len(session.History)-s.historyLimit:]
		}

	default:
		// Unknown actions are persisted no-ops, matching the legacy contract.
	}
	return nil
}
