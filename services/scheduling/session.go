package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"meetdesk/models"
)

const sessionTTL = 30 * time.Minute

// WizardSession holds a visitor's in-progress selection across the 4-step
// scheduling wizard. It lives in Redis with a TTL; bookings can also be
// created without one.
type WizardSession struct {
	MeetingType models.MeetingType `json:"meetingType,omitempty"`
	Date        string             `json:"date,omitempty"`
	Time        string             `json:"time,omitempty"`
	Timezone    string             `json:"timezone,omitempty"`
	Step        int                `json:"step,omitempty"`
}

// StartSession creates a new wizard session and returns its id.
func (svc *DefaultSchedulingService) StartSession(session WizardSession) (string, error) {
	if svc.SessionCache == nil {
		return "", fmt.Errorf("session store not configured")
	}

	sessionID := uuid.New().String()
	raw, err := json.Marshal(session)
	if err != nil {
		return "", fmt.Errorf("failed to marshal wizard session: %w", err)
	}

	ctx := context.Background()
	if err := svc.SessionCache.Set(ctx, sessionID, raw, sessionTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to cache wizard session: %w", err)
	}
	return sessionID, nil
}

// UpdateSession overlays the submitted fields onto the stored session and
// refreshes its TTL.
func (svc *DefaultSchedulingService) UpdateSession(sessionID string, session WizardSession) (*WizardSession, error) {
	if svc.SessionCache == nil {
		return nil, fmt.Errorf("session store not configured")
	}

	ctx := context.Background()
	raw, err := svc.SessionCache.Get(ctx, sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load wizard session: %w", err)
	}

	var stored WizardSession
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session: %w", err)
	}

	if session.MeetingType != "" {
		stored.MeetingType = session.MeetingType
	}
	if session.Date != "" {
		stored.Date = session.Date
	}
	if session.Time != "" {
		stored.Time = session.Time
	}
	if session.Timezone != "" {
		stored.Timezone = session.Timezone
	}
	if session.Step != 0 {
		stored.Step = session.Step
	}

	updated, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	if err := svc.SessionCache.Set(ctx, sessionID, updated, sessionTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to update wizard session: %w", err)
	}
	return &stored, nil
}

// CancelSession deletes the session data from the cache.
func (svc *DefaultSchedulingService) CancelSession(sessionID string) error {
	if svc.SessionCache == nil {
		return nil
	}
	ctx := context.Background()
	if err := svc.SessionCache.Del(ctx, sessionID).Err(); err != nil {
		return fmt.Errorf("failed to cancel wizard session: %w", err)
	}
	return nil
}
