package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mesafy/config"
	"mesafy/models"

	"github.com/google/uuid"
)

// SaveAvailabilitySession caches the result of an availability check so the
// guest-facing flow can confirm against the exact suggestion it displayed.
// Sessions are advisory: CreateReservation always re-checks.
func (s *DefaultBookingService) SaveAvailabilitySession(ctx context.Context, req models.AvailabilityRequest, result models.AvailabilityResult) (string, error) {
	if s.SessionCache == nil {
		return "", nil
	}
	session := models.AvailabilitySession{
		SessionID: uuid.New().String(),
		Request:   req,
		Result:    result,
	}
	data, err := json.Marshal(session)
	if err != nil {
		return "", fmt.Errorf("failed to marshal availability session: %w", err)
	}
	ttl := time.Duration(config.AppConfig.AvailabilitySessionTTLMin) * time.Minute
	if err := s.SessionCache.Set(ctx, sessionKey(session.SessionID), data, ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store availability session: %w", err)
	}
	return session.SessionID, nil
}

// GetAvailabilitySession retrieves a cached availability session.
func (s *DefaultBookingService) GetAvailabilitySession(ctx context.Context, sessionID string) (*models.AvailabilitySession, error) {
	if s.SessionCache == nil {
		return nil, fmt.Errorf("availability sessions are not enabled")
	}
	data, err := s.SessionCache.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("availability session not found or expired: %w", err)
	}
	var session models.AvailabilitySession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse availability session: %w", err)
	}
	return &session, nil
}

func sessionKey(sessionID string) string {
	return "availability:session:" + sessionID
}
