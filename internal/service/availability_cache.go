package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"clinic-scheduler/internal/delivery/dto"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// AvailabilityCache keeps rendered weekly calendars in Redis for a few
// seconds. Staleness only risks briefly offering an already-taken slot, which
// the booking conflict guard rejects anyway, so cache failures degrade to a
// recompute rather than an error.
type AvailabilityCache struct {
	client *redis.Client
	log    *logrus.Logger
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, log *logrus.Logger, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func weekKey(practitionerID uuid.UUID, weekStart time.Time) string {
	return fmt.Sprintf("availability:week:%s:%s", practitionerID, weekStart.Format("2006-01-02"))
}

func (c *AvailabilityCache) GetWeeklyCalendar(ctx context.Context, practitionerID uuid.UUID, weekStart time.Time) (*dto.WeeklyCalendarResponse, bool) {
	data, err := c.client.Get(ctx, weekKey(practitionerID, weekStart)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Availability cache read failed: %+v", err)
		}
		return nil, false
	}

	var calendar dto.WeeklyCalendarResponse
	if err := json.Unmarshal(data, &calendar); err != nil {
		c.log.Warnf("Availability cache entry corrupt, discarding: %+v", err)
		return nil, false
	}
	return &calendar, true
}

func (c *AvailabilityCache) SetWeeklyCalendar(ctx context.Context, practitionerID uuid.UUID, weekStart time.Time, calendar *dto.WeeklyCalendarResponse) {
	data, err := json.Marshal(calendar)
	if err != nil {
		c.log.Warnf("Failed to marshal weekly calendar for cache: %+v", err)
		return
	}
	if err := c.client.Set(ctx, weekKey(practitionerID, weekStart), data, c.ttl).Err(); err != nil {
		c.log.Warnf("Availability cache write failed: %+v", err)
	}
}
