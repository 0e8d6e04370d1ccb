package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// SlotLocker serialises bookings for one (photographer, date, slot) tuple.
type SlotLocker interface {
	// Acquire takes the lock, returning false if another booking holds it.
	Acquire(ctx context.Context, photographerID uuid.UUID, date time.Time, timeSlot string) (bool, error)
	// Release frees the lock.
	Release(ctx context.Context, photographerID uuid.UUID, date time.Time, timeSlot string)
}

const slotLockTTL = 30 * time.Second

// RedisSlotLocker implements SlotLocker with a short-lived SET NX key.
// With a nil client it degrades to a no-op; the partial unique index on
// appointments then remains the only guard against double booking.
type RedisSlotLocker struct {
	client *redis.Client
}

// NewRedisSlotLocker creates the Redis-backed slot locker.
func NewRedisSlotLocker(client *redis.Client) *RedisSlotLocker {
	return &RedisSlotLocker{client: client}
}

func slotLockKey(photographerID uuid.UUID, date time.Time, timeSlot string) string {
	return fmt.Sprintf("slotlock:%s:%s:%s", photographerID, date.Format("2006-01-02"), timeSlot)
}

// Acquire takes the per-slot lock.
func (l *RedisSlotLocker) Acquire(ctx context.Context, photographerID uuid.UUID, date time.Time, timeSlot string) (bool, error) {
	if l.client == nil {
		return true, nil
	}

	ok, err := l.client.SetNX(ctx, slotLockKey(photographerID, date, timeSlot), "1", slotLockTTL).Result()
	if err != nil {
		// Redis being down must not block bookings; the DB index still holds.
		log.Warn().Err(err).Msg("Slot lock unavailable, relying on storage constraint")
		return true, nil
	}
	return ok, nil
}

// Release frees the per-slot lock.
func (l *RedisSlotLocker) Release(ctx context.Context, photographerID uuid.UUID, date time.Time, timeSlot string) {
	if l.client == nil {
		return
	}
	if err := l.client.Del(ctx, slotLockKey(photographerID, date, timeSlot)).Err(); err != nil {
		log.Warn().Err(err).Msg("Failed to release slot lock")
	}
}
