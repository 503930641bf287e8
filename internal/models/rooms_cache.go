package models

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const roomCacheTTL = 10 * time.Minute

// CachedRoomsRepo is a read-through Redis cache in front of the mongo-backed
// rooms repo. Only single-room lookups are cached; the catalog is read-only
// from the booking side, so a short TTL is safe. Bookings are never cached.
type CachedRoomsRepo struct {
	inner RoomsRepo
	rdb   *redis.Client
}

func NewCachedRoomsRepo(inner RoomsRepo, rdb *redis.Client) *CachedRoomsRepo {
	return &CachedRoomsRepo{
		inner: inner,
		rdb:   rdb,
	}
}

func roomCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("rooms:id:%s", id.String())
}

func (cr *CachedRoomsRepo) GetRoomByID(ctx context.Context, id uuid.UUID) (*Room, error) {
	key := roomCacheKey(id)

	if cr.rdb != nil {
		cached, err := cr.rdb.Get(ctx, key).Result()
		if err == nil {
			var room Room
			if err := json.Unmarshal([]byte(cached), &room); err == nil {
				return &room, nil
			}
			// Bad payload, drop it and fall through to Mongo
			cr.rdb.Del(ctx, key)
		}
	}

	room, err := cr.inner.GetRoomByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cr.rdb != nil {
		if data, err := json.Marshal(room); err == nil {
			cr.rdb.Set(ctx, key, data, roomCacheTTL)
		}
	}

	return room, nil
}

func (cr *CachedRoomsRepo) CreateRoom(ctx context.Context, room *Room) (*Room, error) {
	created, err := cr.inner.CreateRoom(ctx, room)
	if err != nil {
		return nil, err
	}

	if cr.rdb != nil {
		cr.rdb.Del(ctx, roomCacheKey(created.Id))
	}

	return created, nil
}

func (cr *CachedRoomsRepo) ListRooms(ctx context.Context, offset, limit int) ([]*Room, int, error) {
	// Listings are paginated and change as hosts add rooms; not worth caching.
	return cr.inner.ListRooms(ctx, offset, limit)
}
