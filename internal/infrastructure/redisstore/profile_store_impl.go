package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/vaanicall/vaani-backend/internal/domain/repository"
)

// ProfileStore keeps each device's profile key-space in a single redis hash,
// so Clear is one DEL and last-write-wins falls out of HSET semantics.
type ProfileStore struct {
	rdb *redis.Client
}

func NewProfileStore(rdb *redis.Client) *ProfileStore {
	return &ProfileStore{rdb: rdb}
}

func profileKey(deviceID string) string {
	return "device:profile:" + deviceID
}

func wrapUnavailable(err error) error {
	return fmt.Errorf("%w: %v", repository.ErrStorageUnavailable, err)
}

func (s *ProfileStore) Get(ctx context.Context, deviceID, key string) (string, bool, error) {
	v, err := s.rdb.HGet(ctx, profileKey(deviceID), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrapUnavailable(err)
	}
	return v, true, nil
}

func (s *ProfileStore) Set(ctx context.Context, deviceID, key, value string) error {
	if err := s.rdb.HSet(ctx, profileKey(deviceID), key, value).Err(); err != nil {
		return wrapUnavailable(err)
	}
	return nil
}

func (s *ProfileStore) Delete(ctx context.Context, deviceID, key string) error {
	if err := s.rdb.HDel(ctx, profileKey(deviceID), key).Err(); err != nil {
		return wrapUnavailable(err)
	}
	return nil
}

func (s *ProfileStore) Clear(ctx context.Context, deviceID string) error {
	if err := s.rdb.Del(ctx, profileKey(deviceID)).Err(); err != nil {
		return wrapUnavailable(err)
	}
	return nil
}
