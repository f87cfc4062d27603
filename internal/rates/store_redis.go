package rates

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisStore(addr string) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisStore{
		client: rdb,
		ctx:    context.Background(),
	}
}

func (s *RedisStore) LoadRates() (ExchangeRates, bool) {
	val, err := s.client.Get(s.ctx, ratesKey).Result()
	if err != nil {
		return ExchangeRates{}, false
	}

	var r ExchangeRates
	if err := json.Unmarshal([]byte(val), &r); err != nil {
		return ExchangeRates{}, false
	}
	return r, true
}

func (s *RedisStore) SaveRates(r ExchangeRates) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return s.client.Set(s.ctx, ratesKey, string(raw), 0).Err()
}

func (s *RedisStore) LoadSuppressUntil() (int64, bool) {
	val, err := s.client.Get(s.ctx, suppressKey).Result()
	if err != nil {
		return 0, false
	}

	deadline, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return deadline, true
}

func (s *RedisStore) SaveSuppressUntil(deadline int64) error {
	return s.client.Set(s.ctx, suppressKey, strconv.FormatInt(deadline, 10), 0).Err()
}
