// Package redisstore adapta go-redis a fiber.Storage para guardar las sesiones
// (borradores y mensajes flash) fuera del proceso.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

var _ fiber.Storage = (*Storage)(nil)

const defaultPrefix = "leave:sess:"

// Storage fiber.Storage sobre un cliente Redis. Todas las claves llevan prefix.
type Storage struct {
	redis   *redis.Client
	prefix  string
	timeout time.Duration
}

// New construye el almacenamiento a partir de una URL redis://.
func New(redisURL string) (*Storage, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redisstore: parse url: %w", err)
	}
	return NewWithClient(redis.NewClient(opts)), nil
}

// NewWithClient usa un cliente ya configurado.
func NewWithClient(client *redis.Client) *Storage {
	return &Storage{redis: client, prefix: defaultPrefix, timeout: 3 * time.Second}
}

// Ping verifica la conexión (arranque).
func (s *Storage) Ping(ctx context.Context) error {
	return s.redis.Ping(ctx).Err()
}

func (s *Storage) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

// Get devuelve nil, nil si la clave no existe.
func (s *Storage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	ctx, cancel := s.ctx()
	defer cancel()
	val, err := s.redis.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return val, nil
}

// Set guarda val; exp 0 = sin expiración.
func (s *Storage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	ctx, cancel := s.ctx()
	defer cancel()
	return s.redis.Set(ctx, s.prefix+key, val, exp).Err()
}

func (s *Storage) Delete(key string) error {
	if key == "" {
		return nil
	}
	ctx, cancel := s.ctx()
	defer cancel()
	return s.redis.Del(ctx, s.prefix+key).Err()
}

// Reset borra solo las claves con el prefijo propio.
func (s *Storage) Reset() error {
	ctx, cancel := s.ctx()
	defer cancel()
	iter := s.redis.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.redis.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (s *Storage) Close() error {
	return s.redis.Close()
}
