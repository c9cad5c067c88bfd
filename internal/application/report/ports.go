package report

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss la clave no está en el cache.
var ErrCacheMiss = errors.New("cache: clave no encontrada")

// Cache puerto de cache para el read-model de reportes (DIP: la implementación
// Redis vive en infraestructura).
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}
