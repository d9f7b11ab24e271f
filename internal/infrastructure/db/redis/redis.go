package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	dialTimeout = 5 * time.Second
	pingTimeout = 2 * time.Second
)

// Config is where the session store lives.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Connect opens a client for the session store. It fails unless the server answers a PING,
// so a bad address is caught at startup rather than on the first login.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: dialTimeout,
	})

	if err := ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// Pinger reports session store health to the readiness check.
type Pinger struct {
	client redis.Cmdable
}

func NewPinger(client redis.Cmdable) *Pinger {
	return &Pinger{client: client}
}

func (p *Pinger) Ping(ctx context.Context) error {
	return ping(ctx, p.client)
}

func ping(ctx context.Context, client redis.Cmdable) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return client.Ping(ctx).Err()
}
