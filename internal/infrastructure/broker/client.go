package broker

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type Client struct {
	redis  *redis.Client
	stream string
}

func NewClient(cfg Config) (*Client, error) {
	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &Client{
		redis:  rdb,
		stream: cfg.StreamName,
	}, nil
}

func (c *Client) Redis() *redis.Client {
	return c.redis
}

func (c *Client) Close() error {
	return c.redis.Close()
}
