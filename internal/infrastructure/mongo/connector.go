package mongo

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connector lazily establishes one MongoDB client and keeps it for the life of
// the process. Failed attempts are not cached; the next caller tries again.
type Connector struct {
	timeout time.Duration
	dial    func(ctx context.Context) (*mongo.Client, error)

	mu     sync.Mutex
	client *mongo.Client
}

// NewConnector returns a Connector for uri. Nothing is dialled until Client is called.
func NewConnector(uri string, timeout time.Duration) *Connector {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Connector{
		timeout: timeout,
		dial: func(ctx context.Context) (*mongo.Client, error) {
			clientOptions := options.Client().ApplyURI(uri).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
			return mongo.Connect(ctx, clientOptions)
		},
	}
}

// Client returns the cached client, connecting and pinging the primary on first use.
func (c *Connector) Client(ctx context.Context) (*mongo.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := c.dial(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "connect to mongodb")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "ping mongodb")
	}

	c.client = client
	return client, nil
}

// Ping checks the primary, connecting first if needed.
func (c *Connector) Ping(ctx context.Context) error {
	client, err := c.Client(ctx)
	if err != nil {
		return err
	}
	return client.Ping(ctx, readpref.Primary())
}

// Disconnect closes the cached client, if any.
func (c *Connector) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return nil
	}
	err := c.client.Disconnect(ctx)
	c.client = nil
	return err
}
