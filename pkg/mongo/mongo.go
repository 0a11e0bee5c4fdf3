package mongo

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ErrNotConnected is returned by Ping when no client is open.
var ErrNotConnected = errors.New("mongo: not connected")

// Client owns the single *mongo.Client of the process.
// It is safe for concurrent use; the driver client itself is shared by all requests.
type Client struct {
	cfg Config

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
}

// New creates an unconnected Client. Call Connect (or Database) to open it.
func New(cfg Config) *Client {
	return &Client{cfg: cfg}
}

// Connect opens the connection if it is not open yet and returns the database.
// Callers racing on the first connection wait for it instead of dialing again.
func (c *Client) Connect(ctx context.Context) (*mongo.Database, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.connectTimeout())
	defer cancel()

	opts := options.Client().
		ApplyURI(c.cfg.ConnectionURI()).
		SetServerSelectionTimeout(c.cfg.connectTimeout()).
		SetRetryWrites(false).
		SetRetryReads(false)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	c.client = client
	c.db = client.Database(c.cfg.DatabaseName())
	return c.db, nil
}

// Database returns the open database, connecting lazily.
func (c *Client) Database(ctx context.Context) (*mongo.Database, error) {
	return c.Connect(ctx)
}

// Ping checks that the deployment is reachable right now.
func (c *Client) Ping(ctx context.Context) error {
	c.mu.Lock()
	client := c.client
	c.mu.Unlock()

	if client == nil {
		return ErrNotConnected
	}
	return client.Ping(ctx, readpref.Primary())
}

// Close disconnects and resets the handle so a later Connect starts fresh.
func (c *Client) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return nil
	}

	err := c.client.Disconnect(ctx)
	c.client = nil
	c.db = nil
	if err != nil {
		return fmt.Errorf("mongo disconnect: %w", err)
	}
	return nil
}
