package database

import (
	"context"
	"errors"
	"sync"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// SpannerPool wraps a Spanner client and its bounded session pool.
type SpannerPool struct {
	client       *spanner.Client
	target       Target
	queryTimeout time.Duration

	closeOnce sync.Once
}

// OpenSpanner creates a Spanner client for target.
func OpenSpanner(ctx context.Context, target Target, opts Options) (*SpannerPool, error) {
	if target.Driver != DriverSpanner {
		return nil, &ConnectionError{Op: "open", Target: target.Redacted(), Err: errors.New("not a spanner target")}
	}
	opts = opts.withDefaults()

	cfg := spanner.ClientConfig{SessionPoolConfig: spanner.DefaultSessionPoolConfig}
	cfg.SessionPoolConfig.MaxOpened = uint64(opts.MaxConnections)
	cfg.SessionPoolConfig.MinOpened = 0

	client, err := spanner.NewClientWithConfig(ctx, target.Database, cfg, ClientOptions(target)...)
	if err != nil {
		return nil, &ConnectionError{Op: "open", Target: target.Redacted(), Err: err}
	}

	pool := &SpannerPool{client: client, target: target, queryTimeout: opts.QueryTimeout}

	if opts.EagerCheck {
		pingCtx, cancel := context.WithTimeout(ctx, startupPingTimeout)
		defer cancel()

		if err := pool.Ping(pingCtx); err != nil {
			client.Close()
			return nil, &ConnectionError{Op: "connect", Target: target.Redacted(), Err: err}
		}
	}

	return pool, nil
}

// ClientOptions returns the endpoint and credential options for target.
// The admin client used for DDL shares them.
func ClientOptions(target Target) []option.ClientOption {
	var opts []option.ClientOption
	if target.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(target.Endpoint))
	}
	if target.Plaintext {
		opts = append(opts,
			option.WithoutAuthentication(),
			option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
		)
	}
	return opts
}

// Client returns the underlying Spanner client.
func (p *SpannerPool) Client() *spanner.Client {
	return p.client
}

// Target returns the parsed target.
func (p *SpannerPool) Target() Target {
	return p.target
}

// WithClient runs fn against the client. As with Pool.WithConn, caller cancellation does not
// abort a query once it starts; QueryTimeout bounds it when set.
func (p *SpannerPool) WithClient(ctx context.Context, fn func(ctx context.Context, client *spanner.Client) error) error {
	if p == nil || p.client == nil {
		return ErrPoolClosed
	}

	queryCtx, cancel := detach(ctx, p.queryTimeout)
	defer cancel()

	return fn(queryCtx, p.client)
}

// Ping runs a trivial single-use read.
func (p *SpannerPool) Ping(ctx context.Context) error {
	if p == nil || p.client == nil {
		return ErrPoolClosed
	}

	iter := p.client.Single().Query(ctx, spanner.Statement{SQL: "SELECT 1"})
	defer iter.Stop()

	if _, err := iter.Next(); err != nil && !errors.Is(err, iterator.Done) {
		return err
	}
	return nil
}

// Close releases all sessions. It is idempotent and safe on a nil pool.
func (p *SpannerPool) Close() error {
	if p == nil || p.client == nil {
		return nil
	}
	p.closeOnce.Do(p.client.Close)
	return nil
}
