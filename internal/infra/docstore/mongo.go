// Package docstore keeps contact inquiries in MongoDB.
package docstore

import (
	"context"
	"log/slog"

	"party-rental/internal/pkg/config"
	"party-rental/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, func(), error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout))
	if err != nil {
		return nil, nil, errs.Wrap(err, "connect to mongo")
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, errs.Wrap(err, "ping mongo")
	}

	cleanup := func() {
		if err := client.Disconnect(context.Background()); err != nil {
			slog.Warn("failed to disconnect mongo", "error", err.Error())
		}
	}
	return client.Database(cfg.Database), cleanup, nil
}
