package root

import (
	"context"
	"errors"
	"strconv"

	"questboard/internal/engine"
	"questboard/internal/storage"
)

func openStore(ctx context.Context) (storage.KV, error) {
	path, err := storage.ResolveDBPath(cfg.Backend, cfg.DBPath)
	if err != nil {
		return nil, err
	}
	return storage.OpenKV(ctx, cfg.Backend, path)
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	kv, err := openStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = kv.Close()
	}
	svc, err := engine.NewService(ctx, kv, engine.WithStateKey(cfg.StateKey))
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}

// idArg validates a single integer id argument.
func idArg(args []string) error {
	if len(args) != 1 {
		return errors.New("id is required")
	}
	if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
		return errors.New("id must be an integer")
	}
	return nil
}

func parseID(args []string) int64 {
	id, _ := strconv.ParseInt(args[0], 10, 64)
	return id
}
