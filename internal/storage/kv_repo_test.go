package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func newTestKV(t *testing.T) *SQLiteKV {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	kv := NewSQLiteKV(db)
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func TestKVRepoMissingKey(t *testing.T) {
	kv := newTestKV(t)
	if _, err := kv.Get(context.Background(), "questBoardData"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get missing key err=%v, want ErrNotFound", err)
	}
}

func TestKVRepoPutOverwrites(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	if err := kv.Put(ctx, "k", []byte(`{"v":1}`)); err != nil {
		t.Fatalf("put #1: %v", err)
	}
	if err := kv.Put(ctx, "k", []byte(`{"v":2}`)); err != nil {
		t.Fatalf("put #2: %v", err)
	}
	got, err := kv.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `{"v":2}` {
		t.Fatalf("value=%s, want {\"v\":2}", got)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	kv := newTestKV(t)
	if err := Migrate(context.Background(), kv.db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestOpenKVUnknownBackend(t *testing.T) {
	if _, err := OpenKV(context.Background(), "redis", filepath.Join(t.TempDir(), "x")); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestResolveDBPathOverride(t *testing.T) {
	got, err := ResolveDBPath(BackendSQLite, " /tmp/qb/../board.db ")
	if err != nil {
		t.Fatalf("ResolveDBPath: %v", err)
	}
	if got != "/tmp/board.db" {
		t.Fatalf("path=%q, want /tmp/board.db", got)
	}
}
