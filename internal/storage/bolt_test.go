package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestBoltKVPutGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.bolt")
	kv, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("open bolt: %v", err)
	}
	ctx := context.Background()

	if _, err := kv.Get(ctx, "questBoardData"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get missing key err=%v, want ErrNotFound", err)
	}
	if err := kv.Put(ctx, "questBoardData", []byte(`{"tasks":[]}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("reopen bolt: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get(ctx, "questBoardData")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if string(got) != `{"tasks":[]}` {
		t.Fatalf("value=%s", got)
	}
}

func TestBoltKVRejectsEmptyKey(t *testing.T) {
	kv, err := OpenBolt(filepath.Join(t.TempDir(), "board.bolt"))
	if err != nil {
		t.Fatalf("open bolt: %v", err)
	}
	defer kv.Close()

	if err := kv.Put(context.Background(), "  ", []byte("x")); err == nil {
		t.Fatalf("expected error for empty key")
	}
}

func TestBoltKVCanceledContext(t *testing.T) {
	kv, err := OpenBolt(filepath.Join(t.TempDir(), "board.bolt"))
	if err != nil {
		t.Fatalf("open bolt: %v", err)
	}
	defer kv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := kv.Get(ctx, "k"); !errors.Is(err, context.Canceled) {
		t.Fatalf("Get err=%v, want context.Canceled", err)
	}
}
