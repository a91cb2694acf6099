package persistence

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestFileStore_PutGet(t *testing.T) {
	ctx := context.Background()
	fs, err := NewFileStore(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := fs.Put(ctx, "EleganceStaff", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := fs.Get(ctx, "EleganceStaff")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, []byte(`[{"id":1}]`)) {
		t.Fatalf("unexpected payload: %s", got)
	}
}

func TestFileStore_MissingKey(t *testing.T) {
	fs, err := NewFileStore(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if _, err := fs.Get(context.Background(), "appointments"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestFileStore_OverwriteReplacesWholeValue(t *testing.T) {
	ctx := context.Background()
	fs, err := NewFileStore(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := fs.Put(ctx, "k", []byte("first version, longer payload")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := fs.Put(ctx, "k", []byte("second")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := fs.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "second" {
		t.Fatalf("unexpected payload: %s", got)
	}
}
