package redissvc

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rogerio-castellano/inventory-dashboard/internal/config"
)

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	rdb, err := Connect(context.Background(), config.RedisConfig{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer rdb.Close()

	if err := rdb.Set(context.Background(), "k", "v", 0).Err(); err != nil {
		t.Errorf("Set failed: %v", err)
	}
}

func TestConnect_Disabled(t *testing.T) {
	rdb, err := Connect(context.Background(), config.RedisConfig{})
	if err != nil || rdb != nil {
		t.Errorf("expected nil client and no error, got %v, %v", rdb, err)
	}
}
