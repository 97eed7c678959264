package service_test

import (
	"testing"

	"github.com/colefield/ripple/internal/service"
)

func TestTokenBucket_AllowsUpToCapacity(t *testing.T) {
	// Effectively no refill during the test.
	tb := service.NewTokenBucket(0.001, 3)

	for i := 0; i < 3; i++ {
		if !tb.Allow("client") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if tb.Allow("client") {
		t.Fatal("request over capacity should be rejected")
	}
}

func TestTokenBucket_KeysAreIndependent(t *testing.T) {
	tb := service.NewTokenBucket(0.001, 1)

	if !tb.Allow("a") {
		t.Fatal("first request for key a should be allowed")
	}
	if tb.Allow("a") {
		t.Fatal("second request for key a should be rejected")
	}
	if !tb.Allow("b") {
		t.Fatal("key b has its own bucket and should be allowed")
	}
}
