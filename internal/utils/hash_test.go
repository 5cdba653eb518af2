// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/json"
	"sync"
	"testing"

	"github.com/MKhiriev/go-vault-tasks/models"
)

const testHashKey = "test-secret-key"

func TestHasher_MatchesDirectHMAC(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("test-data")

	sum1 := h.Hash(data)
	sum2 := h.Hash(data)
	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(data)
	if !bytes.Equal(sum1, mac.Sum(nil)) {
		t.Fatalf("unexpected hash value %x", sum1)
	}
}

func TestHasher_TaskPayload(t *testing.T) {
	h := NewHasher(testHashKey)
	tasks := []models.VaultTaskChange{{ID: "t1", Status: models.Completed, Version: 1}}

	payload, err := json.Marshal(tasks)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	digest := h.HashHex(payload)
	if len(digest) != sha256.Size*2 {
		t.Errorf("expected %d hex chars, got %d", sha256.Size*2, len(digest))
	}
	if !h.Equal(payload, digest) {
		t.Error("Equal must accept its own digest")
	}
}

func TestHasher_EqualRejects(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("payload")

	tests := []struct {
		name   string
		digest string
	}{
		{"empty", ""},
		{"not hex", "zz"},
		{"other data", h.HashHex([]byte("other"))},
		{"other key", NewHasher("other-key").HashHex(data)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if h.Equal(data, tt.digest) {
				t.Errorf("expected digest %q to be rejected", tt.digest)
			}
		})
	}
}

func TestHasher_ConcurrentUse(t *testing.T) {
	h := NewHasher(testHashKey)
	want := h.HashHex([]byte("same"))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := h.HashHex([]byte("same")); got != want {
				t.Errorf("concurrent hash mismatch: %s != %s", got, want)
			}
		}()
	}
	wg.Wait()
}
