package constant_test

import (
	"testing"

	"github.com/muhammadheryan/inventory-ledger/constant"
)

func TestBucketType_Valid(t *testing.T) {
	for _, b := range constant.BucketTypes {
		if !b.Valid() {
			t.Fatalf("bucket %q should be valid", b)
		}
	}

	invalid := []constant.BucketType{"", "backorder", "Available", "quality_control"}
	for _, b := range invalid {
		if b.Valid() {
			t.Fatalf("bucket %q should be invalid", b)
		}
	}
}

func TestBucketTypes_Closed(t *testing.T) {
	if len(constant.BucketTypes) != 7 {
		t.Fatalf("bucket set size = %d, want 7", len(constant.BucketTypes))
	}
	seen := make(map[constant.BucketType]struct{}, len(constant.BucketTypes))
	for _, b := range constant.BucketTypes {
		if _, dup := seen[b]; dup {
			t.Fatalf("bucket %q listed twice", b)
		}
		seen[b] = struct{}{}
	}
}
