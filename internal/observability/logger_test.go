package observability

import (
	"context"
	"testing"
)

func TestWithFields(t *testing.T) {
	ctx := context.Background()

	ctx = WithFields(ctx, Field{Key: "member_id", Value: "abc"})
	ctx = WithFields(ctx, Field{Key: "level", Value: 3})

	fields := getObservabilityFields(ctx)
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Key != "member_id" || fields[0].Value != "abc" {
		t.Errorf("unexpected first field: %+v", fields[0])
	}
	if fields[1].Key != "level" || fields[1].Value != 3 {
		t.Errorf("unexpected second field: %+v", fields[1])
	}
}

func TestWithFieldsDoesNotMutateParent(t *testing.T) {
	parent := WithFields(context.Background(), Field{Key: "engine", Value: "commission"})

	_ = WithFields(parent, Field{Key: "purchase_id", Value: "p1"})

	fields := getObservabilityFields(parent)
	if len(fields) != 1 {
		t.Fatalf("parent context gained fields: %d", len(fields))
	}
}

func TestGetObservabilityFieldsEmpty(t *testing.T) {
	if fields := getObservabilityFields(context.Background()); fields != nil {
		t.Errorf("expected nil fields on empty context, got %v", fields)
	}
}
