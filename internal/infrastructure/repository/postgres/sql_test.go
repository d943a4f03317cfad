package postgres

import (
	"database/sql"
	"errors"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatal("expected true for sql.ErrNoRows")
	}
	if isNotFound(errors.New("pq: connection refused")) {
		t.Fatal("expected false for unrelated error")
	}
}

func TestNullStringToPtr(t *testing.T) {
	if got := nullStringToPtr(sql.NullString{}); got != nil {
		t.Fatalf("expected nil for null, got %v", *got)
	}
	got := nullStringToPtr(sql.NullString{String: "A", Valid: true})
	if got == nil || *got != "A" {
		t.Fatalf("unexpected pointer: %v", got)
	}
}

func TestNullInt64ToIntPtr(t *testing.T) {
	if got := nullInt64ToIntPtr(sql.NullInt64{}); got != nil {
		t.Fatalf("expected nil for null, got %v", *got)
	}
	got := nullInt64ToIntPtr(sql.NullInt64{Int64: 3, Valid: true})
	if got == nil || *got != 3 {
		t.Fatalf("unexpected pointer: %v", got)
	}
}

func TestEmptyToNilPtr(t *testing.T) {
	if got := emptyToNilPtr(""); got != nil {
		t.Fatalf("expected nil for empty string, got %v", *got)
	}
	got := emptyToNilPtr("arg")
	if got == nil || *got != "arg" {
		t.Fatalf("unexpected pointer: %v", got)
	}
}
