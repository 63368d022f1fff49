package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrInvalidPromotion", ErrInvalidPromotion, ErrInvalidPromotion},
		{"ErrGameOver", ErrGameOver, ErrGameOver},
		{"ErrMissingKing", ErrMissingKing, ErrMissingKing},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrOracleMismatch", ErrOracleMismatch, ErrOracleMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies no two sentinels match each other.
func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{
		ErrInvalidFEN, ErrInvalidSquare, ErrIllegalMove, ErrInvalidPromotion,
		ErrGameOver, ErrMissingKing, ErrInvalidConfig, ErrOracleMismatch,
	}
	for i := range all {
		for j := range all {
			if i != j && errors.Is(all[i], all[j]) {
				t.Errorf("errors.Is(%v, %v) = true, want false", all[i], all[j])
			}
		}
	}
}

// TestFENError_Error verifies the error message format
func TestFENError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *FENError
		contains []string
	}{
		{
			name: "full context",
			err: &FENError{
				Err:   ErrInvalidFEN,
				Field: "castling",
				Value: "KX",
				Msg:   "unknown letter X",
			},
			contains: []string{"castling", "KX", "unknown letter", "invalid FEN"},
		},
		{
			name:     "field only",
			err:      &FENError{Err: ErrInvalidFEN, Field: "turn"},
			contains: []string{"field turn", "invalid FEN"},
		},
		{
			name:     "no context",
			err:      &FENError{Err: ErrInvalidFEN},
			contains: []string{"invalid FEN string"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("FENError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestFENError_As verifies that errors.As works through extra wrapping
func TestFENError_As(t *testing.T) {
	fenErr := &FENError{Err: ErrInvalidFEN, Field: "halfmove", Value: "-3"}
	wrapped := fmt.Errorf("loading position: %w", fenErr)

	var extracted *FENError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract FENError")
	}
	if extracted.Field != "halfmove" {
		t.Errorf("extracted.Field = %q, want %q", extracted.Field, "halfmove")
	}
	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

// TestMoveError_Error verifies MoveError formatting and unwrapping
func TestMoveError_Error(t *testing.T) {
	err := &MoveError{Err: ErrIllegalMove, MoveText: "e2e5", Ply: 3}

	msg := err.Error()
	for _, s := range []string{"ply 3", "e2e5", "illegal move"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(err, ErrIllegalMove) {
		t.Error("errors.Is(err, ErrIllegalMove) = false, want true")
	}
	if errors.Unwrap(err) != ErrIllegalMove {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), ErrIllegalMove)
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrMissingKing, "checking white king")

	if !errors.Is(wrapped, ErrMissingKing) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "checking white king") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "move %d of %s", 15, "line")

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "move 15 of line") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
