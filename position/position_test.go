package position

import (
	"errors"
	"testing"
)

func TestNewSquareFromNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
		want     Square
		wantErr  error
	}{
		{
			name:     "ok a8 top left",
			notation: "a8",
			want:     A8,
		},
		{
			name:     "ok h1 bottom right",
			notation: "h1",
			want:     H1,
		},
		{
			name:     "ok e2",
			notation: "e2",
			want:     E2,
		},
		{
			name:     "ok e4",
			notation: "e4",
			want:     E4,
		},
		{
			name:     "bad empty",
			notation: "",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad missing rank",
			notation: "a",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad missing file",
			notation: "4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad file out of range",
			notation: "m4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad rank too high",
			notation: "e9",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad rank zero",
			notation: "e0",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad extra characters",
			notation: "e2e4",
			wantErr:  ErrInvalidNotation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewSquareFromNotation(tt.notation)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestNotationRoundTrip(t *testing.T) {
	t.Parallel()
	for s := Square(0); s < TotalSquares; s++ {
		got, err := NewSquareFromNotation(s.Notation())
		if err != nil {
			t.Fatalf("unexpected error for %d: %v", s, err)
		}
		if got != s {
			t.Errorf("unexpected round trip: got=%d want=%d", got, s)
		}
	}
}

func TestSquareComponents(t *testing.T) {
	t.Parallel()
	tests := []struct {
		square Square
		file   Square
		row    Square
		rank   Square
	}{
		{square: A8, file: 0, row: 0, rank: 8},
		{square: H8, file: 7, row: 0, rank: 8},
		{square: E4, file: 4, row: 4, rank: 4},
		{square: A1, file: 0, row: 7, rank: 1},
		{square: H1, file: 7, row: 7, rank: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.square.Notation(), func(t *testing.T) {
			t.Parallel()
			if got := tt.square.File(); got != tt.file {
				t.Errorf("unexpected file: got=%d want=%d", got, tt.file)
			}
			if got := tt.square.Row(); got != tt.row {
				t.Errorf("unexpected row: got=%d want=%d", got, tt.row)
			}
			if got := tt.square.Rank(); got != tt.rank {
				t.Errorf("unexpected rank: got=%d want=%d", got, tt.rank)
			}
		})
	}
}
