package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request CheckRequest
		wantErr error
	}{
		{
			name:    "valid main game line",
			request: CheckRequest{Date: "2024-01-06", Game: GameMain, Numbers: []int{1, 2, 3, 4, 5, 6}},
		},
		{
			name:    "empty game defaults to main",
			request: CheckRequest{Date: "2024-01-06", Numbers: []int{1, 12, 23, 34, 45, 47}},
		},
		{
			name:    "too few numbers",
			request: CheckRequest{Game: GameMain, Numbers: []int{1, 2, 3}},
			wantErr: ErrInvalidNumberCount,
		},
		{
			name:    "too many numbers",
			request: CheckRequest{Game: GameMain, Numbers: []int{1, 2, 3, 4, 5, 6, 7}},
			wantErr: ErrInvalidNumberCount,
		},
		{
			name:    "number above range",
			request: CheckRequest{Game: GameMain, Numbers: []int{1, 2, 3, 4, 5, 48}},
			wantErr: ErrNumberOutOfRange,
		},
		{
			name:    "zero is out of range",
			request: CheckRequest{Game: GameMain, Numbers: []int{0, 2, 3, 4, 5, 6}},
			wantErr: ErrNumberOutOfRange,
		},
		{
			name:    "negative number",
			request: CheckRequest{Game: GameMain, Numbers: []int{-1, 2, 3, 4, 5, 6}},
			wantErr: ErrNumberOutOfRange,
		},
		{
			name:    "duplicate numbers",
			request: CheckRequest{Game: GameMain, Numbers: []int{1, 2, 3, 4, 5, 5}},
			wantErr: ErrDuplicateNumber,
		},
		{
			name:    "unknown game selector",
			request: CheckRequest{Game: "plus_three", Numbers: []int{1, 2, 3, 4, 5, 6}},
			wantErr: ErrUnknownGame,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestGameResultFor(t *testing.T) {
	draw := &DrawResult{
		Main:    GameResult{Label: "Lotto"},
		PlusOne: GameResult{Label: "Lotto Plus 1"},
		PlusTwo: GameResult{Label: "Lotto Plus 2"},
	}

	assert.Equal(t, "Lotto", draw.GameResultFor(GameMain).Label)
	assert.Equal(t, "Lotto Plus 1", draw.GameResultFor(GamePlusOne).Label)
	assert.Equal(t, "Lotto Plus 2", draw.GameResultFor(GamePlusTwo).Label)
	assert.Equal(t, "Lotto", draw.GameResultFor("").Label)
}

func TestDrawStateString(t *testing.T) {
	assert.Equal(t, "available", StateAvailable.String())
	assert.Equal(t, "pending", StatePending.String())
	assert.Equal(t, "not_found", StateNotFound.String())
}
