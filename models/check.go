package models

import (
	"errors"
	"fmt"
)

// Validation sentinels for user-supplied number lines and date keys.
var (
	ErrInvalidNumberCount = errors.New("exactly 6 numbers are required")
	ErrNumberOutOfRange   = errors.New("numbers must be between 1 and 47")
	ErrDuplicateNumber    = errors.New("numbers must be distinct")
	ErrInvalidDateKey     = errors.New("date must be formatted as yyyy-MM-dd")
	ErrUnknownGame        = errors.New("unknown game selector")
)

// CheckRequest is a number-checker submission: which draw, which game,
// and the player's line.
type CheckRequest struct {
	Date    string `json:"date"`
	Game    Game   `json:"game"`
	Numbers []int  `json:"numbers"`
}

// Validate rejects malformed lines before they reach the matcher. The
// matcher itself assumes validated input.
func (r *CheckRequest) Validate() error {
	if err := ValidateNumbers(r.Numbers); err != nil {
		return err
	}
	switch r.Game {
	case "", GameMain, GamePlusOne, GamePlusTwo:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGame, r.Game)
	}
}

// ValidateNumbers enforces the 6-distinct-in-[1,47] rule for a user line.
func ValidateNumbers(numbers []int) error {
	if len(numbers) != 6 {
		return fmt.Errorf("%w, got %d", ErrInvalidNumberCount, len(numbers))
	}
	seen := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		if n < 1 || n > 47 {
			return fmt.Errorf("%w: %d", ErrNumberOutOfRange, n)
		}
		if seen[n] {
			return fmt.Errorf("%w: %d appears twice", ErrDuplicateNumber, n)
		}
		seen[n] = true
	}
	return nil
}

// CheckResult is the outcome of one prize-match computation. It has no
// identity beyond the response it is returned in.
type CheckResult struct {
	MatchedNumbers   []int  `json:"matched_numbers"`
	BonusMatch       bool   `json:"bonus_match"`
	PrizeAmount      int64  `json:"prize_amount"`
	MatchDescription string `json:"match_description"`
}
