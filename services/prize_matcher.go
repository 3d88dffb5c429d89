package services

import (
	"github.com/padraicob/lotto-backend/models"
)

// defaultPrizes is the fallback prize table used when a draw's stored
// tiers do not carry an amount for the classified tier. Jackpot falls
// back to the draw's own jackpot amount instead.
var defaultPrizes = map[string]int64{
	models.MatchFiveBonus:  5000,
	models.MatchFive:       500,
	models.MatchFourBonus:  50,
	models.MatchFour:       20,
	models.MatchThreeBonus: 10,
	models.MatchThree:      3,
	models.MatchTwoBonus:   2,
}

// PrizeMatcherService classifies a player's line against a game's
// winning numbers. It assumes the line was validated by the caller.
type PrizeMatcherService struct{}

// NewPrizeMatcherService creates a PrizeMatcherService.
func NewPrizeMatcherService() *PrizeMatcherService {
	return &PrizeMatcherService{}
}

// Match computes the matched standard numbers and bonus flag for the
// player's line, classifies the tier, and resolves the prize amount
// from the game's stored tiers with the built-in defaults as fallback.
func (m *PrizeMatcherService) Match(numbers []int, game *models.GameResult) models.CheckResult {
	winning := make(map[int]bool, len(game.Numbers))
	for _, n := range game.Numbers {
		winning[n] = true
	}

	matched := make([]int, 0, len(numbers))
	bonusMatch := false
	for _, n := range numbers {
		if winning[n] {
			matched = append(matched, n)
		}
		if n == game.Bonus {
			bonusMatch = true
		}
	}

	description := classifyTier(len(matched), bonusMatch)
	return models.CheckResult{
		MatchedNumbers:   matched,
		BonusMatch:       bonusMatch,
		PrizeAmount:      m.resolvePrize(description, game),
		MatchDescription: description,
	}
}

// classifyTier picks exactly one tier, highest first. Bonus-inclusive
// tiers take priority over their plain counterpart at the same match
// count; reordering these cases changes outcomes.
func classifyTier(matchCount int, bonusMatch bool) string {
	switch {
	case matchCount == 6:
		return models.MatchJackpot
	case matchCount == 5 && bonusMatch:
		return models.MatchFiveBonus
	case matchCount == 5:
		return models.MatchFive
	case matchCount == 4 && bonusMatch:
		return models.MatchFourBonus
	case matchCount == 4:
		return models.MatchFour
	case matchCount == 3 && bonusMatch:
		return models.MatchThreeBonus
	case matchCount == 3:
		return models.MatchThree
	case matchCount == 2 && bonusMatch:
		return models.MatchTwoBonus
	default:
		return models.MatchNone
	}
}

// resolvePrize looks the classified tier up in the game's stored tiers
// by exact label; absent or non-positive tier data falls back to the
// default table. Missing tier rows are expected for draws whose prize
// breakdown has not been ingested yet.
func (m *PrizeMatcherService) resolvePrize(description string, game *models.GameResult) int64 {
	if description == models.MatchNone {
		return 0
	}
	for _, tier := range game.PrizeTiers {
		if tier.Match == description && tier.Prize > 0 {
			return tier.Prize
		}
	}
	if description == models.MatchJackpot {
		return game.Jackpot
	}
	return defaultPrizes[description]
}
