package models

import "time"

// Game identifies one of the three number games drawn together each
// draw night.
type Game string

const (
	GameMain    Game = "main"
	GamePlusOne Game = "plus_one"
	GamePlusTwo Game = "plus_two"
)

// Match descriptions are a closed set shared by stored prize tiers and
// the number checker.
const (
	MatchJackpot    = "Jackpot"
	MatchFiveBonus  = "Match 5 + Bonus"
	MatchFive       = "Match 5"
	MatchFourBonus  = "Match 4 + Bonus"
	MatchFour       = "Match 4"
	MatchThreeBonus = "Match 3 + Bonus"
	MatchThree      = "Match 3"
	MatchTwoBonus   = "Match 2 + Bonus"
	MatchNone       = "No Prize"
)

// DrawResult is one draw night's document. The _id is the civil draw
// date formatted as yyyy-MM-dd; the same string appears in URLs and
// must round-trip through parsing unchanged.
type DrawResult struct {
	ID        string     `json:"id" bson:"_id"`
	DrawAt    time.Time  `json:"draw_at" bson:"draw_at"`
	Main      GameResult `json:"main" bson:"main"`
	PlusOne   GameResult `json:"plus_one" bson:"plus_one"`
	PlusTwo   GameResult `json:"plus_two" bson:"plus_two"`
	Raffle    Raffle     `json:"raffle" bson:"raffle"`
	CreatedAt time.Time  `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

// GameResult holds one game's winning line and prize breakdown.
type GameResult struct {
	Label        string      `json:"label" bson:"label"`
	Jackpot      int64       `json:"jackpot" bson:"jackpot"`
	Numbers      []int       `json:"numbers" bson:"numbers"`
	Bonus        int         `json:"bonus" bson:"bonus"`
	PrizeTiers   []PrizeTier `json:"prize_tiers" bson:"prize_tiers"`
	PrizeMessage string      `json:"prize_message,omitempty" bson:"prize_message,omitempty"`
}

// PrizeTier is one row of a game's prize breakdown table.
type PrizeTier struct {
	Match   string `json:"match" bson:"match"`
	Winners int    `json:"winners" bson:"winners"`
	Prize   int64  `json:"prize" bson:"prize"`
	Type    string `json:"type,omitempty" bson:"type,omitempty"`
}

// Raffle is the draw night's raffle outcome, independent of the number
// games.
type Raffle struct {
	WinningID string `json:"winning_id" bson:"winning_id"`
	Winners   int    `json:"winners" bson:"winners"`
	PrizeEach int64  `json:"prize_each" bson:"prize_each"`
	Message   string `json:"message,omitempty" bson:"message,omitempty"`
}

// GameResultFor returns the game slot selected by g, defaulting to the
// main game for unknown selectors.
func (d *DrawResult) GameResultFor(g Game) *GameResult {
	switch g {
	case GamePlusOne:
		return &d.PlusOne
	case GamePlusTwo:
		return &d.PlusTwo
	default:
		return &d.Main
	}
}

// ArchivePage is one page of the historical results listing.
type ArchivePage struct {
	Results    []DrawResult `json:"results"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalCount int64        `json:"total_count"`
	TotalPages int          `json:"total_pages"`
}
