package models

// API payload structs. Field names follow the frontend contract: teamId,
// totalZ, perCategoryZ, allPlay, luckIndex, etc. Per-category maps are keyed
// by display name ("FG%") or z-key ("FG%_z").

// TeamWeekStats is one team's raw stats + z-scores for a week.
type TeamWeekStats struct {
	TeamID          int                `json:"teamId"`
	TeamName        string             `json:"teamName"`
	IsLeagueAverage bool               `json:"isLeagueAverage"`
	Stats           map[string]float64 `json:"stats"`
	ZScores         map[string]float64 `json:"zscores"`
}

// WeekZScoresPayload is the response for a single week's z-scores.
type WeekZScoresPayload struct {
	Year  int             `json:"year"`
	Week  int             `json:"week"`
	Teams []TeamWeekStats `json:"teams"`
}

// SeasonWeekZScores is one week's entry inside a full-season z-score payload.
type SeasonWeekZScores struct {
	Week  int             `json:"week"`
	Teams []TeamWeekStats `json:"teams"`
}

// SeasonZScoresPayload is the response for every week of a season.
type SeasonZScoresPayload struct {
	Year  int                 `json:"year"`
	Weeks []SeasonWeekZScores `json:"weeks"`
}

// AllPlayPayload is a team's hypothetical round-robin record for one week.
type AllPlayPayload struct {
	Wins   int     `json:"wins"`
	Losses int     `json:"losses"`
	Ties   int     `json:"ties"`
	WinPct float64 `json:"winPct"`
}

// TeamWeekPower is one team's power-ranking entry for a week.
type TeamWeekPower struct {
	TeamID          int                `json:"teamId"`
	TeamName        string             `json:"teamName"`
	IsLeagueAverage bool               `json:"isLeagueAverage"`
	Rank            int                `json:"rank"`
	TotalZ          float64            `json:"totalZ"`
	PerCategoryZ    map[string]float64 `json:"perCategoryZ"`
	PerCategoryRank map[string]*int    `json:"perCategoryRank"`
	AllPlay         AllPlayPayload     `json:"allPlay"`
	LuckIndex       float64            `json:"luckIndex"`
	Owners          string             `json:"owners,omitempty"`
}

// WeekPowerPayload is the response for a single week's power rankings.
type WeekPowerPayload struct {
	Year  int             `json:"year"`
	Week  int             `json:"week"`
	Teams []TeamWeekPower `json:"teams"`
}

// TeamSeasonPower is one team's season-long power summary.
type TeamSeasonPower struct {
	TeamID                int                `json:"teamId"`
	TeamName              string             `json:"teamName"`
	Rank                  int                `json:"rank"`
	Weeks                 int                `json:"weeks"`
	AvgTotalZ             float64            `json:"avgTotalZ"`
	AvgZ                  float64            `json:"avgZ"` // frontend alias for AvgTotalZ
	SumTotalZ             float64            `json:"sumTotalZ"`
	ActualWins            float64            `json:"actualWins"`
	ExpectedWins          float64            `json:"expectedWins"`
	Luck                  float64            `json:"luck"`
	AvgLuck               float64            `json:"avgLuck"`
	FraudScore            float64            `json:"fraudScore"`
	PerCategoryZSeason    map[string]float64 `json:"perCategoryZSeason"`
	PerCategoryRankSeason map[string]int     `json:"perCategoryRankSeason"`
	Owners                string             `json:"owners,omitempty"`
}

// SeasonPowerPayload is the response for season power rankings.
type SeasonPowerPayload struct {
	Year  int               `json:"year"`
	Teams []TeamSeasonPower `json:"teams"`
}

// TeamHistoryEntry is one week of a team's history chart.
type TeamHistoryEntry struct {
	Week                 int                `json:"week"`
	Rank                 int                `json:"rank"`
	TotalZ               float64            `json:"totalZ"`
	CumulativeTotalZ     float64            `json:"cumulativeTotalZ"`
	LeagueAverageTotalZ  float64            `json:"leagueAverageTotalZ"`
	ZScores              map[string]float64 `json:"zscores"`
	LeagueAverageZScores map[string]float64 `json:"leagueAverageZscores"`
}

// TeamHistoryPayload is the response for one team's week-by-week history.
type TeamHistoryPayload struct {
	Year     int                `json:"year"`
	TeamID   int                `json:"teamId"`
	TeamName string             `json:"teamName"`
	History  []TeamHistoryEntry `json:"history"`
}

// OpponentCatRecord is one category's head-to-head record vs an opponent.
type OpponentCatRecord struct {
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	Ties    int     `json:"ties"`
	WinPct  float64 `json:"winPct"`
	AvgDiff float64 `json:"avgDiff"`
}

// OpponentOverallRecord is the matchup-level record vs an opponent.
type OpponentOverallRecord struct {
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	Ties     int     `json:"ties"`
	Matchups int     `json:"matchups"`
	WinPct   float64 `json:"winPct"`
}

// OpponentMatrixRow is one ordered (team, opponent) pair's aggregate record.
type OpponentMatrixRow struct {
	TeamID         int                           `json:"teamId"`
	OpponentTeamID int                           `json:"opponentTeamId"`
	OpponentName   string                        `json:"opponentName"`
	Matchups       int                           `json:"matchups"`
	Overall        OpponentOverallRecord         `json:"overall"`
	Categories     map[string]OpponentCatRecord  `json:"categories"`
}

// OpponentMatrixPayload is the response for the opponent matrix.
type OpponentMatrixPayload struct {
	StartYear    int                 `json:"startYear"`
	EndYear      int                 `json:"endYear"`
	TeamID       *int                `json:"teamId,omitempty"`
	OwnerEraOnly bool                `json:"ownerEraOnly"`
	Rows         []OpponentMatrixRow `json:"rows"`
}

// TeamStanding is one team's row in the standings table.
type TeamStanding struct {
	TeamID         int    `json:"teamId"`
	TeamName       string `json:"teamName"`
	Owners         string `json:"owners,omitempty"`
	Rank           int    `json:"rank"`
	MatchupWins    int    `json:"matchupWins"`
	MatchupLosses  int    `json:"matchupLosses"`
	MatchupTies    int    `json:"matchupTies"`
	MatchupRecord  string `json:"matchupRecord"`
	CategoryWins   int    `json:"categoryWins"`
	CategoryLosses int    `json:"categoryLosses"`
	CategoryTies   int    `json:"categoryTies"`
	CategoryRecord string `json:"categoryRecord"`
}

// LeaguePayload is the response for the league overview.
type LeaguePayload struct {
	LeagueID               int            `json:"leagueId"`
	LeagueName             string         `json:"leagueName"`
	Year                   int            `json:"year"`
	TeamCount              int            `json:"teamCount"`
	CurrentWeek            int            `json:"currentWeek"`
	InProgressWeek         int            `json:"inProgressWeek"`
	WeeksAvailable         []int          `json:"weeksAvailable"`
	AdvancedStatsAvailable bool           `json:"advancedStatsAvailable"`
	CompletedWeeks         []int          `json:"completedWeeks"`
	Teams                  []TeamStanding `json:"teams"`
}

// MissingTeamWeek identifies a (week, team) pair expected to have weekly
// stats but missing them.
type MissingTeamWeek struct {
	Week   int `json:"week"`
	TeamID int `json:"teamId"`
}

// IntegrityReport summarizes weekly-stat coverage for completed weeks.
type IntegrityReport struct {
	Missing       []MissingTeamWeek `json:"missing"`
	ExpectedCount int               `json:"expectedCount"`
	PresentCount  int               `json:"presentCount"`
}

// LeagueHealthPayload is the response for the league health check.
type LeagueHealthPayload struct {
	OK                   bool            `json:"ok"`
	Year                 int             `json:"year"`
	WeeksAvailable       []int           `json:"weeksAvailable"`
	CompletedWeeks       []int           `json:"completedWeeks"`
	CompletedThroughWeek int             `json:"completedThroughWeek"`
	InProgressWeek       int             `json:"inProgressWeek"`
	Integrity            IntegrityReport `json:"integrity"`
}

// MetaPayload is the response for league metadata.
type MetaPayload struct {
	Years       []int  `json:"years"`
	Year        int    `json:"year"`
	Weeks       []int  `json:"weeks"`
	CurrentWeek int    `json:"currentWeek"`
	LeagueName  string `json:"leagueName"`
	TeamCount   int    `json:"teamCount"`
}
