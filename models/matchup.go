package models

import (
	"time"
)

// Matchup is one scheduled head-to-head pairing for a week. A matchup is
// completed once a winner is declared or it is flagged as an explicit tie;
// weeks containing any uncompleted matchup are never aggregated.
type Matchup struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	LeagueID  int  `gorm:"not null;uniqueIndex:uq_matchups_league_season_week_matchup" json:"league_id"`
	Season    int  `gorm:"not null;uniqueIndex:uq_matchups_league_season_week_matchup" json:"season"`
	Week      int  `gorm:"not null;uniqueIndex:uq_matchups_league_season_week_matchup" json:"week"`
	MatchupID int  `gorm:"not null;uniqueIndex:uq_matchups_league_season_week_matchup" json:"matchup_id"`

	HomeTeamID   uint  `gorm:"not null" json:"home_team_id"`
	AwayTeamID   uint  `gorm:"not null" json:"away_team_id"`
	WinnerTeamID *uint `json:"winner_team_id"`
	Tie          bool  `gorm:"default:false" json:"tie"`

	IsPlayoffs     bool `gorm:"default:false" json:"is_playoffs"`
	IsConsolation  bool `gorm:"default:false" json:"is_consolation"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	HomeTeam   Team  `gorm:"foreignKey:HomeTeamID;references:ID" json:"home_team,omitempty"`
	AwayTeam   Team  `gorm:"foreignKey:AwayTeamID;references:ID" json:"away_team,omitempty"`
	WinnerTeam *Team `gorm:"foreignKey:WinnerTeamID;references:ID" json:"winner_team,omitempty"`
}

func (Matchup) TableName() string {
	return "matchups"
}

// Completed reports whether the matchup has a final outcome.
func (m *Matchup) Completed() bool {
	return m.WinnerTeamID != nil || m.Tie
}

// MatchupCategoryResult is the provider-native per-category outcome for one
// side of a matchup ("W"/"L"/"T"), with the raw scores when the provider
// exposed them.
type MatchupCategoryResult struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	LeagueID  int  `gorm:"not null;uniqueIndex:uq_matchup_cat_results" json:"league_id"`
	Season    int  `gorm:"not null;uniqueIndex:uq_matchup_cat_results" json:"season"`
	Week      int  `gorm:"not null;uniqueIndex:uq_matchup_cat_results" json:"week"`
	MatchupID int  `gorm:"not null;uniqueIndex:uq_matchup_cat_results" json:"matchup_id"`

	TeamID         uint `gorm:"not null;uniqueIndex:uq_matchup_cat_results" json:"team_id"`
	OpponentTeamID uint `gorm:"not null" json:"opponent_team_id"`

	Category Category `gorm:"size:8;not null;uniqueIndex:uq_matchup_cat_results" json:"category"`
	Result   string   `gorm:"size:1;not null" json:"result"`

	TeamScore *float64 `json:"team_score"`
	OppScore  *float64 `json:"opp_score"`

	CreatedAt time.Time `json:"created_at"`
}

func (MatchupCategoryResult) TableName() string {
	return "matchup_category_results"
}
