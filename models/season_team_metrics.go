package models

import (
	"time"
)

// SeasonTeamMetric is the per-season aggregate fed by WeekTeamStat. One row
// per team per season, rebuilt on demand; never the source of truth.
type SeasonTeamMetric struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	LeagueID int `gorm:"index;uniqueIndex:uq_season_team_metrics" json:"league_id"`
	Year     int `gorm:"index;uniqueIndex:uq_season_team_metrics" json:"year"`

	TeamID   int    `gorm:"index;uniqueIndex:uq_season_team_metrics" json:"team_id"`
	TeamName string `gorm:"size:255" json:"team_name"`

	Weeks     int     `json:"weeks"`
	SumTotalZ float64 `json:"sum_total_z"`
	AvgTotalZ float64 `json:"avg_total_z"`

	ActualWins   float64 `json:"actual_wins"`
	ExpectedWins float64 `json:"expected_wins"`
	Luck         float64 `json:"luck"`
	AvgLuck      float64 `json:"avg_luck"`
	FraudScore   float64 `json:"fraud_score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SeasonTeamMetric) TableName() string {
	return "season_team_metrics"
}
