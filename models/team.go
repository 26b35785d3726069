package models

import (
	"time"
)

// Team is one fantasy franchise for one season. FantasyTeamID is the
// provider-stable identifier (1..n) that stays constant across seasons, while
// ID is the internal row key.
type Team struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	LeagueID      int       `gorm:"not null;index;uniqueIndex:uq_teams_league_season_team" json:"league_id"`
	Season        int       `gorm:"not null;uniqueIndex:uq_teams_league_season_team" json:"season"`
	FantasyTeamID int       `gorm:"not null;uniqueIndex:uq_teams_league_season_team" json:"fantasy_team_id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Abbrev        string    `gorm:"size:16" json:"abbrev"`
	Owner         string    `gorm:"size:64" json:"owner"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Team) TableName() string {
	return "teams"
}

// TeamWeeklyStat holds one team's raw aggregate totals for one matchup week.
// FGPct/FTPct may be supplied by the provider; when nil they are derived from
// makes/attempts, and stay nil when there were no attempts.
type TeamWeeklyStat struct {
	ID       uint `gorm:"primaryKey;autoIncrement" json:"id"`
	LeagueID int  `gorm:"not null;uniqueIndex:uq_weekly_league_season_week_team" json:"league_id"`
	Season   int  `gorm:"not null;uniqueIndex:uq_weekly_league_season_week_team" json:"season"`
	Week     int  `gorm:"not null;uniqueIndex:uq_weekly_league_season_week_team" json:"week"`
	TeamID   uint `gorm:"not null;uniqueIndex:uq_weekly_league_season_week_team;constraint:OnDelete:CASCADE" json:"team_id"`

	GamesPlayed int `gorm:"default:0" json:"games_played"`

	FGM     int `gorm:"default:0" json:"fgm"`
	FGA     int `gorm:"default:0" json:"fga"`
	FTM     int `gorm:"default:0" json:"ftm"`
	FTA     int `gorm:"default:0" json:"fta"`
	ThreePM int `gorm:"default:0" json:"three_pm"`
	Reb     int `gorm:"default:0" json:"reb"`
	Ast     int `gorm:"default:0" json:"ast"`
	Stl     int `gorm:"default:0" json:"stl"`
	Blk     int `gorm:"default:0" json:"blk"`
	DD      int `gorm:"default:0" json:"dd"`
	Pts     int `gorm:"default:0" json:"pts"`

	FGPct *float64 `json:"fg_pct"`
	FTPct *float64 `json:"ft_pct"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Team Team `gorm:"foreignKey:TeamID;references:ID" json:"team,omitempty"`
}

func (TeamWeeklyStat) TableName() string {
	return "team_weekly_stats"
}

// FieldGoalPct returns the week's FG%, preferring the stored value over the
// derived one. ok is false when no attempts were recorded.
func (s *TeamWeeklyStat) FieldGoalPct() (float64, bool) {
	if s.FGPct != nil {
		return *s.FGPct, true
	}
	if s.FGA > 0 {
		return float64(s.FGM) / float64(s.FGA), true
	}
	return 0, false
}

// FreeThrowPct returns the week's FT%, preferring the stored value over the
// derived one. ok is false when no attempts were recorded.
func (s *TeamWeeklyStat) FreeThrowPct() (float64, bool) {
	if s.FTPct != nil {
		return *s.FTPct, true
	}
	if s.FTA > 0 {
		return float64(s.FTM) / float64(s.FTA), true
	}
	return 0, false
}

// CategoryValues converts the row into per-category raw values. Percentage
// categories are absent when attempts are zero; counting categories are
// always present.
func (s *TeamWeeklyStat) CategoryValues() CategoryValues {
	vals := CategoryValues{
		CatThreePointers: float64(s.ThreePM),
		CatRebounds:      float64(s.Reb),
		CatAssists:       float64(s.Ast),
		CatSteals:        float64(s.Stl),
		CatBlocks:        float64(s.Blk),
		CatDoubleDoubles: float64(s.DD),
		CatPoints:        float64(s.Pts),
	}
	if pct, ok := s.FieldGoalPct(); ok {
		vals[CatFGPct] = pct
	}
	if pct, ok := s.FreeThrowPct(); ok {
		vals[CatFTPct] = pct
	}
	return vals
}
