package models

import (
	"time"
)

// WeekTeamStat is the computed-power cache: one row per team per week with
// per-category z-scores, total z, and the actual result score. TeamID is the
// provider id (0 = league average row). The cache is best-effort and is
// rebuilt from the raw weekly stats whenever it is missing or a refresh is
// forced.
type WeekTeamStat struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	LeagueID int `gorm:"index;uniqueIndex:uq_week_team_stats" json:"league_id"`
	Year     int `gorm:"index;uniqueIndex:uq_week_team_stats" json:"year"`
	Week     int `gorm:"index;uniqueIndex:uq_week_team_stats" json:"week"`

	TeamID          int    `gorm:"index;uniqueIndex:uq_week_team_stats" json:"team_id"`
	TeamName        string `gorm:"size:255" json:"team_name"`
	IsLeagueAverage bool   `gorm:"default:false" json:"is_league_average"`

	// Actual weekly category win score in [0,1]; nil when unknown.
	ResultScore *float64 `json:"result_score"`

	TotalZ float64 `json:"total_z"`

	FGZ      float64 `gorm:"column:fg_z" json:"fg_z"`
	FTZ      float64 `gorm:"column:ft_z" json:"ft_z"`
	ThreePMZ float64 `gorm:"column:three_pm_z" json:"three_pm_z"`
	RebZ     float64 `gorm:"column:reb_z" json:"reb_z"`
	AstZ     float64 `gorm:"column:ast_z" json:"ast_z"`
	StlZ     float64 `gorm:"column:stl_z" json:"stl_z"`
	BlkZ     float64 `gorm:"column:blk_z" json:"blk_z"`
	DDZ      float64 `gorm:"column:dd_z" json:"dd_z"`
	PtsZ     float64 `gorm:"column:pts_z" json:"pts_z"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (WeekTeamStat) TableName() string {
	return "week_team_stats"
}

func (w *WeekTeamStat) zField(c Category) *float64 {
	switch c {
	case CatFGPct:
		return &w.FGZ
	case CatFTPct:
		return &w.FTZ
	case CatThreePointers:
		return &w.ThreePMZ
	case CatRebounds:
		return &w.RebZ
	case CatAssists:
		return &w.AstZ
	case CatSteals:
		return &w.StlZ
	case CatBlocks:
		return &w.BlkZ
	case CatDoubleDoubles:
		return &w.DDZ
	case CatPoints:
		return &w.PtsZ
	}
	return nil
}

// ZScores returns the stored per-category z-scores.
func (w *WeekTeamStat) ZScores() map[Category]float64 {
	out := make(map[Category]float64, len(Categories))
	for _, c := range Categories {
		out[c] = *w.zField(c)
	}
	return out
}

// SetZScores stores per-category z-scores onto the row. Categories absent
// from the map are written as 0.
func (w *WeekTeamStat) SetZScores(z map[Category]float64) {
	for _, c := range Categories {
		*w.zField(c) = z[c]
	}
}
