package models

import (
	"time"
)

// TeamHistoryAgg is the precomputed team-history row (one per team per week):
// weekly rank, total z, running total, and the league-average mirror for the
// same week. TeamID is the provider id.
type TeamHistoryAgg struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	LeagueID int `gorm:"index;uniqueIndex:uq_team_history_agg" json:"league_id"`
	Year     int `gorm:"index;uniqueIndex:uq_team_history_agg" json:"year"`
	Week     int `gorm:"index;uniqueIndex:uq_team_history_agg" json:"week"`

	TeamID   int    `gorm:"index;uniqueIndex:uq_team_history_agg" json:"team_id"`
	TeamName string `gorm:"size:255" json:"team_name"`

	Rank int `json:"rank"`

	TotalZ           float64 `json:"total_z"`
	CumulativeTotalZ float64 `json:"cumulative_total_z"`

	LeagueAverageTotalZ float64 `json:"league_average_total_z"`

	FGZ      float64 `gorm:"column:fg_z" json:"fg_z"`
	FTZ      float64 `gorm:"column:ft_z" json:"ft_z"`
	ThreePMZ float64 `gorm:"column:three_pm_z" json:"three_pm_z"`
	RebZ     float64 `gorm:"column:reb_z" json:"reb_z"`
	AstZ     float64 `gorm:"column:ast_z" json:"ast_z"`
	StlZ     float64 `gorm:"column:stl_z" json:"stl_z"`
	BlkZ     float64 `gorm:"column:blk_z" json:"blk_z"`
	DDZ      float64 `gorm:"column:dd_z" json:"dd_z"`
	PtsZ     float64 `gorm:"column:pts_z" json:"pts_z"`

	LeagueFGZ      float64 `gorm:"column:league_fg_z" json:"league_fg_z"`
	LeagueFTZ      float64 `gorm:"column:league_ft_z" json:"league_ft_z"`
	LeagueThreePMZ float64 `gorm:"column:league_three_pm_z" json:"league_three_pm_z"`
	LeagueRebZ     float64 `gorm:"column:league_reb_z" json:"league_reb_z"`
	LeagueAstZ     float64 `gorm:"column:league_ast_z" json:"league_ast_z"`
	LeagueStlZ     float64 `gorm:"column:league_stl_z" json:"league_stl_z"`
	LeagueBlkZ     float64 `gorm:"column:league_blk_z" json:"league_blk_z"`
	LeagueDDZ      float64 `gorm:"column:league_dd_z" json:"league_dd_z"`
	LeaguePtsZ     float64 `gorm:"column:league_pts_z" json:"league_pts_z"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TeamHistoryAgg) TableName() string {
	return "team_history_agg"
}

func (t *TeamHistoryAgg) zField(c Category, league bool) *float64 {
	if league {
		switch c {
		case CatFGPct:
			return &t.LeagueFGZ
		case CatFTPct:
			return &t.LeagueFTZ
		case CatThreePointers:
			return &t.LeagueThreePMZ
		case CatRebounds:
			return &t.LeagueRebZ
		case CatAssists:
			return &t.LeagueAstZ
		case CatSteals:
			return &t.LeagueStlZ
		case CatBlocks:
			return &t.LeagueBlkZ
		case CatDoubleDoubles:
			return &t.LeagueDDZ
		case CatPoints:
			return &t.LeaguePtsZ
		}
		return nil
	}
	switch c {
	case CatFGPct:
		return &t.FGZ
	case CatFTPct:
		return &t.FTZ
	case CatThreePointers:
		return &t.ThreePMZ
	case CatRebounds:
		return &t.RebZ
	case CatAssists:
		return &t.AstZ
	case CatSteals:
		return &t.StlZ
	case CatBlocks:
		return &t.BlkZ
	case CatDoubleDoubles:
		return &t.DDZ
	case CatPoints:
		return &t.PtsZ
	}
	return nil
}

// ZScores returns the team's weekly per-category z-scores.
func (t *TeamHistoryAgg) ZScores() map[Category]float64 {
	out := make(map[Category]float64, len(Categories))
	for _, c := range Categories {
		out[c] = *t.zField(c, false)
	}
	return out
}

// LeagueZScores returns the league-average per-category z-scores for the week.
func (t *TeamHistoryAgg) LeagueZScores() map[Category]float64 {
	out := make(map[Category]float64, len(Categories))
	for _, c := range Categories {
		out[c] = *t.zField(c, true)
	}
	return out
}

// SetZScores stores weekly and league-average z-scores onto the row.
func (t *TeamHistoryAgg) SetZScores(team, league map[Category]float64) {
	for _, c := range Categories {
		*t.zField(c, false) = team[c]
		*t.zField(c, true) = league[c]
	}
}
