package models

import (
	"time"
)

// CatAgg is one category's accumulated head-to-head record against a given
// opponent. DiffSum/DiffN track the signed value difference over weeks where
// both sides reported a value, so avgDiff can be re-derived after merging
// years.
type CatAgg struct {
	Wins    int     `gorm:"default:0" json:"wins"`
	Losses  int     `gorm:"default:0" json:"losses"`
	Ties    int     `gorm:"default:0" json:"ties"`
	DiffSum float64 `gorm:"default:0" json:"-"`
	DiffN   int     `gorm:"default:0" json:"-"`
}

// OpponentMatrixAggYear is one ordered (team, opponent) pair's aggregate for a
// single season. (A,B) and (B,A) are separate mirror rows. Team ids are
// provider ids.
type OpponentMatrixAggYear struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	LeagueID int `gorm:"index;uniqueIndex:uq_opp_matrix_agg_year" json:"league_id"`
	Year     int `gorm:"index;uniqueIndex:uq_opp_matrix_agg_year" json:"year"`

	TeamID         int `gorm:"uniqueIndex:uq_opp_matrix_agg_year" json:"team_id"`
	OpponentTeamID int `gorm:"uniqueIndex:uq_opp_matrix_agg_year" json:"opponent_team_id"`

	OpponentName string `gorm:"size:255" json:"opponent_name"`

	Matchups int `gorm:"default:0" json:"matchups"`
	Wins     int `gorm:"default:0" json:"wins"`
	Losses   int `gorm:"default:0" json:"losses"`
	Ties     int `gorm:"default:0" json:"ties"`

	FG      CatAgg `gorm:"embedded;embeddedPrefix:fg_" json:"fg"`
	FT      CatAgg `gorm:"embedded;embeddedPrefix:ft_" json:"ft"`
	ThreePM CatAgg `gorm:"embedded;embeddedPrefix:three_pm_" json:"three_pm"`
	Reb     CatAgg `gorm:"embedded;embeddedPrefix:reb_" json:"reb"`
	Ast     CatAgg `gorm:"embedded;embeddedPrefix:ast_" json:"ast"`
	Stl     CatAgg `gorm:"embedded;embeddedPrefix:stl_" json:"stl"`
	Blk     CatAgg `gorm:"embedded;embeddedPrefix:blk_" json:"blk"`
	DD      CatAgg `gorm:"embedded;embeddedPrefix:dd_" json:"dd"`
	Pts     CatAgg `gorm:"embedded;embeddedPrefix:pts_" json:"pts"`

	CreatedAt time.Time `json:"created_at"`
}

func (OpponentMatrixAggYear) TableName() string {
	return "opponent_matrix_agg_year"
}

// Cat returns the mutable per-category aggregate for c.
func (r *OpponentMatrixAggYear) Cat(c Category) *CatAgg {
	switch c {
	case CatFGPct:
		return &r.FG
	case CatFTPct:
		return &r.FT
	case CatThreePointers:
		return &r.ThreePM
	case CatRebounds:
		return &r.Reb
	case CatAssists:
		return &r.Ast
	case CatSteals:
		return &r.Stl
	case CatBlocks:
		return &r.Blk
	case CatDoubleDoubles:
		return &r.DD
	case CatPoints:
		return &r.Pts
	}
	return nil
}
