package services

import (
	"fmt"
	"log"

	"hooprank-api/config"
	"hooprank-api/engine"
	"hooprank-api/models"

	"gorm.io/gorm"
)

// OpponentService maintains the per-year head-to-head aggregates and serves
// the opponent matrix over single seasons or multi-year ranges.
type OpponentService struct {
	db       *gorm.DB
	stats    *StatsService
	leagueID int
}

func NewOpponentService(db *gorm.DB, stats *StatsService, leagueID int) *OpponentService {
	return &OpponentService{
		db:       db,
		stats:    stats,
		leagueID: leagueID,
	}
}

// RebuildYear recomputes one season's opponent_matrix_agg_year rows from the
// completed matchups and raw weekly values.
func (s *OpponentService) RebuildYear(season int) error {
	idx, err := s.stats.teamIndex(season)
	if err != nil {
		return fmt.Errorf("failed to load teams for %d: %w", season, err)
	}

	weeks, err := s.stats.CompletedWeeks(season)
	if err != nil {
		return fmt.Errorf("failed to load completed weeks for %d: %w", season, err)
	}

	type pairKey struct{ team, opp int }
	pairs := map[pairKey]*engine.PairRecord{}
	pair := func(teamID, oppID int, oppName string) *engine.PairRecord {
		k := pairKey{teamID, oppID}
		p, ok := pairs[k]
		if !ok {
			p = engine.NewPairRecord(teamID, oppID)
			pairs[k] = p
		}
		p.OpponentName = oppName
		return p
	}

	for _, week := range weeks {
		matchups, err := s.stats.MatchupsForWeek(season, week)
		if err != nil {
			return fmt.Errorf("failed to load matchups for %d week %d: %w", season, week, err)
		}
		values, err := s.stats.RawWeekStats(season, week)
		if err != nil {
			return fmt.Errorf("failed to load stats for %d week %d: %w", season, week, err)
		}

		for i := range matchups {
			m := &matchups[i]
			if !m.Completed() {
				continue
			}
			homeTeam, hok := idx[m.HomeTeamID]
			awayTeam, aok := idx[m.AwayTeamID]
			if !hok || !aok {
				continue
			}

			homeVals := models.CategoryValues{}
			if st, ok := values[homeTeam.FantasyTeamID]; ok {
				homeVals = st.CategoryValues()
			}
			awayVals := models.CategoryValues{}
			if st, ok := values[awayTeam.FantasyTeamID]; ok {
				awayVals = st.CategoryValues()
			}

			home := pair(homeTeam.FantasyTeamID, awayTeam.FantasyTeamID, awayTeam.Name)
			away := pair(awayTeam.FantasyTeamID, homeTeam.FantasyTeamID, homeTeam.Name)
			engine.RecordMatchup(home, away, homeVals, awayVals)
		}
	}

	rows := make([]models.OpponentMatrixAggYear, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, s.toRow(season, p))
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("league_id = ? AND year = ?", s.leagueID, season).
			Delete(&models.OpponentMatrixAggYear{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return fmt.Errorf("failed to write opponent aggregates for %d: %w", season, err)
	}

	log.Printf("Rebuilt opponent matrix for %d: %d pair rows", season, len(rows))
	return nil
}

// Matrix returns merged head-to-head records over [startYear, endYear].
// teamID restricts rows to one team's perspective. With ownerEraOnly set,
// seasons before the current owner's takeover are excluded: for the selected
// team when teamID is given, otherwise for both sides of every pair.
func (s *OpponentService) Matrix(startYear, endYear int, teamID *int, ownerEraOnly bool) (*models.OpponentMatrixPayload, error) {
	if endYear < startYear {
		return nil, fmt.Errorf("invalid year range %d-%d", startYear, endYear)
	}

	if ownerEraOnly && teamID != nil {
		if start := config.OwnerStartYear(*teamID); start > startYear {
			startYear = start
		}
	}

	var records []*engine.PairRecord
	for year := startYear; year <= endYear; year++ {
		rows, err := s.yearRows(year)
		if err != nil {
			return nil, err
		}
		for i := range rows {
			row := &rows[i]
			if teamID != nil && row.TeamID != *teamID {
				continue
			}
			if ownerEraOnly && teamID == nil {
				if !config.InCurrentOwnerEra(row.TeamID, year) ||
					!config.InCurrentOwnerEra(row.OpponentTeamID, year) {
					continue
				}
			}
			records = append(records, s.toRecord(row))
		}
	}

	payload := &models.OpponentMatrixPayload{
		StartYear:    startYear,
		EndYear:      endYear,
		TeamID:       teamID,
		OwnerEraOnly: ownerEraOnly,
		Rows:         []models.OpponentMatrixRow{},
	}
	for _, p := range engine.MergePairs(records) {
		out := models.OpponentMatrixRow{
			TeamID:         p.TeamID,
			OpponentTeamID: p.OpponentID,
			OpponentName:   p.OpponentName,
			Matchups:       p.Matchups,
			Overall: models.OpponentOverallRecord{
				Wins:     p.Wins,
				Losses:   p.Losses,
				Ties:     p.Ties,
				Matchups: p.Matchups,
				WinPct:   p.WinPct(),
			},
			Categories: make(map[string]models.OpponentCatRecord, len(models.Categories)),
		}
		for _, cat := range models.Categories {
			rec := p.Cats[cat]
			out.Categories[string(cat)] = models.OpponentCatRecord{
				Wins:    rec.Wins,
				Losses:  rec.Losses,
				Ties:    rec.Ties,
				WinPct:  rec.WinPct(),
				AvgDiff: rec.AvgDiff(),
			}
		}
		payload.Rows = append(payload.Rows, out)
	}
	return payload, nil
}

// yearRows loads one season's aggregate rows, rebuilding them when the
// season has completed weeks but no rows yet.
func (s *OpponentService) yearRows(season int) ([]models.OpponentMatrixAggYear, error) {
	var rows []models.OpponentMatrixAggYear
	if err := s.db.
		Where("league_id = ? AND year = ?", s.leagueID, season).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load opponent aggregates for %d: %w", season, err)
	}
	if len(rows) > 0 {
		return rows, nil
	}

	weeks, err := s.stats.CompletedWeeks(season)
	if err != nil || len(weeks) == 0 {
		return nil, err
	}
	if err := s.RebuildYear(season); err != nil {
		return nil, err
	}
	if err := s.db.
		Where("league_id = ? AND year = ?", s.leagueID, season).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load opponent aggregates for %d: %w", season, err)
	}
	return rows, nil
}

func (s *OpponentService) toRow(season int, p *engine.PairRecord) models.OpponentMatrixAggYear {
	row := models.OpponentMatrixAggYear{
		LeagueID:       s.leagueID,
		Year:           season,
		TeamID:         p.TeamID,
		OpponentTeamID: p.OpponentID,
		OpponentName:   p.OpponentName,
		Matchups:       p.Matchups,
		Wins:           p.Wins,
		Losses:         p.Losses,
		Ties:           p.Ties,
	}
	for _, cat := range models.Categories {
		src := p.Cats[cat]
		dst := row.Cat(cat)
		dst.Wins = src.Wins
		dst.Losses = src.Losses
		dst.Ties = src.Ties
		dst.DiffSum = src.DiffSum
		dst.DiffN = src.DiffN
	}
	return row
}

func (s *OpponentService) toRecord(row *models.OpponentMatrixAggYear) *engine.PairRecord {
	p := engine.NewPairRecord(row.TeamID, row.OpponentTeamID)
	p.OpponentName = row.OpponentName
	p.Matchups = row.Matchups
	p.Wins = row.Wins
	p.Losses = row.Losses
	p.Ties = row.Ties
	for _, cat := range models.Categories {
		src := row.Cat(cat)
		dst := p.Cats[cat]
		dst.Wins = src.Wins
		dst.Losses = src.Losses
		dst.Ties = src.Ties
		dst.DiffSum = src.DiffSum
		dst.DiffN = src.DiffN
	}
	return p
}
