package services

import (
	"fmt"
	"log"
	"sort"

	"hooprank-api/engine"
	"hooprank-api/models"

	"gorm.io/gorm"
)

// TeamHistory returns one team's week-by-week trajectory: weekly rank, total
// z, running total, and the league-average mirror. The team_history_agg rows
// are rebuilt when the season has none.
func (s *AnalysisService) TeamHistory(season, teamID int) (*models.TeamHistoryPayload, error) {
	var count int64
	if err := s.db.Model(&models.TeamHistoryAgg{}).
		Where("league_id = ? AND year = ?", s.leagueID, season).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check team history for %d: %w", season, err)
	}
	if count == 0 {
		if err := s.RebuildTeamHistory(season); err != nil {
			return nil, err
		}
	}

	var rows []models.TeamHistoryAgg
	if err := s.db.
		Where("league_id = ? AND year = ? AND team_id = ?", s.leagueID, season, teamID).
		Order("week ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load team history for %d team %d: %w", season, teamID, err)
	}

	payload := &models.TeamHistoryPayload{
		Year:    season,
		TeamID:  teamID,
		History: []models.TeamHistoryEntry{},
	}
	for i := range rows {
		row := &rows[i]
		payload.TeamName = row.TeamName

		entry := models.TeamHistoryEntry{
			Week:                 row.Week,
			Rank:                 row.Rank,
			TotalZ:               row.TotalZ,
			CumulativeTotalZ:     row.CumulativeTotalZ,
			LeagueAverageTotalZ:  row.LeagueAverageTotalZ,
			ZScores:              make(map[string]float64, len(models.Categories)),
			LeagueAverageZScores: make(map[string]float64, len(models.Categories)),
		}
		team, league := row.ZScores(), row.LeagueZScores()
		for _, cat := range models.Categories {
			entry.ZScores[cat.ZKey()] = team[cat]
			entry.LeagueAverageZScores[cat.ZKey()] = league[cat]
		}
		payload.History = append(payload.History, entry)
	}
	return payload, nil
}

// RebuildTeamHistory recomputes the season's team_history_agg rows from the
// weekly power entries.
func (s *AnalysisService) RebuildTeamHistory(season int) error {
	weeks, err := s.stats.CompletedWeeks(season)
	if err != nil {
		return fmt.Errorf("failed to load completed weeks for %d: %w", season, err)
	}

	var rows []models.TeamHistoryAgg
	cumulative := map[int]float64{}

	for _, week := range weeks {
		power, err := s.weekPowerEntries(season, week, false)
		if err != nil {
			return err
		}
		if len(power) == 0 {
			continue
		}

		real := make([]engine.TeamPower, 0, len(power))
		var average *engine.TeamPower
		for i := range power {
			if power[i].LeagueAverage {
				average = &power[i]
				continue
			}
			real = append(real, power[i])
		}
		sort.SliceStable(real, func(i, j int) bool {
			if real[i].TotalZ != real[j].TotalZ {
				return real[i].TotalZ > real[j].TotalZ
			}
			return real[i].TeamID < real[j].TeamID
		})

		totals := make([]float64, len(real))
		for i := range real {
			totals[i] = real[i].TotalZ
		}
		ranks := engine.MinRankDesc(totals)

		leagueTotal := 0.0
		leagueZ := map[models.Category]float64{}
		if average != nil {
			leagueTotal = average.TotalZ
			leagueZ = average.Z
		}

		for i, tp := range real {
			cumulative[tp.TeamID] += tp.TotalZ

			row := models.TeamHistoryAgg{
				LeagueID:            s.leagueID,
				Year:                season,
				Week:                week,
				TeamID:              tp.TeamID,
				TeamName:            tp.TeamName,
				Rank:                ranks[i],
				TotalZ:              tp.TotalZ,
				CumulativeTotalZ:    cumulative[tp.TeamID],
				LeagueAverageTotalZ: leagueTotal,
			}
			row.SetZScores(tp.Z, leagueZ)
			rows = append(rows, row)
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("league_id = ? AND year = ?", s.leagueID, season).
			Delete(&models.TeamHistoryAgg{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return fmt.Errorf("failed to write team history for %d: %w", season, err)
	}

	log.Printf("Rebuilt team history for %d: %d rows over %d weeks", season, len(rows), len(weeks))
	return nil
}
