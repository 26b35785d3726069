package services

import (
	"fmt"
	"log"
	"sort"

	"hooprank-api/config"
	"hooprank-api/engine"
	"hooprank-api/models"

	"gorm.io/gorm"
)

// AnalysisService computes z-score and power-ranking payloads on top of the
// raw weekly stats, with the week_team_stats table as a best-effort cache.
// Cache write failures are logged and never fail a request.
type AnalysisService struct {
	db       *gorm.DB
	stats    *StatsService
	leagueID int
}

func NewAnalysisService(db *gorm.DB, stats *StatsService, leagueID int) *AnalysisService {
	return &AnalysisService{
		db:       db,
		stats:    stats,
		leagueID: leagueID,
	}
}

// WeekZScores returns raw stats and z-scores for every team in one week,
// including the league-average row.
func (s *AnalysisService) WeekZScores(season, week int) (*models.WeekZScoresPayload, error) {
	rows, err := s.stats.WeekRows(season, week)
	if err != nil {
		return nil, fmt.Errorf("failed to load week %d/%d stats: %w", season, week, err)
	}

	payload := &models.WeekZScoresPayload{
		Year:  season,
		Week:  week,
		Teams: []models.TeamWeekStats{},
	}

	for _, z := range engine.WeekZScores(rows) {
		entry := models.TeamWeekStats{
			TeamID:          z.TeamID,
			TeamName:        z.TeamName,
			IsLeagueAverage: z.LeagueAverage,
			Stats:           make(map[string]float64, len(z.Values)),
			ZScores:         make(map[string]float64, len(z.Z)),
		}
		for cat, v := range z.Values {
			entry.Stats[string(cat)] = engine.Finite(v)
		}
		for cat, zv := range z.Z {
			entry.ZScores[cat.ZKey()] = zv
		}
		payload.Teams = append(payload.Teams, entry)
	}
	return payload, nil
}

// SeasonZScores returns the week-by-week z-scores for every completed week of
// a season.
func (s *AnalysisService) SeasonZScores(season int) (*models.SeasonZScoresPayload, error) {
	weeks, err := s.stats.CompletedWeeks(season)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed weeks for %d: %w", season, err)
	}

	payload := &models.SeasonZScoresPayload{
		Year:  season,
		Weeks: []models.SeasonWeekZScores{},
	}
	for _, week := range weeks {
		wp, err := s.WeekZScores(season, week)
		if err != nil {
			return nil, err
		}
		if len(wp.Teams) == 0 {
			continue
		}
		payload.Weeks = append(payload.Weeks, models.SeasonWeekZScores{
			Week:  week,
			Teams: wp.Teams,
		})
	}
	return payload, nil
}

// WeekPower returns one week's power rankings. The cached week_team_stats
// rows are used unless forceRefresh is set or the cache is empty.
func (s *AnalysisService) WeekPower(season, week int, forceRefresh bool) (*models.WeekPowerPayload, error) {
	power, err := s.weekPowerEntries(season, week, forceRefresh)
	if err != nil {
		return nil, err
	}
	return s.buildWeekPower(season, week, power), nil
}

// SeasonPower aggregates every completed week into season rankings and
// refreshes the season_team_metrics rows.
func (s *AnalysisService) SeasonPower(season int, forceRefresh bool) (*models.SeasonPowerPayload, error) {
	weeks, err := s.stats.CompletedWeeks(season)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed weeks for %d: %w", season, err)
	}

	var weekly [][]engine.TeamPower
	for _, week := range weeks {
		power, err := s.weekPowerEntries(season, week, forceRefresh)
		if err != nil {
			return nil, err
		}
		if len(power) > 0 {
			weekly = append(weekly, power)
		}
	}

	summaries := engine.SeasonSummaries(weekly)
	s.writeSeasonMetrics(season, summaries)

	owners := config.OwnersForSeason(season)
	payload := &models.SeasonPowerPayload{
		Year:  season,
		Teams: []models.TeamSeasonPower{},
	}
	for _, sum := range summaries {
		entry := models.TeamSeasonPower{
			TeamID:                sum.TeamID,
			TeamName:              sum.TeamName,
			Rank:                  sum.Rank,
			Weeks:                 sum.Weeks,
			AvgTotalZ:             sum.AvgTotalZ,
			AvgZ:                  sum.AvgTotalZ,
			SumTotalZ:             sum.SumTotalZ,
			ActualWins:            sum.ActualWins,
			ExpectedWins:          sum.ExpectedWins,
			Luck:                  sum.Luck,
			AvgLuck:               sum.AvgLuck,
			FraudScore:            sum.FraudScore,
			PerCategoryZSeason:    make(map[string]float64, len(models.Categories)),
			PerCategoryRankSeason: make(map[string]int, len(models.Categories)),
			Owners:                owners[sum.TeamID],
		}
		for _, cat := range models.Categories {
			entry.PerCategoryZSeason[string(cat)] = sum.CatAvgZ[cat]
			entry.PerCategoryRankSeason[string(cat)] = sum.CatRank[cat]
		}
		payload.Teams = append(payload.Teams, entry)
	}
	return payload, nil
}

// weekPowerEntries returns the week's engine power rows, preferring the cache
// unless a refresh is forced. A computed week is written back to the cache.
func (s *AnalysisService) weekPowerEntries(season, week int, forceRefresh bool) ([]engine.TeamPower, error) {
	if !forceRefresh {
		cached, err := s.readWeekCache(season, week)
		if err != nil {
			log.Printf("Week cache read failed for %d week %d: %v", season, week, err)
		} else if len(cached) > 0 {
			return cached, nil
		}
	}

	power, err := s.computeWeekPower(season, week)
	if err != nil {
		return nil, err
	}
	if len(power) > 0 {
		s.writeWeekCache(season, week, power)
	}
	return power, nil
}

// computeWeekPower runs the full pipeline from raw stats for one week.
func (s *AnalysisService) computeWeekPower(season, week int) ([]engine.TeamPower, error) {
	rows, err := s.stats.WeekRows(season, week)
	if err != nil {
		return nil, fmt.Errorf("failed to load week %d/%d stats: %w", season, week, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	results, err := s.stats.ResultScores(season, week)
	if err != nil {
		return nil, fmt.Errorf("failed to load week %d/%d results: %w", season, week, err)
	}

	return engine.WeekAllPlay(engine.WeekZScores(rows), results), nil
}

// readWeekCache reconstructs engine power rows from cached week_team_stats.
// All-play is re-derived from the stored totals, so a cached read matches a
// fresh compute exactly.
func (s *AnalysisService) readWeekCache(season, week int) ([]engine.TeamPower, error) {
	var cached []models.WeekTeamStat
	if err := s.db.
		Where("league_id = ? AND year = ? AND week = ?", s.leagueID, season, week).
		Order("team_id ASC").
		Find(&cached).Error; err != nil {
		return nil, err
	}
	if len(cached) == 0 {
		return nil, nil
	}

	zrows := make([]engine.TeamZScores, 0, len(cached))
	results := map[int]float64{}
	for i := range cached {
		row := &cached[i]
		zrows = append(zrows, engine.TeamZScores{
			TeamRow: engine.TeamRow{
				TeamID:        row.TeamID,
				TeamName:      row.TeamName,
				LeagueAverage: row.IsLeagueAverage,
			},
			Z:      row.ZScores(),
			TotalZ: row.TotalZ,
		})
		if row.ResultScore != nil {
			results[row.TeamID] = *row.ResultScore
		}
	}
	return engine.WeekAllPlay(zrows, results), nil
}

// writeWeekCache replaces the week's cached rows in one transaction. Failures
// are logged; the computed result is still served.
func (s *AnalysisService) writeWeekCache(season, week int, power []engine.TeamPower) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("league_id = ? AND year = ? AND week = ?", s.leagueID, season, week).
			Delete(&models.WeekTeamStat{}).Error; err != nil {
			return err
		}
		rows := make([]models.WeekTeamStat, 0, len(power))
		for _, tp := range power {
			row := models.WeekTeamStat{
				LeagueID:        s.leagueID,
				Year:            season,
				Week:            week,
				TeamID:          tp.TeamID,
				TeamName:        tp.TeamName,
				IsLeagueAverage: tp.LeagueAverage,
				TotalZ:          tp.TotalZ,
			}
			row.SetZScores(tp.Z)
			if !tp.LeagueAverage {
				score := tp.ActualScore
				row.ResultScore = &score
			}
			rows = append(rows, row)
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		log.Printf("Week cache write failed for %d week %d: %v", season, week, err)
	}
}

// writeSeasonMetrics replaces the season_team_metrics rows. Best-effort.
func (s *AnalysisService) writeSeasonMetrics(season int, summaries []engine.SeasonSummary) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("league_id = ? AND year = ?", s.leagueID, season).
			Delete(&models.SeasonTeamMetric{}).Error; err != nil {
			return err
		}
		if len(summaries) == 0 {
			return nil
		}
		rows := make([]models.SeasonTeamMetric, 0, len(summaries))
		for _, sum := range summaries {
			rows = append(rows, models.SeasonTeamMetric{
				LeagueID:     s.leagueID,
				Year:         season,
				TeamID:       sum.TeamID,
				TeamName:     sum.TeamName,
				Weeks:        sum.Weeks,
				SumTotalZ:    sum.SumTotalZ,
				AvgTotalZ:    sum.AvgTotalZ,
				ActualWins:   sum.ActualWins,
				ExpectedWins: sum.ExpectedWins,
				Luck:         sum.Luck,
				AvgLuck:      sum.AvgLuck,
				FraudScore:   sum.FraudScore,
			})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		log.Printf("Season metrics write failed for %d: %v", season, err)
	}
}

// buildWeekPower turns engine power rows into the API payload: real teams
// sorted by total z descending with tie-aware ranks, league-average row last
// with no ranks.
func (s *AnalysisService) buildWeekPower(season, week int, power []engine.TeamPower) *models.WeekPowerPayload {
	payload := &models.WeekPowerPayload{
		Year:  season,
		Week:  week,
		Teams: []models.TeamWeekPower{},
	}
	if len(power) == 0 {
		return payload
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

	catRanks := make(map[models.Category][]int, len(models.Categories))
	for _, cat := range models.Categories {
		vals := make([]float64, len(real))
		for i := range real {
			vals[i] = real[i].Z[cat]
		}
		catRanks[cat] = engine.MinRankDesc(vals)
	}

	owners := config.OwnersForSeason(season)

	for i, tp := range real {
		entry := models.TeamWeekPower{
			TeamID:          tp.TeamID,
			TeamName:        tp.TeamName,
			Rank:            ranks[i],
			TotalZ:          tp.TotalZ,
			PerCategoryZ:    make(map[string]float64, len(models.Categories)),
			PerCategoryRank: make(map[string]*int, len(models.Categories)),
			AllPlay: models.AllPlayPayload{
				Wins:   tp.AllPlay.Wins,
				Losses: tp.AllPlay.Losses,
				Ties:   tp.AllPlay.Ties,
				WinPct: tp.AllPlay.WinPct,
			},
			LuckIndex: tp.LuckIndex,
			Owners:    owners[tp.TeamID],
		}
		for _, cat := range models.Categories {
			entry.PerCategoryZ[string(cat)] = tp.Z[cat]
			rank := catRanks[cat][i]
			entry.PerCategoryRank[string(cat)] = &rank
		}
		payload.Teams = append(payload.Teams, entry)
	}

	if average != nil {
		entry := models.TeamWeekPower{
			TeamID:          average.TeamID,
			TeamName:        average.TeamName,
			IsLeagueAverage: true,
			TotalZ:          average.TotalZ,
			PerCategoryZ:    make(map[string]float64, len(models.Categories)),
			PerCategoryRank: make(map[string]*int, len(models.Categories)),
		}
		for _, cat := range models.Categories {
			entry.PerCategoryZ[string(cat)] = average.Z[cat]
			entry.PerCategoryRank[string(cat)] = nil
		}
		payload.Teams = append(payload.Teams, entry)
	}

	return payload
}
