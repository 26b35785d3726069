package services

import (
	"fmt"

	"hooprank-api/models"

	"gorm.io/gorm"
)

// MetaService serves league metadata and the data-integrity health check.
type MetaService struct {
	db         *gorm.DB
	stats      *StatsService
	leagueID   int
	leagueName string
}

func NewMetaService(db *gorm.DB, stats *StatsService, leagueID int, leagueName string) *MetaService {
	return &MetaService{
		db:         db,
		stats:      stats,
		leagueID:   leagueID,
		leagueName: leagueName,
	}
}

// Meta returns the league metadata for a season. year=0 selects the latest
// season with data.
func (s *MetaService) Meta(year int) (*models.MetaPayload, error) {
	years, err := s.stats.Seasons()
	if err != nil {
		return nil, fmt.Errorf("failed to load seasons: %w", err)
	}
	if year == 0 && len(years) > 0 {
		year = years[len(years)-1]
	}

	weeks, err := s.stats.SeasonWeeks(year)
	if err != nil {
		return nil, fmt.Errorf("failed to load weeks for %d: %w", year, err)
	}
	completed, err := s.stats.CompletedWeeks(year)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed weeks for %d: %w", year, err)
	}
	teams, err := s.stats.TeamsForSeason(year)
	if err != nil {
		return nil, fmt.Errorf("failed to load teams for %d: %w", year, err)
	}

	currentWeek := 0
	if len(completed) > 0 {
		currentWeek = completed[len(completed)-1]
	}

	return &models.MetaPayload{
		Years:       years,
		Year:        year,
		Weeks:       weeks,
		CurrentWeek: currentWeek,
		LeagueName:  s.leagueName,
		TeamCount:   len(teams),
	}, nil
}

// LeagueHealth reports whether every completed week has weekly stats for
// every team, listing the missing (week, team) pairs.
func (s *MetaService) LeagueHealth(season int) (*models.LeagueHealthPayload, error) {
	weeks, err := s.stats.SeasonWeeks(season)
	if err != nil {
		return nil, fmt.Errorf("failed to load weeks for %d: %w", season, err)
	}
	completed, err := s.stats.CompletedWeeks(season)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed weeks for %d: %w", season, err)
	}
	teams, err := s.stats.TeamsForSeason(season)
	if err != nil {
		return nil, fmt.Errorf("failed to load teams for %d: %w", season, err)
	}

	completedSet := make(map[int]bool, len(completed))
	for _, w := range completed {
		completedSet[w] = true
	}
	inProgress := 0
	for _, w := range weeks {
		if !completedSet[w] {
			inProgress = w
			break
		}
	}
	throughWeek := 0
	if len(completed) > 0 {
		throughWeek = completed[len(completed)-1]
	}

	report := models.IntegrityReport{
		Missing:       []models.MissingTeamWeek{},
		ExpectedCount: len(completed) * len(teams),
	}
	for _, week := range completed {
		present, err := s.stats.RawWeekStats(season, week)
		if err != nil {
			return nil, fmt.Errorf("failed to load stats for %d week %d: %w", season, week, err)
		}
		for _, t := range teams {
			if _, ok := present[t.FantasyTeamID]; !ok {
				report.Missing = append(report.Missing, models.MissingTeamWeek{
					Week:   week,
					TeamID: t.FantasyTeamID,
				})
				continue
			}
			report.PresentCount++
		}
	}

	return &models.LeagueHealthPayload{
		OK:                   len(report.Missing) == 0,
		Year:                 season,
		WeeksAvailable:       weeks,
		CompletedWeeks:       completed,
		CompletedThroughWeek: throughWeek,
		InProgressWeek:       inProgress,
		Integrity:            report,
	}, nil
}
