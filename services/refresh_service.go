package services

import (
	"fmt"
	"log"
)

// RefreshService recomputes derived data after upstream stat corrections: a
// single week on demand, or a sweep over the most recent completed weeks for
// the cron job.
type RefreshService struct {
	stats     *StatsService
	analysis  *AnalysisService
	opponent  *OpponentService
	standings *StandingsService
}

func NewRefreshService(stats *StatsService, analysis *AnalysisService, opponent *OpponentService, standings *StandingsService) *RefreshService {
	return &RefreshService{
		stats:     stats,
		analysis:  analysis,
		opponent:  opponent,
		standings: standings,
	}
}

// RefreshWeek force-recomputes one week's cached power rows and everything
// derived from them for the season.
func (s *RefreshService) RefreshWeek(season, week int) error {
	if _, err := s.analysis.weekPowerEntries(season, week, true); err != nil {
		return fmt.Errorf("failed to refresh week %d/%d: %w", season, week, err)
	}
	if _, err := s.analysis.SeasonPower(season, false); err != nil {
		return fmt.Errorf("failed to refresh season metrics for %d: %w", season, err)
	}
	if err := s.analysis.RebuildTeamHistory(season); err != nil {
		return err
	}
	if err := s.opponent.RebuildYear(season); err != nil {
		return err
	}
	s.standings.InvalidateSeason(season)

	log.Printf("Refreshed %d week %d and season aggregates", season, week)
	return nil
}

// RecentWeeksWindow is how far back the correction sweep reaches from the
// latest completed week. Providers restate box scores for a while after a
// week closes.
const RecentWeeksWindow = 2

// RefreshRecentWeeks re-runs the latest completed week and the window before
// it. Returns the weeks refreshed.
func (s *RefreshService) RefreshRecentWeeks(season int) ([]int, error) {
	completed, err := s.stats.CompletedWeeks(season)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed weeks for %d: %w", season, err)
	}
	if len(completed) == 0 {
		return nil, nil
	}

	latest := completed[len(completed)-1]
	var refreshed []int
	for _, week := range completed {
		if week < latest-RecentWeeksWindow {
			continue
		}
		if _, err := s.analysis.weekPowerEntries(season, week, true); err != nil {
			return refreshed, fmt.Errorf("failed to refresh week %d/%d: %w", season, week, err)
		}
		refreshed = append(refreshed, week)
	}

	if _, err := s.analysis.SeasonPower(season, false); err != nil {
		return refreshed, fmt.Errorf("failed to refresh season metrics for %d: %w", season, err)
	}
	if err := s.analysis.RebuildTeamHistory(season); err != nil {
		return refreshed, err
	}
	if err := s.opponent.RebuildYear(season); err != nil {
		return refreshed, err
	}
	s.standings.InvalidateSeason(season)

	return refreshed, nil
}
