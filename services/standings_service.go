package services

import (
	"fmt"
	"sort"

	"hooprank-api/config"
	"hooprank-api/engine"
	"hooprank-api/models"

	"gorm.io/gorm"
)

// StandingsService assembles the league overview: standings with matchup and
// category records over the completed weeks, plus week availability. Payloads
// are cached per (season, completed-through week).
type StandingsService struct {
	db         *gorm.DB
	stats      *StatsService
	cache      StandingsCache
	leagueID   int
	leagueName string
}

func NewStandingsService(db *gorm.DB, stats *StatsService, cache StandingsCache, leagueID int, leagueName string) *StandingsService {
	return &StandingsService{
		db:         db,
		stats:      stats,
		cache:      cache,
		leagueID:   leagueID,
		leagueName: leagueName,
	}
}

// League returns the league overview for a season. forceRefresh bypasses the
// payload cache.
func (s *StandingsService) League(season int, forceRefresh bool) (*models.LeaguePayload, error) {
	weeks, err := s.stats.SeasonWeeks(season)
	if err != nil {
		return nil, fmt.Errorf("failed to load weeks for %d: %w", season, err)
	}
	completed, err := s.stats.CompletedWeeks(season)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed weeks for %d: %w", season, err)
	}

	throughWeek := 0
	if len(completed) > 0 {
		throughWeek = completed[len(completed)-1]
	}

	key := StandingsCacheKey(s.leagueID, season, throughWeek)
	if !forceRefresh {
		if payload, ok := s.cache.Get(key); ok {
			return payload, nil
		}
	}

	standings, err := s.standings(season, completed)
	if err != nil {
		return nil, err
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

	payload := &models.LeaguePayload{
		LeagueID:               s.leagueID,
		LeagueName:             s.leagueName,
		Year:                   season,
		TeamCount:              len(standings),
		CurrentWeek:            throughWeek,
		InProgressWeek:         inProgress,
		WeeksAvailable:         weeks,
		AdvancedStatsAvailable: len(weeks) > 0,
		CompletedWeeks:         completed,
		Teams:                  standings,
	}
	s.cache.Set(key, payload)
	return payload, nil
}

// InvalidateSeason drops the season's cached payloads, used after a week
// refresh changes the underlying data.
func (s *StandingsService) InvalidateSeason(season int) {
	s.cache.InvalidateSeason(season)
}

type standingAcc struct {
	standing models.TeamStanding
}

// standings builds the ranked per-team records over the completed weeks.
func (s *StandingsService) standings(season int, completed []int) ([]models.TeamStanding, error) {
	teams, err := s.stats.TeamsForSeason(season)
	if err != nil {
		return nil, fmt.Errorf("failed to load teams for %d: %w", season, err)
	}
	if len(teams) == 0 {
		return []models.TeamStanding{}, nil
	}

	idx := make(map[uint]models.Team, len(teams))
	byTeam := make(map[int]*standingAcc, len(teams))
	owners := config.OwnersForSeason(season)
	for _, t := range teams {
		idx[t.ID] = t
		byTeam[t.FantasyTeamID] = &standingAcc{
			standing: models.TeamStanding{
				TeamID:   t.FantasyTeamID,
				TeamName: t.Name,
				Owners:   owners[t.FantasyTeamID],
			},
		}
	}

	for _, week := range completed {
		matchups, err := s.stats.MatchupsForWeek(season, week)
		if err != nil {
			return nil, fmt.Errorf("failed to load matchups for %d week %d: %w", season, week, err)
		}
		for i := range matchups {
			m := &matchups[i]
			if !m.Completed() {
				continue
			}
			home, hok := idx[m.HomeTeamID]
			away, aok := idx[m.AwayTeamID]
			if !hok || !aok {
				continue
			}
			ha := byTeam[home.FantasyTeamID]
			aa := byTeam[away.FantasyTeamID]
			switch {
			case m.Tie:
				ha.standing.MatchupTies++
				aa.standing.MatchupTies++
			case m.WinnerTeamID != nil && *m.WinnerTeamID == home.ID:
				ha.standing.MatchupWins++
				aa.standing.MatchupLosses++
			case m.WinnerTeamID != nil && *m.WinnerTeamID == away.ID:
				aa.standing.MatchupWins++
				ha.standing.MatchupLosses++
			}
		}
	}

	var results []models.MatchupCategoryResult
	if err := s.db.
		Where("league_id = ? AND season = ? AND week <= ?", s.leagueID, season, models.MaxWeekForSeason(season)).
		Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to load category results for %d: %w", season, err)
	}
	completedSet := make(map[int]bool, len(completed))
	for _, w := range completed {
		completedSet[w] = true
	}
	for i := range results {
		r := &results[i]
		if !completedSet[r.Week] {
			continue
		}
		team, ok := idx[r.TeamID]
		if !ok {
			continue
		}
		acc := byTeam[team.FantasyTeamID]
		switch r.Result {
		case "W":
			acc.standing.CategoryWins++
		case "L":
			acc.standing.CategoryLosses++
		case "T":
			acc.standing.CategoryTies++
		}
	}

	out := make([]models.TeamStanding, 0, len(byTeam))
	for _, t := range teams {
		st := byTeam[t.FantasyTeamID].standing
		st.MatchupRecord = fmt.Sprintf("%d-%d-%d", st.MatchupWins, st.MatchupLosses, st.MatchupTies)
		st.CategoryRecord = fmt.Sprintf("%d-%d-%d", st.CategoryWins, st.CategoryLosses, st.CategoryTies)
		out = append(out, st)
	}

	points := func(st models.TeamStanding) float64 {
		return float64(st.MatchupWins) + 0.5*float64(st.MatchupTies)
	}
	catPoints := func(st models.TeamStanding) float64 {
		return float64(st.CategoryWins) + 0.5*float64(st.CategoryTies)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if points(out[i]) != points(out[j]) {
			return points(out[i]) > points(out[j])
		}
		if catPoints(out[i]) != catPoints(out[j]) {
			return catPoints(out[i]) > catPoints(out[j])
		}
		return out[i].TeamID < out[j].TeamID
	})

	vals := make([]float64, len(out))
	for i := range out {
		vals[i] = points(out[i])
	}
	for i, r := range engine.MinRankDesc(vals) {
		out[i].Rank = r
	}
	return out, nil
}
