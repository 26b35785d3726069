package services

import (
	"sort"

	"hooprank-api/engine"
	"hooprank-api/models"

	"gorm.io/gorm"
)

// StatsService loads normalized weekly stats and matchup results and converts
// them into engine inputs. Team ids exposed to callers are the provider ids
// (Team.FantasyTeamID), not database row keys.
type StatsService struct {
	db       *gorm.DB
	leagueID int
}

func NewStatsService(db *gorm.DB, leagueID int) *StatsService {
	return &StatsService{
		db:       db,
		leagueID: leagueID,
	}
}

// TeamsForSeason returns the season's teams ordered by provider id.
func (s *StatsService) TeamsForSeason(season int) ([]models.Team, error) {
	var teams []models.Team
	if err := s.db.
		Where("league_id = ? AND season = ?", s.leagueID, season).
		Order("fantasy_team_id ASC").
		Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// teamIndex maps database row keys to provider ids and names for one season.
func (s *StatsService) teamIndex(season int) (map[uint]models.Team, error) {
	teams, err := s.TeamsForSeason(season)
	if err != nil {
		return nil, err
	}
	idx := make(map[uint]models.Team, len(teams))
	for _, t := range teams {
		idx[t.ID] = t
	}
	return idx, nil
}

// WeekRows loads one week's raw stats as engine rows, ordered by team id. An
// empty slice means the week has no data; an error means the query failed.
func (s *StatsService) WeekRows(season, week int) ([]engine.TeamRow, error) {
	var stats []models.TeamWeeklyStat
	if err := s.db.Preload("Team").
		Where("league_id = ? AND season = ? AND week = ?", s.leagueID, season, week).
		Find(&stats).Error; err != nil {
		return nil, err
	}

	rows := make([]engine.TeamRow, 0, len(stats))
	for i := range stats {
		st := &stats[i]
		rows = append(rows, engine.TeamRow{
			TeamID:   st.Team.FantasyTeamID,
			TeamName: st.Team.Name,
			Values:   st.CategoryValues(),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].TeamID < rows[j].TeamID })
	return rows, nil
}

// RawWeekStats loads one week's stats rows keyed by provider team id, for
// payloads that expose raw values alongside z-scores.
func (s *StatsService) RawWeekStats(season, week int) (map[int]*models.TeamWeeklyStat, error) {
	var stats []models.TeamWeeklyStat
	if err := s.db.Preload("Team").
		Where("league_id = ? AND season = ? AND week = ?", s.leagueID, season, week).
		Find(&stats).Error; err != nil {
		return nil, err
	}
	out := make(map[int]*models.TeamWeeklyStat, len(stats))
	for i := range stats {
		out[stats[i].Team.FantasyTeamID] = &stats[i]
	}
	return out, nil
}

// ResultScores derives each team's actual weekly result score in [0,1] from
// the per-category matchup results: (wins + 0.5*ties) / categories decided.
// Teams without results for the week are absent from the map.
func (s *StatsService) ResultScores(season, week int) (map[int]float64, error) {
	idx, err := s.teamIndex(season)
	if err != nil {
		return nil, err
	}

	var results []models.MatchupCategoryResult
	if err := s.db.
		Where("league_id = ? AND season = ? AND week = ?", s.leagueID, season, week).
		Find(&results).Error; err != nil {
		return nil, err
	}

	type record struct{ wins, losses, ties int }
	byTeam := map[int]*record{}
	for _, r := range results {
		team, ok := idx[r.TeamID]
		if !ok {
			continue
		}
		rec, ok := byTeam[team.FantasyTeamID]
		if !ok {
			rec = &record{}
			byTeam[team.FantasyTeamID] = rec
		}
		switch r.Result {
		case "W":
			rec.wins++
		case "L":
			rec.losses++
		case "T":
			rec.ties++
		}
	}

	scores := make(map[int]float64, len(byTeam))
	for teamID, rec := range byTeam {
		total := rec.wins + rec.losses + rec.ties
		if total == 0 {
			continue
		}
		scores[teamID] = engine.Finite((float64(rec.wins) + 0.5*float64(rec.ties)) / float64(total))
	}
	return scores, nil
}

// SeasonWeeks returns the weeks with any weekly stats, ascending, capped at
// the season's last considered week.
func (s *StatsService) SeasonWeeks(season int) ([]int, error) {
	var weeks []int
	if err := s.db.Model(&models.TeamWeeklyStat{}).
		Where("league_id = ? AND season = ? AND week <= ?", s.leagueID, season, models.MaxWeekForSeason(season)).
		Distinct("week").
		Order("week ASC").
		Pluck("week", &weeks).Error; err != nil {
		return nil, err
	}
	return weeks, nil
}

// CompletedWeeks returns the weeks in which every scheduled matchup has a
// final outcome. Weeks with no matchups at all are excluded.
func (s *StatsService) CompletedWeeks(season int) ([]int, error) {
	var matchups []models.Matchup
	if err := s.db.
		Where("league_id = ? AND season = ? AND week <= ?", s.leagueID, season, models.MaxWeekForSeason(season)).
		Order("week ASC").
		Find(&matchups).Error; err != nil {
		return nil, err
	}

	complete := map[int]bool{}
	for i := range matchups {
		m := &matchups[i]
		if done, seen := complete[m.Week]; !seen {
			complete[m.Week] = m.Completed()
		} else if done && !m.Completed() {
			complete[m.Week] = false
		}
	}

	var weeks []int
	for week, done := range complete {
		if done {
			weeks = append(weeks, week)
		}
	}
	sort.Ints(weeks)
	return weeks, nil
}

// MatchupsForWeek loads the week's matchups.
func (s *StatsService) MatchupsForWeek(season, week int) ([]models.Matchup, error) {
	var matchups []models.Matchup
	if err := s.db.
		Where("league_id = ? AND season = ? AND week = ?", s.leagueID, season, week).
		Order("matchup_id ASC").
		Find(&matchups).Error; err != nil {
		return nil, err
	}
	return matchups, nil
}

// Seasons returns the seasons with team data, ascending.
func (s *StatsService) Seasons() ([]int, error) {
	var years []int
	if err := s.db.Model(&models.Team{}).
		Where("league_id = ?", s.leagueID).
		Distinct("season").
		Order("season ASC").
		Pluck("season", &years).Error; err != nil {
		return nil, err
	}
	return years, nil
}
