package fixtures

import (
	"fmt"
	"log"
	"math/rand"

	"hooprank-api/config"
	"hooprank-api/models"

	"gorm.io/gorm"
)

type Fixtures struct {
	db       *gorm.DB
	leagueID int
	rng      *rand.Rand
}

func NewFixtures(db *gorm.DB, leagueID int) *Fixtures {
	return &Fixtures{
		db:       db,
		leagueID: leagueID,
		// Fixed seed so regenerated demo data is reproducible.
		rng: rand.New(rand.NewSource(70600)),
	}
}

var teamNames = []string{
	"Alley-Oop Architects", "Bench Mob", "Clutch City", "Dunk Dynasty",
	"Euro Steppers", "Full Court Press", "Glass Cleaners", "Heat Checks",
	"Iso Joes", "Jumbo Shooters", "Kings of the Key", "Lob City Revival",
}

// GenerateTestData seeds a full demo league: one complete season and one in
// progress, with weekly stats, matchups and per-category results.
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	seasons := []struct {
		year  int
		weeks int
		open  bool // last week left without outcomes
	}{
		{2024, 10, false},
		{2025, 6, true},
	}

	for _, s := range seasons {
		teams, err := f.generateTeams(s.year)
		if err != nil {
			return fmt.Errorf("failed to generate teams for %d: %w", s.year, err)
		}
		if err := f.generateSeason(s.year, s.weeks, s.open, teams); err != nil {
			return fmt.Errorf("failed to generate season %d: %w", s.year, err)
		}
	}

	log.Println("Fixtures generated successfully!")
	return nil
}

// ClearAllData removes every row the generator creates, aggregates included.
func (f *Fixtures) ClearAllData() error {
	tables := []string{
		"opponent_matrix_agg_year",
		"team_history_agg",
		"season_team_metrics",
		"week_team_stats",
		"matchup_category_results",
		"matchups",
		"team_weekly_stats",
		"teams",
	}
	for _, table := range tables {
		if err := f.db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

func (f *Fixtures) generateTeams(season int) ([]models.Team, error) {
	teams := make([]models.Team, 0, len(teamNames))
	for i, name := range teamNames {
		fantasyID := i + 1
		teams = append(teams, models.Team{
			LeagueID:      f.leagueID,
			Season:        season,
			FantasyTeamID: fantasyID,
			Name:          name,
			Abbrev:        fmt.Sprintf("T%02d", fantasyID),
			Owner:         config.OwnerCode(fantasyID),
		})
	}
	if err := f.db.Create(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (f *Fixtures) generateSeason(season, weeks int, open bool, teams []models.Team) error {
	for week := 1; week <= weeks; week++ {
		stats, err := f.generateWeekStats(season, week, teams)
		if err != nil {
			return err
		}

		inProgress := open && week == weeks
		if err := f.generateWeekMatchups(season, week, teams, stats, inProgress); err != nil {
			return err
		}
	}
	return nil
}

func (f *Fixtures) generateWeekStats(season, week int, teams []models.Team) (map[uint]*models.TeamWeeklyStat, error) {
	rows := make([]models.TeamWeeklyStat, 0, len(teams))
	for _, t := range teams {
		fga := 550 + f.rng.Intn(200)
		fta := 140 + f.rng.Intn(80)
		rows = append(rows, models.TeamWeeklyStat{
			LeagueID:    f.leagueID,
			Season:      season,
			Week:        week,
			TeamID:      t.ID,
			GamesPlayed: 28 + f.rng.Intn(14),
			FGM:         int(float64(fga) * (0.40 + f.rng.Float64()*0.12)),
			FGA:         fga,
			FTM:         int(float64(fta) * (0.68 + f.rng.Float64()*0.18)),
			FTA:         fta,
			ThreePM:     60 + f.rng.Intn(50),
			Reb:         260 + f.rng.Intn(120),
			Ast:         150 + f.rng.Intn(90),
			Stl:         40 + f.rng.Intn(30),
			Blk:         25 + f.rng.Intn(25),
			DD:          4 + f.rng.Intn(10),
			Pts:         700 + f.rng.Intn(300),
		})
	}
	if err := f.db.Create(&rows).Error; err != nil {
		return nil, err
	}

	byTeam := make(map[uint]*models.TeamWeeklyStat, len(rows))
	for i := range rows {
		byTeam[rows[i].TeamID] = &rows[i]
	}
	return byTeam, nil
}

// generateWeekMatchups pairs the teams with a weekly rotation and derives
// winners and per-category results from the generated stats, so fixtures are
// internally consistent with the analysis pipeline.
func (f *Fixtures) generateWeekMatchups(season, week int, teams []models.Team, stats map[uint]*models.TeamWeeklyStat, inProgress bool) error {
	n := len(teams)
	rotated := make([]models.Team, n)
	copy(rotated, teams)
	// Circle method: fix the first team, rotate the rest by the week index.
	for i := 1; i < n; i++ {
		rotated[1+(i-1+week)%(n-1)] = teams[i]
	}

	matchupID := 0
	for i := 0; i < n/2; i++ {
		home := rotated[i]
		away := rotated[n-1-i]
		matchupID++

		matchup := models.Matchup{
			LeagueID:   f.leagueID,
			Season:     season,
			Week:       week,
			MatchupID:  matchupID,
			HomeTeamID: home.ID,
			AwayTeamID: away.ID,
		}

		if !inProgress {
			homeStats := stats[home.ID]
			awayStats := stats[away.ID]
			homeCats, awayCats, results := f.categoryResults(season, week, matchupID, home, away, homeStats, awayStats)

			switch {
			case homeCats > awayCats:
				matchup.WinnerTeamID = &home.ID
			case awayCats > homeCats:
				matchup.WinnerTeamID = &away.ID
			default:
				matchup.Tie = true
			}

			if err := f.db.Create(&matchup).Error; err != nil {
				return err
			}
			if err := f.db.Create(&results).Error; err != nil {
				return err
			}
			continue
		}

		if err := f.db.Create(&matchup).Error; err != nil {
			return err
		}
	}
	return nil
}

func (f *Fixtures) categoryResults(season, week, matchupID int, home, away models.Team, homeStats, awayStats *models.TeamWeeklyStat) (int, int, []models.MatchupCategoryResult) {
	homeVals := homeStats.CategoryValues()
	awayVals := awayStats.CategoryValues()

	homeCats, awayCats := 0, 0
	results := make([]models.MatchupCategoryResult, 0, 2*len(models.Categories))

	for _, cat := range models.Categories {
		hv, hok := homeVals[cat]
		av, aok := awayVals[cat]

		homeResult, awayResult := "T", "T"
		if hok && aok {
			switch {
			case hv > av:
				homeResult, awayResult = "W", "L"
				homeCats++
			case av > hv:
				homeResult, awayResult = "L", "W"
				awayCats++
			}
		}

		var homeScore, awayScore *float64
		if hok {
			v := hv
			homeScore = &v
		}
		if aok {
			v := av
			awayScore = &v
		}

		results = append(results,
			models.MatchupCategoryResult{
				LeagueID:       f.leagueID,
				Season:         season,
				Week:           week,
				MatchupID:      matchupID,
				TeamID:         home.ID,
				OpponentTeamID: away.ID,
				Category:       cat,
				Result:         homeResult,
				TeamScore:      homeScore,
				OppScore:       awayScore,
			},
			models.MatchupCategoryResult{
				LeagueID:       f.leagueID,
				Season:         season,
				Week:           week,
				MatchupID:      matchupID,
				TeamID:         away.ID,
				OpponentTeamID: home.ID,
				Category:       cat,
				Result:         awayResult,
				TeamScore:      awayScore,
				OppScore:       homeScore,
			},
		)
	}
	return homeCats, awayCats, results
}
