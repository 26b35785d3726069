package migrations

import "gorm.io/gorm"

func GetLeagueMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_10_01_000000_create_league_tables",
			Up: func(db *gorm.DB) error {
				// Teams (one row per franchise per season)
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS teams (
						id BIGSERIAL PRIMARY KEY,
						league_id INT NOT NULL,
						season INT NOT NULL,
						fantasy_team_id INT NOT NULL,
						name VARCHAR(255) NOT NULL,
						abbrev VARCHAR(16),
						owner VARCHAR(64),
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						UNIQUE (league_id, season, fantasy_team_id)
					);
					CREATE INDEX IF NOT EXISTS idx_teams_league_id ON teams(league_id);
				`).Error; err != nil {
					return err
				}

				// Raw weekly category totals
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS team_weekly_stats (
						id BIGSERIAL PRIMARY KEY,
						league_id INT NOT NULL,
						season INT NOT NULL,
						week INT NOT NULL,
						team_id BIGINT NOT NULL,
						games_played INT DEFAULT 0,
						fgm INT DEFAULT 0,
						fga INT DEFAULT 0,
						ftm INT DEFAULT 0,
						fta INT DEFAULT 0,
						three_pm INT DEFAULT 0,
						reb INT DEFAULT 0,
						ast INT DEFAULT 0,
						stl INT DEFAULT 0,
						blk INT DEFAULT 0,
						dd INT DEFAULT 0,
						pts INT DEFAULT 0,
						fg_pct FLOAT NULL,
						ft_pct FLOAT NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						UNIQUE (league_id, season, week, team_id),
						FOREIGN KEY (team_id) REFERENCES teams(id) ON DELETE CASCADE
					);
					CREATE INDEX IF NOT EXISTS idx_team_weekly_stats_week ON team_weekly_stats(league_id, season, week);
				`).Error; err != nil {
					return err
				}

				// Matchups and their per-category outcomes
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS matchups (
						id BIGSERIAL PRIMARY KEY,
						league_id INT NOT NULL,
						season INT NOT NULL,
						week INT NOT NULL,
						matchup_id INT NOT NULL,
						home_team_id BIGINT NOT NULL,
						away_team_id BIGINT NOT NULL,
						winner_team_id BIGINT NULL,
						tie BOOLEAN DEFAULT FALSE,
						is_playoffs BOOLEAN DEFAULT FALSE,
						is_consolation BOOLEAN DEFAULT FALSE,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						UNIQUE (league_id, season, week, matchup_id),
						FOREIGN KEY (home_team_id) REFERENCES teams(id) ON DELETE CASCADE,
						FOREIGN KEY (away_team_id) REFERENCES teams(id) ON DELETE CASCADE,
						FOREIGN KEY (winner_team_id) REFERENCES teams(id)
					);
					CREATE INDEX IF NOT EXISTS idx_matchups_week ON matchups(league_id, season, week);
				`).Error; err != nil {
					return err
				}

				return db.Exec(`
					CREATE TABLE IF NOT EXISTS matchup_category_results (
						id BIGSERIAL PRIMARY KEY,
						league_id INT NOT NULL,
						season INT NOT NULL,
						week INT NOT NULL,
						matchup_id INT NOT NULL,
						team_id BIGINT NOT NULL,
						opponent_team_id BIGINT NOT NULL,
						category VARCHAR(8) NOT NULL,
						result VARCHAR(1) NOT NULL,
						team_score FLOAT NULL,
						opp_score FLOAT NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						UNIQUE (league_id, season, week, matchup_id, team_id, category),
						FOREIGN KEY (team_id) REFERENCES teams(id) ON DELETE CASCADE
					);
					CREATE INDEX IF NOT EXISTS idx_matchup_cat_results_week ON matchup_category_results(league_id, season, week);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec(`
					DROP TABLE IF EXISTS matchup_category_results;
					DROP TABLE IF EXISTS matchups;
					DROP TABLE IF EXISTS team_weekly_stats;
					DROP TABLE IF EXISTS teams;
				`).Error
			},
		},
		{
			Name: "2025_10_01_000001_create_aggregate_tables",
			Up: func(db *gorm.DB) error {
				// Weekly z-score cache (team_id 0 is the league-average row)
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS week_team_stats (
						id BIGSERIAL PRIMARY KEY,
						league_id INT NOT NULL,
						year INT NOT NULL,
						week INT NOT NULL,
						team_id INT NOT NULL,
						team_name VARCHAR(255),
						is_league_average BOOLEAN DEFAULT FALSE,
						result_score FLOAT NULL,
						total_z FLOAT DEFAULT 0,
						fg_z FLOAT DEFAULT 0,
						ft_z FLOAT DEFAULT 0,
						three_pm_z FLOAT DEFAULT 0,
						reb_z FLOAT DEFAULT 0,
						ast_z FLOAT DEFAULT 0,
						stl_z FLOAT DEFAULT 0,
						blk_z FLOAT DEFAULT 0,
						dd_z FLOAT DEFAULT 0,
						pts_z FLOAT DEFAULT 0,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						UNIQUE (league_id, year, week, team_id)
					);
					CREATE INDEX IF NOT EXISTS idx_week_team_stats_week ON week_team_stats(league_id, year, week);
				`).Error; err != nil {
					return err
				}

				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS season_team_metrics (
						id BIGSERIAL PRIMARY KEY,
						league_id INT NOT NULL,
						year INT NOT NULL,
						team_id INT NOT NULL,
						team_name VARCHAR(255),
						weeks INT DEFAULT 0,
						sum_total_z FLOAT DEFAULT 0,
						avg_total_z FLOAT DEFAULT 0,
						actual_wins FLOAT DEFAULT 0,
						expected_wins FLOAT DEFAULT 0,
						luck FLOAT DEFAULT 0,
						avg_luck FLOAT DEFAULT 0,
						fraud_score FLOAT DEFAULT 0,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						UNIQUE (league_id, year, team_id)
					);
				`).Error; err != nil {
					return err
				}

				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS team_history_agg (
						id BIGSERIAL PRIMARY KEY,
						league_id INT NOT NULL,
						year INT NOT NULL,
						week INT NOT NULL,
						team_id INT NOT NULL,
						team_name VARCHAR(255),
						rank INT DEFAULT 0,
						total_z FLOAT DEFAULT 0,
						cumulative_total_z FLOAT DEFAULT 0,
						league_average_total_z FLOAT DEFAULT 0,
						fg_z FLOAT DEFAULT 0,
						ft_z FLOAT DEFAULT 0,
						three_pm_z FLOAT DEFAULT 0,
						reb_z FLOAT DEFAULT 0,
						ast_z FLOAT DEFAULT 0,
						stl_z FLOAT DEFAULT 0,
						blk_z FLOAT DEFAULT 0,
						dd_z FLOAT DEFAULT 0,
						pts_z FLOAT DEFAULT 0,
						league_fg_z FLOAT DEFAULT 0,
						league_ft_z FLOAT DEFAULT 0,
						league_three_pm_z FLOAT DEFAULT 0,
						league_reb_z FLOAT DEFAULT 0,
						league_ast_z FLOAT DEFAULT 0,
						league_stl_z FLOAT DEFAULT 0,
						league_blk_z FLOAT DEFAULT 0,
						league_dd_z FLOAT DEFAULT 0,
						league_pts_z FLOAT DEFAULT 0,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						UNIQUE (league_id, year, week, team_id)
					);
					CREATE INDEX IF NOT EXISTS idx_team_history_agg_team ON team_history_agg(league_id, year, team_id);
				`).Error; err != nil {
					return err
				}

				return db.Exec(`
					CREATE TABLE IF NOT EXISTS opponent_matrix_agg_year (
						id BIGSERIAL PRIMARY KEY,
						league_id INT NOT NULL,
						year INT NOT NULL,
						team_id INT NOT NULL,
						opponent_team_id INT NOT NULL,
						opponent_name VARCHAR(255),
						matchups INT DEFAULT 0,
						wins INT DEFAULT 0,
						losses INT DEFAULT 0,
						ties INT DEFAULT 0,
						fg_wins INT DEFAULT 0, fg_losses INT DEFAULT 0, fg_ties INT DEFAULT 0, fg_diff_sum FLOAT DEFAULT 0, fg_diff_n INT DEFAULT 0,
						ft_wins INT DEFAULT 0, ft_losses INT DEFAULT 0, ft_ties INT DEFAULT 0, ft_diff_sum FLOAT DEFAULT 0, ft_diff_n INT DEFAULT 0,
						three_pm_wins INT DEFAULT 0, three_pm_losses INT DEFAULT 0, three_pm_ties INT DEFAULT 0, three_pm_diff_sum FLOAT DEFAULT 0, three_pm_diff_n INT DEFAULT 0,
						reb_wins INT DEFAULT 0, reb_losses INT DEFAULT 0, reb_ties INT DEFAULT 0, reb_diff_sum FLOAT DEFAULT 0, reb_diff_n INT DEFAULT 0,
						ast_wins INT DEFAULT 0, ast_losses INT DEFAULT 0, ast_ties INT DEFAULT 0, ast_diff_sum FLOAT DEFAULT 0, ast_diff_n INT DEFAULT 0,
						stl_wins INT DEFAULT 0, stl_losses INT DEFAULT 0, stl_ties INT DEFAULT 0, stl_diff_sum FLOAT DEFAULT 0, stl_diff_n INT DEFAULT 0,
						blk_wins INT DEFAULT 0, blk_losses INT DEFAULT 0, blk_ties INT DEFAULT 0, blk_diff_sum FLOAT DEFAULT 0, blk_diff_n INT DEFAULT 0,
						dd_wins INT DEFAULT 0, dd_losses INT DEFAULT 0, dd_ties INT DEFAULT 0, dd_diff_sum FLOAT DEFAULT 0, dd_diff_n INT DEFAULT 0,
						pts_wins INT DEFAULT 0, pts_losses INT DEFAULT 0, pts_ties INT DEFAULT 0, pts_diff_sum FLOAT DEFAULT 0, pts_diff_n INT DEFAULT 0,
						created_at TIMESTAMP DEFAULT NOW(),
						UNIQUE (league_id, year, team_id, opponent_team_id)
					);
					CREATE INDEX IF NOT EXISTS idx_opp_matrix_agg_year_team ON opponent_matrix_agg_year(league_id, year, team_id);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec(`
					DROP TABLE IF EXISTS opponent_matrix_agg_year;
					DROP TABLE IF EXISTS team_history_agg;
					DROP TABLE IF EXISTS season_team_metrics;
					DROP TABLE IF EXISTS week_team_stats;
				`).Error
			},
		},
	}
}
