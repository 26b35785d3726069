package models

// PlayoffStartWeeks maps a season to the matchup week its playoffs begin.
// Regular season ends the week before.
var PlayoffStartWeeks = map[int]int{
	2019: 21,
	2020: 21,
	2021: 18,
	2022: 22,
	2023: 19,
	2024: 20,
	2025: 18,
	2026: 19,
}

const defaultMaxWeek = 20

// MaxWeekForSeason is the last matchup week considered for a season: the
// regular season plus the first two playoff rounds.
func MaxWeekForSeason(season int) int {
	if start, ok := PlayoffStartWeeks[season]; ok {
		return start + 2
	}
	return defaultMaxWeek
}
