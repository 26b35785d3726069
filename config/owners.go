package config

// Ownership metadata. Team ids are stable across seasons even when teams
// change hands, so multi-year views need to know when the current owner
// took over to avoid attributing a previous owner's results.

// CurrentOwners maps each fantasy team id to the short code of its current
// owner.
var CurrentOwners = map[int]string{
	1:  "MATTEO",
	2:  "ALE",
	3:  "WILL",
	4:  "YANNICK",
	5:  "MARION",
	6:  "JORDAN",
	7:  "JULES",
	8:  "CALT",
	9:  "RYAN",
	10: "ADDIE",
	11: "THOMAS",
	12: "RAMZI",
}

// OwnerStartYears maps each fantasy team id to the first season its current
// owner controlled the team.
var OwnerStartYears = map[int]int{
	1:  2014,
	2:  2016,
	3:  2014,
	4:  2014,
	5:  2023,
	6:  2016,
	7:  2020,
	8:  2014,
	9:  2015,
	10: 2017,
	11: 2023,
	12: 2018,
}

// OwnerCode returns the current owner's short code for a team id, or ""
// when unknown.
func OwnerCode(teamID int) string {
	return CurrentOwners[teamID]
}

// OwnerStartYear returns the season the current owner took over, or 0 when
// unknown.
func OwnerStartYear(teamID int) int {
	return OwnerStartYears[teamID]
}

// InCurrentOwnerEra reports whether a (team, season) pair belongs to the
// current owner. Unknown teams are excluded rather than misattributed.
func InCurrentOwnerEra(teamID, season int) bool {
	start, ok := OwnerStartYears[teamID]
	return ok && season >= start
}

// OwnersForSeason builds the team id to owner code map for one season,
// labeling only teams whose current owner had already taken over.
func OwnersForSeason(season int) map[int]string {
	out := make(map[int]string, len(OwnerStartYears))
	for teamID, start := range OwnerStartYears {
		if season < start {
			continue
		}
		if code := CurrentOwners[teamID]; code != "" {
			out[teamID] = code
		}
	}
	return out
}
