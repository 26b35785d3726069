package engine

import (
	"sort"

	"hooprank-api/models"
)

// CatRecord accumulates one category's outcomes for an ordered
// (team, opponent) pair. DiffSum/DiffN only advance when both sides reported
// a value.
type CatRecord struct {
	Wins    int
	Losses  int
	Ties    int
	DiffSum float64
	DiffN   int
}

// WinPct is (wins + 0.5*ties) / total, or 0.5 when the pair never met in
// this category.
func (r CatRecord) WinPct() float64 {
	total := r.Wins + r.Losses + r.Ties
	if total == 0 {
		return 0.5
	}
	return Finite((float64(r.Wins) + 0.5*float64(r.Ties)) / float64(total))
}

// AvgDiff is the mean signed value difference over comparable weeks.
func (r CatRecord) AvgDiff() float64 {
	if r.DiffN == 0 {
		return 0
	}
	return Finite(r.DiffSum / float64(r.DiffN))
}

// PairRecord accumulates the full head-to-head aggregate for an ordered
// (team, opponent) pair. (A,B) and (B,A) are mirror records.
type PairRecord struct {
	TeamID       int
	OpponentID   int
	OpponentName string

	Matchups int
	Wins     int
	Losses   int
	Ties     int

	Cats map[models.Category]*CatRecord
}

// NewPairRecord creates an empty pair aggregate.
func NewPairRecord(teamID, opponentID int) *PairRecord {
	cats := make(map[models.Category]*CatRecord, len(models.Categories))
	for _, c := range models.Categories {
		cats[c] = &CatRecord{}
	}
	return &PairRecord{TeamID: teamID, OpponentID: opponentID, Cats: cats}
}

// WinPct is the matchup-level (wins + 0.5*ties) / total, or 0.5 when the
// pair never met.
func (p *PairRecord) WinPct() float64 {
	total := p.Wins + p.Losses + p.Ties
	if total == 0 {
		return 0.5
	}
	return Finite((float64(p.Wins) + 0.5*float64(p.Ties)) / float64(total))
}

// RecordMatchup applies one completed matchup to both mirror records. Each
// category is decided by comparing raw values: higher wins, equal or missing
// (either side) is a tie, and missing values never contribute to the diff
// accumulators. The matchup's overall outcome is the category majority.
func RecordMatchup(home, away *PairRecord, homeVals, awayVals models.CategoryValues) {
	homeCats, awayCats := 0, 0

	for _, cat := range models.Categories {
		hv, hok := homeVals[cat]
		av, aok := awayVals[cat]

		h := home.Cats[cat]
		a := away.Cats[cat]

		if !hok || !aok {
			h.Ties++
			a.Ties++
			continue
		}

		switch {
		case hv > av:
			h.Wins++
			a.Losses++
			homeCats++
		case av > hv:
			h.Losses++
			a.Wins++
			awayCats++
		default:
			h.Ties++
			a.Ties++
		}

		h.DiffSum += hv - av
		h.DiffN++
		a.DiffSum += av - hv
		a.DiffN++
	}

	switch {
	case homeCats > awayCats:
		home.Wins++
		away.Losses++
	case awayCats > homeCats:
		away.Wins++
		home.Losses++
	default:
		home.Ties++
		away.Ties++
	}

	home.Matchups++
	away.Matchups++
}

// MergePairs sums records sharing the same (team, opponent) key, so
// multi-year aggregates combine counts before any ratio is derived. The
// result is ordered by win percentage, then matchup count, then opponent id.
func MergePairs(records []*PairRecord) []*PairRecord {
	type key struct{ team, opp int }

	merged := map[key]*PairRecord{}
	var order []key

	for _, r := range records {
		k := key{r.TeamID, r.OpponentID}
		m, ok := merged[k]
		if !ok {
			m = NewPairRecord(r.TeamID, r.OpponentID)
			merged[k] = m
			order = append(order, k)
		}
		if r.OpponentName != "" {
			m.OpponentName = r.OpponentName
		}
		m.Matchups += r.Matchups
		m.Wins += r.Wins
		m.Losses += r.Losses
		m.Ties += r.Ties
		for _, c := range models.Categories {
			src := r.Cats[c]
			dst := m.Cats[c]
			dst.Wins += src.Wins
			dst.Losses += src.Losses
			dst.Ties += src.Ties
			dst.DiffSum += src.DiffSum
			dst.DiffN += src.DiffN
		}
	}

	out := make([]*PairRecord, 0, len(merged))
	for _, k := range order {
		out = append(out, merged[k])
	}
	sort.SliceStable(out, func(i, j int) bool {
		wi, wj := out[i].WinPct(), out[j].WinPct()
		if wi != wj {
			return wi > wj
		}
		if out[i].Matchups != out[j].Matchups {
			return out[i].Matchups > out[j].Matchups
		}
		return out[i].OpponentID < out[j].OpponentID
	})
	return out
}
