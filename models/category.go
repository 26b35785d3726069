package models

// Category is one of the nine head-to-head scoring categories.
type Category string

const (
	CatFGPct         Category = "FG%"
	CatFTPct         Category = "FT%"
	CatThreePointers Category = "3PM"
	CatRebounds      Category = "REB"
	CatAssists       Category = "AST"
	CatSteals        Category = "STL"
	CatBlocks        Category = "BLK"
	CatDoubleDoubles Category = "DD"
	CatPoints        Category = "PTS"
)

// Categories lists all scoring categories in display order.
var Categories = []Category{
	CatFGPct,
	CatFTPct,
	CatThreePointers,
	CatRebounds,
	CatAssists,
	CatSteals,
	CatBlocks,
	CatDoubleDoubles,
	CatPoints,
}

var categoryKeys = map[Category]string{
	CatFGPct:         "fg",
	CatFTPct:         "ft",
	CatThreePointers: "three_pm",
	CatRebounds:      "reb",
	CatAssists:       "ast",
	CatSteals:        "stl",
	CatBlocks:        "blk",
	CatDoubleDoubles: "dd",
	CatPoints:        "pts",
}

// Key returns the stable storage key for a category (column prefix in the
// aggregate tables).
func (c Category) Key() string {
	return categoryKeys[c]
}

// IsPercentage reports whether the category is a ratio-type stat rather than
// a counting stat.
func (c Category) IsPercentage() bool {
	return c == CatFGPct || c == CatFTPct
}

// CategoryValues maps categories to raw weekly values. A missing key means
// the team did not report a value for that category (e.g. FG% with zero
// attempts).
type CategoryValues map[Category]float64

// ZKey returns the JSON key used for this category's z-score ("FG%_z", ...).
func (c Category) ZKey() string {
	return string(c) + "_z"
}

// RankKey returns the JSON key used for this category's rank ("FG%_rank").
func (c Category) RankKey() string {
	return string(c) + "_rank"
}
