package sort

import (
	"genobrowse/api/models/constants"
	"strings"
)

const (
	Undefined       constants.SortOrder = ""
	Alphabetical    constants.SortOrder = "alpha" // chart axes
	CountDescending constants.SortOrder = "count" // ranked lists (top-N)
)

func CastToSortOrder(text string) constants.SortOrder {
	switch strings.ToLower(text) {
	case "alpha":
		return Alphabetical
	case "count":
		return CountDescending
	default:
		return Undefined
	}
}
