package filterKind

import (
	"genobrowse/api/models/constants"
	"strings"
)

const (
	Unknown          constants.FilterKind = ""
	Equality         constants.FilterKind = "equality"
	RangeContainment constants.FilterKind = "range-containment"
	NumericRange     constants.FilterKind = "numeric-range"
	Substring        constants.FilterKind = "substring"
	Presence         constants.FilterKind = "presence"
)

func CastToFilterKind(text string) constants.FilterKind {
	switch strings.ToLower(text) {
	case "equality":
		return Equality
	case "range-containment":
		return RangeContainment
	case "numeric-range":
		return NumericRange
	case "substring":
		return Substring
	case "presence":
		return Presence
	default:
		return Unknown
	}
}
