package columnKind

import (
	"genobrowse/api/models/constants"
	"strings"
)

const (
	Unknown  constants.ColumnKind = ""
	String   constants.ColumnKind = "string"
	Integer  constants.ColumnKind = "integer"
	Float    constants.ColumnKind = "float"
	Category constants.ColumnKind = "category"
	Flag     constants.ColumnKind = "flag"
)

func CastToColumnKind(text string) constants.ColumnKind {
	switch strings.ToLower(text) {
	case "string":
		return String
	case "integer", "int":
		return Integer
	case "float", "double":
		return Float
	case "category", "categorical":
		return Category
	case "flag", "url":
		return Flag
	default:
		return Unknown
	}
}

func IsNumeric(kind constants.ColumnKind) bool {
	return kind == Integer || kind == Float
}
