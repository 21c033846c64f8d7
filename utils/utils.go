package utils

import "strings"

func StringInSlice(a string, list []string) bool {
	for _, b := range list {
		if b == a {
			return true
		}
	}
	return false
}

// SplitCsvParam splits a comma separated query parameter, trimming
// whitespace and dropping empty entries.
func SplitCsvParam(param string) []string {
	var parts []string
	for _, part := range strings.Split(param, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
