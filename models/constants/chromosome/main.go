package chromosome

import (
	"strconv"
	"strings"
)

// Strip strips a leading "chr" prefix so both "chr1" and "1" validate.
func Strip(text string) string {
	lowered := strings.ToLower(text)
	if strings.HasPrefix(lowered, "chr") {
		return text[3:]
	}
	return text
}

func IsValidHumanChromosome(text string) bool {
	stripped := Strip(text)

	// Check if number can be represented as an int and is non-zero
	chromNumber, _ := strconv.Atoi(stripped)
	if chromNumber > 0 {
		// It can..
		// Check if it is in range 1-23
		if chromNumber < 24 {
			return true
		}
	} else {
		// No it can't..
		// Check if it is an X, Y..
		loweredText := strings.ToLower(stripped)
		switch loweredText {
		case "x":
			return true
		case "y":
			return true
		}

		// ..or M (MT)
		switch strings.Contains(loweredText, "m") {
		case true:
			return true
		}
	}

	return false
}
