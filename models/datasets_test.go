package models

import (
	"testing"

	"genobrowse/api/models/constants"

	"github.com/stretchr/testify/assert"
)

func TestRowTypedAccessors(t *testing.T) {
	row := Row{
		"Start":         "1,250,000",
		"Quality_Score": "87.5",
		"dbSNP_ID":      "rs123",
		"End":           constants.NoValuePlaceholder,
		"Length":        "NaN",
	}

	t.Run("int parsing strips thousands separators", func(t *testing.T) {
		value, ok := row.Int("Start")
		assert.True(t, ok)
		assert.Equal(t, 1250000, value)
	})

	t.Run("float parsing", func(t *testing.T) {
		value, ok := row.Float("Quality_Score")
		assert.True(t, ok)
		assert.Equal(t, 87.5, value)
	})

	t.Run("missing markers never parse", func(t *testing.T) {
		_, ok := row.Int("End")
		assert.False(t, ok)

		_, ok = row.Float("Length")
		assert.False(t, ok)

		_, ok = row.Int("Absent")
		assert.False(t, ok)
	})

	t.Run("non-numeric text never parses", func(t *testing.T) {
		_, ok := row.Float("dbSNP_ID")
		assert.False(t, ok)
	})
}
