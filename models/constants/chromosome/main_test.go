package chromosome

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	assert.Equal(t, "1", Strip("chr1"))
	assert.Equal(t, "X", Strip("chrX"))
	assert.Equal(t, "21", Strip("21"))
}

func TestIsValidHumanChromosome(t *testing.T) {
	for _, valid := range []string{"chr1", "chr23", "1", "22", "chrX", "y", "chrM", "MT"} {
		assert.True(t, IsValidHumanChromosome(valid), valid)
	}

	for _, invalid := range []string{"chr0", "chr24", "chr99", "banana", ""} {
		assert.False(t, IsValidHumanChromosome(invalid), invalid)
	}
}
