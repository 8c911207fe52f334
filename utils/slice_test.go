package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, UniqueStrings([]string{"a", "b", "a", "c", "b"}))
	assert.Equal(t, []string{}, UniqueStrings(nil))
	assert.Equal(t, []string{"x"}, UniqueStrings([]string{"x", "x", "x"}))
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-enough")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-enough", hash)
	assert.True(t, CheckPassword(hash, "s3cret-enough"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
