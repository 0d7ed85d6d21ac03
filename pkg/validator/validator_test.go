package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	v := New()
	assert.True(t, v.Valid())

	v.Check(false, "workout_type", "must be provided")
	v.Check(false, "workout_type", "second message is ignored")
	v.Check(true, "data", "never added")

	assert.False(t, v.Valid())
	assert.Equal(t, map[string]string{"workout_type": "must be provided"}, v.Errors)
}

func TestPermittedValue(t *testing.T) {
	assert.True(t, PermittedValue("RUN", "SWM", "RUN", "WLK"))
	assert.False(t, PermittedValue("BIKE", "SWM", "RUN", "WLK"))
}
