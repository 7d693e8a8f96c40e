package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type clockWindow struct {
	Start string `validate:"required,hhmm"`
	End   string `validate:"required,hhmm"`
	Seats int    `validate:"gte=0,max=10000"`
}

func TestValidateStruct(t *testing.T) {
	assert.Nil(t, ValidateStruct(clockWindow{Start: "09:00", End: "17:30", Seats: 10}))

	fields := ValidateStruct(clockWindow{Start: "9am", End: "25:00", Seats: -1})
	assert.Equal(t, "Must be a time of day in HH:MM format", fields["Start"])
	assert.Equal(t, "Must be a time of day in HH:MM format", fields["End"])
	assert.Equal(t, "Must be greater than or equal to 0", fields["Seats"])
}

func TestParseBool(t *testing.T) {
	assert.True(t, ParseBool("TRUE", false))
	assert.False(t, ParseBool("no", true))
	assert.True(t, ParseBool("maybe", true))
}
