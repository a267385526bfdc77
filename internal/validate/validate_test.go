package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_CollectsAllFailures(t *testing.T) {
	var errs Errors
	errs.MinLen("name", "J", 2, "Name must be at least 2 characters")
	errs.Email("email", "not-an-email")
	errs.MinLen("phone", "123", 10, "Phone number must be at least 10 characters")

	err := errs.Err()
	assert.Error(t, err)

	var verr *Errors
	assert.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)
	assert.Equal(t, "name", verr.Fields[0].Field)
	assert.Equal(t, "email", verr.Fields[1].Field)
	assert.Equal(t, "phone", verr.Fields[2].Field)
	assert.Contains(t, err.Error(), "Name must be at least 2 characters")
}

func TestErrors_NilWhenValid(t *testing.T) {
	var errs Errors
	errs.MinLen("name", "Jane Doe", 2, "too short")
	errs.Email("email", "jane@example.com")
	errs.IntRange("rating", 3, 1, 5, "out of range")
	errs.MinInt("guests", 10, 1, "too few")
	errs.MinFloat("budget", 5000, 1000, "too low")

	assert.NoError(t, errs.Err())
}

func TestMinLen_TrimsWhitespace(t *testing.T) {
	var errs Errors
	errs.MinLen("name", "   J   ", 2, "too short")
	assert.Error(t, errs.Err())
}

func TestEmail(t *testing.T) {
	valid := []string{
		"jane@example.com",
		"jane.doe+tag@sub.example.co.in",
		"  padded@example.com  ",
	}
	for _, v := range valid {
		assert.True(t, ValidEmail(v), v)
	}

	invalid := []string{
		"",
		"plain",
		"@example.com",
		"jane@",
		"jane@example",
		"jane doe@example.com",
	}
	for _, v := range invalid {
		assert.False(t, ValidEmail(v), v)
	}
}

func TestIntRange_Bounds(t *testing.T) {
	var errs Errors
	errs.IntRange("rating", 1, 1, 5, "out of range")
	errs.IntRange("rating", 5, 1, 5, "out of range")
	assert.NoError(t, errs.Err())

	errs.IntRange("rating", 0, 1, 5, "out of range")
	errs.IntRange("rating", 6, 1, 5, "out of range")
	assert.Len(t, errs.Fields, 2)
}

func TestOneOf(t *testing.T) {
	isColor := func(v string) bool { return v == "RED" || v == "BLUE" }

	var errs Errors
	errs.OneOf("color", "RED", isColor, "Invalid color")
	assert.NoError(t, errs.Err())

	errs.OneOf("color", "GREEN", isColor, "Invalid color")
	err := errs.Err()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid color")
}
