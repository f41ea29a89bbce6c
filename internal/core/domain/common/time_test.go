package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHourOfDay(t *testing.T) {
	cases := []struct {
		raw     string
		isValid bool
	}{
		{raw: "00:00", isValid: true},
		{raw: "08:00", isValid: true},
		{raw: "23:59", isValid: true},
		{raw: "24:00", isValid: false},
		{raw: "8:00", isValid: false},
		{raw: "08:60", isValid: false},
		{raw: "08-00", isValid: false},
		{raw: "08:00:00", isValid: false},
		{raw: "", isValid: false},
	}

	for _, testcase := range cases {
		t.Run(testcase.raw, func(t *testing.T) {
			hour, err := ParseHourOfDay(testcase.raw)
			if testcase.isValid {
				assert.Nil(t, err)
				assert.Equal(t, testcase.raw, hour.String())
			} else {
				assert.ErrorIs(t, err, ErrInvalidHourOfDay)
			}
		})
	}
}

func TestHourPrefix(t *testing.T) {
	hour, err := ParseHourOfDay("08:30")
	assert.Nil(t, err)
	assert.Equal(t, "08", hour.HourPrefix())
}

func TestParseDateOnly(t *testing.T) {
	cases := []struct {
		raw     string
		isValid bool
	}{
		{raw: "2024-06-03", isValid: true},
		{raw: "2024-02-29", isValid: true},
		{raw: "2023-02-29", isValid: false},
		{raw: "2024-13-01", isValid: false},
		{raw: "2024-6-3", isValid: false},
		{raw: "03-06-2024", isValid: false},
		{raw: "", isValid: false},
	}

	for _, testcase := range cases {
		t.Run(testcase.raw, func(t *testing.T) {
			date, err := ParseDateOnly(testcase.raw)
			if testcase.isValid {
				assert.Nil(t, err)
				assert.Equal(t, testcase.raw, date.String())
			} else {
				assert.ErrorIs(t, err, ErrInvalidDateOnly)
			}
		})
	}
}
