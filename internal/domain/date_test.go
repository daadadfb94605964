package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOfAndTimeOf(t *testing.T) {
	at := time.Date(2026, 3, 5, 8, 7, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-05", DateOf(at))
	assert.Equal(t, "08:07", TimeOf(at))
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2026-03-15"))
	assert.False(t, ValidDate("15/03/2026"))
	assert.False(t, ValidDate("2026-3-15"))
	assert.False(t, ValidDate("2026-02-30"))
	assert.False(t, ValidDate(""))
}

func TestValidTime(t *testing.T) {
	assert.True(t, ValidTime("09:05"))
	assert.True(t, ValidTime("23:59"))
	assert.False(t, ValidTime("9:05"))
	assert.False(t, ValidTime("24:00"))
	assert.False(t, ValidTime(""))
}

func TestFormatDateBR(t *testing.T) {
	assert.Equal(t, "15/03/2026", FormatDateBR("2026-03-15"))
	assert.Equal(t, "garbage", FormatDateBR("garbage"))
	assert.Equal(t, "", FormatDateBR(""))
}
