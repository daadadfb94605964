package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderBox(t *testing.T) {
	out := RenderBox("my title", "hello")
	assert.Contains(t, out, "MY TITLE")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "╰")
}

func TestRenderBox_NoTitle(t *testing.T) {
	out := RenderBox("", "just content")
	assert.Contains(t, out, "just content")
}

func TestPlanRemaining(t *testing.T) {
	assert.Contains(t, PlanRemaining(500, 2000), "1500 characters remaining")
	assert.Contains(t, PlanRemaining(1950, 2000), "50 characters remaining")
	assert.Contains(t, PlanRemaining(2100, 2000), "100 characters over the advisory limit")
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable(
		[]string{"CODE", "NAME"},
		[][]string{
			{"A1", "Alpha"},
			{"LONGCODE", "Beta"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "CODE")
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[1], "─")

	// Columns align on the widest cell.
	nameCol := strings.Index(lines[2], "Alpha")
	assert.Equal(t, nameCol, strings.Index(lines[3], "Beta"))
}

func TestRenderTable_Empty(t *testing.T) {
	out := RenderTable([]string{"A"}, nil)
	assert.Contains(t, out, "A")
}
