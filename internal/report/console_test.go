package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zlodag/leave-planner/internal/roster"
)

func TestWriteConsole(t *testing.T) {
	day := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	heavy := leaveShift(101, "Annual Leave AM", day, "Approved")
	heavyPM := leaveShift(101, "Annual Leave PM", day, "Approved")
	light := leaveShift(102, "Conference AM", day, "Pending")
	light.FullName = "Field, Ben"

	doc := Build(fixtureInput([]roster.LeaveRecord{heavy, heavyPM, light}))

	var buf bytes.Buffer
	WriteConsole(&buf, doc, 10)
	out := buf.String()

	assert.Contains(t, out, "SMO Leave Report")
	assert.Contains(t, out, "Window: 2025-03-15 to 2025-09-15 (6 months)")
	assert.Contains(t, out, "Qualifying staff: 2")
	assert.Contains(t, out, "Leave records: 3")
	assert.Contains(t, out, "Smith, Alice | shifts 2 | approved 2 | pending 0 | days 1.0")
	assert.Contains(t, out, "Field, Ben | shifts 1 | approved 0 | pending 1 | days 0.5")

	// Heavier leave taker leads the top section.
	topSection := out[strings.Index(out, "Top 10 by leave days"):]
	require.NotEmpty(t, topSection)
	assert.Less(t, strings.Index(topSection, "Smith, Alice"), strings.Index(topSection, "Field, Ben"))
}

func TestWriteConsoleEmpty(t *testing.T) {
	var buf bytes.Buffer
	WriteConsole(&buf, Build(fixtureInput(nil)), 10)

	out := buf.String()
	assert.Contains(t, out, "No qualifying staff found.")
	assert.NotContains(t, out, "Top 10 by leave days")
}
