package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wbaizer/naologic-reflow/internal/app"
	"github.com/wbaizer/naologic-reflow/internal/calendar"
	"github.com/wbaizer/naologic-reflow/internal/testutil"
)

func newTestPlacer(t *testing.T) *placer {
	t.Helper()
	cal, err := calendar.New(testutil.NewTestCenter("mill-a"))
	require.NoError(t, err)
	return newPlacer(cal)
}

func TestPlaceMovable_EndpointTiesAreNotConflicts(t *testing.T) {
	at := testutil.At
	p := newTestPlacer(t)
	p.commit("BEFORE", at(0, 8, 0), at(0, 10, 0))

	rec, err := p.placeMovable(testutil.NewTestOrder("001",
		testutil.Window(at(0, 10, 0), at(0, 11, 0))))
	require.NoError(t, err)

	assert.Equal(t, app.ReasonNoChange, rec.Reason)
	assert.Equal(t, at(0, 10, 0), rec.NewStart, "starting exactly at a placed end is allowed")
}

func TestPlaceMovable_BumpsPastSuccessiveBlocks(t *testing.T) {
	at := testutil.At
	p := newTestPlacer(t)
	p.commit("B1", at(0, 8, 0), at(0, 10, 0))
	p.commit("B2", at(0, 10, 0), at(0, 12, 0))

	rec, err := p.placeMovable(testutil.NewTestOrder("001",
		testutil.Window(at(0, 9, 0), at(0, 10, 0))))
	require.NoError(t, err)

	assert.Equal(t, at(0, 12, 0), rec.NewStart)
	assert.Equal(t, app.ReasonCenterBusy, rec.Reason)
	assert.Equal(t, "B1", rec.BlockedBy, "the block overlapping the original interval is named")
}

func TestPlaceMovable_NamesLatestEndingPredecessor(t *testing.T) {
	at := testutil.At
	p := newTestPlacer(t)
	p.commit("EARLY", at(0, 8, 0), at(0, 9, 0))
	p.commit("LATE", at(0, 9, 0), at(0, 12, 0))

	rec, err := p.placeMovable(testutil.NewTestOrder("001",
		testutil.Window(at(0, 9, 30), at(0, 10, 30)),
		testutil.DependsOn("EARLY", "LATE")))
	require.NoError(t, err)

	assert.Equal(t, app.ReasonPredecessor, rec.Reason)
	assert.Equal(t, "LATE", rec.BlockedBy)
	assert.Equal(t, at(0, 12, 0), rec.NewStart)
}

func TestPlaceMovable_UnplacedPredecessorIsInternalError(t *testing.T) {
	p := newTestPlacer(t)

	_, err := p.placeMovable(testutil.NewTestOrder("001", testutil.DependsOn("GHOST")))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "internal")
}

// Pure shift-boundary snapping has no dedicated reason tag: an order whose
// original start sits outside any shift moves, but reports no_change.
func TestPlaceMovable_WeekendSnapReportsNoChange(t *testing.T) {
	at := testutil.At
	p := newTestPlacer(t)

	// Saturday start on a Mon-Fri center.
	rec, err := p.placeMovable(testutil.NewTestOrder("001",
		testutil.Window(at(5, 9, 0), at(5, 10, 0))))
	require.NoError(t, err)

	assert.Equal(t, at(7, 8, 0), rec.NewStart, "snaps to Monday shift start")
	assert.Equal(t, app.ReasonNoChange, rec.Reason)
	assert.Equal(t, 2820, rec.DisplacementMin, "Saturday 09:00 to Monday 08:00")
}

func TestPlaceFixed_CommitsOutsideWorkingTime(t *testing.T) {
	at := testutil.At
	p := newTestPlacer(t)

	// A weekend maintenance block is legal; it simply occupies the center.
	rec := p.placeFixed(testutil.NewTestOrder("M", testutil.AsMaintenance(),
		testutil.Window(at(5, 6, 0), at(6, 18, 0))))

	assert.Equal(t, app.ReasonFixedMaintenance, rec.Reason)
	assert.Equal(t, at(5, 6, 0), rec.NewStart)
	assert.Zero(t, rec.DisplacementMin)

	iv, ok := p.byNumber["M"]
	require.True(t, ok)
	assert.Equal(t, at(6, 18, 0), iv.end)
}

func TestFirstConflict_ReturnsEarliestCommitted(t *testing.T) {
	at := testutil.At
	p := newTestPlacer(t)
	p.commit("FIRST", at(0, 9, 0), at(0, 11, 0))
	p.commit("SECOND", at(0, 10, 0), at(0, 12, 0))

	conflict := p.firstConflict(at(0, 10, 30), at(0, 13, 0))
	require.NotNil(t, conflict)
	assert.Equal(t, "FIRST", conflict.number)

	assert.Nil(t, p.firstConflict(at(0, 12, 0), at(0, 13, 0)))
}
