package service

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wbaizer/naologic-reflow/internal/app"
	"github.com/wbaizer/naologic-reflow/internal/contract"
	"github.com/wbaizer/naologic-reflow/internal/domain"
	"github.com/wbaizer/naologic-reflow/internal/testutil"
)

type captureObserver struct {
	mu     sync.Mutex
	events []RunEvent
}

func (c *captureObserver) ObserveRun(_ context.Context, event RunEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func TestSchedule_MultipleCenters(t *testing.T) {
	at := testutil.At
	centers := []domain.WorkCenter{
		testutil.NewTestCenter("mill-a"),
		testutil.NewTestCenter("lathe-c"),
	}
	orders := []domain.WorkOrder{
		testutil.NewTestOrder("A1", testutil.Window(at(0, 8, 0), at(0, 10, 0))),
		testutil.NewTestOrder("C1", testutil.OnCenter("lathe-c"), testutil.Window(at(0, 8, 0), at(0, 10, 0))),
		testutil.NewTestOrder("A2", testutil.Window(at(0, 9, 0), at(0, 11, 0))),
	}

	svc := NewScheduleService()
	resp, err := svc.Schedule(context.Background(), contract.NewScheduleRequest(centers, orders))
	require.NoError(t, err)

	require.Len(t, resp.Centers, 2)
	assert.Equal(t, "lathe-c", resp.Centers[0].Center, "response sorts by center name")
	assert.Equal(t, "mill-a", resp.Centers[1].Center)

	// Orders on different centers never interact: C1 keeps its slot
	// while A2 yields to A1 on its own center.
	latheRec := resp.Centers[0].Changes[0]
	assert.Equal(t, app.ReasonNoChange, latheRec.Reason)

	millOrders := resp.Centers[1].Orders
	require.Len(t, millOrders, 2)
	assert.Equal(t, at(0, 10, 0), millOrders[1].Start, "A2 displaced behind A1")

	assert.NotEmpty(t, resp.RunID)
	assert.Equal(t, 1, resp.Summary.Changed)
	assert.Equal(t, 2, resp.Summary.Unchanged)
}

func TestSchedule_UnknownCenterFailsInvocation(t *testing.T) {
	centers := []domain.WorkCenter{testutil.NewTestCenter("mill-a")}
	orders := []domain.WorkOrder{
		testutil.NewTestOrder("001"),
		testutil.NewTestOrder("002", testutil.OnCenter("ghost-center")),
	}

	svc := NewScheduleService()
	resp, err := svc.Schedule(context.Background(), contract.NewScheduleRequest(centers, orders))

	assert.Nil(t, resp)
	var schedErr *app.ScheduleError
	require.ErrorAs(t, err, &schedErr)
	assert.Equal(t, app.ErrForeignOrder, schedErr.Code)
	assert.Equal(t, []string{"002"}, schedErr.IDs)
}

func TestSchedule_DuplicateCenterNames(t *testing.T) {
	centers := []domain.WorkCenter{
		testutil.NewTestCenter("mill-a"),
		testutil.NewTestCenter("mill-a"),
	}

	svc := NewScheduleService()
	_, err := svc.Schedule(context.Background(), contract.NewScheduleRequest(centers, nil))

	var schedErr *app.ScheduleError
	require.ErrorAs(t, err, &schedErr)
	assert.Equal(t, app.ErrInputInvalid, schedErr.Code)
	assert.Equal(t, []string{"mill-a"}, schedErr.IDs)
}

func TestSchedule_EngineFailureCarriesCenterContext(t *testing.T) {
	centers := []domain.WorkCenter{
		testutil.NewTestCenter("mill-a"),
		{Name: "shiftless"},
	}
	orders := []domain.WorkOrder{
		testutil.NewTestOrder("001"),
		testutil.NewTestOrder("X", testutil.OnCenter("shiftless")),
	}

	svc := NewScheduleService()
	_, err := svc.Schedule(context.Background(), contract.NewScheduleRequest(centers, orders))

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"shiftless"`)
	var schedErr *app.ScheduleError
	require.ErrorAs(t, err, &schedErr, "typed engine error survives wrapping")
	assert.Equal(t, app.ErrNoShifts, schedErr.Code)
}

func TestSchedule_EmitsRunEvent(t *testing.T) {
	at := testutil.At
	obs := &captureObserver{}
	svc := NewScheduleService(obs)

	centers := []domain.WorkCenter{testutil.NewTestCenter("mill-a")}
	orders := []domain.WorkOrder{
		testutil.NewTestOrder("001", testutil.Window(at(0, 8, 0), at(0, 9, 0))),
	}

	_, err := svc.Schedule(context.Background(), contract.NewScheduleRequest(centers, orders))
	require.NoError(t, err)

	require.Len(t, obs.events, 1)
	event := obs.events[0]
	assert.Equal(t, "schedule", event.Name)
	assert.True(t, event.Success)
	assert.NotEmpty(t, event.RunID)
	assert.Equal(t, 1, event.Fields["centers"])
	assert.Equal(t, 1, event.Fields["orders"])
}

func TestSchedule_FailureEventStillEmitted(t *testing.T) {
	obs := &captureObserver{}
	svc := NewScheduleService(obs)

	orders := []domain.WorkOrder{testutil.NewTestOrder("001", testutil.OnCenter("nowhere"))}
	_, err := svc.Schedule(context.Background(), contract.NewScheduleRequest(nil, orders))
	require.Error(t, err)

	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
	assert.Error(t, obs.events[0].Err)
}

func TestSchedule_NowOverrideStampsResponse(t *testing.T) {
	frozen := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)
	req := contract.NewScheduleRequest([]domain.WorkCenter{testutil.NewTestCenter("mill-a")}, nil)
	req.Now = &frozen

	svc := NewScheduleService()
	resp, err := svc.Schedule(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, frozen, resp.GeneratedAt)
}

func TestSchedule_DeterministicAcrossRuns(t *testing.T) {
	at := testutil.At
	centers := []domain.WorkCenter{
		testutil.NewTestCenter("mill-a"),
		testutil.NewTestCenter("lathe-c"),
	}
	orders := []domain.WorkOrder{
		testutil.NewTestOrder("A1", testutil.Window(at(0, 8, 0), at(0, 12, 0))),
		testutil.NewTestOrder("A2", testutil.Window(at(0, 9, 0), at(0, 10, 0)), testutil.DependsOn("A1")),
		testutil.NewTestOrder("C1", testutil.OnCenter("lathe-c"), testutil.Window(at(0, 8, 0), at(0, 16, 0))),
	}

	svc := NewScheduleService()
	first, err := svc.Schedule(context.Background(), contract.NewScheduleRequest(centers, orders))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := svc.Schedule(context.Background(), contract.NewScheduleRequest(centers, orders))
		require.NoError(t, err)
		assert.Equal(t, first.Centers, again.Centers, "parallel center runs stay deterministic")
		assert.Equal(t, first.Summary, again.Summary)
	}
}

func TestNewLogRunObserver_WritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogRunObserver(&buf)

	obs.ObserveRun(context.Background(), RunEvent{
		Name:    "schedule",
		RunID:   "run-1",
		Success: true,
		Fields:  map[string]any{"centers": 2},
	})

	line := buf.String()
	assert.True(t, strings.Contains(line, "schedule_run"))
	assert.True(t, strings.Contains(line, "run_id=run-1"))
	assert.True(t, strings.Contains(line, "centers=2"))
}

func TestNewLogRunObserver_NilWriterIsNoop(t *testing.T) {
	obs := NewLogRunObserver(nil)
	assert.IsType(t, NoopRunObserver{}, obs)
}
