package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/wbaizer/naologic-reflow/internal/app"
	"github.com/wbaizer/naologic-reflow/internal/contract"
	"github.com/wbaizer/naologic-reflow/internal/domain"
	"github.com/wbaizer/naologic-reflow/internal/scheduler"
)

type scheduleService struct {
	observer RunObserver
}

func NewScheduleService(observers ...RunObserver) ScheduleService {
	return &scheduleService{
		observer: runObserverOrNoop(observers),
	}
}

// Schedule groups orders by work center and recomputes every center's
// schedule. Centers share no mutable state, so they run concurrently; the
// first engine failure aborts the whole invocation.
func (s *scheduleService) Schedule(ctx context.Context, req contract.ScheduleRequest) (*contract.ScheduleResponse, error) {
	started := time.Now().UTC()
	now := started
	if req.Now != nil {
		now = *req.Now
	}
	runID := uuid.New().String()

	resp, err := s.schedule(ctx, req, runID, now)

	event := RunEvent{
		Name:      "schedule",
		RunID:     runID,
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
		Fields: map[string]any{
			"centers": len(req.Centers),
			"orders":  len(req.Orders),
		},
	}
	if resp != nil {
		event.Fields["changed"] = resp.Summary.Changed
		event.Fields["displaced_min"] = resp.Summary.TotalDisplacedMin
	}
	s.observer.ObserveRun(ctx, event)

	return resp, err
}

func (s *scheduleService) schedule(ctx context.Context, req contract.ScheduleRequest, runID string, now time.Time) (*contract.ScheduleResponse, error) {
	grouped, err := groupByCenter(req.Centers, req.Orders)
	if err != nil {
		return nil, err
	}

	results := make([]*app.CenterResult, len(req.Centers))
	g, ctx := errgroup.WithContext(ctx)
	for i := range req.Centers {
		i := i
		center := req.Centers[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := scheduler.ScheduleCenter(center, grouped[center.Name])
			if err != nil {
				return fmt.Errorf("scheduling work center %q: %w", center.Name, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &contract.ScheduleResponse{
		RunID:       runID,
		GeneratedAt: now,
	}
	for _, r := range results {
		resp.Centers = append(resp.Centers, *r)
		resp.Summary.Changed += r.Summary.Changed
		resp.Summary.Unchanged += r.Summary.Unchanged
		resp.Summary.Fixed += r.Summary.Fixed
		resp.Summary.TotalDisplacedMin += r.Summary.TotalDisplacedMin
	}
	// The input stream is unordered; the response is not.
	sort.SliceStable(resp.Centers, func(i, j int) bool {
		return resp.Centers[i].Center < resp.Centers[j].Center
	})

	return resp, nil
}

// groupByCenter splits orders per center, preserving input order within
// each group. Orders naming a center absent from the invocation fail it.
func groupByCenter(centers []domain.WorkCenter, orders []domain.WorkOrder) (map[string][]domain.WorkOrder, error) {
	known := make(map[string]bool, len(centers))
	var duplicates []string
	for _, c := range centers {
		if known[c.Name] {
			duplicates = append(duplicates, c.Name)
		}
		known[c.Name] = true
	}
	if len(duplicates) > 0 {
		return nil, &app.ScheduleError{
			Code:    app.ErrInputInvalid,
			Message: "duplicate work center names",
			IDs:     duplicates,
		}
	}

	grouped := make(map[string][]domain.WorkOrder, len(centers))
	var foreign []string
	for _, o := range orders {
		if !known[o.WorkCenter] {
			foreign = append(foreign, o.Number)
			continue
		}
		grouped[o.WorkCenter] = append(grouped[o.WorkCenter], o)
	}
	if len(foreign) > 0 {
		return nil, &app.ScheduleError{
			Code:    app.ErrForeignOrder,
			Message: "orders reference work centers not present in this invocation",
			IDs:     foreign,
		}
	}

	return grouped, nil
}
