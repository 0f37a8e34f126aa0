package queries

import (
	"context"

	"turfbook/internal/domain/ground"
	"turfbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type GroundSort string

const (
	GroundSortNone      GroundSort = ""
	GroundSortPriceAsc  GroundSort = "price_asc"
	GroundSortPriceDesc GroundSort = "price_desc"
)

var ErrUnknownSort = errs.New("unknown sort order")

func ParseGroundSort(s string) (GroundSort, error) {
	switch GroundSort(s) {
	case GroundSortNone, GroundSortPriceAsc, GroundSortPriceDesc:
		return GroundSort(s), nil
	default:
		return GroundSortNone, errs.Mark(errs.New("sort must be price_asc or price_desc"), ErrUnknownSort)
	}
}

type GroundFilter struct {
	City string
	Sort GroundSort
}

type GroundQueries interface {
	List(ctx context.Context, filter GroundFilter) ([]*GroundView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*GroundView, error)
	// DaySchedule merges the ground's slot calendar with the day's active
	// bookings into a taken/free listing.
	DaySchedule(ctx context.Context, groundID uuid.UUID, date string) ([]*ScheduleSlot, error)
}

type GroundViewRepo interface {
	FindAll(ctx context.Context, filter GroundFilter) ([]*GroundView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*GroundView, error)
}

type groundQueriesImpl struct {
	grounds  GroundViewRepo
	bookings BookingViewRepo
}

func NewGroundQueries(grounds GroundViewRepo, bookings BookingViewRepo) GroundQueries {
	return &groundQueriesImpl{grounds: grounds, bookings: bookings}
}

func (q *groundQueriesImpl) List(ctx context.Context, filter GroundFilter) ([]*GroundView, error) {
	return q.grounds.FindAll(ctx, filter)
}

func (q *groundQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*GroundView, error) {
	return q.grounds.FindByID(ctx, id)
}

func (q *groundQueriesImpl) DaySchedule(ctx context.Context, groundID uuid.UUID, date string) ([]*ScheduleSlot, error) {
	view, err := q.grounds.FindByID(ctx, groundID)
	if err != nil {
		return nil, err
	}
	hours, err := ground.NewOperatingHours(view.OpenTime, view.CloseTime)
	if err != nil {
		return nil, errs.Wrap(err, "stored operating hours are invalid")
	}
	active, err := q.bookings.FindActiveSlots(ctx, groundID, date)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(active))
	for _, s := range active {
		taken[s.StartTime+"-"+s.EndTime] = true
	}
	slots := hours.Slots()
	out := make([]*ScheduleSlot, 0, len(slots))
	for _, s := range slots {
		out = append(out, &ScheduleSlot{
			StartTime: s.Start,
			EndTime:   s.End,
			Taken:     taken[s.Start+"-"+s.End],
		})
	}
	return out, nil
}
