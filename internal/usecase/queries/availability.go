package queries

import (
	"time"

	"github.com/google/uuid"
)

// Last/next booking selection for item displays. Both pick a single
// candidate per item and then drop it when it turned out declined, rather
// than falling through to the next row. An item whose most recent booking
// was rejected therefore shows no last booking at all.

// LastBooking picks the booking with the latest start strictly before now.
func LastBooking(refs []BookingRef, now time.Time) *NearestBooking {
	var candidate *BookingRef
	for i := range refs {
		r := &refs[i]
		if !r.Start.Before(now) {
			continue
		}
		if candidate == nil || r.Start.After(candidate.Start) {
			candidate = r
		}
	}
	return nearestOf(candidate)
}

// NextBooking picks the booking with the earliest start strictly after
// now. A booking starting exactly at now is neither last nor next.
func NextBooking(refs []BookingRef, now time.Time) *NearestBooking {
	var candidate *BookingRef
	for i := range refs {
		r := &refs[i]
		if !r.Start.After(now) {
			continue
		}
		if candidate == nil || r.Start.Before(candidate.Start) {
			candidate = r
		}
	}
	return nearestOf(candidate)
}

func nearestOf(r *BookingRef) *NearestBooking {
	if r == nil || r.Status.IsDeclined() {
		return nil
	}
	return &NearestBooking{
		ID:       r.ID,
		BookerID: r.BookerID,
		Start:    r.Start,
		End:      r.End,
	}
}

func groupByItem(refs []BookingRef) map[uuid.UUID][]BookingRef {
	grouped := make(map[uuid.UUID][]BookingRef, len(refs))
	for _, r := range refs {
		grouped[r.ItemID] = append(grouped[r.ItemID], r)
	}
	return grouped
}
