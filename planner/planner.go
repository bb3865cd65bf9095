package planner

import (
	"congreso/live"
	"congreso/models"
	"congreso/schedule"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Planner serves the admin scheduling endpoints: conflict reports,
// movement proposals and proposal application. The scheduling core is
// pure; everything stateful (Mongo reads, Redis cache, websocket pushes)
// stays here.
type Planner struct {
	Hub *live.Hub
}

func New(hub *live.Hub) *Planner {
	return &Planner{Hub: hub}
}

// toCoreEvents maps stored events onto the core's snapshot type. Events
// with an unknown day label are left unscheduled rather than dropped, so
// they surface in the "incomplete" listing instead of vanishing.
func toCoreEvents(stored []models.Event) []schedule.Event {
	out := make([]schedule.Event, 0, len(stored))
	for _, e := range stored {
		ce := schedule.Event{
			ID:     e.EventID,
			Type:   e.EventType,
			Status: e.Status,
		}
		if e.Room != nil {
			ce.Room = *e.Room
		}
		if e.ScheduledDay != nil {
			if day, ok := schedule.ParseDay(*e.ScheduledDay); ok {
				ce.Day = day
			}
		}
		if e.ScheduledTimeBlock != nil {
			ce.TimeBlock = *e.ScheduledTimeBlock
		}
		out = append(out, ce)
	}
	return out
}

func optionsSortLimit(field string, order int, limit int64) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: field, Value: order}}).
		SetLimit(limit)
}
