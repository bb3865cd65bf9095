package mq

import (
	"context"
	"encoding/json"
	"log"

	"congreso/rdx"
)

const channel = "schedule-events"

// Cache keys flushed whenever the program changes.
const (
	ConflictReportKey = "schedule:conflicts"
	MovementPlanKey   = "schedule:plan"
)

// Index describes a schedule-affecting change for subscribers.
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
}

// Emit publishes a schedule-change event to Redis. Failures are logged,
// never propagated: losing an invalidation means a slightly stale report,
// not a broken write.
func Emit(ctx context.Context, eventName string, content Index) {
	payload := struct {
		Event string `json:"event"`
		Index
	}{Event: eventName, Index: content}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s: %v", eventName, err)
	}
}

// StartScheduleWorker listens for schedule changes and drops the cached
// conflict report and movement plan so the next dashboard load recomputes
// them from live data.
func StartScheduleWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, channel)
	ch := sub.Channel()

	log.Println("[ScheduleWorker] Listening for schedule events...")

	for msg := range ch {
		var event struct {
			Event string `json:"event"`
			Index
		}
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[ScheduleWorker] Failed to parse event: %v", err)
			continue
		}

		if _, err := rdx.RdxDel(ConflictReportKey); err != nil {
			rdx.LogIfErr("del conflict report", err)
		}
		if _, err := rdx.RdxDel(MovementPlanKey); err != nil {
			rdx.LogIfErr("del movement plan", err)
		}
		log.Printf("[ScheduleWorker] %s for %s %s; caches invalidated", event.Event, event.EntityType, event.EntityId)
	}
}
