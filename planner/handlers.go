package planner

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"congreso/db"
	"congreso/events"
	"congreso/globals"
	"congreso/live"
	"congreso/models"
	"congreso/mq"
	"congreso/rdx"
	"congreso/schedule"
	"congreso/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const reportTTL = 5 * time.Minute

// GetConflicts returns the current conflict report. The report is cached
// in Redis and dropped by the schedule worker whenever the program
// changes, so a busy dashboard does not rescan on every poll.
func (p *Planner) GetConflicts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, err := rdx.RdxGet(mq.ConflictReportKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	} else {
		rdx.LogIfErr("get conflict report", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stored, err := events.FetchAll(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load events")
		return
	}

	conflicts, err := schedule.DetectConflicts(toCoreEvents(stored))
	if err != nil {
		// Unparseable block in stored data: a contract violation worth a
		// loud 500, not a silent miscount.
		log.Printf("conflict detection aborted: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	body := utils.M{"conflicts": conflicts, "count": len(conflicts), "generatedAt": time.Now()}
	if data, err := json.Marshal(body); err == nil {
		rdx.LogIfErr("set conflict report", rdx.RdxSetTTL(mq.ConflictReportKey, string(data), reportTTL))
	}

	utils.RespondWithJSON(w, http.StatusOK, body)
}

// GetMovements runs a detection+proposal pass and returns the plan:
// first-fit relocations for conflicting ponencias plus everything that
// needs a human (misplaced simposios, full days).
func (p *Planner) GetMovements(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, err := rdx.RdxGet(mq.MovementPlanKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	} else {
		rdx.LogIfErr("get movement plan", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stored, err := events.FetchAll(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load events")
		return
	}

	plan, err := schedule.ProposeMovements(toCoreEvents(stored))
	if err != nil {
		log.Printf("movement proposal aborted: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	body := utils.M{"plan": plan, "generatedAt": time.Now()}
	if data, err := json.Marshal(body); err == nil {
		rdx.LogIfErr("set movement plan", rdx.RdxSetTTL(mq.MovementPlanKey, string(data), reportTTL))
	}

	utils.RespondWithJSON(w, http.StatusOK, body)
}

// ApplyMovements executes accepted proposals as single-field room updates,
// logs each move for the audit trail and pushes live updates to open
// dashboards. Partial failure is reported per proposal; the batch keeps
// going.
func (p *Planner) ApplyMovements(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)

	var input struct {
		Proposals []schedule.MovementProposal `json:"proposals"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if len(input.Proposals) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No proposals to apply")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	applied := 0
	var failures []string

	for _, prop := range input.Proposals {
		lo, hi := prop.Day.RegularRange()
		if prop.ToRoom < lo || prop.ToRoom > hi {
			failures = append(failures, prop.EventID+": target room outside regular range")
			continue
		}

		res, err := db.EventsCollection.UpdateOne(ctx,
			bson.M{"eventid": prop.EventID, "room": prop.FromRoom},
			bson.M{"$set": bson.M{"room": prop.ToRoom, "updated_at": time.Now()}},
		)
		if err != nil {
			failures = append(failures, prop.EventID+": "+err.Error())
			continue
		}
		if res.MatchedCount == 0 {
			// Someone reshuffled this event since the plan was computed.
			failures = append(failures, prop.EventID+": event moved since proposal; re-run detection")
			continue
		}

		entry := models.MovementLog{
			EventID:   prop.EventID,
			FromRoom:  prop.FromRoom,
			ToRoom:    prop.ToRoom,
			Day:       prop.Day.Label(),
			TimeBlock: prop.TimeBlock,
			Category:  string(prop.Category),
			Reason:    prop.Reason,
			AppliedBy: userID,
			AppliedAt: time.Now(),
		}
		if _, err := db.MovementsCollection.InsertOne(ctx, entry); err != nil {
			log.Printf("movement log insert failed for %s: %v", prop.EventID, err)
		}

		if p.Hub != nil {
			p.Hub.Broadcast(prop.Day.Label(), live.Update{
				Action:  "moved",
				EventID: prop.EventID,
				Room:    prop.ToRoom,
				Block:   prop.TimeBlock,
			})
		}
		applied++
	}

	if applied > 0 {
		mq.Emit(r.Context(), "movements-applied", mq.Index{EntityType: "schedule", Method: "POST"})
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"applied":  applied,
		"failed":   len(failures),
		"failures": failures,
	})
}

// GetRoomMap returns the physical-room window table for one day, the data
// the dashboard renders behind the drag-and-drop grid.
func (p *Planner) GetRoomMap(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	day, ok := schedule.ParseDay(ps.ByName("day"))
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown day")
		return
	}

	lo, hi := day.SymposiumRange()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"day":            day.Label(),
		"rooms":          schedule.RoomMap(day),
		"symposiumRange": []int{lo, hi},
	})
}

// GetIncomplete lists published events that are only partially scheduled
// (some of room/day/block missing). The detector skips these silently, so
// the dashboard needs its own view of them.
func (p *Planner) GetIncomplete(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stored, err := events.FetchAll(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load events")
		return
	}

	var incomplete []models.Event
	for _, e := range stored {
		if e.Status != schedule.StatusPublished {
			continue
		}
		scheduled := e.Room != nil && e.ScheduledDay != nil && e.ScheduledTimeBlock != nil
		unscheduled := e.Room == nil && e.ScheduledDay == nil && e.ScheduledTimeBlock == nil
		if !scheduled && !unscheduled {
			incomplete = append(incomplete, e)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"incomplete": incomplete, "count": len(incomplete)})
}

// GetMovementLog lists applied moves, newest first.
func (p *Planner) GetMovementLog(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit := int64(50)
	if parsed, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && parsed > 0 && parsed <= 500 {
		limit = int64(parsed)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := db.MovementsCollection.Find(ctx, bson.M{}, optionsSortLimit("appliedAt", -1, limit))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch movement log")
		return
	}
	defer cursor.Close(ctx)

	var entries []models.MovementLog
	if err := cursor.All(ctx, &entries); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode movement log")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"movements": entries})
}
