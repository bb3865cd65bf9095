package events

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"congreso/db"
	"congreso/globals"
	"congreso/models"
	"congreso/mq"
	"congreso/schedule"
	"congreso/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type eventInput struct {
	Title     string   `json:"title"`
	Abstract  string   `json:"abstract"`
	Speakers  []string `json:"speakers"`
	Axis      string   `json:"axis"`
	EventType string   `json:"eventType"`
}

func CreateEvent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid user")
		return
	}

	var input eventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Title == "" || input.EventType == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title and eventType are required")
		return
	}

	event := models.Event{
		EventID:   "e" + utils.GenerateRandomDigitString(12),
		Title:     input.Title,
		Abstract:  input.Abstract,
		Speakers:  input.Speakers,
		Axis:      input.Axis,
		EventType: input.EventType,
		Status:    schedule.StatusDraft,
		CreatorID: userID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.EventsCollection.InsertOne(ctx, event); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create event")
		return
	}

	utils.SendResponse(w, http.StatusCreated, event, "Event created", nil)
}

func EditEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")

	var input struct {
		Title    *string   `json:"title"`
		Abstract *string   `json:"abstract"`
		Speakers *[]string `json:"speakers"`
		Axis     *string   `json:"axis"`
		Status   *string   `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	update := bson.M{"updated_at": time.Now()}
	if input.Title != nil {
		update["title"] = *input.Title
	}
	if input.Abstract != nil {
		update["abstract"] = *input.Abstract
	}
	if input.Speakers != nil {
		update["speakers"] = *input.Speakers
	}
	if input.Axis != nil {
		update["axis"] = *input.Axis
	}
	if input.Status != nil {
		if *input.Status != schedule.StatusDraft && *input.Status != schedule.StatusPublished {
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown status")
			return
		}
		update["status"] = *input.Status
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := db.EventsCollection.UpdateOne(ctx, bson.M{"eventid": eventID}, bson.M{"$set": update})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update event")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}

	mq.Emit(r.Context(), "event-updated", mq.Index{EntityType: "event", EntityId: eventID, Method: "PUT"})
	utils.SendResponse(w, http.StatusOK, nil, "Event updated", nil)
}

// AssignSlot places an event into (day, room, time block) or clears the
// assignment when all three come in empty. Partial assignment is allowed;
// the conflict detector simply ignores half-scheduled events.
func AssignSlot(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")

	var input struct {
		Day       string `json:"day"`
		Room      int    `json:"room"`
		TimeBlock string `json:"timeBlock"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	update := bson.M{"updated_at": time.Now()}
	unset := bson.M{}

	if input.Day == "" && input.Room == 0 && input.TimeBlock == "" {
		unset["scheduledDay"] = ""
		unset["room"] = ""
		unset["scheduledTimeBlock"] = ""
	} else {
		if input.Day != "" {
			if _, ok := schedule.ParseDay(input.Day); !ok {
				utils.RespondWithError(w, http.StatusBadRequest, "Unknown day")
				return
			}
			update["scheduledDay"] = input.Day
		}
		if input.Room != 0 {
			if input.Room < 0 || input.Room > 32 {
				utils.RespondWithError(w, http.StatusBadRequest, "Room out of range")
				return
			}
			update["room"] = input.Room
		}
		if input.TimeBlock != "" {
			if _, _, err := schedule.ParseTimeBlock(input.TimeBlock); err != nil {
				utils.RespondWithError(w, http.StatusBadRequest, err.Error())
				return
			}
			update["scheduledTimeBlock"] = input.TimeBlock
		}
	}

	change := bson.M{"$set": update}
	if len(unset) > 0 {
		change["$unset"] = unset
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := db.EventsCollection.UpdateOne(ctx, bson.M{"eventid": eventID}, change)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update schedule")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}

	mq.Emit(r.Context(), "schedule-changed", mq.Index{EntityType: "event", EntityId: eventID, Method: "PUT"})
	utils.SendResponse(w, http.StatusOK, nil, "Schedule updated", nil)
}

func DeleteEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := db.EventsCollection.DeleteOne(ctx, bson.M{"eventid": eventID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete event")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}

	mq.Emit(r.Context(), "event-deleted", mq.Index{EntityType: "event", EntityId: eventID, Method: "DELETE"})
	utils.SendResponse(w, http.StatusOK, nil, "Event deleted", nil)
}

// FetchAll loads every event; the planner feeds these to the scheduling
// core as one snapshot.
func FetchAll(ctx context.Context) ([]models.Event, error) {
	cursor, err := db.EventsCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func fetchOne(ctx context.Context, eventID string) (*models.Event, error) {
	var event models.Event
	err := db.EventsCollection.FindOne(ctx, bson.M{"eventid": eventID}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}
