package events

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"congreso/utils"

	"congreso/db"
	"congreso/models"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func GetEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page := 1
	limit := 20
	if parsed, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && parsed > 0 {
		page = parsed
	}
	if parsed, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && parsed > 0 && parsed <= 100 {
		limit = parsed
	}

	filter := bson.M{}
	if t := r.URL.Query().Get("type"); t != "" {
		filter["eventType"] = t
	}
	if s := r.URL.Query().Get("status"); s != "" {
		filter["status"] = s
	}
	if d := r.URL.Query().Get("day"); d != "" {
		filter["scheduledDay"] = d
	}

	skip := int64((page - 1) * limit)
	int64Limit := int64(limit)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := db.EventsCollection.Find(ctx, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &int64Limit,
		Sort:  bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err = cursor.All(ctx, &events); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode events")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"events": events, "page": page, "limit": limit})
}

func GetEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	event, err := fetchOne(ctx, ps.ByName("eventid"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch event")
		return
	}
	if event == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, event)
}

func GetEventsCount(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := db.EventsCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to count events")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"count": count})
}
