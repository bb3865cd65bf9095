package events

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"congreso/db"
	"congreso/globals"
	"congreso/models"
	"congreso/schedule"
	"congreso/utils"

	"github.com/julienschmidt/httprouter"
)

// ImportCSV bulk-loads events from a CSV upload. Expected header:
// title,eventType,axis,speakers,day,room,timeBlock,status
// day/room/timeBlock may be empty (unscheduled). Speakers are
// semicolon-separated inside the cell. Rows that fail validation are
// reported back with their line number; valid rows are still inserted.
func ImportCSV(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)

	file, _, err := r.FormFile("file")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing file upload")
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Empty or unreadable CSV")
		return
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{"title", "eventtype"} {
		if _, ok := col[required]; !ok {
			utils.RespondWithError(w, http.StatusBadRequest, fmt.Sprintf("CSV missing %q column", required))
			return
		}
	}

	cell := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var docs []interface{}
	var rowErrors []string
	line := 1

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		event := models.Event{
			EventID:   "e" + utils.GenerateRandomDigitString(12),
			Title:     cell(row, "title"),
			EventType: cell(row, "eventtype"),
			Axis:      cell(row, "axis"),
			Status:    schedule.StatusDraft,
			CreatorID: userID,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if event.Title == "" || event.EventType == "" {
			rowErrors = append(rowErrors, fmt.Sprintf("line %d: title and eventType are required", line))
			continue
		}
		if speakers := cell(row, "speakers"); speakers != "" {
			for _, s := range strings.Split(speakers, ";") {
				if s = strings.TrimSpace(s); s != "" {
					event.Speakers = append(event.Speakers, s)
				}
			}
		}
		if status := cell(row, "status"); status != "" {
			if status != schedule.StatusDraft && status != schedule.StatusPublished {
				rowErrors = append(rowErrors, fmt.Sprintf("line %d: unknown status %q", line, status))
				continue
			}
			event.Status = status
		}

		ok := true
		if day := cell(row, "day"); day != "" {
			if _, valid := schedule.ParseDay(day); !valid {
				rowErrors = append(rowErrors, fmt.Sprintf("line %d: unknown day %q", line, day))
				ok = false
			} else {
				event.ScheduledDay = &day
			}
		}
		if roomStr := cell(row, "room"); roomStr != "" {
			room, err := strconv.Atoi(roomStr)
			if err != nil || room < 1 || room > 32 {
				rowErrors = append(rowErrors, fmt.Sprintf("line %d: bad room %q", line, roomStr))
				ok = false
			} else {
				event.Room = &room
			}
		}
		if block := cell(row, "timeblock"); block != "" {
			if _, _, err := schedule.ParseTimeBlock(block); err != nil {
				rowErrors = append(rowErrors, fmt.Sprintf("line %d: %v", line, err))
				ok = false
			} else {
				event.ScheduledTimeBlock = &block
			}
		}
		if !ok {
			continue
		}

		docs = append(docs, event)
	}

	inserted := 0
	if len(docs) > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		res, err := db.EventsCollection.InsertMany(ctx, docs)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to insert events")
			return
		}
		inserted = len(res.InsertedIDs)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"inserted": inserted,
		"skipped":  len(rowErrors),
		"errors":   rowErrors,
	})
}
