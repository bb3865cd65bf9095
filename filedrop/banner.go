package filedrop

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"congreso/db"
	"congreso/globals"
	"congreso/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const bannerDir = "static/eventpic"
const bannerWidth = 1200

var supportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// UploadBanner stores a poster/banner image for an event. Images are
// normalized to a fixed width so the dashboard grid stays uniform.
func UploadBanner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")

	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid user")
		return
	}

	file, header, err := r.FormFile("banner")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing banner upload")
		return
	}
	defer file.Close()

	if !supportedImageTypes[header.Header.Get("Content-Type")] {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid file type. Supported formats: JPEG, PNG, WebP.")
		return
	}

	img, err := imaging.Decode(file)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unreadable image")
		return
	}
	if img.Bounds().Dx() > bannerWidth {
		img = imaging.Resize(img, bannerWidth, 0, imaging.Lanczos)
	}

	if err := os.MkdirAll(bannerDir, 0755); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Storage unavailable")
		return
	}

	filename := utils.GetUUID() + ".jpg"
	path := filepath.Join(bannerDir, filename)
	if err := imaging.Save(img, path, imaging.JPEGQuality(85)); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save image")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := db.EventsCollection.UpdateOne(ctx,
		bson.M{"eventid": eventID},
		bson.M{"$set": bson.M{"banner": filename, "updated_at": time.Now()}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update event")
		return
	}
	if res.MatchedCount == 0 {
		if err := os.Remove(path); err != nil {
			log.Printf("orphan banner cleanup failed: %v", err)
		}
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"banner": filename})
}
