package certificates

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"congreso/db"
	"congreso/globals"
	"congreso/models"
	"congreso/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// sign produces the HMAC signature embedded in certificate QR payloads so
// a scanned code can be checked offline against tampering.
func sign(data string) string {
	h := hmac.New(sha256.New, globals.HmacSecret)
	h.Write([]byte(data))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// QRPayload returns "folio|eventID|signature".
func QRPayload(folio, eventID string) string {
	data := fmt.Sprintf("%s|%s", folio, eventID)
	return fmt.Sprintf("%s|%s", data, sign(data))
}

// VerifyQRPayload checks a scanned payload and returns the folio.
func VerifyQRPayload(payload string) (string, error) {
	parts := strings.Split(payload, "|")
	if len(parts) != 3 {
		return "", fmt.Errorf("malformed payload")
	}
	data := parts[0] + "|" + parts[1]
	if !hmac.Equal([]byte(sign(data)), []byte(parts[2])) {
		return "", fmt.Errorf("signature mismatch")
	}
	return parts[0], nil
}

// IssueCertificate creates a certificate with a fresh folio. Admin-only.
func IssueCertificate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		EventID         string `json:"eventid"`
		ParticipantName string `json:"participantName"`
		Email           string `json:"email"`
		Kind            string `json:"kind"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.EventID == "" || input.ParticipantName == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "eventid and participantName are required")
		return
	}
	switch input.Kind {
	case "ponente", "asistente", "coordinador":
	case "":
		input.Kind = "asistente"
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown certificate kind")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var event models.Event
	if err := db.EventsCollection.FindOne(ctx, bson.M{"eventid": input.EventID}).Decode(&event); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}

	cert := models.Certificate{
		Folio:           utils.GetUUID(),
		EventID:         input.EventID,
		ParticipantName: input.ParticipantName,
		Email:           input.Email,
		Kind:            input.Kind,
		IssuedAt:        time.Now(),
	}
	if _, err := db.CertificatesCollection.InsertOne(ctx, cert); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to issue certificate")
		return
	}

	utils.SendResponse(w, http.StatusCreated, cert, "Certificate issued", nil)
}

// ValidateCertificate is the public portal lookup: anyone holding a folio
// (typed in or scanned from a QR) can confirm the certificate is genuine.
func ValidateCertificate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	folio := ps.ByName("folio")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var cert models.Certificate
	err := db.CertificatesCollection.FindOne(ctx, bson.M{"folio": folio}).Decode(&cert)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithJSON(w, http.StatusNotFound, utils.M{"valid": false})
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Lookup failed")
		return
	}
	if cert.Revoked {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"valid": false, "revoked": true})
		return
	}

	var event models.Event
	title := ""
	if err := db.EventsCollection.FindOne(ctx, bson.M{"eventid": cert.EventID}).Decode(&event); err == nil {
		title = event.Title
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"valid":           true,
		"folio":           cert.Folio,
		"participantName": cert.ParticipantName,
		"kind":            cert.Kind,
		"eventTitle":      title,
		"issuedAt":        cert.IssuedAt,
	})
}

// RevokeCertificate flags a certificate invalid without deleting the
// audit record. Admin-only.
func RevokeCertificate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := db.CertificatesCollection.UpdateOne(ctx,
		bson.M{"folio": ps.ByName("folio")},
		bson.M{"$set": bson.M{"revoked": true}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to revoke certificate")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Certificate not found")
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Certificate revoked", nil)
}
