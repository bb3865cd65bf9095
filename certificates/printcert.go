package certificates

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"congreso/db"
	"congreso/models"
	"congreso/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

// PrintCertificate renders the certificate PDF for download from the
// public portal. The embedded QR carries the signed folio payload so the
// printed document can be re-verified by scanning.
func PrintCertificate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	folio := ps.ByName("folio")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var cert models.Certificate
	if err := db.CertificatesCollection.FindOne(ctx, bson.M{"folio": folio}).Decode(&cert); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Certificate not found")
		return
	}
	if cert.Revoked {
		utils.RespondWithError(w, http.StatusGone, "Certificate has been revoked")
		return
	}

	var event models.Event
	if err := db.EventsCollection.FindOne(ctx, bson.M{"eventid": cert.EventID}).Decode(&event); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found for certificate")
		return
	}

	qrPNG, err := qrcode.Encode(QRPayload(cert.Folio, cert.EventID), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 26)
	pdf.CellFormat(0, 20, "Constancia de Participación", "", 1, "C", false, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Arial", "", 14)
	pdf.CellFormat(0, 8, "Se otorga la presente constancia a", "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 12, cert.ParticipantName, "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Arial", "", 13)
	pdf.CellFormat(0, 8, fmt.Sprintf("en calidad de %s en", cert.Kind), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "I", 14)
	pdf.CellFormat(0, 10, event.Title, "", 1, "C", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Folio: %s", cert.Folio), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Emitida: %s", cert.IssuedAt.Format("2006-01-02")), "", 1, "C", false, 0, "")

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 250, 160, 35, 35, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=constancia-"+cert.Folio+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
