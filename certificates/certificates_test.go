package certificates

import (
	"strings"
	"testing"
)

func TestQRPayloadRoundTrip(t *testing.T) {
	payload := QRPayload("folio-123", "e456")
	folio, err := VerifyQRPayload(payload)
	if err != nil {
		t.Fatalf("genuine payload rejected: %v", err)
	}
	if folio != "folio-123" {
		t.Fatalf("want folio-123, got %s", folio)
	}
}

func TestVerifyQRPayloadRejectsTampering(t *testing.T) {
	payload := QRPayload("folio-123", "e456")
	tampered := strings.Replace(payload, "folio-123", "folio-999", 1)
	if _, err := VerifyQRPayload(tampered); err == nil {
		t.Fatal("tampered folio accepted")
	}

	if _, err := VerifyQRPayload("just|two"); err == nil {
		t.Fatal("malformed payload accepted")
	}
	if _, err := VerifyQRPayload(""); err == nil {
		t.Fatal("empty payload accepted")
	}
}
