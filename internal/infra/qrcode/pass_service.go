// Package qrcode renders ticket passes as QR images.
package qrcode

import (
	"encoding/json"
	"fmt"

	"ulaz/internal/domain/entity"
	"ulaz/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type passService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// PassData represents the QR code data structure
type PassData struct {
	TicketNumber string `json:"ticket_number"`
	EventID      int64  `json:"event_id"`
	Type         string `json:"type"`
}

// NewPassService creates a new ticket pass service instance
func NewPassService(size int, errorCorrectionLevel string) service.PassService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &passService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// TicketPass generates a QR pass for a purchased ticket. The encoded payload
// is the display ticket number and event id only; scanning it proves nothing,
// it is a convenience for showing the ticket at the door.
func (s *passService) TicketPass(ticket *entity.Ticket) ([]byte, error) {
	data := PassData{
		TicketNumber: ticket.TicketNumber,
		EventID:      ticket.EventID,
		Type:         "ticket-pass",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pass data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
