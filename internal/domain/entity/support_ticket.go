package entity

import (
	"slices"
	"time"
)

// TicketStatus is the processing status of a support ticket.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "OPEN"
	TicketInProgress TicketStatus = "IN_PROGRESS"
	TicketResolved   TicketStatus = "RESOLVED"
	TicketClosed     TicketStatus = "CLOSED"
)

// TicketCategories are the categories the support desk triages on.
var TicketCategories = []string{"Pagos", "Incidente", "Cuenta", "Sugerencias", "Otro"}

// IsTicketCategory reports whether category is one of TicketCategories.
func IsTicketCategory(category string) bool {
	return slices.Contains(TicketCategories, category)
}

// SupportTicket is a help request opened by a user.
type SupportTicket struct {
	ID        int64
	UserID    int64
	Subject   string
	Category  string
	Message   string
	Status    TicketStatus
	CreatedAt time.Time
}
