package marketplace

import (
	"bytes"
	"encoding/json"
	"time"

	"bikeshare/internal/domain/entity"

	"github.com/paulmach/orb"
)

// timestampLayouts are accepted in order. The marketplace emits zone-less local date-times
// for reservations and RFC 3339 elsewhere; zone-less values are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	time.DateOnly,
}

// timestamp decodes the marketplace date formats.
type timestamp time.Time

func (t *timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		return nil
	}

	var lastErr error
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			*t = timestamp(parsed)

			return nil
		}
		lastErr = err
	}

	return lastErr
}

func (t timestamp) Time() time.Time {
	return time.Time(t)
}

// Wire records of the marketplace API. Field names follow the upstream camelCase JSON.

type bikePayload struct {
	ID            int64   `json:"id" validate:"required"`
	OwnerID       int64   `json:"ownerId"`
	Model         string  `json:"model"`
	Type          string  `json:"type"`
	CostPerMinute float64 `json:"costPerMinute" validate:"gte=0"`
	ImageURL      string  `json:"imageUrl"`
	Latitude      float64 `json:"latitude" validate:"latitude"`
	Longitude     float64 `json:"longitude" validate:"longitude"`
	Status        string  `json:"status"`
}

func (p *bikePayload) toEntity() *entity.Bike {
	status := entity.BikeStatus(p.Status)
	if status == "" {
		status = entity.BikeStatusAvailable
	}

	return &entity.Bike{
		ID:            p.ID,
		OwnerID:       p.OwnerID,
		Model:         p.Model,
		Type:          p.Type,
		CostPerMinute: p.CostPerMinute,
		ImageURL:      p.ImageURL,
		Position:      orb.Point{p.Longitude, p.Latitude},
		Status:        status,
	}
}

type bikeRequest struct {
	OwnerID       int64   `json:"ownerId,omitempty"`
	Model         string  `json:"model"`
	Type          string  `json:"type"`
	CostPerMinute float64 `json:"costPerMinute"`
	ImageURL      string  `json:"imageUrl,omitempty"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Status        string  `json:"status,omitempty"`
}

type reservationPayload struct {
	ID         int64     `json:"id" validate:"required"`
	BikeID     int64     `json:"bikeId" validate:"required"`
	RenterID   int64     `json:"renterId"`
	StartDate  timestamp `json:"startDate"`
	EndDate    timestamp `json:"endDate"`
	Status     string    `json:"status" validate:"required"`
	TotalPrice float64   `json:"totalPrice" validate:"gte=0"`
}

func (p *reservationPayload) toEntity() *entity.Reservation {
	return &entity.Reservation{
		ID:         p.ID,
		BikeID:     p.BikeID,
		RenterID:   p.RenterID,
		StartDate:  p.StartDate.Time(),
		EndDate:    p.EndDate.Time(),
		Status:     entity.ReservationStatus(p.Status),
		TotalPrice: p.TotalPrice,
	}
}

type reservationRequest struct {
	RenterID  int64     `json:"renterId"`
	BikeID    int64     `json:"bikeId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type statusRequest struct {
	NewStatus string `json:"newStatus"`
}

type profilePayload struct {
	ID                int64  `json:"id"`
	UserID            int64  `json:"userId"`
	FullName          string `json:"fullName"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	AvatarURL         string `json:"avatarUrl"`
	Address           string `json:"address"`
	PublicBio         string `json:"publicBio"`
	IsOwner           bool   `json:"isOwner"`
	PayoutEmail       string `json:"payoutEmail"`
	BankAccountNumber string `json:"bankAccountNumber"`
	YapePhoneNumber   string `json:"yapePhoneNumber"`
}

func (p *profilePayload) toEntity() *entity.Profile {
	return &entity.Profile{
		ID:                p.ID,
		UserID:            p.UserID,
		FullName:          p.FullName,
		Email:             p.Email,
		Phone:             p.Phone,
		AvatarURL:         p.AvatarURL,
		Address:           p.Address,
		PublicBio:         p.PublicBio,
		IsOwner:           p.IsOwner,
		PayoutEmail:       p.PayoutEmail,
		BankAccountNumber: p.BankAccountNumber,
		YapePhoneNumber:   p.YapePhoneNumber,
	}
}

type renterProfileRequest struct {
	FullName  string `json:"fullName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	AvatarURL string `json:"avatarUrl"`
}

type ownerProfileRequest struct {
	FullName          string `json:"fullName"`
	Phone             string `json:"phone"`
	PublicBio         string `json:"publicBio"`
	AvatarURL         string `json:"avatarUrl"`
	PayoutEmail       string `json:"payoutEmail"`
	BankAccountNumber string `json:"bankAccountNumber"`
	YapePhoneNumber   string `json:"yapePhoneNumber"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginPayload struct {
	Token   string `json:"token"`
	UserID  int64  `json:"userId" validate:"required"`
	IsOwner bool   `json:"isOwner"`
}

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsOwner  bool   `json:"isOwner"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

type reviewPayload struct {
	ID            int64     `json:"id" validate:"required"`
	ReservationID int64     `json:"reservationId"`
	OwnerID       int64     `json:"ownerId"`
	ReviewerID    int64     `json:"reviewerId"`
	Rating        float64   `json:"rating" validate:"min=0,max=5"`
	Comment       string    `json:"comment"`
	CreatedAt     timestamp `json:"createdAt"`
}

func (p *reviewPayload) toEntity() *entity.Review {
	return &entity.Review{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		OwnerID:       p.OwnerID,
		ReviewerID:    p.ReviewerID,
		Rating:        p.Rating,
		Comment:       p.Comment,
		CreatedAt:     p.CreatedAt.Time(),
	}
}

type reviewRequest struct {
	ReservationID int64   `json:"reservationId"`
	Rating        float64 `json:"rating"`
	Comment       string  `json:"comment"`
}

type ticketPayload struct {
	ID        int64     `json:"id" validate:"required"`
	UserID    int64     `json:"userId"`
	Subject   string    `json:"subject"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt timestamp `json:"createdAt"`
}

func (p *ticketPayload) toEntity() *entity.SupportTicket {
	status := entity.TicketStatus(p.Status)
	if status == "" {
		status = entity.TicketOpen
	}

	return &entity.SupportTicket{
		ID:        p.ID,
		UserID:    p.UserID,
		Subject:   p.Subject,
		Category:  p.Category,
		Message:   p.Message,
		Status:    status,
		CreatedAt: p.CreatedAt.Time(),
	}
}

type ticketRequest struct {
	UserID   int64  `json:"userId"`
	Subject  string `json:"subject"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// mapSlice converts decoded payloads into entities, preserving order. JSON nulls are dropped.
func mapSlice[P any, E any](payloads []*P, convert func(*P) *E) []*E {
	entities := make([]*E, 0, len(payloads))
	for _, p := range payloads {
		if p == nil {
			continue
		}
		entities = append(entities, convert(p))
	}

	return entities
}
