package handler

import (
	"time"

	"bikeshare/internal/domain/entity"
)

// BikeResponse is a bike as returned to API clients.
type BikeResponse struct {
	ID            int64             `json:"id"`
	OwnerID       int64             `json:"owner_id"`
	Model         string            `json:"model"`
	Type          string            `json:"type"`
	CostPerMinute float64           `json:"cost_per_minute"`
	ImageURL      string            `json:"image_url"`
	Latitude      float64           `json:"latitude"`
	Longitude     float64           `json:"longitude"`
	Status        entity.BikeStatus `json:"status"`
}

func toBikeResponse(b *entity.Bike) *BikeResponse {
	if b == nil {
		return nil
	}

	return &BikeResponse{
		ID:            b.ID,
		OwnerID:       b.OwnerID,
		Model:         b.Model,
		Type:          b.Type,
		CostPerMinute: b.CostPerMinute,
		ImageURL:      b.ImageURL,
		Latitude:      b.Position.Lat(),
		Longitude:     b.Position.Lon(),
		Status:        b.Status,
	}
}

func toBikeResponses(bikes []*entity.Bike) []*BikeResponse {
	out := make([]*BikeResponse, 0, len(bikes))
	for _, b := range bikes {
		out = append(out, toBikeResponse(b))
	}

	return out
}

// ReservationResponse is a reservation as returned to API clients.
type ReservationResponse struct {
	ID         int64                    `json:"id"`
	BikeID     int64                    `json:"bike_id"`
	RenterID   int64                    `json:"renter_id"`
	StartDate  time.Time                `json:"start_date"`
	EndDate    time.Time                `json:"end_date"`
	Status     entity.ReservationStatus `json:"status"`
	TotalPrice float64                  `json:"total_price"`
}

func toReservationResponse(r *entity.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:         r.ID,
		BikeID:     r.BikeID,
		RenterID:   r.RenterID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Status:     r.Status,
		TotalPrice: r.TotalPrice,
	}
}

// ProfileResponse is the caller's own profile. Payout fields are only set for owners.
type ProfileResponse struct {
	ID                int64       `json:"id"`
	UserID            int64       `json:"user_id"`
	FullName          string      `json:"full_name"`
	Email             string      `json:"email"`
	Phone             string      `json:"phone"`
	AvatarURL         string      `json:"avatar_url"`
	Address           string      `json:"address,omitempty"`
	PublicBio         string      `json:"public_bio,omitempty"`
	Role              entity.Role `json:"role"`
	PayoutEmail       string      `json:"payout_email,omitempty"`
	BankAccountNumber string      `json:"bank_account_number,omitempty"`
	YapePhoneNumber   string      `json:"yape_phone_number,omitempty"`
}

func toProfileResponse(p *entity.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}

	resp := &ProfileResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		FullName:  p.FullName,
		Email:     p.Email,
		Phone:     p.Phone,
		AvatarURL: p.AvatarURL,
		Address:   p.Address,
		PublicBio: p.PublicBio,
		Role:      entity.RoleFor(p.IsOwner),
	}
	if p.IsOwner {
		resp.PayoutEmail = p.PayoutEmail
		resp.BankAccountNumber = p.BankAccountNumber
		resp.YapePhoneNumber = p.YapePhoneNumber
	}

	return resp
}

// ReviewResponse is a newly created review.
type ReviewResponse struct {
	ID            int64     `json:"id"`
	ReservationID int64     `json:"reservation_id"`
	OwnerID       int64     `json:"owner_id"`
	Rating        float64   `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}

func toReviewResponse(r *entity.Review) *ReviewResponse {
	if r == nil {
		return nil
	}

	return &ReviewResponse{
		ID:            r.ID,
		ReservationID: r.ReservationID,
		OwnerID:       r.OwnerID,
		Rating:        r.Rating,
		Comment:       r.Comment,
		CreatedAt:     r.CreatedAt,
	}
}

// TicketResponse is a support ticket as returned to API clients.
type TicketResponse struct {
	ID        int64               `json:"id"`
	Subject   string              `json:"subject"`
	Category  string              `json:"category"`
	Message   string              `json:"message"`
	Status    entity.TicketStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
}

func toTicketResponse(t *entity.SupportTicket) *TicketResponse {
	if t == nil {
		return nil
	}

	return &TicketResponse{
		ID:        t.ID,
		Subject:   t.Subject,
		Category:  t.Category,
		Message:   t.Message,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
	}
}

func toTicketResponses(tickets []*entity.SupportTicket) []*TicketResponse {
	out := make([]*TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, toTicketResponse(t))
	}

	return out
}
