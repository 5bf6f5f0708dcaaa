package model

// ReservationCollection is the collection holding reservations.
const ReservationCollection = "reservation"

// Reservation is the stored shape of a booking. Date and time are kept as
// the strings the guest sent; no service-hour or overlap rule applies.
type Reservation struct {
	Name            string  `bson:"name" json:"name"`
	Email           string  `bson:"email" json:"email"`
	Phone           string  `bson:"phone" json:"phone"`
	PartySize       int     `bson:"party_size" json:"party_size"`
	ReservationDate string  `bson:"reservation_date" json:"reservation_date"`
	ReservationTime string  `bson:"reservation_time" json:"reservation_time"`
	Notes           *string `bson:"notes" json:"notes"`
}

type CreateReservationInput struct {
	Name            string  `json:"name" validate:"required,min=2"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           string  `json:"phone" validate:"required,min=7"`
	PartySize       *int    `json:"party_size" validate:"required,gte=1,lte=20"`
	ReservationDate string  `json:"reservation_date" validate:"required,datetime=2006-01-02"`
	ReservationTime string  `json:"reservation_time" validate:"required,datetime=15:04:05"`
	Notes           *string `json:"notes" validate:"omitempty,max=500"`
}
