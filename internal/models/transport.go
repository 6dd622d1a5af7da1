package models

// Transport type constants. The field is an open string; these are the
// values the catalog is expected to carry.
const (
	TransportTypeTrain  = "train"
	TransportTypeBus    = "bus"
	TransportTypeFlight = "flight"
)

// Transport is a bookable travel offering. Seats is the capacity set at
// creation; AvailableSeats is the remaining-seats counter mutated by
// bookings and cancellations. Departure and arrival times are stored as
// supplied by the client, with no timezone normalization.
type Transport struct {
	ID             string  `json:"id"`
	Type           string  `json:"type"`
	Name           string  `json:"name"`
	From           string  `json:"from"`
	To             string  `json:"to"`
	DepartureTime  string  `json:"departureTime"`
	ArrivalTime    string  `json:"arrivalTime"`
	Price          float64 `json:"price"`
	Seats          int     `json:"seats"`
	AvailableSeats int     `json:"availableSeats"`
}
