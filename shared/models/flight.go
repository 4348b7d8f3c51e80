package models

// Flight represents an offered flight
type Flight struct {
	ID            string `json:"id" yaml:"id"`
	Airline       string `json:"airline" yaml:"airline"`
	FlightNumber  string `json:"flightNumber" yaml:"flightNumber"`
	Origin        string `json:"origin" yaml:"origin"`
	Destination   string `json:"destination" yaml:"destination"`
	DepartureTime string `json:"departureTime" yaml:"departureTime"`
	ArrivalTime   string `json:"arrivalTime" yaml:"arrivalTime"`
}

// Seat represents a seat in the cabin
type Seat struct {
	ID        string  `json:"id"`
	Row       int     `json:"row"`
	Letter    string  `json:"letter"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}
