package entities

// GPSLocation is an optional site coordinate for a client.
type GPSLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Client is the root of the customer relationship. Projects reference it
// through ClientID, transactions and documents may reference it directly.
type Client struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Phone       string       `json:"phone"`
	Address     string       `json:"address"`
	Email       string       `json:"email"`
	Notes       string       `json:"notes"`
	GPSLocation *GPSLocation `json:"gpsLocation,omitempty"`
}
