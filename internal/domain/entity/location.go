package entity

// Location is a venue an event takes place at.
type Location struct {
	ID      int64
	Name    string
	Address string
}
