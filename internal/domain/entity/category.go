package entity

// Category is an event classification managed by administrators.
type Category struct {
	ID   int64
	Name string
}
