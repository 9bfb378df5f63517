package entity

// Employee is a staff member that can be assigned as responsible for an event.
type Employee struct {
	ID        int64
	FirstName string
	LastName  string
	Position  string
}
