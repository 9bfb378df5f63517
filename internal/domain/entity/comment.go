package entity

import "time"

// Comment is a rated review a user leaves for an event they attended.
// The backend accepts duplicates; the one-comment-per-user-per-event rule is
// enforced client-side before submission.
type Comment struct {
	ID       int64
	EventID  int64
	AuthorID int64
	Body     string    // Free text, at least 3 characters after trimming.
	Rating   int       // 1 to 5 inclusive.
	Date     time.Time // Stamped with the client's local date at submission.
}
