package model

import (
	"time"
)

type Book struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Year      int    `json:"year"`
	Available bool   `json:"available"`
}

type Patron struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	BorrowedBookIDs []int  `json:"borrowed_book_ids"`
}

// Clone returns a patron that does not share BorrowedBookIDs with p.
func (p Patron) Clone() Patron {
	ids := make([]int, len(p.BorrowedBookIDs))
	copy(ids, p.BorrowedBookIDs)
	p.BorrowedBookIDs = ids
	return p
}

// Loan is never changed or removed once created, a return does not touch it.
type Loan struct {
	BookID        int       `json:"book_id"`
	PatronID      int       `json:"patron_id"`
	LoanTimestamp time.Time `json:"loan_timestamp"`
}

type EventType string

const (
	EventBookRegistered   EventType = "book_registered"
	EventPatronRegistered EventType = "patron_registered"
	EventLoanCreated      EventType = "loan_created"
	EventBookReturned     EventType = "book_returned"
)

type LogEntry struct {
	ID          string    `json:"id"`
	EventType   EventType `json:"event_type"`
	PatronID    *int      `json:"patron_id"`
	BookID      *int      `json:"book_id"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
}

type CreateBookRequest struct {
	ID        *int    `json:"id" validate:"required"`
	Title     *string `json:"title" validate:"required"`
	Author    *string `json:"author" validate:"required"`
	Year      *int    `json:"year" validate:"required"`
	Available *bool   `json:"available" validate:"required"`
}

func (r CreateBookRequest) Book() Book {
	return Book{
		ID:        deref(r.ID),
		Title:     deref(r.Title),
		Author:    deref(r.Author),
		Year:      deref(r.Year),
		Available: deref(r.Available),
	}
}

type CreatePatronRequest struct {
	ID              *int    `json:"id" validate:"required"`
	Name            *string `json:"name" validate:"required"`
	BorrowedBookIDs []int   `json:"borrowed_book_ids"`
}

func (r CreatePatronRequest) Patron() Patron {
	ids := r.BorrowedBookIDs
	if ids == nil {
		ids = []int{}
	}
	return Patron{
		ID:              deref(r.ID),
		Name:            deref(r.Name),
		BorrowedBookIDs: ids,
	}
}

type CreateLoanRequest struct {
	BookID    *int       `json:"book_id" validate:"required"`
	PatronID  *int       `json:"patron_id" validate:"required"`
	Timestamp *time.Time `json:"timestamp" validate:"required"`
}

type ReturnRequest struct {
	PatronID  *int       `json:"patron_id" validate:"required"`
	BookID    *int       `json:"book_id" validate:"required"`
	Timestamp *time.Time `json:"timestamp" validate:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// CirculationEvent is published to the operational event stream.
type CirculationEvent struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	BookID     int       `json:"book_id"`
	PatronID   int       `json:"patron_id"`
	Timestamp  time.Time `json:"timestamp"`
	OccurredAt time.Time `json:"occurred_at"`
}

func deref[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}
