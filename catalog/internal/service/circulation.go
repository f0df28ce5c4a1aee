package service

import (
	"context"
	"slices"
	"time"

	"github.com/Astemirdum/library-catalog/catalog/internal/audit"
	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/catalog/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Circulation owns every change to a book's availability and a patron's
// borrowed books. The book's available flag is the source of truth for
// whether it is on loan, loan history is append only.
type Circulation struct {
	log      *zap.Logger
	repo     repository.Repository
	audit    Auditor
	notifier Notifier
	now      func() time.Time
}

type CirculationOption func(s *Circulation)

func WithClock(now func() time.Time) CirculationOption {
	return func(s *Circulation) {
		s.now = now
	}
}

func NewCirculation(repo repository.Repository, auditor Auditor, notifier Notifier, log *zap.Logger, opts ...CirculationOption) *Circulation {
	s := &Circulation{
		log:      log.Named("circulation"),
		repo:     repo,
		audit:    auditor,
		notifier: notifier,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateLoan lends a book to a patron. Checks run in order book, patron,
// availability, and nothing is changed unless all of them pass.
func (s *Circulation) CreateLoan(ctx context.Context, bookID, patronID int, loanTimestamp time.Time) (model.Loan, error) {
	var loan model.Loan
	err := s.repo.Update(ctx, func(tx repository.Tx) error {
		book, ok := tx.Book(bookID)
		if !ok {
			return errs.NotFound("book")
		}
		patron, ok := tx.Patron(patronID)
		if !ok {
			return errs.NotFound("patron")
		}
		if !book.Available {
			return errs.Conflict("book unavailable")
		}

		book.Available = false
		patron.BorrowedBookIDs = append(patron.BorrowedBookIDs, book.ID)
		loan = model.Loan{
			BookID:        bookID,
			PatronID:      patronID,
			LoanTimestamp: loanTimestamp,
		}
		tx.AddLoan(loan)
		s.audit.Record(tx, model.EventLoanCreated, &patronID, &bookID, audit.LoanCreated(bookID, patronID))
		return nil
	})
	if err != nil {
		return model.Loan{}, err
	}

	s.notifier.Notify(ctx, s.event(model.EventLoanCreated, bookID, patronID, loanTimestamp))
	return loan, nil
}

// ReturnBook takes a lent book back. Checks run in order book, patron, loan
// record, availability. The loan record itself stays as it was.
func (s *Circulation) ReturnBook(ctx context.Context, patronID, bookID int, returnTimestamp time.Time) error {
	err := s.repo.Update(ctx, func(tx repository.Tx) error {
		book, ok := tx.Book(bookID)
		if !ok {
			return errs.NotFound("book")
		}
		patron, ok := tx.Patron(patronID)
		if !ok {
			return errs.NotFound("patron")
		}
		if _, ok := tx.FindLoan(bookID, patronID); !ok {
			return errs.NotFound("loan")
		}
		if book.Available {
			return errs.Conflict("book already available")
		}

		book.Available = true
		if i := slices.Index(patron.BorrowedBookIDs, bookID); i >= 0 {
			patron.BorrowedBookIDs = slices.Delete(patron.BorrowedBookIDs, i, i+1)
		}
		s.audit.Record(tx, model.EventBookReturned, &patronID, &bookID, audit.BookReturned(bookID, patronID))
		return nil
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(ctx, s.event(model.EventBookReturned, bookID, patronID, returnTimestamp))
	return nil
}

func (s *Circulation) ListLoans(ctx context.Context) ([]model.Loan, error) {
	var loans []model.Loan
	err := s.repo.View(ctx, func(tx repository.Tx) error {
		loans = tx.Loans()
		return nil
	})
	return loans, err
}

// ListBorrowedBooks returns the patron's borrowed books in registration order.
func (s *Circulation) ListBorrowedBooks(ctx context.Context, patronID int) ([]model.Book, error) {
	var books []model.Book
	err := s.repo.View(ctx, func(tx repository.Tx) error {
		patron, ok := tx.Patron(patronID)
		if !ok {
			return errs.NotFound("patron")
		}
		books = make([]model.Book, 0, len(patron.BorrowedBookIDs))
		for _, b := range tx.Books() {
			if slices.Contains(patron.BorrowedBookIDs, b.ID) {
				books = append(books, b)
			}
		}
		return nil
	})
	return books, err
}

func (s *Circulation) event(eventType model.EventType, bookID, patronID int, ts time.Time) model.CirculationEvent {
	return model.CirculationEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		BookID:     bookID,
		PatronID:   patronID,
		Timestamp:  ts,
		OccurredAt: s.now(),
	}
}
