package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/catalog/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Recorder struct {
	repo repository.Repository
	now  func() time.Time
	log  *zap.Logger
}

type Option func(r *Recorder)

func WithClock(now func() time.Time) Option {
	return func(r *Recorder) {
		r.now = now
	}
}

func NewRecorder(repo repository.Repository, log *zap.Logger, opts ...Option) *Recorder {
	r := &Recorder{
		repo: repo,
		now:  time.Now,
		log:  log.Named("audit"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record appends an entry inside the caller's Update so it lands together
// with the mutation it describes. It never fails.
func (r *Recorder) Record(tx repository.Tx, eventType model.EventType, patronID, bookID *int, description string) {
	entry := model.LogEntry{
		ID:          uuid.NewString(),
		EventType:   eventType,
		PatronID:    patronID,
		BookID:      bookID,
		Timestamp:   r.now(),
		Description: description,
	}
	tx.AppendLog(entry)
	r.log.Debug("recorded",
		zap.String("event_type", string(eventType)),
		zap.String("description", description))
}

func (r *Recorder) List(ctx context.Context) ([]model.LogEntry, error) {
	var logs []model.LogEntry
	err := r.repo.View(ctx, func(tx repository.Tx) error {
		logs = tx.Logs()
		return nil
	})
	return logs, err
}

func BookRegistered(book model.Book) string {
	return fmt.Sprintf("Book '%s' registered with ID %d", book.Title, book.ID)
}

func PatronRegistered(patron model.Patron) string {
	return fmt.Sprintf("Patron '%s' registered with ID %d", patron.Name, patron.ID)
}

func LoanCreated(bookID, patronID int) string {
	return fmt.Sprintf("Book ID %d lent to patron ID %d", bookID, patronID)
}

func BookReturned(bookID, patronID int) string {
	return fmt.Sprintf("Book ID %d returned by patron ID %d", bookID, patronID)
}
