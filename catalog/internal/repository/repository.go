package repository

import (
	"context"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"go.uber.org/zap"
)

// Tx is a view of the collections for the duration of one View or Update.
// Pointers returned by Book and Patron are only valid inside the callback and
// only until the next Add on the same collection.
type Tx interface {
	Books() []model.Book
	Book(id int) (*model.Book, bool)
	BookByTitle(title string) (*model.Book, bool)
	AddBook(book model.Book)

	Patrons() []model.Patron
	Patron(id int) (*model.Patron, bool)
	AddPatron(patron model.Patron)

	Loans() []model.Loan
	FindLoan(bookID, patronID int) (model.Loan, bool)
	AddLoan(loan model.Loan)

	Logs() []model.LogEntry
	AppendLog(entry model.LogEntry)
}

type Repository interface {
	// View runs fn under a shared lock, fn must not call any Add method.
	View(ctx context.Context, fn func(tx Tx) error) error
	// Update runs fn under an exclusive lock, so every check and mutation
	// fn makes is observed by other callers as a single step.
	Update(ctx context.Context, fn func(tx Tx) error) error
}

type repository struct {
	mem *memory
	log *zap.Logger
}

func NewRepository(log *zap.Logger) *repository {
	return &repository{
		mem: newMemory(),
		log: log.Named("repo"),
	}
}

func (r *repository) View(ctx context.Context, fn func(tx Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mem.mu.RLock()
	defer r.mem.mu.RUnlock()
	return fn(&tx{mem: r.mem})
}

func (r *repository) Update(ctx context.Context, fn func(tx Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mem.mu.Lock()
	defer r.mem.mu.Unlock()
	if err := fn(&tx{mem: r.mem, writable: true}); err != nil {
		r.log.Debug("update rejected", zap.Error(err))
		return err
	}
	return nil
}
