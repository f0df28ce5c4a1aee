package repository

import (
	"sync"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

// memory holds the collections in insertion order. Lookups are linear scans,
// a single branch catalog stays small enough for that.
type memory struct {
	mu      sync.RWMutex
	books   []model.Book
	patrons []model.Patron
	loans   []model.Loan
	logs    []model.LogEntry
}

func newMemory() *memory {
	return &memory{
		books:   make([]model.Book, 0),
		patrons: make([]model.Patron, 0),
		loans:   make([]model.Loan, 0),
		logs:    make([]model.LogEntry, 0),
	}
}

type tx struct {
	mem      *memory
	writable bool
}

func (t *tx) mustWritable() {
	if !t.writable {
		panic("repository: write in read-only transaction")
	}
}

func (t *tx) Books() []model.Book {
	books := make([]model.Book, len(t.mem.books))
	copy(books, t.mem.books)
	return books
}

func (t *tx) Book(id int) (*model.Book, bool) {
	for i := range t.mem.books {
		if t.mem.books[i].ID == id {
			return &t.mem.books[i], true
		}
	}
	return nil, false
}

func (t *tx) BookByTitle(title string) (*model.Book, bool) {
	for i := range t.mem.books {
		if t.mem.books[i].Title == title {
			return &t.mem.books[i], true
		}
	}
	return nil, false
}

func (t *tx) AddBook(book model.Book) {
	t.mustWritable()
	t.mem.books = append(t.mem.books, book)
}

func (t *tx) Patrons() []model.Patron {
	patrons := make([]model.Patron, 0, len(t.mem.patrons))
	for _, p := range t.mem.patrons {
		patrons = append(patrons, p.Clone())
	}
	return patrons
}

func (t *tx) Patron(id int) (*model.Patron, bool) {
	for i := range t.mem.patrons {
		if t.mem.patrons[i].ID == id {
			return &t.mem.patrons[i], true
		}
	}
	return nil, false
}

func (t *tx) AddPatron(patron model.Patron) {
	t.mustWritable()
	t.mem.patrons = append(t.mem.patrons, patron.Clone())
}

func (t *tx) Loans() []model.Loan {
	loans := make([]model.Loan, len(t.mem.loans))
	copy(loans, t.mem.loans)
	return loans
}

// FindLoan returns the earliest loan of bookID to patronID.
func (t *tx) FindLoan(bookID, patronID int) (model.Loan, bool) {
	for _, l := range t.mem.loans {
		if l.BookID == bookID && l.PatronID == patronID {
			return l, true
		}
	}
	return model.Loan{}, false
}

func (t *tx) AddLoan(loan model.Loan) {
	t.mustWritable()
	t.mem.loans = append(t.mem.loans, loan)
}

func (t *tx) Logs() []model.LogEntry {
	logs := make([]model.LogEntry, len(t.mem.logs))
	copy(logs, t.mem.logs)
	return logs
}

func (t *tx) AppendLog(entry model.LogEntry) {
	t.mustWritable()
	t.mem.logs = append(t.mem.logs, entry)
}
