package handler

import (
	"context"
	"time"

	"github.com/Astemirdum/library-catalog/catalog/internal/audit"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/catalog/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogService interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, title string) (model.Book, error)
	RegisterBook(ctx context.Context, book model.Book) (model.Book, error)
	ListPatrons(ctx context.Context) ([]model.Patron, error)
	RegisterPatron(ctx context.Context, patron model.Patron) (model.Patron, error)
}

type CirculationService interface {
	CreateLoan(ctx context.Context, bookID, patronID int, loanTimestamp time.Time) (model.Loan, error)
	ReturnBook(ctx context.Context, patronID, bookID int, returnTimestamp time.Time) error
	ListLoans(ctx context.Context) ([]model.Loan, error)
	ListBorrowedBooks(ctx context.Context, patronID int) ([]model.Book, error)
}

type AuditService interface {
	List(ctx context.Context) ([]model.LogEntry, error)
}

var (
	_ CatalogService     = (*service.Catalog)(nil)
	_ CirculationService = (*service.Circulation)(nil)
	_ AuditService       = (*audit.Recorder)(nil)
)
