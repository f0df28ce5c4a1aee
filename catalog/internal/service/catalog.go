package service

import (
	"context"

	"github.com/Astemirdum/library-catalog/catalog/internal/audit"
	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/catalog/internal/repository"
	"go.uber.org/zap"
)

type Catalog struct {
	log   *zap.Logger
	repo  repository.Repository
	audit Auditor
}

func NewCatalog(repo repository.Repository, auditor Auditor, log *zap.Logger) *Catalog {
	return &Catalog{
		log:   log.Named("catalog"),
		repo:  repo,
		audit: auditor,
	}
}

func (s *Catalog) ListBooks(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	err := s.repo.View(ctx, func(tx repository.Tx) error {
		books = tx.Books()
		return nil
	})
	return books, err
}

// GetBook returns the first registered book with exactly this title.
func (s *Catalog) GetBook(ctx context.Context, title string) (model.Book, error) {
	var book model.Book
	err := s.repo.View(ctx, func(tx repository.Tx) error {
		b, ok := tx.BookByTitle(title)
		if !ok {
			return errs.NotFound("book")
		}
		book = *b
		return nil
	})
	return book, err
}

func (s *Catalog) RegisterBook(ctx context.Context, book model.Book) (model.Book, error) {
	err := s.repo.Update(ctx, func(tx repository.Tx) error {
		if _, ok := tx.Book(book.ID); ok {
			return errs.Conflict("book id already exists")
		}
		tx.AddBook(book)
		s.audit.Record(tx, model.EventBookRegistered, nil, &book.ID, audit.BookRegistered(book))
		return nil
	})
	if err != nil {
		return model.Book{}, err
	}
	s.log.Info("book registered", zap.Int("book_id", book.ID), zap.String("title", book.Title))
	return book, nil
}

func (s *Catalog) ListPatrons(ctx context.Context) ([]model.Patron, error) {
	var patrons []model.Patron
	err := s.repo.View(ctx, func(tx repository.Tx) error {
		patrons = tx.Patrons()
		return nil
	})
	return patrons, err
}

func (s *Catalog) RegisterPatron(ctx context.Context, patron model.Patron) (model.Patron, error) {
	if patron.BorrowedBookIDs == nil {
		patron.BorrowedBookIDs = []int{}
	}
	err := s.repo.Update(ctx, func(tx repository.Tx) error {
		if _, ok := tx.Patron(patron.ID); ok {
			return errs.Conflict("patron id already exists")
		}
		tx.AddPatron(patron)
		s.audit.Record(tx, model.EventPatronRegistered, &patron.ID, nil, audit.PatronRegistered(patron))
		return nil
	})
	if err != nil {
		return model.Patron{}, err
	}
	s.log.Info("patron registered", zap.Int("patron_id", patron.ID))
	return patron.Clone(), nil
}
