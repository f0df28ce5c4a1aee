package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Astemirdum/library-catalog/catalog/internal/audit"
	"github.com/Astemirdum/library-catalog/catalog/internal/handler"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/catalog/internal/notify"
	"github.com/Astemirdum/library-catalog/catalog/internal/repository"
	"github.com/Astemirdum/library-catalog/catalog/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type client struct {
	t *testing.T
	e *echo.Echo
}

func newClient(t *testing.T, opts ...handler.Option) client {
	t.Helper()
	log := zap.NewNop()
	repo := repository.NewRepository(log)
	rec := audit.NewRecorder(repo, log)
	h := handler.New(
		service.NewCatalog(repo, rec, log),
		service.NewCirculation(repo, rec, notify.New(log), log),
		rec,
		log,
		opts...,
	)
	return client{t: t, e: h.NewRouter()}
}

func (c client) do(method, target, body string) *httptest.ResponseRecorder {
	c.t.Helper()
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	c.e.ServeHTTP(w, r)
	return w
}

func (c client) books() []model.Book {
	c.t.Helper()
	w := c.do(http.MethodGet, "/livros", "")
	require.Equal(c.t, http.StatusOK, w.Code)
	var books []model.Book
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &books))
	return books
}

func (c client) logs() []model.LogEntry {
	c.t.Helper()
	w := c.do(http.MethodGet, "/logs", "")
	require.Equal(c.t, http.StatusOK, w.Code)
	var logs []model.LogEntry
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &logs))
	return logs
}

func TestScenario_LoanAndReturn(t *testing.T) {
	t.Parallel()
	c := newClient(t)

	w := c.do(http.MethodPost, "/livros", `{"id":1,"title":"Dune","author":"Frank Herbert","year":1965,"available":true}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = c.do(http.MethodPost, "/usuarios", `{"id":1,"name":"Alice","borrowed_book_ids":[]}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = c.do(http.MethodPost, "/emprestimos", `{"book_id":1,"patron_id":1,"timestamp":"2024-04-01T10:00:00Z"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.False(t, c.books()[0].Available)

	w = c.do(http.MethodGet, "/usuarios/1/livros-emprestados", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `[{"id":1,"title":"Dune","author":"Frank Herbert","year":1965,"available":false}]`, strings.TrimSpace(w.Body.String()))

	w = c.do(http.MethodPost, "/emprestimos", `{"book_id":1,"patron_id":1,"timestamp":"2024-04-02T10:00:00Z"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, `{"message":"book unavailable"}`, strings.TrimSpace(w.Body.String()))

	w = c.do(http.MethodPut, "/emprestimos/devolver", `{"patron_id":1,"book_id":1,"timestamp":"2024-04-03T10:00:00Z"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"message":"Book returned successfully."}`, strings.TrimSpace(w.Body.String()))
	require.True(t, c.books()[0].Available)

	w = c.do(http.MethodPut, "/emprestimos/devolver", `{"patron_id":1,"book_id":1,"timestamp":"2024-04-04T10:00:00Z"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, `{"message":"book already available"}`, strings.TrimSpace(w.Body.String()))

	w = c.do(http.MethodGet, "/emprestimos", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `[{"book_id":1,"patron_id":1,"loan_timestamp":"2024-04-01T10:00:00Z"}]`, strings.TrimSpace(w.Body.String()))

	w = c.do(http.MethodGet, "/usuarios", "")
	require.Equal(t, `[{"id":1,"name":"Alice","borrowed_book_ids":[]}]`, strings.TrimSpace(w.Body.String()))

	logs := c.logs()
	types := make([]model.EventType, 0, len(logs))
	for _, l := range logs {
		types = append(types, l.EventType)
	}
	require.Equal(t, []model.EventType{
		model.EventBookRegistered,
		model.EventPatronRegistered,
		model.EventLoanCreated,
		model.EventBookReturned,
	}, types)
}

func TestScenario_LookupAndDuplicates(t *testing.T) {
	t.Parallel()
	c := newClient(t)

	w := c.do(http.MethodPost, "/livros", `{"id":1,"title":"Dune","author":"Frank Herbert","year":1965,"available":true}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = c.do(http.MethodGet, "/livros/Dune", "")
	require.Equal(t, http.StatusOK, w.Code)
	w = c.do(http.MethodGet, "/livros/Unknown", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = c.do(http.MethodPost, "/livros", `{"id":1,"title":"Emma","author":"Jane Austen","year":1815,"available":true}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	books := c.books()
	require.Len(t, books, 1)
	require.Equal(t, "Dune", books[0].Title)

	w = c.do(http.MethodPost, "/usuarios", `{"id":1,"name":"Alice"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = c.do(http.MethodPost, "/usuarios", `{"id":1,"name":"Bob"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodPost, "/emprestimos", `{"book_id":1,"patron_id":2,"timestamp":"2024-04-01T10:00:00Z"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, `{"message":"patron not found"}`, strings.TrimSpace(w.Body.String()))

	w = c.do(http.MethodGet, "/usuarios/2/livros-emprestados", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	require.Len(t, c.logs(), 2)

	w = c.do(http.MethodGet, "/manage/health", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestScenario_TitleLookupIsExact(t *testing.T) {
	t.Parallel()
	c := newClient(t)

	w := c.do(http.MethodPost, "/livros", `{"id":1,"title":"%41","author":"Anon","year":2000,"available":true}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = c.do(http.MethodPost, "/livros", `{"id":2,"title":"A","author":"Anon","year":2001,"available":true}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = c.do(http.MethodGet, "/livros/%2541", "")
	require.Equal(t, http.StatusOK, w.Code)
	var book model.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	require.Equal(t, 1, book.ID)

	w = c.do(http.MethodGet, "/livros/A", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	require.Equal(t, 2, book.ID)

	w = c.do(http.MethodGet, "/livros/a", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestScenario_RateLimited(t *testing.T) {
	t.Parallel()
	c := newClient(t, handler.WithRateLimit(1))

	w := c.do(http.MethodGet, "/livros", "")
	require.Equal(t, http.StatusOK, w.Code)
	w = c.do(http.MethodGet, "/livros", "")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Equal(t, `{"message":"rate limit exceeded"}`, strings.TrimSpace(w.Body.String()))

	// health has its own limiter
	w = c.do(http.MethodGet, "/manage/health", "")
	require.Equal(t, http.StatusOK, w.Code)
}
