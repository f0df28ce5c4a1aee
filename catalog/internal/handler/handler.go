package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	md "github.com/Astemirdum/library-catalog/pkg/middleware"
	"github.com/Astemirdum/library-catalog/pkg/validate"
	_ "github.com/Astemirdum/library-catalog/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const returnedMessage = "Book returned successfully."

type Handler struct {
	catalogSvc     CatalogService
	circulationSvc CirculationService
	auditSvc       AuditService
	apiRPS         rate.Limit
	log            *zap.Logger
}

type Option func(h *Handler)

func WithRateLimit(rps float64) Option {
	return func(h *Handler) {
		if rps > 0 {
			h.apiRPS = rate.Limit(rps)
		}
	}
}

func New(catalogSvc CatalogService, circulationSvc CirculationService, auditSvc AuditService, log *zap.Logger, opts ...Option) *Handler {
	h := &Handler{
		catalogSvc:     catalogSvc,
		circulationSvc: circulationSvc,
		auditSvc:       auditSvc,
		apiRPS:         100,
		log:            log,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	const baseRPS = 10
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPost},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(h.apiRPS),
	)

	api.GET("/livros", h.ListBooks)
	api.GET("/livros/:titulo", h.GetBook)
	api.POST("/livros", h.RegisterBook)

	api.GET("/usuarios", h.ListPatrons)
	api.POST("/usuarios", h.RegisterPatron)
	api.GET("/usuarios/:id/livros-emprestados", h.ListBorrowedBooks)

	api.GET("/emprestimos", h.ListLoans)
	api.POST("/emprestimos", h.CreateLoan)
	api.PUT("/emprestimos/devolver", h.ReturnBook)

	api.GET("/logs", h.ListLogs)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// ListBooks godoc
// @Summary  list books in registration order
// @Tags     books
// @Produce  json
// @Success  200 {array} model.Book
// @Router   /livros [get]
func (h *Handler) ListBooks(c echo.Context) error {
	books, err := h.catalogSvc.ListBooks(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// GetBook godoc
// @Summary  first book with exactly this title
// @Tags     books
// @Produce  json
// @Param    titulo path string true "title"
// @Success  200 {object} model.Book
// @Failure  404 {object} model.MessageResponse
// @Router   /livros/{titulo} [get]
func (h *Handler) GetBook(c echo.Context) error {
	title := c.Param("titulo")
	// echo routes on RawPath when it is set, leaving params escaped
	if c.Request().URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(title); err == nil {
			title = unescaped
		}
	}
	book, err := h.catalogSvc.GetBook(c.Request().Context(), title)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// RegisterBook godoc
// @Summary  register a book
// @Tags     books
// @Accept   json
// @Produce  json
// @Param    book body model.CreateBookRequest true "book"
// @Success  201 {object} model.Book
// @Failure  400 {object} model.MessageResponse
// @Failure  422 {object} errs.ValidationErrorResponse
// @Router   /livros [post]
func (h *Handler) RegisterBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	book, err := h.catalogSvc.RegisterBook(c.Request().Context(), req.Book())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

// ListPatrons godoc
// @Summary  list patrons in registration order
// @Tags     patrons
// @Produce  json
// @Success  200 {array} model.Patron
// @Router   /usuarios [get]
func (h *Handler) ListPatrons(c echo.Context) error {
	patrons, err := h.catalogSvc.ListPatrons(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, patrons)
}

// RegisterPatron godoc
// @Summary  register a patron
// @Tags     patrons
// @Accept   json
// @Produce  json
// @Param    patron body model.CreatePatronRequest true "patron"
// @Success  201 {object} model.Patron
// @Failure  400 {object} model.MessageResponse
// @Failure  422 {object} errs.ValidationErrorResponse
// @Router   /usuarios [post]
func (h *Handler) RegisterPatron(c echo.Context) error {
	var req model.CreatePatronRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	patron, err := h.catalogSvc.RegisterPatron(c.Request().Context(), req.Patron())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, patron)
}

// ListBorrowedBooks godoc
// @Summary  books currently lent to a patron
// @Tags     patrons
// @Produce  json
// @Param    id path int true "patron id"
// @Success  200 {array} model.Book
// @Failure  404 {object} model.MessageResponse
// @Failure  422 {object} errs.ValidationErrorResponse
// @Router   /usuarios/{id}/livros-emprestados [get]
func (h *Handler) ListBorrowedBooks(c echo.Context) error {
	patronID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, fieldError("id", "int"))
	}
	books, err := h.circulationSvc.ListBorrowedBooks(c.Request().Context(), patronID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// ListLoans godoc
// @Summary  every loan ever made, in creation order
// @Tags     loans
// @Produce  json
// @Success  200 {array} model.Loan
// @Router   /emprestimos [get]
func (h *Handler) ListLoans(c echo.Context) error {
	loans, err := h.circulationSvc.ListLoans(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

// CreateLoan godoc
// @Summary  lend a book to a patron
// @Tags     loans
// @Accept   json
// @Produce  json
// @Param    loan body model.CreateLoanRequest true "loan"
// @Success  201 {object} model.Loan
// @Failure  400 {object} model.MessageResponse
// @Failure  404 {object} model.MessageResponse
// @Failure  422 {object} errs.ValidationErrorResponse
// @Router   /emprestimos [post]
func (h *Handler) CreateLoan(c echo.Context) error {
	var req model.CreateLoanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	loan, err := h.circulationSvc.CreateLoan(c.Request().Context(), *req.BookID, *req.PatronID, *req.Timestamp)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, loan)
}

// ReturnBook godoc
// @Summary  take a lent book back
// @Tags     loans
// @Accept   json
// @Produce  json
// @Param    return body model.ReturnRequest true "return"
// @Success  200 {object} model.MessageResponse
// @Failure  400 {object} model.MessageResponse
// @Failure  404 {object} model.MessageResponse
// @Failure  422 {object} errs.ValidationErrorResponse
// @Router   /emprestimos/devolver [put]
func (h *Handler) ReturnBook(c echo.Context) error {
	var req model.ReturnRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.circulationSvc.ReturnBook(c.Request().Context(), *req.PatronID, *req.BookID, *req.Timestamp); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, model.MessageResponse{Message: returnedMessage})
}

// ListLogs godoc
// @Summary  audit log in append order
// @Tags     logs
// @Produce  json
// @Success  200 {array} model.LogEntry
// @Router   /logs [get]
func (h *Handler) ListLogs(c echo.Context) error {
	logs, err := h.auditSvc.List(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, logs)
}
