package api

import (
	"context"
	"net/http"
	"strconv"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultListState = "ALL"
	defaultListFrom  = "0"
	defaultListSize  = "10"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Reserve an item for a date range; the booking starts WAITING
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.bookingCommands.Create(c.Request.Context(), userID, commands.CreateBookingInput{
		ItemID: req.ItemID,
		Start:  req.Start,
		End:    req.End,
	})
	if err != nil {
		abortDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Approve or reject booking
// @Description Owner decision on a WAITING booking
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param id path string true "Booking ID"
// @Param approved query bool true "true approves, false rejects"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Decide(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "approved query parameter must be a boolean", nil)
		return
	}

	view, err := h.bookingCommands.Decide(c.Request.Context(), bookingID, userID, approved)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Visible to the booker and the item owner only
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetByID(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), bookingID, userID)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings made by the caller
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Result offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListForBooker(c *gin.Context) {
	h.list(c, h.bookingQueries.ListForBooker)
}

// @Summary List bookings of the caller's items
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Result offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/owner [get]
func (h *BookingHandler) ListForOwner(c *gin.Context) {
	h.list(c, h.bookingQueries.ListForOwner)
}

func (h *BookingHandler) list(c *gin.Context, query func(ctx context.Context, subjectID uuid.UUID, state string, from, size int) ([]queries.BookingView, error)) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	state := c.DefaultQuery("state", defaultListState)
	from, err := strconv.Atoi(c.DefaultQuery("from", defaultListFrom))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "from query parameter must be an integer", nil)
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", defaultListSize))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "size query parameter must be an integer", nil)
		return
	}

	views, err := query(c.Request.Context(), userID, state, from, size)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}
