//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"shareit/internal/handler/api"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	"shareit/tests/common/httptest"
	"shareit/tests/common/testutil"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	sharerID     uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.sharerID = uuid.New()

	identity := middleware.RequireSharerID()
	s.router.POST("/bookings", identity, s.handler.Create)
	s.router.GET("/bookings", identity, s.handler.ListForBooker)
	s.router.GET("/bookings/owner", identity, s.handler.ListForOwner)
	s.router.GET("/bookings/:id", identity, s.handler.GetByID)
	s.router.PATCH("/bookings/:id", identity, s.handler.Decide)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	returnView := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns 201 Created with BookingResponse", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.sharerID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.sharerID.String())

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID.String(), body["id"])
		s.Equal("WAITING", body["status"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing field: itemId (required)", mutate: testutil.Field("itemId", nil)},
			{name: "missing field: start (required)", mutate: testutil.Field("start", nil)},
			{name: "missing field: end (required)", mutate: testutil.Field("end", nil)},
			{name: "malformed itemId", mutate: testutil.Field("itemId", "not-a-uuid")},
			{name: "malformed start", mutate: testutil.Field("start", "tomorrow")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, s.sharerID.String())
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 Bad Request without identity header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown booker",
				commandsError:  errs.ErrUserNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "User not found",
			},
			{
				name:           "unknown item",
				commandsError:  errs.ErrItemNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Item not found",
			},
			{
				name:           "unavailable item",
				commandsError:  errs.ErrItemUnavailable,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Item is not available",
			},
			{
				name:           "owner books own item",
				commandsError:  errs.ErrSelfBooking,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Owner cannot book own item",
			},
			{
				name:           "end before start",
				commandsError:  errs.ErrInvalidInterval,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Booking end must be after start",
			},
			{
				name:           "backdated booking",
				commandsError:  errs.ErrBackdatedBooking,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Booking cannot be in the past",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), s.sharerID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.sharerID.String())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDecide
// ================================================================================

func (s *BookingHandlerTestSuite) TestDecide() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	approvedView := builder.NewBookingBuilder().BuildView()
	approvedView.ID = bookingID

	s.Run("success: approves with approved=true", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), bookingID, s.sharerID, true).
			Return(approvedView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=true", nil, s.sharerID.String())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: rejects with approved=false", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), bookingID, s.sharerID, false).
			Return(approvedView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=false", nil, s.sharerID.String())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for invalid booking UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/invalid-uuid?approved=true", nil, s.sharerID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 400 Bad Request for missing or malformed approved parameter", func() {
		for _, q := range []string{"", "?approved=", "?approved=maybe"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+q, nil, s.sharerID.String())
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "approved query parameter")
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  errs.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "non-owner is told the booking does not exist",
				commandsError:  errs.ErrForbidden,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "already decided",
				commandsError:  errs.ErrAlreadyDecided,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Booking is already decided",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Decide(gomock.Any(), bookingID, s.sharerID, true).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=true", nil, s.sharerID.String())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetByID
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetByID() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	returnView := builder.NewBookingBuilder().BuildView()
	returnView.ID = bookingID

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID, s.sharerID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.sharerID.String())

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(bookingID.String(), body["id"])

		booker, ok := body["booker"].(map[string]any)
		s.True(ok)
		s.Equal(returnView.Booker.ID.String(), booker["id"])

		item, ok := body["item"].(map[string]any)
		s.True(ok)
		s.Equal(returnView.Item.Name, item["name"])
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, s.sharerID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 Not Found for strangers", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID, s.sharerID).
			Return(nil, errs.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.sharerID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID, s.sharerID).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.sharerID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestListForBooker / TestListForOwner
// ================================================================================

func (s *BookingHandlerTestSuite) TestListForBooker() {
	url := "/bookings"

	now := time.Now()
	views := []queries.BookingView{
		*builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Start = now.Add(48 * time.Hour) }).BuildView(),
		*builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Start = now.Add(24 * time.Hour) }).BuildView(),
	}

	s.Run("success: defaults to state=ALL from=0 size=10", func() {
		s.mockQueries.EXPECT().ListForBooker(gomock.Any(), s.sharerID, "ALL", 0, 10).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.sharerID.String())

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("success: forwards state and pagination", func() {
		s.mockQueries.EXPECT().ListForBooker(gomock.Any(), s.sharerID, "FUTURE", 7, 5).
			Return(views[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?state=FUTURE&from=7&size=5", nil, s.sharerID.String())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: empty result is a JSON array", func() {
		s.mockQueries.EXPECT().ListForBooker(gomock.Any(), s.sharerID, "ALL", 0, 10).
			Return([]queries.BookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.sharerID.String())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: 400 Bad Request for non-integer pagination", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?from=seven", nil, s.sharerID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "from query parameter")
	})

	s.Run("error: 400 Bad Request for unknown state", func() {
		s.mockQueries.EXPECT().ListForBooker(gomock.Any(), s.sharerID, "SOMEDAY", 0, 10).
			Return(nil, errs.ErrUnknownBucket).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?state=SOMEDAY", nil, s.sharerID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown state")
	})

	s.Run("error: 400 Bad Request for invalid pagination values", func() {
		s.mockQueries.EXPECT().ListForBooker(gomock.Any(), s.sharerID, "ALL", -1, 10).
			Return(nil, errs.ErrInvalidPagination).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?from=-1", nil, s.sharerID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid pagination parameters")
	})
}

func (s *BookingHandlerTestSuite) TestListForOwner() {
	url := "/bookings/owner"

	views := []queries.BookingView{*builder.NewBookingBuilder().BuildView()}

	s.Run("success: defaults to state=ALL from=0 size=10", func() {
		s.mockQueries.EXPECT().ListForOwner(gomock.Any(), s.sharerID, "ALL", 0, 10).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.sharerID.String())

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: forwards state", func() {
		s.mockQueries.EXPECT().ListForOwner(gomock.Any(), s.sharerID, "WAITING", 0, 10).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?state=WAITING", nil, s.sharerID.String())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request without identity header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
