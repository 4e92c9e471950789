//go:build unit

package api_test

import (
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"
	"time"

	"aparthotel-booking/internal/domain/reservation"
	"aparthotel-booking/internal/domain/user"
	"aparthotel-booking/internal/handler/api"
	reqdto "aparthotel-booking/internal/handler/dto/request"
	resdto "aparthotel-booking/internal/handler/dto/response"
	"aparthotel-booking/internal/pkg/errs"
	"aparthotel-booking/internal/usecase/commands"
	"aparthotel-booking/internal/usecase/notification"
	"aparthotel-booking/internal/usecase/queries"
	"aparthotel-booking/internal/usecase/shared"
	"aparthotel-booking/tests/common/builder"
	"aparthotel-booking/tests/common/httptest"
	"aparthotel-booking/tests/common/testutil"
	commandsmock "aparthotel-booking/tests/mock/commands"
	queriesmock "aparthotel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	callerID     uuid.UUID
}

// asCaller stands in for RequireAuth: a bearer token means an authenticated caller,
// and the X-Test-Role header picks the role.
func (s *BookingHandlerTestSuite) asCaller(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		return
	}
	role := user.RoleGuest
	if r := c.GetHeader("X-Test-Role"); r != "" {
		role = user.Role(r)
	}
	c.Set("user_id", s.callerID)
	c.Set("user_role", role)
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.callerID = uuid.New()

	handler := api.NewBookingHandler(s.mockCommands, s.mockQueries)
	bookings := s.router.Group("/bookings", s.asCaller)
	bookings.POST("", handler.Create)
	bookings.GET("/mine", handler.Mine)
	bookings.GET("", handler.List)
	bookings.GET("/:id", handler.Get)
	bookings.PATCH("/:id/status", handler.UpdateStatus)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *BookingHandlerTestSuite) createResult(b *builder.ReservationBuilder) *commands.CreateReservationResult {
	return &commands.CreateReservationResult{
		Reservation: b.WithRequesterID(s.callerID).BuildView(),
		Notification: notification.Report{
			Delivered: true,
			Channels: []notification.ChannelResult{
				{Channel: notification.ChannelEmail, Outcome: notification.OutcomeSent},
				{Channel: notification.ChannelWhatsApp, Outcome: notification.OutcomeSent, Link: "https://wa.me/1?text=hi"},
			},
		},
	}
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: returns 201 with the booking and notification outcome", func() {
		result := s.createResult(b)
		s.mockCommands.EXPECT().Create(gomock.Any(), b.BuildInput(), s.callerID).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(result.Reservation.ID, response.ID)
		s.Equal("pending", response.Booking.Status)
		s.Equal(b.UnitID, response.Booking.UnitID)
		s.True(response.Notification.Delivered)
		s.Len(response.Notification.Channels, 2)
		s.NotContains(rec.Body.String(), "wa.me")
	})

	s.Run("error: 401 without an identity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 on binding failures", func() {
		cases := []testCaseBooking{
			{name: "missing apartmentId", mutate: testutil.Field("apartmentId", nil), expectCode: http.StatusBadRequest},
			{name: "missing checkIn", mutate: testutil.Field("checkIn", nil), expectCode: http.StatusBadRequest},
			{name: "unparseable checkOut", mutate: testutil.Field("checkOut", "next tuesday"), expectCode: http.StatusBadRequest},
			{name: "missing guestName", mutate: testutil.Field("guestName", nil), expectCode: http.StatusBadRequest},
			{name: "guest contact dropped", mutate: testutil.Fields(testutil.Field("guestName", nil), testutil.Field("guestEmail", nil)), expectCode: http.StatusBadRequest},
			{name: "guestName over 255", mutate: testutil.Field("guestName", strings.Repeat("a", 256)), expectCode: http.StatusBadRequest},
			{name: "invalid guestEmail", mutate: testutil.Field("guestEmail", "nope"), expectCode: http.StatusBadRequest},
			{name: "zero guests", mutate: testutil.Field("guests", 0), expectCode: http.StatusBadRequest},
			{name: "missing totalPrice", mutate: testutil.Field("totalPrice", nil), expectCode: http.StatusBadRequest},
			{name: "negative totalPrice", mutate: testutil.Field("totalPrice", -1), expectCode: http.StatusBadRequest},
			{name: "unknown contactMethod", mutate: testutil.Field("contactMethod", "fax"), expectCode: http.StatusBadRequest},
			{name: "specialRequests over 2000", mutate: testutil.Field("specialRequests", strings.Repeat("a", 2001)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("success: zero totalPrice is accepted", func() {
		zero := builder.NewReservationBuilder().WithTotalPrice(0)
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.callerID).Return(s.createResult(zero), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, zero.BuildCreateRequestDTO(), "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("success: bare dates mean midnight UTC, as on the availability route", func() {
		want := b.BuildInput()
		want.CheckIn = time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC)
		want.CheckOut = time.Date(2030, time.June, 4, 0, 0, 0, 0, time.UTC)
		s.mockCommands.EXPECT().Create(gomock.Any(), want, s.callerID).Return(s.createResult(b), nil).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Fields(
			testutil.Field("checkIn", "2030-06-01"),
			testutil.Field("checkOut", "2030-06-04"),
		))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		validation := errs.Mark(&reservation.FieldError{Field: "checkOut", Err: reservation.ErrInvalidStayRange}, shared.ErrValidation)

		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "validation", commandsError: validation, expectedStatus: http.StatusBadRequest, expectedMsg: "Validation failed"},
			{name: "conflict", commandsError: commands.ErrReservationConflict, expectedStatus: http.StatusConflict, expectedMsg: "Apartment is not available for the selected dates"},
			{name: "unknown apartment", commandsError: commands.ErrUnitNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Apartment not found"},
			{name: "storage down", commandsError: errs.Mark(errors.New("dial tcp"), shared.ErrStorageUnavailable), expectedStatus: http.StatusServiceUnavailable, expectedMsg: "Service temporarily unavailable"},
			{name: "unexpected", commandsError: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.callerID).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: validation detail names the field", func() {
		validation := errs.Mark(&reservation.FieldError{Field: "guests", Err: reservation.ErrCapacityExceeded}, shared.ErrValidation)
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.callerID).Return(nil, validation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		httptest.AssertFieldError(s.T(), rec, "guests")
		s.Contains(rec.Body.String(), reservation.ErrCapacityExceeded.Error())
	})
}

func (s *BookingHandlerTestSuite) TestMine() {
	s.Run("success: lists the caller's bookings", func() {
		views := []*queries.ReservationView{
			builder.NewReservationBuilder().WithRequesterID(s.callerID).BuildView(),
			builder.NewReservationBuilder().WithRequesterID(s.callerID).WithStatus("cancelled").BuildView(),
		}
		s.mockQueries.EXPECT().ListByRequester(gomock.Any(), s.callerID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/mine", nil, "token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("cancelled", response[1].Status)
	})

	s.Run("success: empty list renders as []", func() {
		s.mockQueries.EXPECT().ListByRequester(gomock.Any(), s.callerID).Return([]*queries.ReservationView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/mine", nil, "token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("success: passes the filter through", func() {
		unitID := uuid.New()
		status := "confirmed"
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ReservationFilter{Status: &status, UnitID: &unitID}).
			Return([]*queries.ReservationView{builder.NewReservationBuilder().WithStatus(status).BuildView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?status=confirmed&unitId="+unitID.String(), nil, "token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 400 on unknown status filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?status=archived", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder().BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.GuestEmail, response.GuestEmail)
		s.Equal(view.UnitName, response.UnitName)
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/status"

	s.Run("success: returns 204", func() {
		actor := commands.Actor{UserID: s.callerID, Role: user.RoleOperator}
		s.mockCommands.EXPECT().SetStatus(gomock.Any(), id, "confirmed", actor).Return(nil).Times(1)

		rec := s.patch(url, map[string]string{"status": "confirmed"}, "operator")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on unknown status", func() {
		rec := s.patch(url, map[string]string{"status": "archived"}, "operator")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "forbidden", commandsError: commands.ErrForbidden, expectedStatus: http.StatusForbidden, expectedMsg: "Insufficient permissions"},
			{name: "terminal", commandsError: errs.Mark(reservation.ErrInvalidTransition, commands.ErrInvalidTransition), expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "Invalid status transition"},
			{name: "missing", commandsError: commands.ErrReservationNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Booking not found"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SetStatus(gomock.Any(), id, "cancelled", gomock.Any()).Return(tc.commandsError).Times(1)

				rec := s.patch(url, map[string]string{"status": "cancelled"}, "operator")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) patch(url string, body any, role string) *nethttptest.ResponseRecorder {
	return httptest.Serve(s.T(), s.router, http.MethodPatch, url, body, "token", httptest.WithHeader("X-Test-Role", role))
}
