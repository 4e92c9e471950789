//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"aparthotel-booking/internal/domain/reservation"
	"aparthotel-booking/internal/handler/api"
	reqdto "aparthotel-booking/internal/handler/dto/request"
	resdto "aparthotel-booking/internal/handler/dto/response"
	"aparthotel-booking/internal/pkg/errs"
	"aparthotel-booking/internal/usecase/queries"
	"aparthotel-booking/internal/usecase/shared"
	"aparthotel-booking/tests/common/builder"
	"aparthotel-booking/tests/common/httptest"
	queriesmock "aparthotel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ApartmentHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockUnits        *queriesmock.MockUnitQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
}

func (s *ApartmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUnits = queriesmock.NewMockUnitQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)

	handler := api.NewApartmentHandler(s.mockUnits, s.mockAvailability)
	s.router.GET("/apartments", handler.List)
	s.router.GET("/apartments/:id", handler.Get)
	s.router.GET("/apartments/:id/availability", handler.Availability)
}

func (s *ApartmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestApartmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(ApartmentHandlerTestSuite))
}

func (s *ApartmentHandlerTestSuite) TestList() {
	s.Run("success: returns the catalog", func() {
		views := []*queries.UnitView{
			builder.NewUnitBuilder().BuildView(),
			builder.NewUnitBuilder().WithName("Penthouse Suite").WithMaxGuests(6).BuildView(),
		}
		s.mockUnits.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/apartments", nil, "")

		var response []resdto.ApartmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("Penthouse Suite", response[1].Name)
		s.Equal(6, response[1].MaxGuests)
	})
}

func (s *ApartmentHandlerTestSuite) TestGet() {
	view := builder.NewUnitBuilder().BuildView()

	s.Run("success", func() {
		s.mockUnits.EXPECT().Get(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/apartments/"+view.ID.String(), nil, "")

		var response resdto.ApartmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.PricePerNight, response.PricePerNight)
	})

	s.Run("error: 404 when missing", func() {
		s.mockUnits.EXPECT().Get(gomock.Any(), view.ID).Return(nil, queries.ErrUnitNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/apartments/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Apartment not found")
	})
}

func (s *ApartmentHandlerTestSuite) TestAvailability() {
	id := uuid.New()
	checkIn := time.Date(2030, time.September, 1, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 5)

	s.Run("success: date-only bounds are midnight UTC", func() {
		s.mockAvailability.EXPECT().Check(gomock.Any(), id, checkIn, checkOut).
			Return(&queries.AvailabilityView{UnitID: id, CheckIn: checkIn, CheckOut: checkOut, Available: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/apartments/"+id.String()+"/availability?checkIn=2030-09-01&checkOut=2030-09-06", nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Available)
		s.False(response.Degraded)
	})

	s.Run("success: degraded answer is still 200", func() {
		s.mockAvailability.EXPECT().Check(gomock.Any(), id, gomock.Any(), gomock.Any()).
			Return(&queries.AvailabilityView{UnitID: id, Degraded: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/apartments/"+id.String()+"/availability?checkIn=2030-09-01T15:00:00Z&checkOut=2030-09-06T11:00:00Z", nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Available)
		s.True(response.Degraded)
	})

	s.Run("error: 400 cases", func() {
		cases := []struct {
			name string
			path string
		}{
			{name: "missing checkOut", path: "/apartments/" + id.String() + "/availability?checkIn=2030-09-01"},
			{name: "garbage date", path: "/apartments/" + id.String() + "/availability?checkIn=soon&checkOut=2030-09-06"},
			{name: "malformed id", path: "/apartments/abc/availability?checkIn=2030-09-01&checkOut=2030-09-06"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.path, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: reversed range is a validation error", func() {
		invalid := errs.Mark(&reservation.FieldError{Field: "checkOut", Err: reservation.ErrInvalidStayRange}, shared.ErrValidation)
		s.mockAvailability.EXPECT().Check(gomock.Any(), id, gomock.Any(), gomock.Any()).Return(nil, invalid).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/apartments/"+id.String()+"/availability?checkIn=2030-09-06&checkOut=2030-09-01", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})
}
