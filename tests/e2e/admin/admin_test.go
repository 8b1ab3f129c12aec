//go:build e2e

package admin_test

import (
	"net/http"
	"testing"
	"time"

	"party-rental/internal/domain/user"
	"party-rental/internal/handler/dto/request"
	"party-rental/internal/handler/dto/response"
	"party-rental/tests/common/authtest"
	"party-rental/tests/common/httptest"
	"party-rental/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type adminSuite struct {
	e2e.SharedSuite
	token string
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(adminSuite))
}

func (s *adminSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.token = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
}

func ptr[T any](v T) *T { return &v }

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func (s *adminSuite) TestBlackouts() {
	s.Run("create list update delete", func() {
		t := s.T()

		create := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/blackouts",
			request.BlackoutRequest{StartDate: futureDate(5), EndDate: ptr(futureDate(7)), Type: "full_day", Reason: "Holiday"}, s.token)
		require.Equal(t, http.StatusCreated, create.Code, create.Body.String())
		var created response.BlackoutResponse
		require.NoError(t, httptest.DecodeResponseBody(t, create.Body, &created))
		require.Equal(t, "Holiday", created.Reason)

		list := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/blackouts", nil, s.token)
		require.Equal(t, http.StatusOK, list.Code, list.Body.String())
		var items []response.BlackoutResponse
		require.NoError(t, httptest.DecodeResponseBody(t, list.Body, &items))
		require.Len(t, items, 1)

		update := httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/admin/blackouts/"+created.ID,
			request.BlackoutRequest{StartDate: futureDate(5), Type: "full_day", Reason: "Staff training"}, s.token)
		require.Equal(t, http.StatusOK, update.Code, update.Body.String())

		del := httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/admin/blackouts/"+created.ID, nil, s.token)
		require.Equal(t, http.StatusNoContent, del.Code)

		again := httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/admin/blackouts/"+created.ID, nil, s.token)
		require.Equal(t, http.StatusNotFound, again.Code)
	})

	s.Run("end before start is rejected", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/blackouts",
			request.BlackoutRequest{StartDate: futureDate(5), EndDate: ptr(futureDate(3)), Type: "full_day"}, s.token)
		require.Equal(s.T(), http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *adminSuite) TestSettings() {
	s.Run("delivery fee override reaches quotes", func() {
		t := s.T()

		// prime the cache with the defaults first
		before := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/pricing/quote",
			request.QuoteRequest{MachineType: "single"}, "")
		require.Equal(t, http.StatusOK, before.Code, before.Body.String())
		var original response.PriceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, before.Body, &original))

		update := httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/admin/settings",
			request.UpdateSettingsRequest{Pricing: request.PricingRequest{DeliveryFee: ptr(original.DeliveryFee + 10)}}, s.token)
		require.Equal(t, http.StatusOK, update.Code, update.Body.String())
		var saved response.SettingsResponse
		require.NoError(t, httptest.DecodeResponseBody(t, update.Body, &saved))
		require.NotNil(t, saved.Pricing.DeliveryFee)
		require.InDelta(t, original.DeliveryFee+10, *saved.Pricing.DeliveryFee, 0.001)

		after := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/pricing/quote",
			request.QuoteRequest{MachineType: "single"}, "")
		require.Equal(t, http.StatusOK, after.Code)
		var repriced response.PriceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, after.Body, &repriced))
		require.InDelta(t, original.DeliveryFee+10, repriced.DeliveryFee, 0.001)
	})

	s.Run("negative tax rate is rejected", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/admin/settings",
			request.UpdateSettingsRequest{Pricing: request.PricingRequest{SalesTaxRate: ptr(-0.1)}}, s.token)
		httptest.AssertFieldError(s.T(), w, "pricing.salesTaxRate")
	})
}

func (s *adminSuite) TestContacts() {
	s.Run("submitted inquiry shows up for staff", func() {
		t := s.T()

		submit := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/contacts",
			request.CreateContactRequest{Name: "Casey Lee", Email: "casey@example.com", Message: "Do you deliver on Sundays?"}, "")
		require.Equal(t, http.StatusCreated, submit.Code, submit.Body.String())
		var created response.ContactResponse
		require.NoError(t, httptest.DecodeResponseBody(t, submit.Body, &created))
		require.Equal(t, "new", created.Status)

		list := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/contacts?status=new", nil, s.token)
		require.Equal(t, http.StatusOK, list.Code, list.Body.String())
		var page response.ContactListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, list.Body, &page))
		ids := make([]string, 0, len(page.Items))
		for _, item := range page.Items {
			ids = append(ids, item.ID)
		}
		require.Contains(t, ids, created.ID)

		mark := httptest.PerformRequest(t, s.Router, http.MethodPatch, "/api/admin/contacts/"+created.ID+"/status",
			request.ChangeStatusRequest{Status: "read"}, s.token)
		require.Equal(t, http.StatusOK, mark.Code, mark.Body.String())
	})

	s.Run("missing message is rejected", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/contacts",
			map[string]string{"name": "Casey", "email": "casey@example.com"}, "")
		require.Equal(s.T(), http.StatusBadRequest, w.Code)
	})
}
