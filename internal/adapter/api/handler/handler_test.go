package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillio/internal/domain/entity"
	"skillio/internal/usecase"
)

func TestCheckHealth(t *testing.T) {
	env := newTestEnv(t)

	c, rec := env.jsonContext(http.MethodGet, "/health", "")
	require.NoError(t, GetHealthHandler().CheckHealth(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "memory")

	failing := NewHealthHandler("redis", func(context.Context) error { return errors.New("connection refused") })
	c, rec = env.jsonContext(http.MethodGet, "/health", "")
	require.NoError(t, failing.CheckHealth(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}

func TestListServices_PublicCatalog(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.deps.Catalog.SetActive(context.Background(), usecase.Actor{Admin: true}, "t1", false)
	require.NoError(t, err)

	c, rec := env.jsonContext(http.MethodGet, "/v1/services", "")
	require.NoError(t, GetCatalogHandler().ListServices(c))

	var services []entity.Service
	body := decodeEnvelope(t, rec, &services)
	assert.True(t, body.Success)
	require.Len(t, services, 1)
	assert.Equal(t, "c1", services[0].ID)

	c, rec = env.jsonContext(http.MethodGet, "/v1/admin/services", "")
	c.Set("admin_role", string(entity.AdminSuperOwner))
	require.NoError(t, GetCatalogHandler().ListServices(c))
	decodeEnvelope(t, rec, &services)
	assert.Len(t, services, 2)
}

func TestDirectQuote_BundlePricing(t *testing.T) {
	env := newTestEnv(t)

	c, rec := env.jsonContext(http.MethodPost, "/v1/direct/quote", `{"tierId":"full","addOnIds":["yard","car"]}`)
	require.NoError(t, GetDirectBookingHandler().Quote(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var quote entity.Quote
	decodeEnvelope(t, rec, &quote)
	assert.Equal(t, int64(4000), quote.Subtotal)
	assert.Equal(t, int64(400), quote.Discount)
	assert.Equal(t, int64(3600), quote.FinalTotal)
	assert.True(t, quote.IsBundle)
}

func TestCreateReview_Validation(t *testing.T) {
	env := newTestEnv(t)

	c, rec := env.jsonContext(http.MethodPost, "/v1/reviews", `{"rating":9,"comment":"great"}`)
	require.NoError(t, GetReviewHandler().CreateReview(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec, nil)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)

	c, rec = env.jsonContext(http.MethodPost, "/v1/reviews", `{"serviceId":"c1","rating":5,"comment":"Sparkling car!"}`)
	require.NoError(t, GetReviewHandler().CreateReview(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var review entity.Review
	decodeEnvelope(t, rec, &review)
	assert.Equal(t, "Home & Yard Help", review.ServiceTitle)
	assert.Equal(t, "Anonymous", review.CustomerName)
	assert.False(t, review.IsVerified)
}

func TestCreateBooking_FillsCallerContact(t *testing.T) {
	env := newTestEnv(t)

	c, rec := env.jsonContext(http.MethodPost, "/v1/bookings", `{"serviceId":"c1","date":"2030-01-15","startTime":"10:00"}`)
	c.Set("uid", "user_1")
	require.NoError(t, GetBookingHandler().CreateBooking(c))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var booking entity.Booking
	decodeEnvelope(t, rec, &booking)
	assert.Equal(t, "John Doe", booking.CustomerName)
	assert.Equal(t, int64(400), booking.TotalPrice)
	assert.Equal(t, int64(40), booking.PlatformFee)
	assert.Equal(t, "11:30", booking.EndTime)
	assert.Equal(t, entity.PaymentPaidToEscrow, booking.PaymentStatus)
}

func TestCreateBooking_RejectsBadDate(t *testing.T) {
	env := newTestEnv(t)

	c, rec := env.jsonContext(http.MethodPost, "/v1/bookings", `{"serviceId":"c1","date":"15/01/2030"}`)
	c.Set("uid", "user_1")
	require.NoError(t, GetBookingHandler().CreateBooking(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateBookingStatus_InvalidTransition(t *testing.T) {
	env := newTestEnv(t)
	booking, err := env.deps.Booking.CreateBooking(context.Background(), "user_1", usecase.CreateBookingInput{ServiceID: "c1", Date: "2030-01-15"})
	require.NoError(t, err)

	c, rec := env.jsonContext(http.MethodPatch, "/", `{"status":"Completed"}`)
	c.SetParamNames("id")
	c.SetParamValues(booking.ID)
	c.Set("admin_role", string(entity.AdminSuperOwner))
	require.NoError(t, GetBookingHandler().UpdateStatus(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeEnvelope(t, rec, nil)
	assert.Equal(t, "INVALID_TRANSITION", body.Error.Code)
}

func TestTaskersByCategory_EscapedName(t *testing.T) {
	env := newTestEnv(t)

	c, rec := env.jsonContext(http.MethodGet, "/", "")
	c.SetParamNames("category")
	c.SetParamValues("Home%20Help%20%26%20Cleaning")
	require.NoError(t, GetDiscoveryHandler().TaskersByCategory(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = env.jsonContext(http.MethodGet, "/", "")
	c.SetParamNames("category")
	c.SetParamValues("Rocket%20Science")
	require.NoError(t, GetDiscoveryHandler().TaskersByCategory(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAdmins_HidesPasswordHash(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.deps.AdminAuth.SeedOwner(context.Background(), "owner", "correct-horse", ""))

	c, rec := env.jsonContext(http.MethodGet, "/v1/admin/admins", "")
	require.NoError(t, GetAdminHandler().ListAdmins(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"owner"`)
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestUploadImage_NotConfigured(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/uploads/images", nil)
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)
	require.NoError(t, GetFileHandler().UploadImage(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSanitizeFolderName(t *testing.T) {
	cases := map[string]string{
		"":                 "uploads",
		"portfolio":        "portfolio",
		"../../etc/passwd": "passwd",
		"my photos!":       "myphotos",
		"user_1-pics":      "user_1-pics",
	}
	for in, want := range cases {
		assert.Equal(t, want, sanitizeFolderName(in), in)
	}
}
