package marketapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arale275/autix-sub001/internal/adapters/marketapi"
	"github.com/arale275/autix-sub001/internal/apperrors"
	"github.com/arale275/autix-sub001/internal/core/domain"
	"github.com/arale275/autix-sub001/internal/dto"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// fakeBackend is a minimal in-process stand-in for the marketplace API.
type fakeBackend struct {
	token       string
	inquiries   []dto.InquiryResponse
	cars        []dto.CarResponse
	lastPatch   dto.UpdateStatusRequest
	deletedIDs  []int64
	patchStatus int
}

func (b *fakeBackend) router() *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if b.token != "" && c.GetHeader("Authorization") != "Bearer "+b.token {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}
		c.Next()
	})

	r.GET("/api/v1/dealers/:id/inquiries", func(c *gin.Context) {
		c.JSON(http.StatusOK, b.inquiries)
	})
	r.PATCH("/api/v1/inquiries/:id/status", func(c *gin.Context) {
		if err := c.ShouldBindJSON(&b.lastPatch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if b.patchStatus != 0 {
			c.JSON(b.patchStatus, gin.H{"error": "status change rejected"})
			return
		}
		out := b.inquiries[0]
		out.Status = b.lastPatch.Status
		c.JSON(http.StatusOK, out)
	})
	r.DELETE("/api/v1/inquiries/:id", func(c *gin.Context) {
		b.deletedIDs = append(b.deletedIDs, 1)
		c.Status(http.StatusNoContent)
	})
	r.GET("/api/v1/dealers/:id/cars", func(c *gin.Context) {
		c.JSON(http.StatusOK, b.cars)
	})
	return r
}

func newFixture(t *testing.T, backend *fakeBackend) (*marketapi.Client, func()) {
	t.Helper()
	srv := httptest.NewServer(backend.router())
	client := marketapi.NewClient(srv.URL, backend.token, marketapi.WithHTTPClient(srv.Client()))
	return client, srv.Close
}

func TestListInquiriesMapsWireShape(t *testing.T) {
	responded := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	backend := &fakeBackend{
		token: "secret",
		inquiries: []dto.InquiryResponse{
			{
				ID:          7,
				Status:      "responded",
				BuyerID:     uuid.NewString(),
				DealerID:    uuid.NewString(),
				CarID:       3,
				Message:     "Is it still available?",
				BuyerName:   "Dana",
				BuyerEmail:  "dana@example.com",
				CreatedAt:   responded.Add(-time.Hour),
				RespondedAt: &responded,
			},
		},
	}
	client, closeSrv := newFixture(t, backend)
	defer closeSrv()

	got, err := client.ListInquiries(context.Background(), "dealer-1")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(7), got[0].ID)
	assert.Equal(t, domain.InquiryResponded, got[0].Status)
	assert.Equal(t, "Dana", got[0].BuyerName)
	require.NotNil(t, got[0].RespondedAt)
	assert.True(t, got[0].RespondedAt.Equal(responded))
}

func TestUpdateInquiryStatusSendsTarget(t *testing.T) {
	backend := &fakeBackend{
		inquiries: []dto.InquiryResponse{{ID: 7, Status: "new", CreatedAt: time.Now()}},
	}
	client, closeSrv := newFixture(t, backend)
	defer closeSrv()

	got, err := client.UpdateInquiryStatus(context.Background(), 7, domain.InquiryResponded)

	require.NoError(t, err)
	assert.Equal(t, "responded", backend.lastPatch.Status)
	assert.Equal(t, domain.InquiryResponded, got.Status)
}

func TestDeleteInquiry(t *testing.T) {
	backend := &fakeBackend{}
	client, closeSrv := newFixture(t, backend)
	defer closeSrv()

	require.NoError(t, client.DeleteInquiry(context.Background(), 1))
	assert.Len(t, backend.deletedIDs, 1)
}

func TestListCars(t *testing.T) {
	backend := &fakeBackend{
		cars: []dto.CarResponse{
			{ID: 1, Status: "active", Make: "Mazda", Model: "3", Price: decimal.NewFromInt(95000), CreatedAt: time.Now()},
		},
	}
	client, closeSrv := newFixture(t, backend)
	defer closeSrv()

	got, err := client.ListCars(context.Background(), "dealer-1")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.CarActive, got[0].Status)
	assert.True(t, got[0].Price.Equal(decimal.NewFromInt(95000)))
}

func TestStatusErrorMapping(t *testing.T) {
	testCases := []struct {
		name       string
		httpStatus int
		wantErr    error
	}{
		{name: "not found", httpStatus: http.StatusNotFound, wantErr: apperrors.ErrNotFound},
		{name: "conflict is an illegal transition", httpStatus: http.StatusConflict, wantErr: apperrors.ErrInvalidTransition},
		{name: "bad request is validation", httpStatus: http.StatusBadRequest, wantErr: apperrors.ErrValidation},
		{name: "unprocessable is validation", httpStatus: http.StatusUnprocessableEntity, wantErr: apperrors.ErrValidation},
		{name: "server error is transport", httpStatus: http.StatusInternalServerError, wantErr: apperrors.ErrTransport},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			backend := &fakeBackend{
				inquiries:   []dto.InquiryResponse{{ID: 7, Status: "new"}},
				patchStatus: tc.httpStatus,
			}
			client, closeSrv := newFixture(t, backend)
			defer closeSrv()

			_, err := client.UpdateInquiryStatus(context.Background(), 7, domain.InquiryResponded)

			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestUnauthorizedMapsToTransport(t *testing.T) {
	backend := &fakeBackend{token: "secret"}
	srv := httptest.NewServer(backend.router())
	defer srv.Close()

	client := marketapi.NewClient(srv.URL, "wrong-token", marketapi.WithHTTPClient(srv.Client()))
	_, err := client.ListInquiries(context.Background(), "dealer-1")

	assert.ErrorIs(t, err, apperrors.ErrTransport)
}

func TestUnreachableBackendIsTransport(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := marketapi.NewClient(url, "")
	_, err := client.ListInquiries(context.Background(), "dealer-1")

	assert.ErrorIs(t, err, apperrors.ErrTransport)
}
