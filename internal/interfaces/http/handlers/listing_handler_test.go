package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"lizexpress.backend/internal/domain/entities"
	domainerrors "lizexpress.backend/internal/domain/errors"
	"lizexpress.backend/internal/infrastructure/storage"
)

type listingServiceStub struct {
	feeFn     func(estimatedCost float64) float64
	submitFn  func(ctx context.Context, userID uuid.UUID, input *entities.SubmitListingInput, images []storage.Upload, receipt *storage.Upload) (*entities.SubmitListingResponse, error)
	abandonFn func(ctx context.Context, userID uuid.UUID, txRef string) error
}

func (s listingServiceStub) ListingFee(estimatedCost float64) float64 {
	return s.feeFn(estimatedCost)
}

func (s listingServiceStub) Submit(ctx context.Context, userID uuid.UUID, input *entities.SubmitListingInput, images []storage.Upload, receipt *storage.Upload) (*entities.SubmitListingResponse, error) {
	return s.submitFn(ctx, userID, input, images, receipt)
}

func (s listingServiceStub) Abandon(ctx context.Context, userID uuid.UUID, txRef string) error {
	return s.abandonFn(ctx, userID, txRef)
}

func listingFormFields() map[string]string {
	return map[string]string{
		"name":          "PS4 Console",
		"description":   "Barely used console",
		"category":      "Electronics",
		"condition":     "Fairly Used",
		"estimatedCost": "150000",
		"swapFor":       "Laptop",
		"itemLocation":  "Ikeja",
		"itemState":     "Lagos",
		"itemCountry":   "Nigeria",
	}
}

func TestListingHandler_Submit(t *testing.T) {
	userID := uuid.New()

	t.Run("success with images and receipt", func(t *testing.T) {
		r := gin.New()
		h := NewListingHandler(listingServiceStub{
			submitFn: func(_ context.Context, id uuid.UUID, input *entities.SubmitListingInput, images []storage.Upload, receipt *storage.Upload) (*entities.SubmitListingResponse, error) {
				require.Equal(t, userID, id)
				require.Equal(t, "PS4 Console", input.Name)
				require.Len(t, images, 2)
				require.NotNil(t, receipt)
				return &entities.SubmitListingResponse{
					TxRef:     "lizexpress_1_abc",
					Amount:    7500,
					Currency:  "NGN",
					ExpiresAt: time.Now().Add(30 * time.Minute),
				}, nil
			},
		})
		r.POST("/listings", asUser(userID), h.Submit)

		body, contentType := multipartBody(t, listingFormFields(), map[string][]string{
			"images":  {"front.jpg", "back.jpg"},
			"receipt": {"receipt.jpg"},
		})
		w := doMultipart(t, r, http.MethodPost, "/listings", body, contentType)
		require.Equal(t, http.StatusCreated, w.Code)
		require.Contains(t, w.Body.String(), "lizexpress_1_abc")
	})

	t.Run("missing images", func(t *testing.T) {
		r := gin.New()
		h := NewListingHandler(listingServiceStub{
			submitFn: func(context.Context, uuid.UUID, *entities.SubmitListingInput, []storage.Upload, *storage.Upload) (*entities.SubmitListingResponse, error) {
				t.Fatal("should not be called")
				return nil, nil
			},
		})
		r.POST("/listings", asUser(userID), h.Submit)

		body, contentType := multipartBody(t, listingFormFields(), nil)
		w := doMultipart(t, r, http.MethodPost, "/listings", body, contentType)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("too many images", func(t *testing.T) {
		r := gin.New()
		h := NewListingHandler(listingServiceStub{
			submitFn: func(context.Context, uuid.UUID, *entities.SubmitListingInput, []storage.Upload, *storage.Upload) (*entities.SubmitListingResponse, error) {
				t.Fatal("should not be called")
				return nil, nil
			},
		})
		r.POST("/listings", asUser(userID), h.Submit)

		body, contentType := multipartBody(t, listingFormFields(), map[string][]string{
			"images": {"a.jpg", "b.jpg", "c.jpg", "d.jpg"},
		})
		w := doMultipart(t, r, http.MethodPost, "/listings", body, contentType)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("incomplete profile maps to 400", func(t *testing.T) {
		r := gin.New()
		h := NewListingHandler(listingServiceStub{
			submitFn: func(context.Context, uuid.UUID, *entities.SubmitListingInput, []storage.Upload, *storage.Upload) (*entities.SubmitListingResponse, error) {
				return nil, domainerrors.NewError("complete your profile before listing", domainerrors.ErrProfileIncomplete)
			},
		})
		r.POST("/listings", asUser(userID), h.Submit)

		body, contentType := multipartBody(t, listingFormFields(), map[string][]string{
			"images": {"front.jpg"},
		})
		w := doMultipart(t, r, http.MethodPost, "/listings", body, contentType)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "complete your profile")
	})

	t.Run("missing form fields", func(t *testing.T) {
		r := gin.New()
		h := NewListingHandler(listingServiceStub{})
		r.POST("/listings", asUser(userID), h.Submit)

		body, contentType := multipartBody(t, map[string]string{"name": "PS4"}, map[string][]string{
			"images": {"front.jpg"},
		})
		w := doMultipart(t, r, http.MethodPost, "/listings", body, contentType)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListingHandler_Quote(t *testing.T) {
	r := gin.New()
	h := NewListingHandler(listingServiceStub{
		feeFn: func(estimatedCost float64) float64 { return estimatedCost * 0.05 },
	})
	r.GET("/listings/fee", h.Quote)

	w := doJSON(t, r, http.MethodGet, "/listings/fee?estimatedCost=100000", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"fee":5000`)

	w = doJSON(t, r, http.MethodGet, "/listings/fee?estimatedCost=-5", "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/listings/fee", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListingHandler_Abandon(t *testing.T) {
	userID := uuid.New()
	r := gin.New()
	h := NewListingHandler(listingServiceStub{
		abandonFn: func(_ context.Context, id uuid.UUID, txRef string) error {
			require.Equal(t, userID, id)
			require.Equal(t, "lizexpress_1_abc", txRef)
			return nil
		},
	})
	r.DELETE("/listings/:txRef", asUser(userID), h.Abandon)

	w := doJSON(t, r, http.MethodDelete, "/listings/lizexpress_1_abc", "")
	require.Equal(t, http.StatusOK, w.Code)
}
