package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"lizexpress.backend/internal/domain/entities"
	domainerrors "lizexpress.backend/internal/domain/errors"
	"lizexpress.backend/internal/infrastructure/storage"
	"lizexpress.backend/internal/interfaces/http/middleware"
	"lizexpress.backend/internal/interfaces/http/response"
)

type ListingService interface {
	ListingFee(estimatedCost float64) float64
	Submit(ctx context.Context, userID uuid.UUID, input *entities.SubmitListingInput, images []storage.Upload, receipt *storage.Upload) (*entities.SubmitListingResponse, error)
	Abandon(ctx context.Context, userID uuid.UUID, txRef string) error
}

// ListingHandler handles listing submission endpoints. Items are never
// created here; a submission only reserves a checkout and the item
// appears once the payment is confirmed.
type ListingHandler struct {
	listingUsecase ListingService
}

// NewListingHandler creates a new listing handler
func NewListingHandler(listingUsecase ListingService) *ListingHandler {
	return &ListingHandler{listingUsecase: listingUsecase}
}

// Quote returns the listing fee for an estimated item cost
// GET /api/v1/listings/fee
func (h *ListingHandler) Quote(c *gin.Context) {
	estimatedCost, err := strconv.ParseFloat(c.Query("estimatedCost"), 64)
	if err != nil || estimatedCost <= 0 {
		response.Error(c, domainerrors.BadRequest("estimatedCost must be a positive number"))
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"estimatedCost": estimatedCost,
		"fee":           h.listingUsecase.ListingFee(estimatedCost),
	})
}

// Submit accepts the multipart listing form and starts checkout
// POST /api/v1/listings
func (h *ListingHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.SubmitListingInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, domainerrors.BadRequest("multipart form is required"))
		return
	}

	imageHeaders := form.File["images"]
	if len(imageHeaders) == 0 || len(imageHeaders) > entities.MaxItemImages {
		response.Error(c, domainerrors.BadRequest("between 1 and 3 item images are required"))
		return
	}

	images, closeImages, err := openUploads(imageHeaders)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("could not read item images"))
		return
	}
	defer closeImages()

	var receipt *storage.Upload
	if receiptHeaders := form.File["receipt"]; len(receiptHeaders) > 0 {
		receipts, closeReceipt, err := openUploads(receiptHeaders[:1])
		if err != nil {
			response.Error(c, domainerrors.BadRequest("could not read receipt image"))
			return
		}
		defer closeReceipt()
		receipt = &receipts[0]
	}

	submitResponse, err := h.listingUsecase.Submit(c.Request.Context(), userID, &input, images, receipt)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, submitResponse)
}

// Abandon cancels a pending submission and releases its draft
// DELETE /api/v1/listings/:txRef
func (h *ListingHandler) Abandon(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	txRef := c.Param("txRef")
	if txRef == "" {
		response.Error(c, domainerrors.BadRequest("a transaction reference is required"))
		return
	}

	if err := h.listingUsecase.Abandon(c.Request.Context(), userID, txRef); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"abandoned": true})
}
