package controllers

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yourbrand/tours-backend/api/responses"
	"github.com/yourbrand/tours-backend/api/validators"
	"github.com/yourbrand/tours-backend/internal/enquiry"
	"github.com/yourbrand/tours-backend/internal/enquiry/message"
	"github.com/yourbrand/tours-backend/pkg/enums"
	pkgerrors "github.com/yourbrand/tours-backend/pkg/errors"
	"github.com/yourbrand/tours-backend/pkg/logger"
	"github.com/yourbrand/tours-backend/pkg/metrics"
)

type enquiryCartItem struct {
	ID              string          `json:"id" validate:"required"`
	Type            string          `json:"type" validate:"required,oneof=activity destination"`
	Name            string          `json:"name" validate:"required"`
	DestinationID   string          `json:"destination_id"`
	DestinationName string          `json:"destination_name"`
	Price           decimal.Decimal `json:"price"`
	Currency        string          `json:"currency"`
}

type enquiryCreateRequest struct {
	Name             string            `json:"name" validate:"required,min=1"`
	Email            string            `json:"email" validate:"required,email"`
	PhoneCountryCode string            `json:"phone_country_code"`
	PhoneNumber      string            `json:"phone_number"`
	Message          string            `json:"message"`
	SourcePage       string            `json:"source_page"`
	CartItems        []enquiryCartItem `json:"cart_items" validate:"dive"`
}

func (req enquiryCreateRequest) toInput() enquiry.SubmitInput {
	items := make([]message.CartItem, 0, len(req.CartItems))
	for _, item := range req.CartItems {
		items = append(items, message.CartItem{
			ID:              strings.TrimSpace(item.ID),
			Type:            enums.ItemType(item.Type),
			Name:            strings.TrimSpace(item.Name),
			DestinationID:   strings.TrimSpace(item.DestinationID),
			DestinationName: strings.TrimSpace(item.DestinationName),
			Price:           item.Price,
			Currency:        item.Currency,
		})
	}
	return enquiry.SubmitInput{
		Contact: message.Contact{
			Name:             strings.TrimSpace(req.Name),
			Email:            strings.TrimSpace(req.Email),
			PhoneCountryCode: strings.TrimSpace(req.PhoneCountryCode),
			PhoneNumber:      strings.TrimSpace(req.PhoneNumber),
		},
		Items:      items,
		SourcePage: strings.TrimSpace(req.SourcePage),
		FreeText:   req.Message,
	}
}

// EnquiryCreate accepts a storefront enquiry submission.
func EnquiryCreate(svc enquiry.Service, httpMetrics *metrics.HTTPMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "enquiry service unavailable"))
			return
		}

		var body enquiryCreateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			httpMetrics.IncEnquiry("rejected")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Submit(r.Context(), body.toInput())
		if err != nil {
			if pkgerrors.As(err).Code() == pkgerrors.CodeValidation {
				httpMetrics.IncEnquiry("rejected")
			} else {
				httpMetrics.IncEnquiry("failed")
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			ctx := logg.WithEnquiryID(r.Context(), result.EnquiryID.String())
			logg.Info(ctx, "enquiry.captured")
		}
		httpMetrics.IncEnquiry("accepted")

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
