package response

import (
	"time"

	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PaymentResponse struct {
	ID            uuid.UUID `json:"id"`
	BookingID     uuid.UUID `json:"bookingId"`
	Amount        int64     `json:"amount"`
	TransactionID string    `json:"transactionId"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type PayResponse struct {
	Payment        *PaymentResponse `json:"payment"`
	AlreadySettled bool             `json:"alreadySettled"`
}

func FromPaymentView(view *queries.PaymentView) *PaymentResponse {
	var resp PaymentResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromPayResult(result *commands.PayResult) *PayResponse {
	return &PayResponse{
		Payment:        FromPaymentView(result.Payment),
		AlreadySettled: result.AlreadySettled,
	}
}
