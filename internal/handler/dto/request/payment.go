package request

type PayBookingRequest struct {
	Method string `json:"method" binding:"required"`
}
