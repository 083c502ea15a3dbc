package response

import "hotel-booking/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *queries.AuthorizedUserView `json:"user"`
}
