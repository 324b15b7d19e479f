package model

// WebhookEvent is the payload TeamUp posts to the relay. Only the
// customer.created variant is acted on; anything else is acknowledged and
// ignored.
type WebhookEvent struct {
	Event string          `json:"event"`
	Data  WebhookCustomer `json:"data"`
}

type WebhookCustomer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type WebhookResponse struct {
	Message string `json:"message"`
}
