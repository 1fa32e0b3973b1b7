package gateway

// WebhookEvent is the payload Flutterwave posts to the webhook endpoint.
// Only the fields the marketplace acts on are decoded.
type WebhookEvent struct {
	Event string           `json:"event"`
	Data  WebhookEventData `json:"data"`
}

// WebhookEventData carries the transaction details of a webhook event
type WebhookEventData struct {
	ID       int64   `json:"id"`
	TxRef    string  `json:"tx_ref"`
	FlwRef   string  `json:"flw_ref"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Status   string  `json:"status"`
}

// EventChargeCompleted is the only event type the webhook acts on
const EventChargeCompleted = "charge.completed"

// SignatureHeader is the header Flutterwave signs webhooks with
const SignatureHeader = "verif-hash"
