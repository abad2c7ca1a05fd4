package models

// CreateBookingRequest is the payload for POST /api/bookings.
type CreateBookingRequest struct {
	ServiceID        string `json:"service" binding:"required"`
	TimeSlotID       string `json:"time_slot" binding:"required"`
	Date             string `json:"date" binding:"required"` // "YYYY-MM-DD"
	DurationHours    int    `json:"duration_hours"`
	IsPartialPayment bool   `json:"is_partial_payment"`
}

// VerifyPaymentRequest is the payload for POST /api/payments/verify.
type VerifyPaymentRequest struct {
	OrderID          string `json:"razorpay_order_id" binding:"required"`
	PaymentID        string `json:"razorpay_payment_id" binding:"required"`
	Signature        string `json:"razorpay_signature" binding:"required"`
	IsPartialPayment bool   `json:"is_partial_payment"`
}

// BookingReceipt is returned from booking creation: the persisted booking
// plus everything the client needs to complete payment with the gateway.
type BookingReceipt struct {
	Booking          Booking `json:"booking"`
	OrderID          string  `json:"razorpay_order_id"`
	GatewayKeyID     string  `json:"razorpay_key_id"`
	Amount           int64   `json:"amount"` // payable amount in paise
	IsPartialPayment bool    `json:"is_partial_payment"`
}

// VerifyPaymentResult is returned from a successful payment verification.
type VerifyPaymentResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	BookingID string `json:"booking_id"`
}
