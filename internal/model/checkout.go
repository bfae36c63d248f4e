package model

// CheckoutRequest is the payload the storefront posts once the payment
// widget closes. Items are the cart snapshot at the moment of payment;
// Contact is the saved profile if one existed.
type CheckoutRequest struct {
	Callback PaymentCallback `json:"callback"`
	Items    []OrderItem     `json:"items"`
	Email    string          `json:"email"`
	Contact  *ContactProfile `json:"contact,omitempty"`
}

// CheckoutResult reports what each persistence step achieved. The steps
// are independent: a failed one is recorded here and the rest still run.
type CheckoutResult struct {
	Processed bool   `json:"processed"`
	OrderID   string `json:"orderId,omitempty"`
	PaymentID string `json:"paymentId,omitempty"`
	EmailSent bool   `json:"emailSent"`
}

// Total sums price*quantity over the cart snapshot.
func (r *CheckoutRequest) Total() float64 {
	var total float64
	for _, item := range r.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
