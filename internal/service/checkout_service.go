package service

import (
	"context"
	"time"

	"moshood-fashion/internal/mailer"
	"moshood-fashion/internal/model"
	"moshood-fashion/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Placeholder customer fields used when no contact profile was saved
// before checkout.
const (
	fallbackCustomerName = "Customer"
	fallbackPhoneNumber  = "08012345678"
)

// checkoutService implements CheckoutService. The three persistence
// steps after a completed payment run in sequence but are deliberately
// independent: each failure is logged and swallowed so the remaining
// steps still run. There is no rollback; the provider has already taken
// the money by the time this code executes.
type checkoutService struct {
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	contactRepo repository.ContactRepository
	mail        mailer.Mailer
	logger      zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	contactRepo repository.ContactRepository,
	mail mailer.Mailer,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		contactRepo: contactRepo,
		mail:        mail,
		logger:      logger.With().Str("service", "checkout").Logger(),
	}
}

// CompleteCheckout handles a payment-widget callback.
func (s *checkoutService) CompleteCheckout(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutResult, error) {
	if !req.Callback.Completed() {
		s.logger.Warn().
			Str("status", req.Callback.Status).
			Str("tx_ref", req.Callback.TxRef).
			Msg("payment not completed, no records created")
		return &model.CheckoutResult{Processed: false}, nil
	}

	contact := s.resolveContact(ctx, req)
	total := req.Total()

	// The provider's reported amount wins over the computed total; a zero
	// amount in the callback falls back to the total.
	amountPaid := req.Callback.Amount
	if amountPaid == 0 {
		amountPaid = total
	}

	result := &model.CheckoutResult{Processed: true}
	orderDate := time.Now().Format("2006-01-02")

	order := &model.Order{
		ID:            uuid.New(),
		Items:         req.Items,
		CustomerName:  contact.CustomerName,
		CustomerEmail: contact.CustomerEmail,
		CustomerPhone: contact.CustomerPhone,
		Address:       contact.Address,
		OrderDate:     orderDate,
		TotalAmount:   total,
		AmountPaid:    amountPaid,
		IsPaid:        true,
		Status:        model.StatusApproved,
		CreatedAt:     time.Now(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("tx_ref", req.Callback.TxRef).Msg("failed to save order")
	} else {
		result.OrderID = order.ID.String()
	}

	payment := &model.Payment{
		ID:            uuid.New(),
		TransactionID: req.Callback.TransactionID,
		TxRef:         req.Callback.TxRef,
		FlwRef:        req.Callback.FlwRef,
		Amount:        req.Callback.Amount,
		Currency:      req.Callback.Currency,
		Status:        req.Callback.Status,
		CustomerName:  req.Callback.Customer.Name,
		CustomerEmail: req.Callback.Customer.Email,
		PhoneNumber:   req.Callback.Customer.PhoneNumber,
		PaidAt:        time.Now(),
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		s.logger.Error().Err(err).Str("tx_ref", req.Callback.TxRef).Msg("failed to save payment")
	} else {
		result.PaymentID = payment.ID.String()
	}

	body := mailer.OrderConfirmationBody(orderDate, req.Items, total)
	if err := s.mail.Send(ctx, contact.CustomerEmail, mailer.SubjectOrderConfirmation, body); err != nil {
		s.logger.Error().Err(err).Str("email", contact.CustomerEmail).Msg("failed to send confirmation email")
	} else {
		result.EmailSent = true
	}

	s.logger.Info().
		Str("tx_ref", req.Callback.TxRef).
		Str("order_id", result.OrderID).
		Float64("total", total).
		Float64("amount_paid", amountPaid).
		Bool("email_sent", result.EmailSent).
		Msg("checkout processed")

	return result, nil
}

// resolveContact picks the contact details for the order: the contact
// supplied with the request, otherwise the saved profile for the email,
// otherwise placeholders.
func (s *checkoutService) resolveContact(ctx context.Context, req *model.CheckoutRequest) model.ContactProfile {
	if req.Contact != nil {
		return *req.Contact
	}

	if req.Email != "" {
		saved, err := s.contactRepo.GetByEmail(ctx, req.Email)
		if err != nil {
			s.logger.Error().Err(err).Str("email", req.Email).Msg("failed to load contact profile")
		} else if saved != nil {
			return *saved
		}
	}

	return model.ContactProfile{
		CustomerName:  fallbackCustomerName,
		CustomerEmail: req.Email,
		CustomerPhone: fallbackPhoneNumber,
		Address:       "",
	}
}
