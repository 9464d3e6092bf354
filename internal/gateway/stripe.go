package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go-gin-event-commerce/config"
	"go-gin-event-commerce/internal/model"
	apperrors "go-gin-event-commerce/pkg/app_errors"
	"go-gin-event-commerce/pkg/logger"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"
)

const ProviderStripe = "stripe"

type StripeGateway struct {
	api           *client.API
	webhookSecret string
}

func NewStripeGateway(cfg *config.StripeConfig) PaymentGateway {
	sc := &client.API{}
	sc.Init(cfg.SecretKey, nil)
	return &StripeGateway{
		api:           sc,
		webhookSecret: cfg.WebhookSecret,
	}
}

func (g *StripeGateway) Provider() string {
	return ProviderStripe
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, in CheckoutSessionInput) (*CheckoutSession, error) {
	metadata := map[string]string{
		MetadataBookingID: in.BookingID,
		MetadataEventID:   in.EventID,
		MetadataUserID:    strconv.Itoa(in.UserID),
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(strings.ToLower(in.Currency)),
					UnitAmount: stripe.Int64(in.UnitAmount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(in.ProductName),
					},
				},
				Quantity: stripe.Int64(in.Quantity),
			},
		},
		SuccessURL:        stripe.String(in.SuccessURL),
		CancelURL:         stripe.String(in.CancelURL),
		ClientReferenceID: stripe.String(in.BookingID),
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: metadata,
		},
	}
	if in.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(in.CustomerEmail)
	}
	if in.DestinationAccount != "" {
		params.PaymentIntentData.ApplicationFeeAmount = stripe.Int64(in.ApplicationFee)
		params.PaymentIntentData.TransferData = &stripe.CheckoutSessionPaymentIntentDataTransferDataParams{
			Destination: stripe.String(in.DestinationAccount),
		}
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, wrapStripeError("create checkout session", err)
	}
	return &CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

func (g *StripeGateway) ExpireCheckoutSession(ctx context.Context, sessionID string) error {
	params := &stripe.CheckoutSessionExpireParams{}
	params.Context = ctx
	if _, err := g.api.CheckoutSessions.Expire(sessionID, params); err != nil {
		return wrapStripeError("expire checkout session", err)
	}
	return nil
}

func (g *StripeGateway) Refund(ctx context.Context, in RefundInput) (*RefundResult, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(in.PaymentIntentID),
		Reason:        stripe.String(string(stripe.RefundReasonRequestedByCustomer)),
	}
	if in.Amount > 0 {
		params.Amount = stripe.Int64(in.Amount)
	}
	if in.Reason != "" {
		params.AddMetadata("reason", in.Reason)
	}
	if in.IdempotencyKey != "" {
		params.SetIdempotencyKey(in.IdempotencyKey)
	}
	params.Context = ctx

	r, err := g.api.Refunds.New(params)
	if err != nil {
		return nil, wrapStripeError("refund", err)
	}
	return &RefundResult{ID: r.ID, Status: string(r.Status), Amount: r.Amount}, nil
}

func (g *StripeGateway) ParseWebhook(payload []byte, signature string) (*model.GatewayEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidSignature, err)
	}

	switch string(event.Type) {
	case "checkout.session.completed", "checkout.session.async_payment_succeeded":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("%w: decode checkout session: %v", apperrors.ErrValidation, err)
		}
		// 非同步付款方式在 completed 時尚未入帳，等 async_payment_succeeded
		if session.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
			return nil, apperrors.ErrEventIgnored
		}
		return sessionEvent(event.ID, model.GatewayEventPaymentSucceeded, &session), nil

	case "checkout.session.async_payment_failed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("%w: decode checkout session: %v", apperrors.ErrValidation, err)
		}
		ev := sessionEvent(event.ID, model.GatewayEventPaymentFailed, &session)
		ev.FailureReason = "async payment failed"
		return ev, nil

	case "checkout.session.expired":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("%w: decode checkout session: %v", apperrors.ErrValidation, err)
		}
		ev := sessionEvent(event.ID, model.GatewayEventSessionExpired, &session)
		ev.FailureReason = "checkout session expired"
		return ev, nil

	case "charge.refunded":
		var charge stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
			return nil, fmt.Errorf("%w: decode charge: %v", apperrors.ErrValidation, err)
		}
		ev := &model.GatewayEvent{
			ID:             event.ID,
			Type:           model.GatewayEventChargeRefunded,
			BookingID:      charge.Metadata[MetadataBookingID],
			Amount:         charge.Amount,
			AmountRefunded: charge.AmountRefunded,
			Currency:       string(charge.Currency),
		}
		if charge.PaymentIntent != nil {
			ev.PaymentIntentID = charge.PaymentIntent.ID
		}
		if charge.Refunds != nil && len(charge.Refunds.Data) > 0 {
			ev.RefundID = charge.Refunds.Data[0].ID
		}
		return ev, nil
	}

	logger.WithComponent("gateway").Debug("ignoring stripe event", zap.String("type", string(event.Type)), zap.String("event_id", event.ID))
	return nil, apperrors.ErrEventIgnored
}

func sessionEvent(id string, typ model.GatewayEventType, session *stripe.CheckoutSession) *model.GatewayEvent {
	ev := &model.GatewayEvent{
		ID:        id,
		Type:      typ,
		BookingID: session.Metadata[MetadataBookingID],
		SessionID: session.ID,
		Amount:    session.AmountTotal,
		Currency:  string(session.Currency),
	}
	if ev.BookingID == "" {
		ev.BookingID = session.ClientReferenceID
	}
	if session.PaymentIntent != nil {
		ev.PaymentIntentID = session.PaymentIntent.ID
	}
	return ev
}

func wrapStripeError(op string, err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return &apperrors.GatewayError{
			Op:         op,
			Code:       string(stripeErr.Code),
			StatusCode: stripeErr.HTTPStatusCode,
			Err:        errors.New(stripeErr.Msg),
		}
	}
	return &apperrors.GatewayError{Op: op, Err: err}
}
