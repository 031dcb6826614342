// Package billing sells plans through Stripe checkout and keeps
// subscriptions in sync with the Stripe webhook events.
package billing

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hivebudget/backend/internal/config"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"
	"gorm.io/gorm"
)

var (
	ErrDisabled      = errors.New("payments are not configured on this server")
	ErrSignature     = errors.New("the webhook signature could not be verified")
	ErrNotForSale    = errors.New("this plan cannot be purchased")
	ErrEventMetadata = errors.New("the checkout session does not reference a user and plan")
)

// Stripe creates checkout sessions and processes webhook events.
//
// A nil *Stripe is valid and reports every operation as disabled.
type Stripe struct {
	webhookSecret string
	successURL    string
	cancelURL     string

	newSession func(*stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// New returns the Stripe integration for the configuration. If no secret
// key is configured, it returns nil.
func New(cfg config.Config) *Stripe {
	if cfg.StripeSecretKey == "" {
		return nil
	}

	stripe.Key = cfg.StripeSecretKey

	return &Stripe{
		webhookSecret: cfg.StripeWebhookSecret,
		successURL:    cfg.CheckoutSuccessURL,
		cancelURL:     cfg.CheckoutCancelURL,
		newSession:    session.New,
	}
}

// Enabled reports if payments are configured.
func (s *Stripe) Enabled() bool {
	return s != nil
}

// Checkout creates a checkout session for a subscription to the plan and
// returns the URL the user needs to be redirected to.
//
// The Stripe coupon of the coupon is applied if it has one. Archived,
// expired and used up coupons are rejected.
func (s *Stripe) Checkout(user models.User, plan models.Plan, coupon *models.Coupon) (string, error) {
	if !s.Enabled() {
		return "", ErrDisabled
	}

	if plan.StripePriceID == "" || plan.Archived {
		return "", ErrNotForSale
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL:        stripe.String(s.successURL),
		CancelURL:         stripe.String(s.cancelURL),
		ClientReferenceID: stripe.String(user.ID.String()),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(plan.StripePriceID),
				Quantity: stripe.Int64(1),
			},
		},
	}

	if user.Email != "" {
		params.CustomerEmail = stripe.String(user.Email)
	}

	if coupon != nil {
		err := coupon.Usable(time.Now())
		if err != nil {
			return "", err
		}
	}

	if coupon != nil && coupon.StripeCouponID != "" {
		params.Discounts = []*stripe.CheckoutSessionDiscountParams{
			{Coupon: stripe.String(coupon.StripeCouponID)},
		}
	}

	params.AddMetadata("user_id", user.ID.String())
	params.AddMetadata("plan_id", plan.ID.String())

	checkout, err := s.newSession(params)
	if err != nil {
		return "", fmt.Errorf("creating checkout session: %w", err)
	}

	return checkout.URL, nil
}

// HandleWebhook verifies the payload with the signature header and
// applies the event to the subscriptions in the database.
//
// Events that are not relevant for subscriptions are ignored.
func (s *Stripe) HandleWebhook(db *gorm.DB, payload []byte, signature string) error {
	if !s.Enabled() || s.webhookSecret == "" {
		return ErrDisabled
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, s.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrSignature, err)
	}

	logger := log.With().Str("event", event.ID).Str("type", string(event.Type)).Logger()

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		var checkout stripe.CheckoutSession
		err := json.Unmarshal(event.Data.Raw, &checkout)
		if err != nil {
			return err
		}

		subscription, err := completeCheckout(db, checkout)
		if err != nil {
			return err
		}

		logger.Info().Str("user", subscription.UserID.String()).Str("plan", subscription.PlanID.String()).Msg("subscription activated")

	case stripe.EventTypeCustomerSubscriptionUpdated, stripe.EventTypeCustomerSubscriptionDeleted:
		var subscription stripe.Subscription
		err := json.Unmarshal(event.Data.Raw, &subscription)
		if err != nil {
			return err
		}

		status := SubscriptionStatus(subscription.Status)
		if event.Type == stripe.EventTypeCustomerSubscriptionDeleted {
			status = models.SubscriptionCanceled
		}

		_, err = models.SetStripeSubscriptionStatus(db, subscription.ID, status)
		if errors.Is(err, models.ErrResourceNotFound) {
			// Subscriptions created outside of the checkout are not tracked
			logger.Warn().Str("subscription", subscription.ID).Msg("unknown subscription")
			return nil
		} else if err != nil {
			return err
		}

		logger.Info().Str("subscription", subscription.ID).Str("status", string(status)).Msg("subscription updated")

	default:
		logger.Debug().Msg("ignoring event")
	}

	return nil
}

// completeCheckout activates the subscription paid for with the
// checkout session.
func completeCheckout(db *gorm.DB, checkout stripe.CheckoutSession) (models.Subscription, error) {
	userID, err := uuid.Parse(checkout.Metadata["user_id"])
	if err != nil {
		userID, err = uuid.Parse(checkout.ClientReferenceID)
		if err != nil {
			return models.Subscription{}, ErrEventMetadata
		}
	}

	planID, err := uuid.Parse(checkout.Metadata["plan_id"])
	if err != nil {
		return models.Subscription{}, ErrEventMetadata
	}

	var customerID, subscriptionID string
	if checkout.Customer != nil {
		customerID = checkout.Customer.ID
	}
	if checkout.Subscription != nil {
		subscriptionID = checkout.Subscription.ID
	}

	return models.ActivateStripeSubscription(db, userID, planID, customerID, subscriptionID)
}

// SubscriptionStatus maps the status of a Stripe subscription to the
// status of the subscription to the plan.
func SubscriptionStatus(status stripe.SubscriptionStatus) models.SubscriptionStatus {
	switch status {
	case stripe.SubscriptionStatusActive, stripe.SubscriptionStatusTrialing:
		return models.SubscriptionActive
	case stripe.SubscriptionStatusPastDue, stripe.SubscriptionStatusUnpaid, stripe.SubscriptionStatusIncomplete:
		return models.SubscriptionPastDue
	default:
		return models.SubscriptionCanceled
	}
}
