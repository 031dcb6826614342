package billing

import "github.com/stripe/stripe-go/v82"

// SetSessionCreator replaces the function creating checkout sessions
// so that tests do not call the Stripe API.
func (s *Stripe) SetSessionCreator(f func(*stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)) {
	s.newSession = f
}
