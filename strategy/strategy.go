// Package strategy picks a payment method at runtime: a PaymentContext
// delegates Execute to whichever PaymentStrategy is currently set.
package strategy

import (
	"errors"
	"fmt"
	"io"
)

// ErrStrategyNotSet is returned by Execute before any strategy is set.
var ErrStrategyNotSet = errors.New("strategy: payment strategy is not set")

// PaymentStrategy pays amount euros and reports it to w.
type PaymentStrategy interface {
	Pay(w io.Writer, amount float64) error
}

// CreditCard pays by card.
type CreditCard struct {
	Number     string
	HolderName string
	CVV        string
}

// Pay implements PaymentStrategy.
func (c CreditCard) Pay(w io.Writer, amount float64) error {
	_, err := fmt.Fprintf(w, "Paying %.2f euros, using credit card...\n", amount)
	return err
}

// PayPal pays through a PayPal account.
type PayPal struct {
	Email    string
	Password string
}

// Pay implements PaymentStrategy.
func (p PayPal) Pay(w io.Writer, amount float64) error {
	_, err := fmt.Fprintf(w, "Paying %.2f euros, using paypal...\n", amount)
	return err
}

// PaymentContext holds the current strategy.
type PaymentContext struct {
	out      io.Writer
	strategy PaymentStrategy
}

// NewPaymentContext returns a context with no strategy, reporting to w.
func NewPaymentContext(w io.Writer) *PaymentContext {
	return &PaymentContext{out: w}
}

// SetStrategy replaces the current strategy; nil clears it.
func (c *PaymentContext) SetStrategy(s PaymentStrategy) {
	c.strategy = s
}

// Execute pays amount with the current strategy.
func (c *PaymentContext) Execute(amount float64) error {
	if c.strategy == nil {
		return ErrStrategyNotSet
	}
	if err := c.strategy.Pay(c.out, amount); err != nil {
		return fmt.Errorf("strategy: pay %.2f: %w", amount, err)
	}

	return nil
}

// Demo pays once by card and once with PayPal.
func Demo(w io.Writer) error {
	ctx := NewPaymentContext(w)

	ctx.SetStrategy(CreditCard{Number: "1234", HolderName: "Liakos", CVV: "123"})
	if err := ctx.Execute(250.75); err != nil {
		return err
	}

	ctx.SetStrategy(PayPal{Email: "liakos.koulaxis@yahoo.com", Password: "1234"})

	return ctx.Execute(120.50)
}
