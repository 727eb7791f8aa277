// Package pubsub implements the observer pattern on a stock ticker:
// investors register with a StockMarket and are notified, in registration
// order, every time its price changes.
//
// StockMarket is safe for concurrent use. Notifications run on the caller's
// goroutine against a snapshot of the subscriber list, so an Investor may
// register or remove investors from inside Update without deadlocking.
package pubsub

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// Investor receives price updates.
type Investor interface {
	Update(stock string, price float32)
}

// Stock is the subject side of the pattern.
type Stock interface {
	Register(inv Investor)
	Remove(inv Investor)
	Notify()
}

// StockMarket tracks one stock's price and fans updates out to investors.
type StockMarket struct {
	mu        sync.RWMutex // guards investors and price
	name      string
	price     float32
	investors []Investor
}

var _ Stock = (*StockMarket)(nil)

// NewStockMarket returns a market for stock name at the initial price.
func NewStockMarket(name string, initial float32) *StockMarket {
	return &StockMarket{name: name, price: initial}
}

// Name returns the stock name.
func (m *StockMarket) Name() string { return m.name }

// Price returns the current price.
func (m *StockMarket) Price() float32 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.price
}

// Register appends inv to the notification list.
func (m *StockMarket) Register(inv Investor) {
	if inv == nil {
		return
	}
	m.mu.Lock()
	m.investors = append(m.investors, inv)
	m.mu.Unlock()
}

// Remove drops the first registration of inv. Unknown investors are ignored.
func (m *StockMarket) Remove(inv Investor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, cur := range m.investors {
		if cur == inv {
			m.investors = append(m.investors[:i], m.investors[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered investors.
func (m *StockMarket) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.investors)
}

// Notify sends the current price to every investor in registration order.
func (m *StockMarket) Notify() {
	m.mu.RLock()
	price := m.price
	snapshot := make([]Investor, len(m.investors))
	copy(snapshot, m.investors)
	m.mu.RUnlock()

	for _, inv := range snapshot {
		inv.Update(m.name, price)
	}
}

// SetPrice stores the new price and notifies investors.
func (m *StockMarket) SetPrice(price float32) {
	m.mu.Lock()
	m.price = price
	m.mu.Unlock()

	m.Notify()
}

// IndividualInvestor prints updates addressed to a person.
type IndividualInvestor struct {
	Name string
	Out  io.Writer
}

// Update implements Investor.
func (i *IndividualInvestor) Update(stock string, price float32) {
	fmt.Fprintf(i.Out, "Investor %s notified. Stock: %s is now %s\n", i.Name, stock, FormatPrice(price))
}

// InvestmentCompany prints updates addressed to a company.
type InvestmentCompany struct {
	Name string
	Out  io.Writer
}

// Update implements Investor.
func (c *InvestmentCompany) Update(stock string, price float32) {
	fmt.Fprintf(c.Out, "Investment Company %s notified. Stock: %s is now %s\n", c.Name, stock, FormatPrice(price))
}

// FormatPrice renders p with the shortest exact decimal form, keeping one
// decimal place for whole numbers (1300 → "1300.0").
func FormatPrice(p float32) string {
	s := strconv.FormatFloat(float64(p), 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// Demo registers three investors on Google and moves its price twice.
func Demo(w io.Writer) error {
	google := NewStockMarket("Google", 1200.00)

	google.Register(&IndividualInvestor{Name: "Elijah", Out: w})
	google.Register(&IndividualInvestor{Name: "Fani", Out: w})
	google.Register(&InvestmentCompany{Name: "Kappa", Out: w})

	google.SetPrice(1300.00)
	google.SetPrice(1000.00)

	return nil
}
