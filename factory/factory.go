// Package factory demonstrates the factory method: each Store decides which
// Pizza to create, while Order runs the shared create-then-prepare flow.
package factory

import (
	"fmt"
	"io"
)

// Pizza is the product.
type Pizza interface {
	Prepare()
}

// CheesePizza is made by NewYorkStore.
type CheesePizza struct{ out io.Writer }

func (p CheesePizza) Prepare() { fmt.Fprintln(p.out, "Preparing Cheese Pizza...") }

// PepperoniPizza is made by ChicagoStore.
type PepperoniPizza struct{ out io.Writer }

func (p PepperoniPizza) Prepare() { fmt.Fprintln(p.out, "Preparing Pepperoni Pizza...") }

// Store is the creator; CreatePizza is the factory method.
type Store interface {
	CreatePizza() Pizza
}

// NewYorkStore creates cheese pizzas.
type NewYorkStore struct{ Out io.Writer }

func (s NewYorkStore) CreatePizza() Pizza { return CheesePizza{out: s.Out} }

// ChicagoStore creates pepperoni pizzas.
type ChicagoStore struct{ Out io.Writer }

func (s ChicagoStore) CreatePizza() Pizza { return PepperoniPizza{out: s.Out} }

// Order creates a pizza with s and prepares it.
func Order(s Store) Pizza {
	p := s.CreatePizza()
	p.Prepare()

	return p
}

// Demo orders one pizza from each store.
func Demo(w io.Writer) error {
	Order(NewYorkStore{Out: w})
	Order(ChicagoStore{Out: w})

	return nil
}
