package checkout

import (
	"errors"
	"strings"
)

// The wizard walks cart review -> address -> payment, strictly linear.
// Submitting never persists an order; it only produces a notification.

type Step string

const (
	StepCart    Step = "cart"
	StepAddress Step = "address"
	StepPayment Step = "payment"
)

type PaymentMethod string

const (
	PaymentPix  PaymentMethod = "pix"
	PaymentCard PaymentMethod = "card"
)

var (
	ErrAddressRequired = errors.New("select an address or fill in at least the recipient name")
	ErrPaymentRequired = errors.New("choose a payment method (pix or card)")
	ErrNotAtPayment    = errors.New("checkout has not reached the payment step")
	ErrAtLastStep      = errors.New("checkout is already at the payment step")
)

// AddressForm mirrors the new-address form filled inside the wizard.
type AddressForm struct {
	Label      string `json:"label"`
	Recipient  string `json:"recipient"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	Zip        string `json:"zip"`
}

// State is the whole wizard position. It is a value type: transitions
// return a new State and never clear previously entered data.
type State struct {
	Step              Step          `json:"step"`
	SelectedAddressID string        `json:"selectedAddressId"`
	AddressForm       AddressForm   `json:"addressForm"`
	PaymentMethod     PaymentMethod `json:"paymentMethod"`
}

func NewState() State {
	return State{Step: StepCart}
}

// AddressChosen reports whether the address gate is satisfied: an existing
// address selected, or a locally filled form with a recipient present.
func (s State) AddressChosen() bool {
	return s.SelectedAddressID != "" || strings.TrimSpace(s.AddressForm.Recipient) != ""
}

// Next advances one step. The cart -> address transition is unconditional;
// address -> payment requires AddressChosen.
func (s State) Next() (State, error) {
	switch s.Step {
	case StepCart:
		s.Step = StepAddress
		return s, nil
	case StepAddress:
		if !s.AddressChosen() {
			return s, ErrAddressRequired
		}
		s.Step = StepPayment
		return s, nil
	default:
		return s, ErrAtLastStep
	}
}

// Back moves one step toward the cart. Entered data is retained.
func (s State) Back() State {
	switch s.Step {
	case StepPayment:
		s.Step = StepAddress
	case StepAddress:
		s.Step = StepCart
	}
	return s
}

// SelectAddress picks an existing address by id.
func (s State) SelectAddress(id string) State {
	s.SelectedAddressID = id
	return s
}

// FillAddress stores the new-address form without losing a selection made
// earlier in the same session.
func (s State) FillAddress(f AddressForm) State {
	s.AddressForm = f
	return s
}

// ChoosePayment records the payment method; only pix and card exist.
func (s State) ChoosePayment(m PaymentMethod) (State, error) {
	if m != PaymentPix && m != PaymentCard {
		return s, ErrPaymentRequired
	}
	s.PaymentMethod = m
	return s, nil
}

// Submit validates the terminal gate: the wizard must be at the payment
// step with a method chosen. The caller is responsible for the (stubbed)
// completion notification; no order is persisted here.
func (s State) Submit() error {
	if s.Step != StepPayment {
		return ErrNotAtPayment
	}
	if s.PaymentMethod != PaymentPix && s.PaymentMethod != PaymentCard {
		return ErrPaymentRequired
	}
	return nil
}

// Summary is the human-readable payment label used in the completion
// notification.
func (m PaymentMethod) Summary() string {
	if m == PaymentPix {
		return "Pix (imediato)"
	}
	return "Cartão de Crédito"
}
