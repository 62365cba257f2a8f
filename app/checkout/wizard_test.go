package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStateStartsAtCart(t *testing.T) {
	assert.Equal(t, StepCart, NewState().Step)
}

func TestNextFromCartIsUnconditional(t *testing.T) {
	state, err := NewState().Next()

	require.NoError(t, err)
	assert.Equal(t, StepAddress, state.Step)
}

func TestNextFromAddressRequiresAddress(t *testing.T) {
	state, err := NewState().Next()
	require.NoError(t, err)

	_, err = state.Next()
	assert.ErrorIs(t, err, ErrAddressRequired)
}

func TestNextWithSelectedAddress(t *testing.T) {
	state, err := NewState().Next()
	require.NoError(t, err)

	state, err = state.SelectAddress("addr-1").Next()
	require.NoError(t, err)
	assert.Equal(t, StepPayment, state.Step)
}

func TestNextWithFilledForm(t *testing.T) {
	state, err := NewState().Next()
	require.NoError(t, err)

	state = state.FillAddress(AddressForm{Recipient: "João Silva", Street: "Rua A", Number: "12"})
	state, err = state.Next()
	require.NoError(t, err)
	assert.Equal(t, StepPayment, state.Step)
}

func TestBlankRecipientDoesNotSatisfyGate(t *testing.T) {
	state, err := NewState().Next()
	require.NoError(t, err)

	state = state.FillAddress(AddressForm{Recipient: "   "})
	_, err = state.Next()
	assert.ErrorIs(t, err, ErrAddressRequired)
}

func TestNextAtPaymentFails(t *testing.T) {
	state := State{Step: StepPayment}

	_, err := state.Next()
	assert.ErrorIs(t, err, ErrAtLastStep)
}

func TestBackRetainsData(t *testing.T) {
	state := State{
		Step:              StepPayment,
		SelectedAddressID: "addr-1",
		PaymentMethod:     PaymentPix,
	}

	state = state.Back()
	assert.Equal(t, StepAddress, state.Step)
	assert.Equal(t, "addr-1", state.SelectedAddressID)
	assert.Equal(t, PaymentPix, state.PaymentMethod)

	state = state.Back()
	assert.Equal(t, StepCart, state.Step)

	// Already at the first step.
	assert.Equal(t, StepCart, state.Back().Step)
}

func TestChoosePayment(t *testing.T) {
	state, err := NewState().ChoosePayment(PaymentCard)
	require.NoError(t, err)
	assert.Equal(t, PaymentCard, state.PaymentMethod)

	_, err = NewState().ChoosePayment("boleto")
	assert.ErrorIs(t, err, ErrPaymentRequired)
}

func TestSubmit(t *testing.T) {
	assert.ErrorIs(t, NewState().Submit(), ErrNotAtPayment)

	atPayment := State{Step: StepPayment}
	assert.ErrorIs(t, atPayment.Submit(), ErrPaymentRequired)

	atPayment.PaymentMethod = PaymentPix
	assert.NoError(t, atPayment.Submit())
}

func TestPaymentMethodSummary(t *testing.T) {
	assert.Equal(t, "Pix (imediato)", PaymentPix.Summary())
	assert.Equal(t, "Cartão de Crédito", PaymentCard.Summary())
}
