package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hubbra/go-storefront/app/cart"
	"github.com/hubbra/go-storefront/app/checkout"
	"github.com/hubbra/go-storefront/app/helpers"
	"github.com/hubbra/go-storefront/app/models"
	"github.com/hubbra/go-storefront/app/utils/renderer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAddressRepo struct {
	addresses map[string]*models.Address
}

func (s *stubAddressRepo) Create(ctx context.Context, address *models.Address) error {
	if address.ID == "" {
		address.ID = uuid.New().String()
	}
	s.addresses[address.ID] = address
	return nil
}

func (s *stubAddressRepo) FindByIDAndUser(ctx context.Context, id, userID string) (*models.Address, error) {
	address, ok := s.addresses[id]
	if !ok || address.UserID != userID {
		return nil, nil
	}
	return address, nil
}

func (s *stubAddressRepo) FindByUserID(ctx context.Context, userID string) ([]models.Address, error) {
	var out []models.Address
	for _, a := range s.addresses {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *stubAddressRepo) Update(ctx context.Context, address *models.Address) error { return nil }
func (s *stubAddressRepo) Delete(ctx context.Context, id, userID string) error       { return nil }

func newCheckoutFixture() (*CheckoutHandler, *memorySessionStore, *stubAddressRepo) {
	session := &memorySessionStore{}
	addresses := &stubAddressRepo{addresses: map[string]*models.Address{}}
	h := NewCheckoutHandler(session, addresses, renderer.New(), validator.New())
	return h, session, addresses
}

func asUser(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, userID)
	return r.WithContext(ctx)
}

func checkoutPost(t *testing.T, handler http.HandlerFunc, target, body, userID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, asUser(req, userID))
	return rec
}

func TestCheckoutGetStartsAtCart(t *testing.T) {
	h, _, _ := newCheckoutFixture()

	req := asUser(httptest.NewRequest("GET", "/storefront/checkout", nil), "u1")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var view struct {
		State checkout.State `json:"state"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, checkout.StepCart, view.State.Step)
}

func TestCheckoutNextBlockedWithoutAddress(t *testing.T) {
	h, session, _ := newCheckoutFixture()

	rec := checkoutPost(t, h.Next, "/storefront/checkout/next", "", "u1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, checkout.StepAddress, session.checkout.Step)

	rec = checkoutPost(t, h.Next, "/storefront/checkout/next", "", "u1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, checkout.StepAddress, session.checkout.Step)
}

func TestCheckoutSelectAddressCrossUserIsNotFound(t *testing.T) {
	h, _, addresses := newCheckoutFixture()
	addresses.addresses["a1"] = &models.Address{ID: "a1", UserID: "someone-else"}

	rec := checkoutPost(t, h.SelectAddress, "/storefront/checkout/address/select", `{"addressId":"a1"}`, "u1")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckoutFullFlow(t *testing.T) {
	h, session, addresses := newCheckoutFixture()
	addresses.addresses["a1"] = &models.Address{ID: "a1", UserID: "u1", Recipient: "João Silva"}
	session.cart = cart.Cart{}.Add(cart.Line{
		ProductID: "p1",
		Name:      "Camisa Brasil Home 2024",
		Size:      "M",
		UnitPrice: decimal.NewFromFloat(349.90),
		Quantity:  1,
	})

	rec := checkoutPost(t, h.Next, "/storefront/checkout/next", "", "u1")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = checkoutPost(t, h.SelectAddress, "/storefront/checkout/address/select", `{"addressId":"a1"}`, "u1")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = checkoutPost(t, h.Next, "/storefront/checkout/next", "", "u1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, checkout.StepPayment, session.checkout.Step)

	rec = checkoutPost(t, h.ChoosePayment, "/storefront/checkout/payment", `{"method":"pix"}`, "u1")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = checkoutPost(t, h.Submit, "/storefront/checkout/submit", "", "u1")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Pedido iniciado", body["message"])
	// 349.90 + 30.00 shipping.
	assert.Equal(t, "Pix (imediato) • Total R$ 379,90", body["summary"])
}

func TestCheckoutSubmitEmptyCart(t *testing.T) {
	h, session, _ := newCheckoutFixture()
	session.checkout = checkout.State{Step: checkout.StepPayment, PaymentMethod: checkout.PaymentPix}
	session.hasState = true

	rec := checkoutPost(t, h.Submit, "/storefront/checkout/submit", "", "u1")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutSubmitBeforePayment(t *testing.T) {
	h, session, _ := newCheckoutFixture()
	session.cart = cart.Cart{}.Add(cart.Line{ProductID: "p1", Size: "M", UnitPrice: decimal.NewFromInt(100), Quantity: 1})

	rec := checkoutPost(t, h.Submit, "/storefront/checkout/submit", "", "u1")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutCreateAddressAutoSelects(t *testing.T) {
	h, session, addresses := newCheckoutFixture()

	body := `{"recipient":"Maria Souza","street":"Rua B","number":"7","district":"Centro","city":"Recife","state":"PE","zip":"50000-000"}`
	rec := checkoutPost(t, h.CreateAddress, "/storefront/checkout/address", body, "u1")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, addresses.addresses, 1)
	assert.NotEmpty(t, session.checkout.SelectedAddressID)
	assert.Equal(t, "Maria Souza", session.checkout.AddressForm.Recipient)
}

func TestCheckoutBackRetainsSelection(t *testing.T) {
	h, session, _ := newCheckoutFixture()
	session.checkout = checkout.State{Step: checkout.StepPayment, SelectedAddressID: "a1"}
	session.hasState = true

	rec := checkoutPost(t, h.Back, "/storefront/checkout/back", "", "u1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, checkout.StepAddress, session.checkout.Step)
	assert.Equal(t, "a1", session.checkout.SelectedAddressID)
}
