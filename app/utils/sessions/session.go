package sessions

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	gsessions "github.com/gorilla/sessions"
	"github.com/hubbra/go-storefront/app/cart"
	"github.com/hubbra/go-storefront/app/checkout"
)

const (
	sessionCookieName = "storefront-session"

	cartSessionKey     = "cart"
	checkoutSessionKey = "checkout"
)

// Store holds the per-browser storefront state: the cart lines and the
// checkout wizard position. Both are stored as JSON blobs inside one
// encrypted cookie session.
type Store interface {
	GetCart(r *http.Request) cart.Cart
	SaveCart(w http.ResponseWriter, r *http.Request, c cart.Cart) error

	GetCheckout(r *http.Request) (checkout.State, bool)
	SaveCheckout(w http.ResponseWriter, r *http.Request, s checkout.State) error
}

type CookieStore struct {
	store *gsessions.CookieStore
}

func NewCookieStore(keyPairs ...[]byte) *CookieStore {
	store := gsessions.NewCookieStore(keyPairs...)
	store.Options = &gsessions.Options{
		Path:     "/",
		MaxAge:   int(30 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieStore{store: store}
}

func (c *CookieStore) getSession(r *http.Request) *gsessions.Session {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		// A stale or tampered cookie decodes to a fresh session.
		log.Printf("Error getting session: %v", err)
	}
	return session
}

func (c *CookieStore) GetCart(r *http.Request) cart.Cart {
	session := c.getSession(r)
	raw, ok := session.Values[cartSessionKey].([]byte)
	if !ok {
		return cart.Cart{}
	}
	var ct cart.Cart
	if err := json.Unmarshal(raw, &ct); err != nil {
		log.Printf("Error decoding cart from session: %v", err)
		return cart.Cart{}
	}
	return ct
}

func (c *CookieStore) SaveCart(w http.ResponseWriter, r *http.Request, ct cart.Cart) error {
	session := c.getSession(r)
	raw, err := json.Marshal(ct)
	if err != nil {
		return err
	}
	session.Values[cartSessionKey] = raw
	return session.Save(r, w)
}

func (c *CookieStore) GetCheckout(r *http.Request) (checkout.State, bool) {
	session := c.getSession(r)
	raw, ok := session.Values[checkoutSessionKey].([]byte)
	if !ok {
		return checkout.NewState(), false
	}
	var state checkout.State
	if err := json.Unmarshal(raw, &state); err != nil {
		log.Printf("Error decoding checkout state from session: %v", err)
		return checkout.NewState(), false
	}
	return state, true
}

func (c *CookieStore) SaveCheckout(w http.ResponseWriter, r *http.Request, s checkout.State) error {
	session := c.getSession(r)
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	session.Values[checkoutSessionKey] = raw
	return session.Save(r, w)
}
