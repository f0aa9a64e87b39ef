package myvault

import (
	"context"
	"fmt"

	"github.com/MarcGrol/superapp/lib/mystore"
)

type vault struct {
	store mystore.Store[Token]
}

// New wraps any storage backend into a token vault. The backend decides
// durability: in-memory for tests, a file per token locally, datastore in the cloud.
func New(store mystore.Store[Token]) VaultReadWriter {
	return &vault{
		store: store,
	}
}

func (v vault) Get(c context.Context, uid string) (Token, bool, error) {
	token, exists, err := v.store.Get(c, uid)
	if err != nil {
		return Token{}, false, fmt.Errorf("error fetching token %s: %s", uid, err)
	}

	return token, exists, nil
}

func (v vault) Put(c context.Context, uid string, value Token) error {
	err := v.store.Put(c, uid, value)
	if err != nil {
		return fmt.Errorf("error storing token %s: %s", uid, err)
	}

	return nil
}
