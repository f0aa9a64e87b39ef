package myvault

import (
	"context"
	"time"
)

const (
	CurrentToken = "currentToken"
)

// Token is the single delegated-access credential of this process.
// A refreshed or re-acquired token replaces the stored one wholesale.
type Token struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	Scopes       []string
	CreatedAt    time.Time
	Expiry       *time.Time
}

type VaultReader interface {
	Get(c context.Context, uid string) (Token, bool, error)
}

//go:generate mockgen -source=api.go -package myvault -destination vault_mock.go VaultReadWriter
type VaultReadWriter interface {
	Get(c context.Context, uid string) (Token, bool, error)
	Put(c context.Context, uid string, value Token) error
}

func CreateTokenUID(providerName string) string {
	return CurrentToken + "_" + providerName
}
