package googleoauth

import (
	"context"
	"fmt"

	"github.com/MarcGrol/superapp/lib/myerrors"
	"github.com/MarcGrol/superapp/lib/mylog"
	"github.com/MarcGrol/superapp/lib/mystore"
	"github.com/MarcGrol/superapp/lib/mytime"
	"github.com/MarcGrol/superapp/lib/myuuid"
	"github.com/MarcGrol/superapp/lib/myvault"
)

const (
	ProviderName = "google"
)

type service struct {
	sessionStore mystore.Store[OAuthSessionSetup]
	vault        myvault.VaultReadWriter
	nower        mytime.Nower
	uuider       myuuid.UUIDer
	oauthClient  OauthClient
	logger       mylog.Logger
}

func newService(sessionStore mystore.Store[OAuthSessionSetup], vault myvault.VaultReadWriter, nower mytime.Nower, uuider myuuid.UUIDer, oauthClient OauthClient) *service {
	return &service{
		sessionStore: sessionStore,
		vault:        vault,
		nower:        nower,
		uuider:       uuider,
		oauthClient:  oauthClient,
		logger:       mylog.New("googleoauth"),
	}
}

func (s *service) start(c context.Context) (string, error) {
	now := s.nower.Now()
	sessionUID := s.uuider.Create()

	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Start oauth session-setup %s", sessionUID)

	err := s.sessionStore.Put(c, sessionUID, OAuthSessionSetup{
		UID:       sessionUID,
		Scopes:    Scopes,
		CreatedAt: now,
	})
	if err != nil {
		return "", myerrors.NewInternalError(fmt.Errorf("error storing session: %s", err))
	}

	return s.oauthClient.ComposeAuthURL(c, sessionUID), nil
}

func (s *service) done(c context.Context, sessionUID string, code string) error {
	now := s.nower.Now()

	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Continue with oauth session-setup (create-token) %s", sessionUID)

	err := s.sessionStore.RunInTransaction(c, func(c context.Context) error {
		// must be idempotent

		session, exist, err := s.sessionStore.Get(c, sessionUID)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error fetching session: %s", err))
		}
		if !exist {
			return myerrors.NewNotFoundError(fmt.Errorf("session with uid %s not found", sessionUID))
		}

		tokenResp, err := s.oauthClient.Exchange(c, code)
		if err != nil {
			// the stored credential, if any, stays untouched
			return myerrors.NewAuthenticationError(fmt.Errorf("error exchanging authorization code: %s", err))
		}

		session.LastModified = &now
		session.Done = true
		err = s.sessionStore.Put(c, sessionUID, session)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing session: %s", err))
		}

		// A new token replaces the stored one wholesale
		token := myvault.Token{
			AccessToken:  tokenResp.AccessToken,
			RefreshToken: tokenResp.RefreshToken,
			TokenType:    tokenResp.TokenType,
			Scopes:       Scopes,
			CreatedAt:    now,
		}
		if !tokenResp.Expiry.IsZero() {
			expiry := tokenResp.Expiry
			token.Expiry = &expiry
		}

		err = s.vault.Put(c, myvault.CreateTokenUID(ProviderName), token)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing token in vault: %s", err))
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Completed oauth session-setup (token-created) %s", sessionUID)

	return nil
}
