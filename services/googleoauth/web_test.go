package googleoauth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/oauth2"

	"github.com/MarcGrol/superapp/lib/mystore"
	"github.com/MarcGrol/superapp/lib/mytime"
	"github.com/MarcGrol/superapp/lib/myuuid"
	"github.com/MarcGrol/superapp/lib/myvault"
)

func TestGoogleOauth(t *testing.T) {

	t.Run("Start redirects to the consent url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given
		f.nower.EXPECT().Now().Return(mytime.ExampleTime)
		f.uuider.EXPECT().Create().Return("abcdef")
		f.oauthClient.EXPECT().ComposeAuthURL(gomock.Any(), "abcdef").
			Return("https://accounts.google.com/o/oauth2/auth?state=abcdef")

		// when
		request, err := http.NewRequest(http.MethodGet, "/auth/google", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		f.router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 302, response.Code)
		assert.Equal(t, "https://accounts.google.com/o/oauth2/auth?state=abcdef", response.Header().Get("Location"))

		session, exists, err := f.sessionStore.Get(context.TODO(), "abcdef")
		assert.NoError(t, err)
		assert.True(t, exists)
		assert.False(t, session.Done)
		assert.Equal(t, Scopes, session.Scopes)
	})

	t.Run("Valid callback persists the credential", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)
		c := context.TODO()

		err := f.sessionStore.Put(c, "abcdef", OAuthSessionSetup{
			UID:       "abcdef",
			Scopes:    Scopes,
			CreatedAt: mytime.ExampleTime,
		})
		assert.NoError(t, err)

		// given
		f.nower.EXPECT().Now().Return(mytime.ExampleTime)
		f.oauthClient.EXPECT().Exchange(gomock.Any(), "789").Return(&oauth2.Token{
			AccessToken:  "abc123",
			RefreshToken: "rst456",
			TokenType:    "Bearer",
			Expiry:       mytime.ExampleTime.Add(time.Hour),
		}, nil)

		// when
		request, err := http.NewRequest(http.MethodGet, "/oauth2callback?state=abcdef&code=789", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		f.router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 302, response.Code)
		assert.Equal(t, "/?auth=ok", response.Header().Get("Location"))

		token, exists, err := f.vault.Get(c, myvault.CreateTokenUID(ProviderName))
		assert.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, "abc123", token.AccessToken)
		assert.Equal(t, "rst456", token.RefreshToken)
		assert.Equal(t, Scopes, token.Scopes)
		assert.Equal(t, mytime.ExampleTime.Add(time.Hour), *token.Expiry)

		session, _, err := f.sessionStore.Get(c, "abcdef")
		assert.NoError(t, err)
		assert.True(t, session.Done)
	})

	t.Run("Failed exchange leaves the vault untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)
		c := context.TODO()

		err := f.sessionStore.Put(c, "abcdef", OAuthSessionSetup{
			UID:       "abcdef",
			CreatedAt: mytime.ExampleTime,
		})
		assert.NoError(t, err)

		// given
		f.nower.EXPECT().Now().Return(mytime.ExampleTime)
		f.oauthClient.EXPECT().Exchange(gomock.Any(), "expired").
			Return(nil, errors.New("invalid_grant"))

		// when
		request, err := http.NewRequest(http.MethodGet, "/oauth2callback?state=abcdef&code=expired", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		f.router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 403, response.Code)

		_, exists, err := f.vault.Get(c, myvault.CreateTokenUID(ProviderName))
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Unknown state is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// given
		f.nower.EXPECT().Now().Return(mytime.ExampleTime)

		// when
		request, err := http.NewRequest(http.MethodGet, "/oauth2callback?state=unknown&code=789", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		f.router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 404, response.Code)
	})

	t.Run("Provider error short-circuits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodGet,
			"/oauth2callback?error=access_denied&error_description=user+said+no", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		f.router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 400, response.Code)
		assert.Contains(t, response.Body.String(), "access_denied")
	})
}

type fixture struct {
	router       *mux.Router
	sessionStore mystore.Store[OAuthSessionSetup]
	vault        myvault.VaultReadWriter
	nower        *mytime.MockNower
	uuider       *myuuid.MockUUIDer
	oauthClient  *MockOauthClient
}

func setup(t *testing.T, ctrl *gomock.Controller) fixture {
	c := context.TODO()
	router := mux.NewRouter()

	sessionStore, _, err := mystore.NewInMemoryStore[OAuthSessionSetup](c)
	assert.NoError(t, err)
	tokenStore, _, err := mystore.NewInMemoryStore[myvault.Token](c)
	assert.NoError(t, err)

	vault := myvault.New(tokenStore)
	nower := mytime.NewMockNower(ctrl)
	uuider := myuuid.NewMockUUIDer(ctrl)
	oauthClient := NewMockOauthClient(ctrl)

	sut := NewWebService(sessionStore, vault, nower, uuider, oauthClient)
	err = sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return fixture{
		router:       router,
		sessionStore: sessionStore,
		vault:        vault,
		nower:        nower,
		uuider:       uuider,
		oauthClient:  oauthClient,
	}
}
