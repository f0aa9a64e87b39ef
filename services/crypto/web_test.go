package crypto

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/superapp/lib/myhttpclient"
)

func TestCrypto(t *testing.T) {

	t.Run("Defaults to bitcoin in usd", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, httpClient := setup(t, ctrl)

		// given
		upstreamBody := `{"bitcoin":{"usd":64231.2,"usd_24h_change":-1.3}}`
		httpClient.EXPECT().Send(gomock.Any(), http.MethodGet,
			"https://api.coingecko.com/api/v3/simple/price?ids=bitcoin&include_24hr_change=true&vs_currencies=usd",
			nil, nil).Return(200, []byte(upstreamBody), nil)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/crypto", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.JSONEq(t, upstreamBody, response.Body.String())
	})

	t.Run("Explicit ids and currency are forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, httpClient := setup(t, ctrl)

		// given
		httpClient.EXPECT().Send(gomock.Any(), http.MethodGet,
			"https://api.coingecko.com/api/v3/simple/price?ids=ethereum&include_24hr_change=true&vs_currencies=eur",
			nil, nil).Return(200, []byte(`{}`), nil)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/crypto?ids=ethereum&vs_currency=eur", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
	})
}

func setup(t *testing.T, ctrl *gomock.Controller) (*mux.Router, *myhttpclient.MockHTTPSender) {
	router := mux.NewRouter()
	httpClient := myhttpclient.NewMockHTTPSender(ctrl)

	sut := NewWebService(httpClient)
	err := sut.RegisterEndpoints(context.TODO(), router)
	assert.NoError(t, err)

	return router, httpClient
}
