package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/superapp/lib/myhttpclient"
)

func TestPlaces(t *testing.T) {

	t.Run("Radius and amenity end up verbatim in the overpass query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, httpClient := setup(t, ctrl)

		// given
		upstreamBody := `{"elements":[{"type":"node","id":1,"lat":52.1,"lon":4.9,"tags":{"amenity":"cafe"}}]}`
		httpClient.EXPECT().Send(gomock.Any(), http.MethodPost,
			"https://overpass-api.de/api/interpreter", gomock.Any(),
			map[string]string{"Content-Type": "text/plain"}).
			DoAndReturn(func(ctx context.Context, method string, url string, body []byte, headers map[string]string) (int, []byte, error) {
				query := string(body)
				assert.Contains(t, query, "node(around:500,52.1,4.9)[amenity=cafe];")
				assert.Contains(t, query, "way(around:500,52.1,4.9)[amenity=cafe];")
				assert.Contains(t, query, "relation(around:500,52.1,4.9)[amenity=cafe];")
				assert.Contains(t, query, "out center 20;")
				return 200, []byte(upstreamBody), nil
			})

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/places?lat=52.1&lon=4.9&radius=500&amenity=cafe", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.JSONEq(t, upstreamBody, response.Body.String())
	})

	t.Run("Defaults to restaurants within 1000 meter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, httpClient := setup(t, ctrl)

		// given
		httpClient.EXPECT().Send(gomock.Any(), http.MethodPost, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, method string, url string, body []byte, headers map[string]string) (int, []byte, error) {
				assert.True(t, strings.Contains(string(body), "around:1000"))
				assert.True(t, strings.Contains(string(body), "amenity=restaurant"))
				return 200, []byte(`{"elements":[]}`), nil
			})

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/places?lat=1&lon=2", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
	})

	t.Run("Malformed radius is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/places?lat=1&lon=2&radius=abc", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 400, response.Code)
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
