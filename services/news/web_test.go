package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/superapp/lib/myhttpclient"
)

func TestNews(t *testing.T) {

	t.Run("Caps at 12 items and tolerates a missing publication date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, httpClient := setup(t, ctrl)

		// given: a feed with 14 entries, the second one without pubDate
		httpClient.EXPECT().Send(gomock.Any(), http.MethodGet,
			"https://news.google.com/rss/search?q=local+cricket+news&hl=en-IN&gl=IN&ceid=IN:en",
			nil, nil).Return(200, []byte(exampleFeed(14)), nil)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/news?query=local+cricket+news", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)

		got := Response{}
		err = json.Unmarshal(response.Body.Bytes(), &got)
		assert.NoError(t, err)
		assert.Equal(t, "local cricket news", got.Query)
		assert.Len(t, got.Items, 12)
		for _, item := range got.Items {
			assert.NotEmpty(t, item.Title)
			assert.NotEmpty(t, item.Link)
		}
		assert.Empty(t, got.Items[1].Published)
		assert.NotEmpty(t, got.Items[0].Published)
	})

	t.Run("Defaults to top stories", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, httpClient := setup(t, ctrl)

		// given
		httpClient.EXPECT().Send(gomock.Any(), http.MethodGet,
			"https://news.google.com/rss/search?q=top+stories&hl=en-IN&gl=IN&ceid=IN:en",
			nil, nil).Return(200, []byte(exampleFeed(2)), nil)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/news", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)

		got := Response{}
		err = json.Unmarshal(response.Body.Bytes(), &got)
		assert.NoError(t, err)
		assert.Equal(t, "top stories", got.Query)
		assert.Len(t, got.Items, 2)
	})
}

func exampleFeed(numItems int) string {
	var items strings.Builder
	for i := 1; i <= numItems; i++ {
		pubDate := fmt.Sprintf("<pubDate>Mon, 27 Feb 2023 %02d:00:00 GMT</pubDate>", i%24)
		if i == 2 {
			pubDate = ""
		}
		items.WriteString(fmt.Sprintf(
			`<item><title>Headline %d</title><link>https://example.com/%d</link>%s</item>`,
			i, i, pubDate))
	}

	return `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Google News</title>` + items.String() + `</channel></rss>`
}

func setup(t *testing.T, ctrl *gomock.Controller) (*mux.Router, *myhttpclient.MockHTTPSender) {
	router := mux.NewRouter()
	httpClient := myhttpclient.NewMockHTTPSender(ctrl)

	sut := NewWebService(httpClient)
	err := sut.RegisterEndpoints(context.TODO(), router)
	assert.NoError(t, err)

	return router, httpClient
}
