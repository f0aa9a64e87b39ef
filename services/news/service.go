package news

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/MarcGrol/superapp/lib/myerrors"
	"github.com/MarcGrol/superapp/lib/myhttpclient"
	"github.com/MarcGrol/superapp/lib/mylog"
)

const (
	// region is fixed to India/English
	feedURLFormat = "https://news.google.com/rss/search?q=%s&hl=en-IN&gl=IN&ceid=IN:en"

	maxItems = 12
)

type service struct {
	httpClient myhttpclient.HTTPSender
	feedParser *gofeed.Parser
	logger     mylog.Logger
}

func newService(httpClient myhttpclient.HTTPSender, logger mylog.Logger) *service {
	return &service{
		httpClient: httpClient,
		feedParser: gofeed.NewParser(),
		logger:     logger,
	}
}

func (s *service) headlines(c context.Context, query string) (Response, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Fetch news for '%s'", query)

	feedQuery := strings.ReplaceAll(query, " ", "+")

	status, respBody, err := s.httpClient.Send(c, http.MethodGet,
		fmt.Sprintf(feedURLFormat, feedQuery), nil, nil)
	if err != nil {
		return Response{}, myerrors.NewInternalError(fmt.Errorf("error calling news feed: %s", err))
	}

	if status < 200 || status >= 300 {
		return Response{}, myerrors.NewUpstreamError(status, respBody)
	}

	feed, err := s.feedParser.ParseString(string(respBody))
	if err != nil {
		return Response{}, myerrors.NewInternalError(fmt.Errorf("error parsing news feed: %s", err))
	}

	items := make([]Item, 0, maxItems)

	for _, entry := range feed.Items {
		if len(items) >= maxItems {
			break
		}

		items = append(items, Item{
			Title:     entry.Title,
			Link:      entry.Link,
			Published: entry.Published,
		})
	}

	return Response{
		Query: query,
		Items: items,
	}, nil
}
