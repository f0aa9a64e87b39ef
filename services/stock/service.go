package stock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MarcGrol/superapp/lib/myerrors"
	"github.com/MarcGrol/superapp/lib/myhttpclient"
	"github.com/MarcGrol/superapp/lib/mylog"
)

const (
	quoteURL = "https://query1.finance.yahoo.com/v7/finance/quote"
	chartURL = "https://query1.finance.yahoo.com/v8/finance/chart"
)

type service struct {
	httpClient myhttpclient.HTTPSender
	logger     mylog.Logger
}

func newService(httpClient myhttpclient.HTTPSender, logger mylog.Logger) *service {
	return &service{
		httpClient: httpClient,
		logger:     logger,
	}
}

// quote fetches the live market price and falls back to the most recent
// daily close when the live field is absent. A symbol without either is
// not an error: the price stays null.
func (s *service) quote(c context.Context, symbol string) (Quote, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Fetch stock quote for %s", symbol)

	quote := Quote{
		Symbol: symbol,
	}

	status, respBody, err := s.httpClient.Send(c, http.MethodGet,
		quoteURL+"?symbols="+url.QueryEscape(symbol), nil, nil)
	if err != nil {
		return Quote{}, myerrors.NewInternalError(fmt.Errorf("error calling quote api: %s", err))
	}

	if status < 200 || status >= 300 {
		return Quote{}, myerrors.NewUpstreamError(status, respBody)
	}

	resp := quoteResponse{}
	err = json.Unmarshal(respBody, &resp)
	if err != nil {
		return Quote{}, myerrors.NewInternalError(fmt.Errorf("error parsing quote response: %s", err))
	}

	if len(resp.QuoteResponse.Result) > 0 {
		result := resp.QuoteResponse.Result[0]
		quote.Price = result.RegularMarketPrice
		quote.InfoHead = InfoHead{
			ShortName: result.ShortName,
			Currency:  result.Currency,
		}
	}

	if quote.Price == nil {
		quote.Price, err = s.lastDailyClose(c, symbol)
		if err != nil {
			return Quote{}, err
		}
	}

	return quote, nil
}

func (s *service) lastDailyClose(c context.Context, symbol string) (*float64, error) {
	status, respBody, err := s.httpClient.Send(c, http.MethodGet,
		fmt.Sprintf("%s/%s?interval=1d&range=1d", chartURL, url.PathEscape(symbol)), nil, nil)
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error calling chart api: %s", err))
	}

	if status < 200 || status >= 300 {
		return nil, myerrors.NewUpstreamError(status, respBody)
	}

	resp := chartResponse{}
	err = json.Unmarshal(respBody, &resp)
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error parsing chart response: %s", err))
	}

	var lastClose *float64

	for _, result := range resp.Chart.Result {
		for _, q := range result.Indicators.Quote {
			for _, closePrice := range q.Close {
				if closePrice != nil {
					lastClose = closePrice
				}
			}
		}
	}

	return lastClose, nil
}
