package stock

// Quote is the reshaped response of the stock endpoint. Price stays null
// when neither the live quote nor the history yields a value.
type Quote struct {
	Symbol   string   `json:"symbol"`
	Price    *float64 `json:"price"`
	InfoHead InfoHead `json:"info_head"`
}

type InfoHead struct {
	ShortName string `json:"shortName"`
	Currency  string `json:"currency"`
}

type quoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol             string   `json:"symbol"`
			RegularMarketPrice *float64 `json:"regularMarketPrice"`
			ShortName          string   `json:"shortName"`
			Currency           string   `json:"currency"`
		} `json:"result"`
	} `json:"quoteResponse"`
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
	} `json:"chart"`
}
