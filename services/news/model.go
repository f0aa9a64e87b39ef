package news

type Item struct {
	Title string `json:"title"`
	Link  string `json:"link"`
	// omitted when the feed entry carries no publication date
	Published string `json:"published,omitempty"`
}

type Response struct {
	Query string `json:"query"`
	Items []Item `json:"items"`
}
