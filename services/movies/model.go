package movies

type genreListResponse struct {
	Genres []genre `json:"genres"`
}

type genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type fallbackMovie struct {
	Title  string   `json:"title"`
	Genres []string `json:"genres"`
}

type fallbackResponse struct {
	Results []fallbackMovie `json:"results"`
}

// served when no movie-api key is configured: a documented degraded
// mode, not an error
var fallbackMovies = fallbackResponse{
	Results: []fallbackMovie{
		{Title: "Inception", Genres: []string{"Action", "Sci-Fi"}},
		{Title: "The Shawshank Redemption", Genres: []string{"Drama"}},
	},
}
