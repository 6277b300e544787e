package deezer

// searchResponse is the JSON response from the artist search endpoint.
type searchResponse struct {
	Data  []artistResult `json:"data"`
	Total int            `json:"total"`
	Error *apiError      `json:"error,omitempty"`
}

// artistResult is a single artist from the search or artist endpoint.
type artistResult struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Link          string    `json:"link"`
	PictureMedium string    `json:"picture_medium"`
	NbAlbum       int64     `json:"nb_album"`
	NbFan         int64     `json:"nb_fan"`
	Error         *apiError `json:"error,omitempty"`
}

// topResponse is the JSON response from the artist top tracks endpoint.
type topResponse struct {
	Data  []trackResult `json:"data"`
	Error *apiError     `json:"error,omitempty"`
}

type trackResult struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Duration int    `json:"duration"`
	Preview  string `json:"preview"`
}

// apiError is the error object Deezer returns with an HTTP 200 status.
type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func (e *apiError) Error() string {
	return e.Type + ": " + e.Message
}
