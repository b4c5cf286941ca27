package domain

type BoardSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// BoardPreview carries up to three of the newest pin images of a board.
type BoardPreview struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Images []string `json:"images"`
}

type BoardView struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Pins        []PinSummary `json:"pins"`
}

type NewBoard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      string `json:"userId"`
}
