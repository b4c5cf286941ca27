package domain

import (
	"time"
)

type Pin struct {
	ID          string    `json:"id_pin"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"url_image"`
	CreatedAt   time.Time `json:"created_at"`
}

// PinSummary is the compact pin shape used in boards and suggestions.
type PinSummary struct {
	ID       string `json:"id_pin"`
	Title    string `json:"title"`
	ImageURL string `json:"url_image"`
}

type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	AuthorPic string    `json:"authorPic,omitempty"`
	Date      time.Time `json:"date"`
}

// PinView is a pin joined with its creator, board, likes and comments as seen
// by a particular viewer.
type PinView struct {
	Pin
	Creator     string    `json:"creator"`
	CreatorID   string    `json:"creatorId,omitempty"`
	CreatorPic  string    `json:"creatorPic,omitempty"`
	Board       string    `json:"board,omitempty"`
	LikesCount  int64     `json:"likesCount"`
	LikedByMe   bool      `json:"likedByMe"`
	IsFollowing bool      `json:"isFollowing"`
	Comments    []Comment `json:"comments"`
}

type PinDetail struct {
	MainPin              PinView      `json:"mainPin"`
	SuggestedSimilarPins []PinSummary `json:"suggestedSimilarPins"`
}

type SavedPin struct {
	Pin
	Creator string `json:"creator"`
	Board   string `json:"board"`
}

type LikedPin struct {
	Pin
	Creator string    `json:"creator"`
	LikedAt time.Time `json:"likedAt"`
}

type NewPin struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"url_image"`
	BoardID     string `json:"boardId"`
	UserID      string `json:"userId"`
}

type NewComment struct {
	UserID string `json:"userId"`
	Text   string `json:"text"`
}
