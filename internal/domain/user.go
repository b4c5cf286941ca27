package domain

type UserSummary struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profile_picture"`
}

type UserProfile struct {
	ID             string `json:"id_user"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profile_picture"`
	BoardsCount    int64  `json:"boardsCount"`
	PinsCount      int64  `json:"pinsCount"`
	LikesCount     int64  `json:"likesCount"`
}
