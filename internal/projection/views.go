package projection

import (
	"sort"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/AndrivA89/pinboard/internal/domain"
)

const (
	// FeedCommentLimit caps comments per pin in the feed.
	FeedCommentLimit = 10
	// SuggestionLimit caps the suggestion candidates of a pin detail.
	SuggestionLimit = 50
)

func PinFromProps(props map[string]interface{}) domain.Pin {
	return domain.Pin{
		ID:          asString(props["id_pin"]),
		Title:       asString(props["title"]),
		Description: asString(props["description"]),
		ImageURL:    asString(props["url_image"]),
		CreatedAt:   asTime(props["created_at"]),
	}
}

// Creator returns the creator name bound to key or AnonymousCreator.
func Creator(rec *neo4j.Record, key string) string {
	if name := String(rec, key); name != "" {
		return name
	}
	return AnonymousCreator
}

// PinView decodes a row with columns p, creator, creatorId, creatorPic, board,
// likesCount, likedByMe, isFollowing and comments. Comments are returned
// newest first and are not truncated.
func PinView(rec *neo4j.Record) domain.PinView {
	return domain.PinView{
		Pin:         PinFromProps(Props(rec, "p")),
		Creator:     Creator(rec, "creator"),
		CreatorID:   String(rec, "creatorId"),
		CreatorPic:  String(rec, "creatorPic"),
		Board:       String(rec, "board"),
		LikesCount:  Int(rec, "likesCount"),
		LikedByMe:   Bool(rec, "likedByMe"),
		IsFollowing: Bool(rec, "isFollowing"),
		Comments:    SortComments(Comments(Maps(rec, "comments"))),
	}
}

// Comments decodes comment maps, skipping entries produced by an empty
// optional match.
func Comments(raw []map[string]interface{}) []domain.Comment {
	out := make([]domain.Comment, 0, len(raw))
	for _, m := range raw {
		id := asString(m["id"])
		if id == "" {
			continue
		}
		out = append(out, domain.Comment{
			ID:        id,
			Text:      asString(m["text"]),
			Author:    asString(m["author"]),
			AuthorPic: asString(m["authorPic"]),
			Date:      asTime(m["date"]),
		})
	}
	return out
}

// SortComments orders comments newest first in place and returns them.
func SortComments(comments []domain.Comment) []domain.Comment {
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].Date.After(comments[j].Date)
	})
	return comments
}

// LatestComments returns the n most recent comments. The full set is sorted
// before it is cut, so the result never depends on input order.
func LatestComments(comments []domain.Comment, n int) []domain.Comment {
	sorted := SortComments(append([]domain.Comment(nil), comments...))
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func PinSummaries(raw []map[string]interface{}) []domain.PinSummary {
	out := make([]domain.PinSummary, 0, len(raw))
	for _, m := range raw {
		id := asString(m["id_pin"])
		if id == "" {
			continue
		}
		out = append(out, domain.PinSummary{
			ID:       id,
			Title:    asString(m["title"]),
			ImageURL: asString(m["url_image"]),
		})
	}
	return out
}

// Suggestions unions the candidate groups in order, drops duplicates and the
// anchor pin, keeps the first SuggestionLimit candidates and finally removes
// pins without an image.
func Suggestions(anchorID string, groups ...[]domain.PinSummary) []domain.PinSummary {
	seen := map[string]struct{}{anchorID: {}}
	candidates := make([]domain.PinSummary, 0)
	for _, group := range groups {
		for _, pin := range group {
			if len(candidates) == SuggestionLimit {
				break
			}
			if _, dup := seen[pin.ID]; dup {
				continue
			}
			seen[pin.ID] = struct{}{}
			candidates = append(candidates, pin)
		}
	}

	out := make([]domain.PinSummary, 0, len(candidates))
	for _, pin := range candidates {
		if pin.ImageURL != "" {
			out = append(out, pin)
		}
	}
	return out
}
