package model

import (
	"errors"
	"time"
)

type CommunityPost struct {
	ID         int       `json:"id" db:"id"`
	UserID     int       `json:"userId" db:"user_id"`
	Title      string    `json:"title" db:"title"`
	Content    string    `json:"content" db:"content"`
	Location   string    `json:"location,omitempty" db:"location"`
	LikeCount  int       `json:"likeCount" db:"like_count"`
	ReplyCount int       `json:"replyCount" db:"reply_count"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// InsertCommunityPost omits the counters: posts always start at zero likes
// and replies no matter what the client sends.
type InsertCommunityPost struct {
	UserID   int    `json:"userId"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Location string `json:"location"`
}

func (in InsertCommunityPost) Validate() error {
	if in.UserID <= 0 {
		return errors.New("userId required")
	}
	if in.Title == "" || in.Content == "" {
		return errors.New("title and content required")
	}
	return nil
}
