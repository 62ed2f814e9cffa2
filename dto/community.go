package dto

import "time"

type CommunityPost struct {
	ID             string    `json:"id" example:"p1"`
	AuthorNickname string    `json:"authorNickname" example:"꼬마 탐정"`
	AuthorEmoji    string    `json:"authorEmoji" example:"🐱"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	Likes          int       `json:"likes" example:"42"`
	Comments       int       `json:"comments" example:"7"`
	CreatedAt      time.Time `json:"createdAt"`
	Tags           []string  `json:"tags"`
	UserID         string    `json:"userId,omitempty"`
}

// CommunityFeedResponse is one page of the feed. TotalCount is stable across
// pages of the same catalog generation so clients can decide when to stop.
type CommunityFeedResponse struct {
	Posts      []CommunityPost `json:"posts"`
	TotalCount int             `json:"totalCount" example:"12"`
	Page       int             `json:"page" example:"1"`
}

type CreatePostRequest struct {
	Title string   `json:"title" validate:"required,min=1,max=120" example:"딥페이크 찾는 꿀팁 공유!"`
	Body  string   `json:"body" validate:"required" example:"눈 깜빡임을 잘 보세요..."`
	Tags  []string `json:"tags" validate:"max=10"`
}

func (c CreatePostRequest) Validate() error {
	return GetValidator().Struct(c)
}

type UpdatePostRequest struct {
	Title string   `json:"title" validate:"required,min=1,max=120"`
	Body  string   `json:"body" validate:"required"`
	Tags  []string `json:"tags" validate:"max=10"`
}

func (u UpdatePostRequest) Validate() error {
	return GetValidator().Struct(u)
}
