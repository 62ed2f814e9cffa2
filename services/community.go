package services

import (
	"encoding/json"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/pawfiler/deepfind_api/dto"
	"github.com/pawfiler/deepfind_api/model"
	"github.com/pawfiler/deepfind_api/shared"
)

type CommunityService struct {
	context.DefaultService

	jwtSvc     *JWTService
	sqlSvc     *SqliteService
	latencySvc *LatencyService
}

const COMMUNITY_SVC = "community_svc"

func (svc CommunityService) Id() string {
	return COMMUNITY_SVC
}

func (svc *CommunityService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *CommunityService) Start() error {
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	svc.latencySvc = svc.Service(LATENCY_SVC).(*LatencyService)
	return nil
}

// GetFeed returns one page of the feed, newest first. TotalCount is counted
// against the whole catalog so it stays stable across pages.
func (svc *CommunityService) GetFeed(token string, page, pageSize int) (*dto.CommunityFeedResponse, error) {
	if _, err := svc.jwtSvc.WithAuth(token); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = shared.DefaultFeedPageSize
	}

	svc.latencySvc.DelayMs(500, 900)

	posts, total, err := svc.sqlSvc.GetFeedPage(page, pageSize)
	if err != nil {
		return nil, err
	}

	resp := &dto.CommunityFeedResponse{
		Posts:      make([]dto.CommunityPost, 0, len(posts)),
		TotalCount: int(total),
		Page:       page,
	}
	for i := range posts {
		resp.Posts = append(resp.Posts, postResponse(&posts[i]))
	}

	return resp, nil
}

func (svc *CommunityService) CreatePost(token string, req dto.CreatePostRequest) (*dto.CommunityPost, error) {
	if _, err := svc.jwtSvc.WithAuth(token); err != nil {
		return nil, err
	}

	claims, err := svc.jwtSvc.VerifyJWTToken(token)
	if err != nil {
		return nil, shared.ErrUnauthenticated("Invalid JWT token")
	}

	svc.latencySvc.DelayMs(400, 700)

	tags, err := json.Marshal(req.Tags)
	if err != nil {
		return nil, shared.ErrOperationFailed(err.Error())
	}

	id, _ := uuid.NewV7()
	post := &model.Post{
		ID:             id.String(),
		AuthorNickname: claims.Nickname,
		AuthorEmoji:    claims.AvatarEmoji,
		Title:          req.Title,
		Body:           req.Body,
		Tags:           tags,
		UserID:         claims.UserID,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if _, err := svc.sqlSvc.CreatePost(post); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{shared.UserID: claims.UserID, "post_id": post.ID}).Info("Post created")

	resp := postResponse(post)
	return &resp, nil
}

func (svc *CommunityService) UpdatePost(token, postID string, req dto.UpdatePostRequest) (*dto.CommunityPost, error) {
	if _, err := svc.jwtSvc.WithAuth(token); err != nil {
		return nil, err
	}

	claims, err := svc.jwtSvc.VerifyJWTToken(token)
	if err != nil {
		return nil, shared.ErrUnauthenticated("Invalid JWT token")
	}

	svc.latencySvc.DelayMs(400, 700)

	post, err := svc.sqlSvc.GetPost(postID)
	if err != nil {
		return nil, err
	}
	if post.UserID == "" || post.UserID != claims.UserID {
		return nil, shared.ErrOperationFailed("Post does not belong to user")
	}

	tags, err := json.Marshal(req.Tags)
	if err != nil {
		return nil, shared.ErrOperationFailed(err.Error())
	}

	post.Title = req.Title
	post.Body = req.Body
	post.Tags = tags
	post.UpdatedAt = time.Now()

	if err := svc.sqlSvc.UpdatePost(post); err != nil {
		return nil, err
	}

	resp := postResponse(post)
	return &resp, nil
}

func (svc *CommunityService) DeletePost(token, postID string) error {
	if _, err := svc.jwtSvc.WithAuth(token); err != nil {
		return err
	}

	claims, err := svc.jwtSvc.VerifyJWTToken(token)
	if err != nil {
		return shared.ErrUnauthenticated("Invalid JWT token")
	}

	svc.latencySvc.DelayMs(400, 700)

	post, err := svc.sqlSvc.GetPost(postID)
	if err != nil {
		return err
	}
	if post.UserID == "" || post.UserID != claims.UserID {
		return shared.ErrOperationFailed("Post does not belong to user")
	}

	return svc.sqlSvc.DeletePost(postID)
}

func postResponse(post *model.Post) dto.CommunityPost {
	var tags []string
	if len(post.Tags) > 0 {
		if err := json.Unmarshal(post.Tags, &tags); err != nil {
			log.WithError(err).WithField("post_id", post.ID).Warn("Malformed post tags")
		}
	}

	return dto.CommunityPost{
		ID:             post.ID,
		AuthorNickname: post.AuthorNickname,
		AuthorEmoji:    post.AuthorEmoji,
		Title:          post.Title,
		Body:           post.Body,
		Likes:          post.Likes,
		Comments:       post.Comments,
		CreatedAt:      post.CreatedAt,
		Tags:           tags,
		UserID:         post.UserID,
	}
}
