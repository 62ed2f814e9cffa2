package client

import (
	"sort"
	"strings"
	"sync"

	"github.com/pawfiler/deepfind_api/dto"
	"github.com/pawfiler/deepfind_api/shared"
)

// FeedSource fetches one page of the community feed. The HTTP client and the
// in-process services both satisfy it.
type FeedSource interface {
	FetchPage(page, pageSize int) (*dto.CommunityFeedResponse, error)
}

// FeedPaginator accumulates feed pages for an infinite-scroll surface. Pages
// merge by post id (a refetched post replaces the stale copy), the merged set
// stays sorted newest first, and a failed fetch leaves the accumulated state
// untouched.
type FeedPaginator struct {
	source   FeedSource
	pageSize int

	mu         sync.Mutex
	posts      []dto.CommunityPost
	totalCount int
	nextPage   int
	inflight   bool
	lastErr    error
}

func NewFeedPaginator(source FeedSource, pageSize int) *FeedPaginator {
	if pageSize <= 0 {
		pageSize = shared.DefaultFeedPageSize
	}
	return &FeedPaginator{
		source:   source,
		pageSize: pageSize,
		nextPage: 1,
	}
}

// Load fetches the first page and replaces everything accumulated so far.
func (p *FeedPaginator) Load() error {
	resp, err := p.source.FetchPage(1, p.pageSize)

	p.mu.Lock()
	defer p.mu.Unlock()

	if err != nil {
		p.lastErr = err
		return err
	}

	p.posts = mergePosts(nil, resp.Posts)
	p.totalCount = resp.TotalCount
	p.nextPage = 2
	p.lastErr = nil
	return nil
}

// OnSentinelVisible is the scroll trigger. It fetches the next page unless a
// fetch is already in flight or every post is accumulated; redundant calls
// are cheap no-ops.
func (p *FeedPaginator) OnSentinelVisible() error {
	p.mu.Lock()
	if p.inflight || len(p.posts) >= p.totalCount {
		p.mu.Unlock()
		return nil
	}
	p.inflight = true
	page := p.nextPage
	p.mu.Unlock()

	resp, err := p.source.FetchPage(page, p.pageSize)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.inflight = false

	if err != nil {
		p.lastErr = err
		return err
	}

	p.posts = mergePosts(p.posts, resp.Posts)
	p.totalCount = resp.TotalCount
	p.nextPage = page + 1
	p.lastErr = nil
	return nil
}

// LastError returns the most recent fetch failure, if it has not been
// dismissed. The UI shows it as a toast next to the intact feed.
func (p *FeedPaginator) LastError() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

// DismissError clears the recorded fetch failure.
func (p *FeedPaginator) DismissError() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastErr = nil
}

// HasMore reports whether another page is worth fetching.
func (p *FeedPaginator) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.posts) < p.totalCount
}

// Posts returns a copy of the accumulated feed, newest first.
func (p *FeedPaginator) Posts() []dto.CommunityPost {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]dto.CommunityPost, len(p.posts))
	copy(out, p.posts)
	return out
}

// TotalCount returns the server-reported catalog size from the latest page.
func (p *FeedPaginator) TotalCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalCount
}

// Filter projects the accumulated posts through a case-insensitive substring
// match over title, body and tags. It never mutates paginator state; an empty
// query returns everything.
func (p *FeedPaginator) Filter(query string) []dto.CommunityPost {
	posts := p.Posts()

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return posts
	}

	out := make([]dto.CommunityPost, 0, len(posts))
	for _, post := range posts {
		if postMatches(post, q) {
			out = append(out, post)
		}
	}
	return out
}

func postMatches(post dto.CommunityPost, q string) bool {
	if strings.Contains(strings.ToLower(post.Title), q) ||
		strings.Contains(strings.ToLower(post.Body), q) {
		return true
	}
	for _, tag := range post.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// mergePosts folds incoming into existing, last write wins per id, and
// re-sorts by createdAt descending with id as the tiebreak.
func mergePosts(existing, incoming []dto.CommunityPost) []dto.CommunityPost {
	byID := make(map[string]int, len(existing))
	merged := make([]dto.CommunityPost, len(existing))
	copy(merged, existing)

	for i, post := range merged {
		byID[post.ID] = i
	}

	for _, post := range incoming {
		if i, ok := byID[post.ID]; ok {
			merged[i] = post
			continue
		}
		byID[post.ID] = len(merged)
		merged = append(merged, post)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].CreatedAt.Equal(merged[j].CreatedAt) {
			return merged[i].ID < merged[j].ID
		}
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	return merged
}
