package seeders

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/pawfiler/deepfind_api/model"
)

// PostSeeder handles seeding the community feed catalog
type PostSeeder struct {
	db *gorm.DB
}

func NewPostSeeder(db *gorm.DB) *PostSeeder {
	return &PostSeeder{db: db}
}

// SeedPosts seeds the database with the community post catalog
func (s *PostSeeder) SeedPosts() error {
	posts := s.getPosts()

	for _, post := range posts {
		var existing model.Post
		if err := s.db.Where("id = ?", post.ID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := s.db.Create(&post).Error; err != nil {
					log.Printf("Error creating post %s: %v", post.ID, err)
					return err
				}
				log.Printf("Created post: %s", post.ID)
			} else {
				log.Printf("Error checking post %s: %v", post.ID, err)
				return err
			}
		} else {
			log.Printf("Post %s already exists, skipping", post.ID)
		}
	}

	log.Println("Post seeding completed successfully")
	return nil
}

func ts(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

func (s *PostSeeder) getPosts() []model.Post {
	return []model.Post{
		{
			ID: "p1", AuthorNickname: "꼬마 탐정", AuthorEmoji: "🐱",
			Title: "딥페이크 찾는 꿀팁 공유!", Body: "눈 깜빡임을 잘 보세요...",
			Likes: 42, Comments: 7, Tags: jsonArray([]string{"팁", "초보"}),
			CreatedAt: ts("2026-02-20T10:00:00Z"), UpdatedAt: ts("2026-02-20T10:00:00Z"),
		},
		{
			ID: "p2", AuthorNickname: "수리 부엉이", AuthorEmoji: "🦉",
			Title: "레벨 10 달성 후기", Body: "드디어 마스터 탐정이 되었어요!",
			Likes: 128, Comments: 23, Tags: jsonArray([]string{"후기", "레벨업"}),
			CreatedAt: ts("2026-02-22T15:30:00Z"), UpdatedAt: ts("2026-02-22T15:30:00Z"),
		},
		{
			ID: "p3", AuthorNickname: "용감한 곰", AuthorEmoji: "🐻",
			Title: "이 영상 진짜인가요?", Body: "친구가 보내준 영상인데 좀 이상해요...",
			Likes: 15, Comments: 5, Tags: jsonArray([]string{"질문"}),
			CreatedAt: ts("2026-02-24T09:00:00Z"), UpdatedAt: ts("2026-02-24T09:00:00Z"),
		},
		{
			ID: "p4", AuthorNickname: "반짝 수달", AuthorEmoji: "🦦",
			Title: "입 모양 분석법 정리", Body: "발음과 입 모양이 어긋나면 의심해보세요.",
			Likes: 87, Comments: 12, Tags: jsonArray([]string{"팁", "분석"}),
			CreatedAt: ts("2026-02-23T18:45:00Z"), UpdatedAt: ts("2026-02-23T18:45:00Z"),
		},
		{
			ID: "p5", AuthorNickname: "똑똑 다람쥐", AuthorEmoji: "🐿️",
			Title: "오늘의 퀴즈 너무 어려워요", Body: "중급 문제에서 계속 틀리고 있어요. 다들 어떠세요?",
			Likes: 23, Comments: 14, Tags: jsonArray([]string{"퀴즈", "질문"}),
			CreatedAt: ts("2026-02-21T11:20:00Z"), UpdatedAt: ts("2026-02-21T11:20:00Z"),
		},
		{
			ID: "p6", AuthorNickname: "차분한 판다", AuthorEmoji: "🐼",
			Title: "조명 불일치 사례 모음", Body: "얼굴과 배경의 그림자 방향이 다른 사례들을 모아봤어요.",
			Likes: 64, Comments: 9, Tags: jsonArray([]string{"분석", "사례"}),
			CreatedAt: ts("2026-02-22T08:10:00Z"), UpdatedAt: ts("2026-02-22T08:10:00Z"),
		},
		{
			ID: "p7", AuthorNickname: "날쌘 치타", AuthorEmoji: "🐆",
			Title: "연속 정답 12개 달성!", Body: "최고 기록 경신했어요. 비결은 귀 모양 관찰!",
			Likes: 95, Comments: 18, Tags: jsonArray([]string{"후기", "기록"}),
			CreatedAt: ts("2026-02-24T20:05:00Z"), UpdatedAt: ts("2026-02-24T20:05:00Z"),
		},
		{
			ID: "p8", AuthorNickname: "호기심 토끼", AuthorEmoji: "🐰",
			Title: "GAN 아티팩트가 뭔가요?", Body: "분석 로그에 나오는 용어인데 설명해주실 분 있나요?",
			Likes: 31, Comments: 11, Tags: jsonArray([]string{"질문", "용어"}),
			CreatedAt: ts("2026-02-21T16:40:00Z"), UpdatedAt: ts("2026-02-21T16:40:00Z"),
		},
		{
			ID: "p9", AuthorNickname: "의젓한 사슴", AuthorEmoji: "🦌",
			Title: "가족에게 알려준 검증 습관", Body: "출처 확인부터 시작하는 3단계 습관을 공유합니다.",
			Likes: 152, Comments: 27, Tags: jsonArray([]string{"팁", "안전"}),
			CreatedAt: ts("2026-02-25T09:30:00Z"), UpdatedAt: ts("2026-02-25T09:30:00Z"),
		},
		{
			ID: "p10", AuthorNickname: "졸린 코알라", AuthorEmoji: "🐨",
			Title: "프리미엄 써보신 분?", Body: "우선 분석 큐가 실제로 빠른지 궁금해요.",
			Likes: 19, Comments: 8, Tags: jsonArray([]string{"질문", "프리미엄"}),
			CreatedAt: ts("2026-02-23T13:15:00Z"), UpdatedAt: ts("2026-02-23T13:15:00Z"),
		},
		{
			ID: "p11", AuthorNickname: "명랑한 펭귄", AuthorEmoji: "🐧",
			Title: "뉴스 영상 분석 결과 공유", Body: "94% 확률로 가짜 판정이 나왔어요. 역시 이상하다 했어!",
			Likes: 73, Comments: 16, Tags: jsonArray([]string{"사례", "분석"}),
			CreatedAt: ts("2026-02-25T14:50:00Z"), UpdatedAt: ts("2026-02-25T14:50:00Z"),
		},
		{
			ID: "p12", AuthorNickname: "듬직한 코끼리", AuthorEmoji: "🐘",
			Title: "초보 탐정을 위한 용어 사전", Body: "딥페이크, 프레임 샘플링, 합성 경계까지 한 번에 정리!",
			Likes: 110, Comments: 21, Tags: jsonArray([]string{"팁", "초보", "용어"}),
			CreatedAt: ts("2026-02-20T19:25:00Z"), UpdatedAt: ts("2026-02-20T19:25:00Z"),
		},
	}
}
