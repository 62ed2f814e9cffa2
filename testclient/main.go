package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/pawfiler/deepfind_api/client"
	"github.com/pawfiler/deepfind_api/dto"
	"github.com/pawfiler/deepfind_api/shared"
)

// Smoke client: logs in, pulls the dashboard, scrolls the whole feed through
// the paginator, then streams one analysis run. Credentials persist between
// invocations the way the web client keeps them in local storage.

type apiClient struct {
	baseURL string
	http    *http.Client
	token   string
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *apiClient) request(method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s %s: %d %s", method, path, resp.StatusCode, env.Message)
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	return sonic.Unmarshal(env.Data, out)
}

// httpFeedSource adapts the feed endpoint to the paginator.
type httpFeedSource struct {
	api *apiClient
}

func (s *httpFeedSource) FetchPage(page, pageSize int) (*dto.CommunityFeedResponse, error) {
	var feed dto.CommunityFeedResponse
	path := fmt.Sprintf("/api/v1/community/feed?page=%d&pageSize=%d", page, pageSize)
	if err := s.api.request(http.MethodGet, path, nil, &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}

func main() {
	var (
		baseURL   = flag.String("base", "http://localhost:8000", "API base URL")
		email     = flag.String("email", "detective@deepfind.io", "Login email")
		password  = flag.String("password", "detective123", "Login password")
		storePath = flag.String("store", ".deepfind_client.json", "Credential store path")
	)
	flag.Parse()

	api := &apiClient{
		baseURL: *baseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}

	store, err := client.OpenCredentialStore(*storePath)
	if err != nil {
		log.Fatalf("Failed to open credential store: %v", err)
	}

	fmt.Println("=== DeepFind API smoke test ===")

	// Reuse a stored token when present, fall back to a fresh login.
	if token, ok := store.Get(client.StoreKeyToken); ok {
		api.token = token
		fmt.Println("🔑 Reusing stored token")
	}

	var profile dto.UserProfileResponse
	if api.token == "" || api.request(http.MethodGet, "/api/v1/user/profile", nil, &profile) != nil {
		var auth dto.AuthResponse
		err := api.request(http.MethodPost, "/api/v1/login", dto.LoginRequest{
			Email:    *email,
			Password: *password,
		}, &auth)
		if err != nil {
			log.Fatalf("❌ Login failed: %v", err)
		}
		api.token = auth.Token
		profile = auth.User

		_ = store.Set(client.StoreKeyToken, auth.Token)
		_ = store.SetJSON(client.StoreKeyProfile, auth.User)
		fmt.Printf("✅ Logged in as %s %s\n", profile.AvatarEmoji, profile.Nickname)
	} else {
		fmt.Printf("✅ Session valid for %s %s\n", profile.AvatarEmoji, profile.Nickname)
	}

	// Dashboard round trip.
	var dashboard dto.DashboardResponse
	if err := api.request(http.MethodGet, "/api/v1/dashboard", nil, &dashboard); err != nil {
		log.Fatalf("❌ Dashboard failed: %v", err)
	}
	fmt.Printf("✅ Dashboard: level %d, %d answered, %d recent posts\n",
		dashboard.User.Level, dashboard.QuizStats.TotalAnswered, len(dashboard.RecentPosts))

	// Scroll the full feed through the paginator.
	paginator := client.NewFeedPaginator(&httpFeedSource{api: api}, shared.DefaultFeedPageSize)
	if err := paginator.Load(); err != nil {
		log.Fatalf("❌ Feed load failed: %v", err)
	}
	for paginator.HasMore() {
		if err := paginator.OnSentinelVisible(); err != nil {
			log.Fatalf("❌ Feed page failed: %v", err)
		}
	}
	fmt.Printf("✅ Feed: accumulated %d/%d posts\n", len(paginator.Posts()), paginator.TotalCount())

	if hits := paginator.Filter("팁"); len(hits) > 0 {
		fmt.Printf("✅ Filter: %d posts match \"팁\"\n", len(hits))
	}

	// Stream one analysis run.
	report, err := streamAnalysis(api)
	if err != nil {
		log.Fatalf("❌ Analysis failed: %v", err)
	}
	fmt.Printf("✅ Analysis %s: verdict=%s confidence=%.1f%%\n",
		report.TaskID, report.Verdict, report.ConfidenceScore)

	fmt.Println("=== Smoke test complete ===")
}

func streamAnalysis(api *apiClient) (*dto.DeepfakeReport, error) {
	raw, err := sonic.Marshal(dto.AnalysisRequest{Source: "https://example.com/suspicious.mp4"})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, api.baseURL+"/api/v1/analysis", bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+api.token)

	resp, err := api.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("analysis: unexpected status %d", resp.StatusCode)
	}

	monitor := client.NewAnalysisMonitor()
	var report *dto.DeepfakeReport

	scanner := bufio.NewScanner(resp.Body)
	event := ""
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			event = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data := strings.TrimPrefix(line, "data: ")
			switch event {
			case "log":
				var entry dto.AnalysisLogEntry
				if err := sonic.UnmarshalString(data, &entry); err != nil {
					return nil, err
				}
				monitor.Observe(entry)
				fmt.Printf("   [%s] %s\n", monitor.Stage(), entry.Message)
			case "report":
				report = &dto.DeepfakeReport{}
				if err := sonic.UnmarshalString(data, report); err != nil {
					return nil, err
				}
			case "error":
				return nil, fmt.Errorf("analysis stream: %s", data)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if report == nil {
		return nil, fmt.Errorf("analysis stream ended without a report")
	}

	return report, nil
}
