package refuge

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"SafeRoute-App/internal/config"
)

// Restroom Refuge Restrooms APIが返す施設レコード
// 数値フィールドは欠損（null）がありえるためポインタで受ける
type Restroom struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Street        *string  `json:"street"`
	City          *string  `json:"city"`
	State         *string  `json:"state"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	Unisex        bool     `json:"unisex"`
	Accessible    bool     `json:"accessible"`
	ChangingTable bool     `json:"changing_table"`
	Directions    string   `json:"directions"`
	Comment       string   `json:"comment"`
}

// FetchOptions 施設一覧取得のオプション
type FetchOptions struct {
	PerPage    int   // 1ページあたりの件数（デフォルト100）
	MaxResults int   // 取得する最大件数（デフォルト1000）
	ADA        *bool // 車椅子対応フィルタ（APIへそのまま渡す）
	Unisex     *bool // ジェンダーフリーフィルタ（APIへそのまま渡す）
}

const (
	defaultPerPage    = 100
	defaultMaxResults = 1000

	// defaultPageDelay レートリミット対策としてページ取得の間に挟む待ち時間
	defaultPageDelay = 500 * time.Millisecond
)

// Client Refuge Restrooms APIのクライアント
type Client struct {
	baseURL    string
	httpClient *http.Client

	// PageDelay ページ間の待ち時間（テストで0に設定できるよう公開）
	PageDelay time.Duration
}

// NewClient 新しいRefuge Restroomsクライアントを生成する
func NewClient(cfg *config.Config) *Client {
	baseURL := cfg.RefugeBaseURL
	if baseURL == "" {
		baseURL = config.DefaultRefugeBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		PageDelay:  defaultPageDelay,
	}
}

// FetchByLocation 指定座標周辺の施設一覧をページングしながら取得する
// ページは1から順に取得し、以下のいずれかで打ち切る:
//   - ページの件数がPerPageに満たない（APIがデータの終端を返した）
//   - 累積件数がMaxResultsに達した
//   - ページ番号が ceil(MaxResults/PerPage) を超えた
//
// ネットワーク・HTTP・パースの失敗は空リストに潰さず、そのままエラーとして返す
func (c *Client) FetchByLocation(ctx context.Context, lat, lng float64, opts FetchOptions) ([]Restroom, error) {
	perPage := opts.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	maxPages := (maxResults + perPage - 1) / perPage

	var allData []Restroom
	currentPage := 1

	for len(allData) < maxResults {
		reqURL := c.buildURL(lat, lng, perPage, currentPage, opts)

		log.Printf("Refuge Restrooms APIを取得中 (ページ %d/%d)", currentPage, maxPages)

		pageData, err := c.fetchPage(ctx, reqURL)
		if err != nil {
			return nil, fmt.Errorf("ページ %d の取得失敗: %w", currentPage, err)
		}

		allData = append(allData, pageData...)

		// ページの件数がPerPage未満ならデータの終端
		if len(pageData) < perPage {
			break
		}

		currentPage++
		if len(allData) >= maxResults || currentPage > maxPages {
			break
		}

		// レートリミット対策の待ち時間（コンテキストのキャンセルも監視）
		if c.PageDelay > 0 {
			select {
			case <-time.After(c.PageDelay):
			case <-ctx.Done():
				return nil, fmt.Errorf("ページ取得待機中にキャンセルされました: %w", ctx.Err())
			}
		}
	}

	// MaxResultsを超えた分は切り詰める
	if len(allData) > maxResults {
		allData = allData[:maxResults]
	}

	return allData, nil
}

// fetchPage 1ページ分を取得してパースする
func (c *Client) fetchPage(ctx context.Context, reqURL string) ([]Restroom, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("APIからエラーステータスが返されました: %s", resp.Status)
	}

	var pageData []Restroom
	if err := json.NewDecoder(resp.Body).Decode(&pageData); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	return pageData, nil
}

func (c *Client) buildURL(lat, lng float64, perPage, page int, opts FetchOptions) string {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lng", fmt.Sprintf("%f", lng))
	params.Set("per_page", fmt.Sprintf("%d", perPage))
	params.Set("page", fmt.Sprintf("%d", page))

	if opts.ADA != nil {
		params.Set("ada", boolParam(*opts.ADA))
	}
	if opts.Unisex != nil {
		params.Set("unisex", boolParam(*opts.Unisex))
	}

	return fmt.Sprintf("%s/by_location.json?%s", c.baseURL, params.Encode())
}

func boolParam(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
