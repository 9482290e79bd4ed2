// Package pexels 提供 Pexels 图片搜索客户端
package pexels

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"eduslide-api/internal/config"
	"eduslide-api/internal/domain/entity"
)

// 下载的图片字节上限，防止异常大图拖垮装配
const maxImageBytes = 8 << 20

// Client Pexels 搜索客户端。每次查询最多返回一个排名最高的候选。
type Client struct {
	apiKey      string
	baseURL     string
	locale      string
	orientation string
	perPage     int
	httpClient  *http.Client
}

type photoSource struct {
	Original string `json:"original"`
	Large    string `json:"large"`
	Medium   string `json:"medium"`
}

type photo struct {
	Alt             string      `json:"alt"`
	Photographer    string      `json:"photographer"`
	PhotographerURL string      `json:"photographer_url"`
	Src             photoSource `json:"src"`
}

type searchResponse struct {
	Photos []photo `json:"photos"`
}

// NewClient 创建 Pexels 客户端
func NewClient(cfg *config.PexelsConfig) *Client {
	perPage := cfg.PerPage
	if perPage <= 0 {
		perPage = 10
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiKey:      cfg.APIKey,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		locale:      cfg.Locale,
		orientation: cfg.Orientation,
		perPage:     perPage,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Configured API Key 是否已配置
func (c *Client) Configured() bool {
	return strings.TrimSpace(c.apiKey) != ""
}

// Search 按关键词检索一张图片。无结果返回 (nil, nil)。
func (c *Client) Search(ctx context.Context, keyword string) (*entity.ImageReference, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, nil
	}
	if !c.Configured() {
		return nil, fmt.Errorf("pexels api key not configured")
	}
	if c.baseURL == "" {
		return nil, fmt.Errorf("pexels base url is empty")
	}

	q := url.Values{}
	q.Set("query", keyword)
	q.Set("per_page", strconv.Itoa(c.perPage))
	if c.orientation != "" {
		q.Set("orientation", c.orientation)
	}
	if c.locale != "" {
		q.Set("locale", c.locale)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build pexels request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pexels search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pexels search returned status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode pexels response: %w", err)
	}
	if len(body.Photos) == 0 {
		return nil, nil
	}

	p := body.Photos[0]
	u := p.Src.Large
	if u == "" {
		u = p.Src.Medium
	}
	if u == "" {
		u = p.Src.Original
	}
	if u == "" {
		return nil, nil
	}

	return &entity.ImageReference{
		URL:             u,
		Alt:             p.Alt,
		Photographer:    p.Photographer,
		PhotographerURL: p.PhotographerURL,
	}, nil
}

// Download 下载图片字节，用于嵌入文档
func (c *Client) Download(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}
	if len(data) > maxImageBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}
	return data, nil
}
