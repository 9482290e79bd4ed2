// Package handler 提供 HTTP 请求处理器
package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"eduslide-api/internal/config"
	"eduslide-api/internal/infrastructure/image/pexels"
	"eduslide-api/internal/infrastructure/storage/local"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	cfg    *config.Config
	store  *local.Store
	pexels *pexels.Client
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(cfg *config.Config, store *local.Store, pexelsClient *pexels.Client) *HealthHandler {
	return &HealthHandler{
		cfg:    cfg,
		store:  store,
		pexels: pexelsClient,
	}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

type readinessCheck struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status string                     `json:"status"`
	Checks map[string]*readinessCheck `json:"checks,omitempty"`
}

// Health 健康检查接口
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: h.cfg.App.Version,
	})
}

// Ready 就绪检查接口。存储与模型配置为必需项，图片提供商可选。
func (h *HealthHandler) Ready(c *gin.Context) {
	checks := map[string]*readinessCheck{
		"storage": {Status: "unknown"},
		"llm":     {Status: "unknown"},
		"images":  {Status: "disabled"},
	}
	ready := true

	// 存储目录（必需）
	if h.store == nil {
		checks["storage"].Status = "missing"
		checks["storage"].Error = "storage not configured"
		ready = false
	} else if info, err := os.Stat(h.store.Dir()); err != nil || !info.IsDir() {
		checks["storage"].Status = "error"
		checks["storage"].Error = "storage directory unavailable"
		ready = false
	} else {
		checks["storage"].Status = "ok"
	}

	// 模型提供商（必需）
	provider, ok := h.cfg.LLM.Providers[h.cfg.LLM.DefaultProvider]
	if !ok || provider.APIKey == "" {
		checks["llm"].Status = "missing"
		checks["llm"].Error = "default llm provider not configured"
		ready = false
	} else {
		checks["llm"].Status = "ok"
	}

	// 图片提供商（可选，不影响就绪态）
	if h.pexels != nil && h.pexels.Configured() {
		checks["images"].Status = "ok"
	}

	resp := readinessResponse{Status: "ok", Checks: checks}
	if !ready {
		resp.Status = "not_ready"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Live 存活检查接口
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
