package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"eduslide-api/internal/application/presentation"
	"eduslide-api/internal/interfaces/http/dto"
	"eduslide-api/pkg/errors"
	"eduslide-api/pkg/logger"
)

// pptxContentType OOXML 演示文稿 MIME 类型
const pptxContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// PresentationHandler 演示文稿处理器
type PresentationHandler struct {
	svc *presentation.Service
}

// NewPresentationHandler 创建演示文稿处理器
func NewPresentationHandler(svc *presentation.Service) *PresentationHandler {
	return &PresentationHandler{svc: svc}
}

// Generate 同步生成演示文稿
// POST /v1/presentations
func (h *PresentationHandler) Generate(c *gin.Context) {
	var req dto.GeneratePresentationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	start := time.Now()
	res, err := h.svc.Generate(c.Request.Context(), req.ToConfiguration())
	if err != nil {
		h.renderError(c, err)
		return
	}

	dto.Created(c, dto.NewPresentationResponse(res, time.Since(start)))
}

// Download 下载生成的 PPTX 文件
// GET /v1/presentations/:pid/download
func (h *PresentationHandler) Download(c *gin.Context) {
	id := c.Param("pid")
	data, err := h.svc.Retrieve(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	filename := fmt.Sprintf("eduslide_ai_%s.pptx", id)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, pptxContentType, data)
}

// renderError 将应用错误映射为 HTTP 响应
func (h *PresentationHandler) renderError(c *gin.Context, err error) {
	appErr := errors.AsAppError(err)
	if appErr.HTTPStatus >= 500 {
		logger.Error(c.Request.Context(), "presentation request failed", err)
	}
	dto.ErrorWithDetail(c, appErr.HTTPStatus, appErr.Message, &dto.ErrorDetail{
		ErrorCode: string(appErr.Code),
		Details:   appErr.Detail,
	})
}
