// Package router 提供 HTTP 路由配置
package router

import (
	"eduslide-api/internal/interfaces/http/handler"

	"github.com/gin-gonic/gin"
)

// RegisterV1Routes 注册 v1 版本路由
func RegisterV1Routes(
	v1 *gin.RouterGroup,
	presentationHandler *handler.PresentationHandler,
) {
	// 演示文稿生成与下载
	presentations := v1.Group("/presentations")
	{
		presentations.POST("", presentationHandler.Generate)
		presentations.GET("/:pid/download", presentationHandler.Download)
	}
}
