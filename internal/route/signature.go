package route

import (
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/controller"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Signatures(r *gin.RouterGroup, sc *controller.SignatureController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/signatures")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.POST("/push", sc.PushSignature)
		v1.GET("/runs/:runId", sc.GetRunLogs)
	}
}
