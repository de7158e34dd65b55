package user

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.POST("/register", handler.Register)
	rg.POST("/token", handler.Token)
}
