package board

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.GET("/boards", handler.GetBoards)
	rg.POST("/boards", handler.CreateBoard)
	rg.GET("/boards/:id", handler.GetBoard)
	rg.DELETE("/boards/:id", handler.DeleteBoard)
}
