package task

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.GET("/tasks", handler.GetTasks)
	rg.POST("/tasks", handler.CreateTask)
	rg.PUT("/tasks/:id", handler.UpdateTask)
	rg.DELETE("/tasks/:id", handler.DeleteTask)
}
