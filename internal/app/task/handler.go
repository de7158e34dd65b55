package task

import (
	"errors"
	"net/http"
	"strconv"

	"taskboard/internal/apperr"
	"taskboard/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler interface {
	GetTasks(c *gin.Context)
	CreateTask(c *gin.Context)
	UpdateTask(c *gin.Context)
	DeleteTask(c *gin.Context)
}

type handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) Handler {
	return &handler{service: service, logger: logger}
}

// @Summary List tasks
// @Description List the caller's tasks on a board ordered by position
// @Tags Task
// @Produce json
// @Security BearerAuth
// @Param board_id query int true "Board ID"
// @Success 200 {array} Task
// @Failure 400 {object} apperr.ErrorResponse
// @Router /tasks [get]
func (h *handler) GetTasks(c *gin.Context) {
	account, _ := middleware.CurrentAccount(c)
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		apperr.Respond(c, h.logger, apperr.New(apperr.ErrValidation, "board_id query parameter is required"))
		return
	}
	tasks, err := h.service.List(c.Request.Context(), account.ID, q.BoardID)
	if err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// @Summary Create task
// @Tags Task
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body TaskRequest true "Task"
// @Success 200 {object} Task
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Router /tasks [post]
func (h *handler) CreateTask(c *gin.Context) {
	account, _ := middleware.CurrentAccount(c)
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, h.logger, apperr.New(apperr.ErrValidation, "content and board_id are required"))
		return
	}
	t, err := h.service.Create(c.Request.Context(), account.ID, req.Input())
	if err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// @Summary Update task
// @Description Replace an owned task's content, column, position and board
// @Tags Task
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Param body body TaskRequest true "Task"
// @Success 200 {object} Task
// @Failure 404 {object} apperr.ErrorResponse
// @Router /tasks/{id} [put]
func (h *handler) UpdateTask(c *gin.Context) {
	account, _ := middleware.CurrentAccount(c)
	taskID, ok := h.taskID(c)
	if !ok {
		return
	}
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, h.logger, apperr.New(apperr.ErrValidation, "content and board_id are required"))
		return
	}
	t, err := h.service.Update(c.Request.Context(), account.ID, taskID, req.Input())
	if err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// @Summary Delete task
// @Tags Task
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Success 200 {object} DeleteTaskResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *handler) DeleteTask(c *gin.Context) {
	account, _ := middleware.CurrentAccount(c)
	taskID, ok := h.taskID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), account.ID, taskID); err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, DeleteTaskResponse{Detail: "Task deleted"})
}

func (h *handler) taskID(c *gin.Context) (uint64, bool) {
	// Ids are Postgres bigints; anything wider cannot name a row.
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if errors.Is(err, strconv.ErrRange) {
		apperr.Respond(c, h.logger, ErrTaskNotFound)
		return 0, false
	}
	if err != nil {
		apperr.Respond(c, h.logger, apperr.New(apperr.ErrValidation, "task id must be a positive integer"))
		return 0, false
	}
	return id, true
}
