package board

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
	GetBoards(c *gin.Context)
	GetBoard(c *gin.Context)
	CreateBoard(c *gin.Context)
	DeleteBoard(c *gin.Context)
}

type handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) Handler {
	return &handler{service: service, logger: logger}
}

// @Summary List boards
// @Description List the caller's boards ordered by id
// @Tags Board
// @Produce json
// @Security BearerAuth
// @Success 200 {array} Board
// @Failure 401 {object} apperr.ErrorResponse
// @Router /boards [get]
func (h *handler) GetBoards(c *gin.Context) {
	account, _ := middleware.CurrentAccount(c)
	boards, err := h.service.List(c.Request.Context(), account.ID)
	if err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, boards)
}

// @Summary Get board
// @Tags Board
// @Produce json
// @Security BearerAuth
// @Param id path int true "Board ID"
// @Success 200 {object} Board
// @Failure 404 {object} apperr.ErrorResponse
// @Router /boards/{id} [get]
func (h *handler) GetBoard(c *gin.Context) {
	account, _ := middleware.CurrentAccount(c)
	boardID, ok := h.boardID(c)
	if !ok {
		return
	}
	board, err := h.service.Get(c.Request.Context(), account.ID, boardID)
	if err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// @Summary Create board
// @Tags Board
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateBoardRequest true "Board"
// @Success 200 {object} Board
// @Failure 400 {object} apperr.ErrorResponse
// @Router /boards [post]
func (h *handler) CreateBoard(c *gin.Context) {
	account, _ := middleware.CurrentAccount(c)
	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, h.logger, apperr.New(apperr.ErrValidation, "title is required"))
		return
	}
	board, err := h.service.Create(c.Request.Context(), account.ID, *req.Title)
	if err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// @Summary Delete board
// @Description Delete an owned board together with its tasks
// @Tags Board
// @Produce json
// @Security BearerAuth
// @Param id path int true "Board ID"
// @Success 200 {object} DeleteBoardResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Router /boards/{id} [delete]
func (h *handler) DeleteBoard(c *gin.Context) {
	account, _ := middleware.CurrentAccount(c)
	boardID, ok := h.boardID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), account.ID, boardID); err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, DeleteBoardResponse{Detail: "Board deleted"})
}

func (h *handler) boardID(c *gin.Context) (uint64, bool) {
	// Ids are Postgres bigints; anything wider cannot name a row.
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if errors.Is(err, strconv.ErrRange) {
		apperr.Respond(c, h.logger, ErrBoardNotFound)
		return 0, false
	}
	if err != nil {
		apperr.Respond(c, h.logger, apperr.New(apperr.ErrValidation, "board id must be a positive integer"))
		return 0, false
	}
	return id, true
}
