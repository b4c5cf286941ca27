package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AndrivA89/pinboard/internal/domain"
)

type BoardHandler struct {
	boards BoardService
}

func NewBoardHandler(boards BoardService) *BoardHandler {
	return &BoardHandler{
		boards: boards,
	}
}

// List - GET /api/boards
func (h *BoardHandler) List(c *gin.Context) {
	boards, err := h.boards.Boards(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, boards)
}

// ListByUser - GET /api/:user/boards
func (h *BoardHandler) ListByUser(c *gin.Context) {
	boards, err := h.boards.UserBoards(c.Request.Context(), c.Param("user"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, boards)
}

// Detail - GET /api/boards/:boardId
func (h *BoardHandler) Detail(c *gin.Context) {
	board, err := h.boards.Board(c.Request.Context(), c.Param("boardId"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// Create - POST /api/boards
func (h *BoardHandler) Create(c *gin.Context) {
	var req domain.NewBoard
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.boards.CreateBoard(c.Request.Context(), req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

// AddPin - POST /api/boards/:boardId/add-pin
func (h *BoardHandler) AddPin(c *gin.Context) {
	var req struct {
		PinID string `json:"pinId"`
	}
	if !bindJSON(c, &req) {
		return
	}

	pinID, err := h.boards.AddPinToBoard(c.Request.Context(), c.Param("boardId"), req.PinID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "pin": pinID})
}
