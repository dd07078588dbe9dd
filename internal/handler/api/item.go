package api

import (
	"net/http"
	"strconv"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ItemHandler struct {
	itemCommands    commands.ItemCommands
	commentCommands commands.CommentCommands
	itemQueries     queries.ItemQueries
}

func NewItemHandler(itemCommands commands.ItemCommands, commentCommands commands.CommentCommands, itemQueries queries.ItemQueries) *ItemHandler {
	return &ItemHandler{
		itemCommands:    itemCommands,
		commentCommands: commentCommands,
		itemQueries:     itemQueries,
	}
}

// @Summary Create item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param request body reqdto.CreateItemRequest true "Item"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.itemCommands.Create(c.Request.Context(), userID, commands.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		RequestID:   req.RequestID,
	})
	if err != nil {
		abortDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromItemView(view))
}

// @Summary Update item
// @Description Partial update by the item owner; omitted fields keep their value
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param id path string true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Fields to change"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID", nil)
		return
	}

	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.itemCommands.Update(c.Request.Context(), itemID, userID, commands.PatchItemInput{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		abortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary Get item
// @Description Owners additionally see the last and next booking
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.ItemDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [get]
func (h *ItemHandler) GetByID(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID", nil)
		return
	}

	view, err := h.itemQueries.GetByID(c.Request.Context(), itemID, userID)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemDetailView(view))
}

// @Summary List the caller's items
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param from query int false "Result offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.ItemDetailResponse
// @Failure 400 {object} httperr.Response
// @Router /items [get]
func (h *ItemHandler) ListByOwner(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	from, size, err := paginationParams(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Pagination parameters must be integers", nil)
		return
	}

	views, err := h.itemQueries.ListByOwner(c.Request.Context(), userID, from, size)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemDetailViews(views))
}

// @Summary Search items
// @Description Case-insensitive match on name or description, available items only
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param text query string true "Search text"
// @Param from query int false "Result offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Router /items/search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	from, size, err := paginationParams(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Pagination parameters must be integers", nil)
		return
	}

	views, err := h.itemQueries.Search(c.Request.Context(), c.Query("text"), from, size)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Comment on item
// @Description Allowed after a finished approved booking of the item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param id path string true "Item ID"
// @Param request body reqdto.CreateCommentRequest true "Comment"
// @Success 200 {object} resdto.CommentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id}/comment [post]
func (h *ItemHandler) CreateComment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID", nil)
		return
	}

	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commentCommands.Create(c.Request.Context(), itemID, userID, req.Text)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCommentView(view))
}

func paginationParams(c *gin.Context) (int, int, error) {
	from, err := strconv.Atoi(c.DefaultQuery("from", defaultListFrom))
	if err != nil {
		return 0, 0, err
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", defaultListSize))
	if err != nil {
		return 0, 0, err
	}
	return from, size, nil
}
