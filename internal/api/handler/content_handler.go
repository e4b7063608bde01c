package handler

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/pkg/response"
	"Pulse/internal/pkg/util"
	"Pulse/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentSvc service.ContentService
}

func NewContentHandler(contentSvc service.ContentService) *ContentHandler {
	return &ContentHandler{
		contentSvc: contentSvc,
	}
}

// ListContent 条件查询内容列表
func (h *ContentHandler) ListContent(c *gin.Context) {
	var query dto.ContentQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&query); err != nil {
		response.Error(c, err)
		return
	}

	contents, err := h.contentSvc.ListContent(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, contents)
}

// TopContent 按计数排行
func (h *ContentHandler) TopContent(c *gin.Context) {
	var query dto.TopQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&query); err != nil {
		response.Error(c, err)
		return
	}

	contents, err := h.contentSvc.TopContent(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, contents)
}

// RecentContent 最新发布的内容
func (h *ContentHandler) RecentContent(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	contents, err := h.contentSvc.RecentContent(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, contents)
}

// ListClients 去重后的客户名列表，供筛选器填充
func (h *ContentHandler) ListClients(c *gin.Context) {
	clients, err := h.contentSvc.ListClients(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, clients)
}
