package handler

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/pkg/response"
	"Pulse/internal/pkg/util"
	"Pulse/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SampleHandler struct {
	sampleSvc service.SampleService
}

func NewSampleHandler(sampleSvc service.SampleService) *SampleHandler {
	return &SampleHandler{
		sampleSvc: sampleSvc,
	}
}

// GetSeries 内容的采样序列
func (h *SampleHandler) GetSeries(c *gin.Context) {
	platform := c.Param("platform")
	contentID, err := strconv.ParseInt(c.Param("content_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var query dto.SeriesQueryDTO
	if err = c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&query); err != nil {
		response.Error(c, err)
		return
	}

	series, err := h.sampleSvc.GetSeries(c.Request.Context(), platform, contentID, &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, series)
}

// GetGrowth 内容在窗口内的增长
func (h *SampleHandler) GetGrowth(c *gin.Context) {
	platform := c.Param("platform")
	contentID, err := strconv.ParseInt(c.Param("content_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var query dto.GrowthQueryDTO
	if err = c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&query); err != nil {
		response.Error(c, err)
		return
	}

	growth, err := h.sampleSvc.GetGrowth(c.Request.Context(), platform, contentID, &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, growth)
}
