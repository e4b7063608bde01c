package handler

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/pkg/response"
	"Pulse/internal/pkg/util"
	"Pulse/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

// InputHandler 追踪种子表的后台维护入口，仅管理员可用
type InputHandler struct {
	inputSvc service.InputService
}

func NewInputHandler(inputSvc service.InputService) *InputHandler {
	return &InputHandler{
		inputSvc: inputSvc,
	}
}

func (h *InputHandler) ListInputs(c *gin.Context) {
	inputs, err := h.inputSvc.ListInputs(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, inputs)
}

func (h *InputHandler) CreateInput(c *gin.Context) {
	var createDTO dto.CreateInputDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	input, err := h.inputSvc.CreateInput(c.Request.Context(), &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, input)
}

func (h *InputHandler) UpdateInput(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var updateDTO dto.UpdateInputDTO
	if err = c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}

	input, err := h.inputSvc.UpdateInput(c.Request.Context(), id, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, input)
}

// RefreshInput 手动触发一次即时重采，数据源失败以网关错误返回
func (h *InputHandler) RefreshInput(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = h.inputSvc.RefreshInput(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (h *InputHandler) DeleteInput(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = h.inputSvc.DeleteInput(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
