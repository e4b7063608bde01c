package api

import "Pulse/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	AuthHandler      *handler.AuthHandler
	ContentHandler   *handler.ContentHandler
	DashboardHandler *handler.DashboardHandler
	SampleHandler    *handler.SampleHandler
	InputHandler     *handler.InputHandler
}
