package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	taskHTTP "task-management/internal/task/delivery/http"
)

// setupTaskDomain wires the task HTTP handler and registers /api/v1/tasks.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
