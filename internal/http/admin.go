package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playdeck/storefront/internal/tasks"
)

// AdminController triggers background maintenance through the task queue.
type AdminController struct {
	client        *tasks.Client
	retentionDays int
}

func NewAdminController(client *tasks.Client, retentionDays int) *AdminController {
	return &AdminController{
		client:        client,
		retentionDays: retentionDays,
	}
}

// ReconcileAggregates enqueues an aggregate reconciliation run.
// POST /api/admin/reconcile
func (ac *AdminController) ReconcileAggregates(c *gin.Context) {
	op := ac.client.Add(tasks.ReconcileAggregatesTask{})
	if _, err := op.Ctx(c.Request.Context()).Save(); err != nil {
		respondInternalError(c, err, "enqueue reconcile task")
		return
	}

	c.JSON(http.StatusAccepted, SuccessResponse{Message: "aggregate reconciliation queued"})
}

// PruneInactiveUsers enqueues a prune run over long-inactive users.
// POST /api/admin/prune-users
func (ac *AdminController) PruneInactiveUsers(c *gin.Context) {
	op := ac.client.Add(tasks.PruneInactiveUsersTask{RetentionDays: ac.retentionDays})
	if _, err := op.Ctx(c.Request.Context()).Save(); err != nil {
		respondInternalError(c, err, "enqueue prune task")
		return
	}

	c.JSON(http.StatusAccepted, SuccessResponse{Message: "inactive user prune queued"})
}
