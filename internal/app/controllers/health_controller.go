package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthController reports process and database health.
type HealthController struct {
	db *pgxpool.Pool
}

// NewHealthController creates a new HealthController
func NewHealthController(db *pgxpool.Pool) *HealthController {
	return &HealthController{db: db}
}

// Health pings the database and reports overall status. Returns 503
// when the database is unreachable.
func (c *HealthController) Health(ctx *gin.Context) {
	if err := c.db.Ping(ctx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "down",
		})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "up",
	})
}
