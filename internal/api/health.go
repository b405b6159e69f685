package api

import "github.com/gin-gonic/gin"

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /healthz: Basic liveness probe (always returns 200 OK).
//   - /readyz: Readiness probe (depends on database connectivity).
type HealthHandler struct {
	dbPing func() error // Function to check database connectivity
}

// NewHealthHandler constructs a HealthHandler with the provided dbPing
// function, typically db.Ping from *sql.DB.
func NewHealthHandler(dbPing func() error) *HealthHandler {
	return &HealthHandler{dbPing: dbPing}
}

// Register mounts the health and readiness endpoints into the provided Gin router.
//
// Routes:
//   - GET /healthz: Always returns 200 OK.
//   - GET /readyz: Returns 200 OK if dbPing succeeds, 503 if database is not reachable.
func (h *HealthHandler) Register(r *gin.Engine) {
	r.GET("/healthz", h.healthz)
	r.GET("/readyz", h.readyz)
}

// healthz handles GET /healthz requests.
//
// healthz godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string  "OK"
// @Router       /healthz [get]
func (h *HealthHandler) healthz(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}

// readyz handles GET /readyz requests.
//
// readyz godoc
// @Summary      Readiness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string  "OK"
// @Failure      503  {object}  map[string]string  "Service Unavailable"
// @Router       /readyz [get]
func (h *HealthHandler) readyz(c *gin.Context) {
	if h.dbPing != nil && h.dbPing() != nil {
		c.JSON(503, gin.H{"status": "degraded"})
		return
	}
	c.JSON(200, gin.H{"status": "ready"})
}
