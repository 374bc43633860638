package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/charvi/pkg/database"
	"github.com/shashiranjanraj/charvi/pkg/response"
)

// HealthController answers liveness probes.
type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Check reports process liveness and database reachability.
func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	dbStatus := "up"
	if database.DB == nil {
		dbStatus = "down"
	} else if sqlDB, err := database.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
	}

	response.Success(w, map[string]string{
		"status":   "ok",
		"database": dbStatus,
	})
}
