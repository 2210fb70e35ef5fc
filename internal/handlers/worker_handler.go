package handlers

import (
	"errors"
	"net/http"

	"ndiscare-backend/internal/config"
	"ndiscare-backend/internal/models"
	"ndiscare-backend/internal/search"
	"ndiscare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetWorker returns one worker profile in the same projected shape the
// search results use.
func GetWorker(c *gin.Context) {
	id := utils.StringToUint64(c.Param("id"))
	if id == 0 {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid worker id", nil)
		return
	}

	var worker models.Worker
	err := config.DB.Preload("Services").First(&worker, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.APIResponse(c, http.StatusNotFound, false, "Worker not found", nil)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, err, "Failed to load worker")
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Worker profile", search.Summarize(worker))
}

// GetSupportTypes lists the support-type codes the search filter accepts.
// Public so the frontend can build its dropdown without auth.
func GetSupportTypes(c *gin.Context) {
	types := make([]gin.H, 0, len(search.SupportTypes))
	for code, display := range search.SupportTypes {
		types = append(types, gin.H{"code": code, "name": display})
	}
	utils.APIResponse(c, http.StatusOK, true, "Support types", types)
}
