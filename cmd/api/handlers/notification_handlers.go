package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"internship-alert/cmd/api/dto"
	"internship-alert/notify"
	"internship-alert/repositories"
)

// ListNotificationsHandler godoc
// @Summary      List recent notifications
// @Description  Returns the most recent user-facing notifications, newest first. Covers extraction results, save toggles and deadline reminders.
// @Tags         notifications
// @Param        limit  query  int  false  "Maximum number of notifications"  default(20)
// @Produce      json
// @Success      200  {array}  notify.Notification
// @Router       /notifications [get]
func ListNotificationsHandler(notifier *notify.MemoryNotifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		c.JSON(http.StatusOK, notifier.Recent(limit))
	}
}

// ListAILogsHandler godoc
// @Summary      List recent extraction calls
// @Description  Returns audit records of recent LLM extraction calls, newest first. Only available when the archive database is configured.
// @Tags         ai-logs
// @Param        limit  query  int  false  "Maximum number of log entries"  default(20)
// @Produce      json
// @Success      200  {array}   models.AILog
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /ai-logs [get]
func ListAILogsHandler(repo *repositories.AILogRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

		logs, err := repo.FindRecent(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_list_ai_logs"})
			return
		}

		c.JSON(http.StatusOK, logs)
	}
}
