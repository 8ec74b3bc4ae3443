package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"internship-alert/cmd/api/dto"
	"internship-alert/cmd/api/services"
)

// SubmitInternshipHandler godoc
// @Summary      Submit a posting for extraction
// @Description  Runs LLM extraction over the pasted post text and, on success, adds the new record to the front of the collection.
// @Tags         internships
// @Accept       json
// @Produce      json
// @Param        request  body  dto.SubmitInternshipRequest  true  "Platform and raw post content"
// @Success      201  {object}  models.Internship
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /internships [post]
func SubmitInternshipHandler(svc *services.InternshipService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SubmitInternshipRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		rec, err := svc.Submit(c.Request.Context(), req.Platform, req.PostContent)
		if err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusCreated, rec)
	}
}

// ListInternshipsHandler godoc
// @Summary      List internships
// @Description  Returns the collection filtered by scope, platform and search text, sorted and paginated.
// @Tags         internships
// @Param        scope      query  string  false  "all or saved"           default(all)
// @Param        platform   query  string  false  "Platform filter (all, YouTube, LinkedIn, Telegram, Instagram)"
// @Param        q          query  string  false  "Case-insensitive match on title or company"
// @Param        sort       query  string  false  "deadline or newest"     default(deadline)
// @Param        page       query  int     false  "Page number (1-based)"
// @Param        page_size  query  int     false  "Page size (max 100)"
// @Produce      json
// @Success      200  {object}  dto.PaginationInternshipDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /internships [get]
func ListInternshipsHandler(svc *services.InternshipService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

		result, err := svc.List(services.ListInput{
			Scope:    c.DefaultQuery("scope", "all"),
			Platform: c.Query("platform"),
			Query:    c.Query("q"),
			Sort:     c.DefaultQuery("sort", "deadline"),
			Page:     page,
			PageSize: pageSize,
		})
		if err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// GetInternshipHandler godoc
// @Summary      Get one internship
// @Tags         internships
// @Param        id  path  string  true  "Internship ID"
// @Produce      json
// @Success      200  {object}  models.Internship
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /internships/{id} [get]
func GetInternshipHandler(svc *services.InternshipService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := svc.Get(c.Param("id"))
		if err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, rec)
	}
}

// ToggleSavedHandler godoc
// @Summary      Toggle the saved flag
// @Description  Flips is_saved on the record. Saving twice restores the original state.
// @Tags         internships
// @Param        id  path  string  true  "Internship ID"
// @Produce      json
// @Success      200  {object}  dto.ToggleSavedResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /internships/{id}/save [post]
func ToggleSavedHandler(svc *services.InternshipService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := svc.ToggleSaved(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeServiceError(c, err)
			return
		}

		message := "Internship Unsaved"
		if rec.IsSaved {
			message = "Internship Saved"
		}
		c.JSON(http.StatusOK, dto.ToggleSavedResponseDTO{
			ID:      rec.ID,
			IsSaved: rec.IsSaved,
			Message: message,
		})
	}
}
