package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"internship-alert/cmd/api/dto"
	"internship-alert/cmd/api/services"
)

// ImportFeedHandler godoc
// @Summary      Import postings from an RSS/Atom feed
// @Description  Fetches the feed and submits each item through the normal extraction path. Items with too little text are skipped; extraction failures are collected without aborting the import.
// @Tags         imports
// @Accept       json
// @Produce      json
// @Param        request  body  dto.ImportFeedRequest  true  "Platform, feed URL and optional item limit"
// @Success      200  {object}  dto.ImportResultDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /import/feed [post]
func ImportFeedHandler(svc *services.InternshipService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ImportFeedRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		result, err := svc.ImportFeed(c.Request.Context(), req.Platform, req.FeedURL, req.Limit)
		if err != nil {
			var vErr *services.ValidationError
			if errors.As(err, &vErr) {
				writeServiceError(c, err)
				return
			}
			c.JSON(http.StatusBadGateway, dto.ErrorResponseDTO{Error: "failed_to_fetch_feed"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// ImportURLHandler godoc
// @Summary      Import one posting from a URL
// @Description  Fetches the page (optionally through headless Chrome), extracts its readable text and submits it for extraction.
// @Tags         imports
// @Accept       json
// @Produce      json
// @Param        request  body  dto.ImportURLRequest  true  "Platform, post URL and render flag"
// @Success      201  {object}  models.Internship
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /import/url [post]
func ImportURLHandler(svc *services.InternshipService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ImportURLRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		rec, err := svc.ImportURL(c.Request.Context(), req.Platform, req.URL, req.Rendered)
		if err != nil {
			var vErr *services.ValidationError
			if !errors.As(err, &vErr) && !errors.Is(err, services.ErrExtractionFailed) {
				c.JSON(http.StatusBadGateway, dto.ErrorResponseDTO{Error: "failed_to_fetch_page"})
				return
			}
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusCreated, rec)
	}
}
