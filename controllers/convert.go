package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"songbridge/metadata"
	"songbridge/models"
	"songbridge/utils"
)

// Converter turns a media link into a conversion result.
type Converter interface {
	Convert(ctx context.Context, link string) (*models.ConversionResult, error)
}

type ConvertController struct {
	converter Converter
}

func NewConvertController(converter Converter) *ConvertController {
	return &ConvertController{converter: converter}
}

// ConvertRequest is the inbound body. The field name stays "youtubeUrl"
// even for TikTok links; it is the established client contract.
type ConvertRequest struct {
	YouTubeURL string `json:"youtubeUrl"`
}

func (c *ConvertController) Convert(ctx *gin.Context) {
	var req ConvertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, "youtubeUrl is required")
		return
	}
	if strings.TrimSpace(req.YouTubeURL) == "" {
		utils.BadRequest(ctx, "youtubeUrl is required")
		return
	}

	result, err := c.converter.Convert(ctx.Request.Context(), req.YouTubeURL)
	if err != nil {
		if errors.Is(err, metadata.ErrUnsupportedSource) {
			utils.UnprocessableEntity(ctx, "unsupported link: expected a YouTube or TikTok URL")
			return
		}
		log.Printf("Conversion failed for %q: %v", req.YouTubeURL, err)
		utils.InternalError(ctx, "Internal server error")
		return
	}

	utils.Success(ctx, http.StatusOK, result)
}
