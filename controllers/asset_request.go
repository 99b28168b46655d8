package controllers

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"assetvault/services"
	"assetvault/utils"
)

// createAssetRequest is the single decoded shape for asset creation,
// whichever transport carried it.
type createAssetRequest struct {
	ContentName     string `json:"contentName" form:"contentName"`
	Description     string `json:"description" form:"description"`
	AspectRatio     string `json:"aspectRatio" form:"aspectRatio"`
	GoogleDriveLink string `json:"googleDriveLink" form:"googleDriveLink"`
	Tags            string `json:"tags" form:"tags"`
	Department      string `json:"department" form:"department"`
	PreviewFile     string `json:"previewFile"`
	PreviewFileName string `json:"previewFileName"`
	PreviewFileSize int64  `json:"previewFileSize"`
}

// decodeCreateAssetRequest normalizes multipart form data (with an optional
// binary preview upload) and JSON bodies into one structured request before
// any validation runs.
func decodeCreateAssetRequest(c *gin.Context, maxPreviewSize int64) (*createAssetRequest, error) {
	contentType := c.GetHeader("Content-Type")

	if strings.Contains(contentType, "multipart/form-data") {
		return decodeMultipartAssetRequest(c, maxPreviewSize)
	}

	var req createAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}
	return &req, nil
}

func decodeMultipartAssetRequest(c *gin.Context, maxPreviewSize int64) (*createAssetRequest, error) {
	req := &createAssetRequest{
		ContentName:     c.PostForm("contentName"),
		Description:     c.PostForm("description"),
		AspectRatio:     c.PostForm("aspectRatio"),
		GoogleDriveLink: c.PostForm("googleDriveLink"),
		Tags:            c.PostForm("tags"),
		Department:      c.PostForm("department"),
	}

	fileHeader, err := c.FormFile("previewFile")
	if err != nil {
		// No preview upload; the remaining fields stand alone.
		return req, nil
	}

	if err := utils.ValidatePreviewFileSize(fileHeader.Size, maxPreviewSize); err != nil {
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open preview file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read preview file: %w", err)
	}

	req.PreviewFile = base64.StdEncoding.EncodeToString(data)
	req.PreviewFileName = fileHeader.Filename
	req.PreviewFileSize = fileHeader.Size

	return req, nil
}

func (r *createAssetRequest) toInput() services.CreateAssetInput {
	return services.CreateAssetInput{
		ContentName:     r.ContentName,
		Description:     r.Description,
		AspectRatio:     r.AspectRatio,
		GoogleDriveLink: r.GoogleDriveLink,
		Tags:            r.Tags,
		Department:      r.Department,
		PreviewFile:     r.PreviewFile,
		PreviewFileName: r.PreviewFileName,
		PreviewFileSize: r.PreviewFileSize,
	}
}
