package controllers

import (
	"bytes"
	"encoding/base64"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func jsonContext(t *testing.T, body string) *gin.Context {
	t.Helper()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/digital-assets", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func multipartContext(t *testing.T, fields map[string]string, fileName string, fileContent []byte) *gin.Context {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if fileName != "" {
		part, err := writer.CreateFormFile("previewFile", fileName)
		require.NoError(t, err)
		_, err = part.Write(fileContent)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/digital-assets", &buf)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())
	return c
}

func TestDecodeCreateAssetRequestJSON(t *testing.T) {
	c := jsonContext(t, `{
		"contentName": "Summer Banner",
		"description": "Homepage hero",
		"aspectRatio": "RATIO_4_3",
		"googleDriveLink": "https://drive.google.com/file/d/abc",
		"tags": "summer,banner",
		"department": "Marketing"
	}`)

	req, err := decodeCreateAssetRequest(c, 10485760)
	require.NoError(t, err)

	assert.Equal(t, "Summer Banner", req.ContentName)
	assert.Equal(t, "Homepage hero", req.Description)
	assert.Equal(t, "RATIO_4_3", req.AspectRatio)
	assert.Equal(t, "Marketing", req.Department)
	assert.Empty(t, req.PreviewFile)
}

func TestDecodeCreateAssetRequestInvalidJSON(t *testing.T) {
	c := jsonContext(t, `{"contentName": `)

	req, err := decodeCreateAssetRequest(c, 10485760)
	assert.Error(t, err)
	assert.Nil(t, req)
}

func TestDecodeCreateAssetRequestMultipart(t *testing.T) {
	content := []byte("fake png bytes")
	c := multipartContext(t, map[string]string{
		"contentName": "Story Teaser",
		"aspectRatio": "RATIO_9_16",
		"tags":        "story",
	}, "teaser.png", content)

	req, err := decodeCreateAssetRequest(c, 10485760)
	require.NoError(t, err)

	assert.Equal(t, "Story Teaser", req.ContentName)
	assert.Equal(t, "RATIO_9_16", req.AspectRatio)
	assert.Equal(t, "teaser.png", req.PreviewFileName)
	assert.Equal(t, int64(len(content)), req.PreviewFileSize)
	assert.Equal(t, base64.StdEncoding.EncodeToString(content), req.PreviewFile)
}

func TestDecodeCreateAssetRequestMultipartNoFile(t *testing.T) {
	c := multipartContext(t, map[string]string{
		"contentName": "No Preview",
		"aspectRatio": "RATIO_4_3",
	}, "", nil)

	req, err := decodeCreateAssetRequest(c, 10485760)
	require.NoError(t, err)

	assert.Equal(t, "No Preview", req.ContentName)
	assert.Empty(t, req.PreviewFile)
	assert.Empty(t, req.PreviewFileName)
	assert.Zero(t, req.PreviewFileSize)
}

func TestDecodeCreateAssetRequestPreviewTooLarge(t *testing.T) {
	content := []byte("0123456789")
	c := multipartContext(t, map[string]string{
		"contentName": "Oversized",
		"aspectRatio": "RATIO_4_3",
	}, "big.png", content)

	req, err := decodeCreateAssetRequest(c, 5)
	assert.Error(t, err)
	assert.Nil(t, req)
	assert.Contains(t, err.Error(), "exceeds maximum allowed size")
}

func TestCreateAssetRequestToInput(t *testing.T) {
	req := &createAssetRequest{
		ContentName:     "Banner",
		Description:     "desc",
		AspectRatio:     "RATIO_4_3",
		GoogleDriveLink: "https://drive.google.com/file/d/xyz",
		Tags:            "a,b",
		Department:      "Design",
		PreviewFile:     "aGVsbG8=",
		PreviewFileName: "p.png",
		PreviewFileSize: 5,
	}

	input := req.toInput()
	assert.Equal(t, req.ContentName, input.ContentName)
	assert.Equal(t, req.Department, input.Department)
	assert.Equal(t, req.PreviewFile, input.PreviewFile)
	assert.Equal(t, req.PreviewFileSize, input.PreviewFileSize)
}
