package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungtweek/mockai/internal/resource"
)

func (s *Server) createUpload(c *gin.Context) {
	var params resource.UploadParams
	if err := c.ShouldBindJSON(&params); err != nil {
		writeError(c, resource.InvalidRequest("Missing required fields", "filename"))
		return
	}

	upload, apiErr := s.registry.CreateUpload(params)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, upload)
}

func (s *Server) addUploadPart(c *gin.Context) {
	var data []byte
	if fh, err := c.FormFile("data"); err == nil {
		f, err := fh.Open()
		if err != nil {
			writeError(c, resource.InvalidRequest("No data provided", "data"))
			return
		}
		defer f.Close()
		if data, err = io.ReadAll(f); err != nil {
			writeError(c, resource.InvalidRequest("No data provided", "data"))
			return
		}
	}

	part, apiErr := s.registry.AddUploadPart(c.Param("upload_id"), data)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, part)
}

type completeUploadRequest struct {
	PartIDs []string `json:"part_ids"`
	MD5     string   `json:"md5"`
}

func (s *Server) completeUpload(c *gin.Context) {
	var req completeUploadRequest
	_ = c.ShouldBindJSON(&req)

	upload, apiErr := s.registry.CompleteUpload(c.Param("upload_id"), req.PartIDs)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, upload)
}

func (s *Server) cancelUpload(c *gin.Context) {
	upload, apiErr := s.registry.CancelUpload(c.Param("upload_id"))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, upload)
}
