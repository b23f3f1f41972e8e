package api

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungtweek/mockai/internal/mock"
	"github.com/yungtweek/mockai/internal/resource"
)

func (s *Server) listFiles(c *gin.Context) {
	var filter func(*resource.File) bool
	if purpose := c.Query("purpose"); purpose != "" {
		filter = func(f *resource.File) bool { return f.Purpose == purpose }
	}

	files, _ := s.registry.Files.List(filter, "", 0)
	if files == nil {
		files = []*resource.File{}
	}
	c.JSON(http.StatusOK, listEnvelope(files, false))
}

func (s *Server) uploadFile(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, resource.InvalidRequest("No file provided", "file"))
		return
	}
	purpose := c.PostForm("purpose")
	if purpose == "" {
		writeError(c, resource.InvalidRequest("Purpose is required", "purpose"))
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, resource.InvalidRequest("No file provided", "file"))
		return
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		writeError(c, resource.InvalidRequest("No file provided", "file"))
		return
	}

	file := &resource.File{
		ID:        mock.NewID("file-"),
		Object:    "file",
		Bytes:     int64(len(content)),
		CreatedAt: time.Now().Unix(),
		Filename:  fh.Filename,
		Purpose:   purpose,
		Status:    "processed",
		Content:   content,
	}
	s.registry.Files.Insert(file)

	c.JSON(http.StatusOK, file)
}

func (s *Server) getFile(c *gin.Context) {
	file, ok := s.registry.Files.Get(c.Param("file_id"))
	if !ok {
		writeError(c, resource.NotFound("No such file"))
		return
	}
	c.JSON(http.StatusOK, file)
}

// deleteFile removes the file unconditionally; files are the only resource
// with a delete operation.
func (s *Server) deleteFile(c *gin.Context) {
	id := c.Param("file_id")
	if !s.registry.Files.Delete(id) {
		writeError(c, resource.NotFound("No such file"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":      id,
		"object":  "file",
		"deleted": true,
	})
}

func (s *Server) getFileContent(c *gin.Context) {
	file, ok := s.registry.Files.Get(c.Param("file_id"))
	if !ok {
		writeError(c, resource.NotFound("No such file"))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, "application/octet-stream", file.Content)
}
