package devserver

import (
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/booshananamudara/zoura-mobile/internal/client/models"
	"github.com/booshananamudara/zoura-mobile/internal/filex"
)

const defaultFeedLimit = 20

func (s *Server) handleFeed(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultFeedLimit)))
	if err != nil || limit <= 0 {
		limit = defaultFeedLimit
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	c.JSON(http.StatusOK, s.store.Feed(limit, offset))
}

// handleCreatePost accepts a multipart form with a "content" field and an
// optional "image" file. Posting is restricted to paid subscription tiers.
func (s *Server) handleCreatePost(c *gin.Context) {
	account, ok := s.store.AccountByID(userID(c))
	if !ok {
		fail(c, http.StatusNotFound, "account not found")
		return
	}
	if account.Tier == "" || account.Tier == models.TierFree {
		fail(c, http.StatusForbidden, "posting requires a paid subscription")
		return
	}

	content := c.PostForm("content")
	if content == "" {
		fail(c, http.StatusBadRequest, "content is required")
		return
	}

	imageURL := ""
	if file, err := c.FormFile("image"); err == nil {
		dir, err := filex.EnsureSubDir(s.cfg.UploadDir)
		if err != nil {
			fail(c, http.StatusInternalServerError, "could not store image")
			return
		}
		name := uuid.NewString() + sanitizeExt(file.Filename)
		if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
			fail(c, http.StatusInternalServerError, "could not store image")
			return
		}
		imageURL = "/uploads/" + name
	}

	post := s.store.AddPost(account, content, imageURL)
	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// sanitizeExt keeps only a plain extension from the uploaded filename so
// path fragments in the client-supplied name cannot escape the upload dir.
func sanitizeExt(filename string) string {
	ext := filepath.Ext(filepath.Base(filename))
	if ext == "" || len(ext) > 8 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
