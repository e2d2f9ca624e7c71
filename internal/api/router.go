package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bokbuin/policyhub/internal/ingest"
	"github.com/bokbuin/policyhub/internal/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Server struct {
	store  *storage.Store
	runner *ingest.Runner
}

func NewServer(store *storage.Store, runner *ingest.Runner) *Server {
	return &Server{store: store, runner: runner}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.health)
	r.GET("/api/cron/update", s.cronUpdate)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/items", s.listItems)
		v1.GET("/items/:id", s.getItem)
		v1.GET("/sitemap", s.sitemap)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// cronUpdate 외부 스케줄러가 호출하는 수집 트리거.
// 인증만 통과하면 소스 일부가 실패했더라도 200 과 집계를 돌려준다
func (s *Server) cronUpdate(c *gin.Context) {
	sum, err := s.runner.Run(c.Query("secret"))
	if err != nil {
		if errors.Is(err, ingest.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (s *Server) listItems(c *gin.Context) {
	kind := c.Query("kind")

	limitStr := c.DefaultQuery("limit", "50")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 50
	}

	items, err := s.store.ListItems(kind, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "internal_error",
			"message": "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": "success",
		"data":    items,
	})
}

func (s *Server) getItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "invalid_id",
			"message": "id must be a positive integer",
		})
		return
	}

	item, err := s.store.GetItem(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"code":    "not_found",
				"message": "item not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "internal_error",
			"message": "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": "success",
		"data":    item,
	})
}

// sitemap 사이트맵/피드 생성용으로 최근 항목의 id 와 생성시각만 내려준다
func (s *Server) sitemap(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "1000")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 1000
	}

	entries, err := s.store.ListSitemapEntries(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "internal_error",
			"message": "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": "success",
		"data":    entries,
	})
}
