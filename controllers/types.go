package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kenya-ni-yetu/api-go/config"
	"gorm.io/gorm"
)

type StandardResponse struct {
	Success    bool            `json:"success"`
	Data       interface{}     `json:"data,omitempty"`
	Meta       interface{}     `json:"meta,omitempty"`
	Pagination *PaginationMeta `json:"pagination,omitempty"`
	Message    string          `json:"message,omitempty"`
}

type PaginationMeta struct {
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
}

func newPaginationMeta(page, pageSize int, total int64) *PaginationMeta {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &PaginationMeta{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  total,
		TotalPages:  totalPages,
	}
}

// getPagination reads page/pageSize query params clamped to the configured
// bounds.
func getPagination(c *gin.Context) (page, pageSize int) {
	settings := config.Get()

	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(settings.DefaultPageSize)))
	if pageSize < 1 {
		pageSize = settings.DefaultPageSize
	}
	if pageSize > settings.MaxPageSize {
		pageSize = settings.MaxPageSize
	}
	return page, pageSize
}

// parseDate parses an optional YYYY-MM-DD field.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
