package pagination

import (
	"strconv"

	"chargili/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultSize = 10
	MaxSize     = 100
)

// ParseFromRequest reads the zero-based page, size and sort query parameters.
func ParseFromRequest(c *fiber.Ctx) models.PageRequest {
	page, err := strconv.Atoi(c.Query("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}
	size, err := strconv.Atoi(c.Query("size", strconv.Itoa(DefaultSize)))
	if err != nil || size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	return models.PageRequest{Page: page, Size: size, Sort: c.Query("sort")}
}

// Meta describes the page shown by a screen.
type Meta struct {
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

func TotalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	pages := total / int64(size)
	if total%int64(size) > 0 {
		pages++
	}
	return int(pages)
}

func NewMeta(p models.PageRequest, total int64) *Meta {
	return &Meta{Page: p.Page, Size: p.Size, TotalElements: total, TotalPages: TotalPages(total, p.Size)}
}

// FromPage copies the envelope returned by the API.
func FromPage[T any](p *models.Page[T]) *Meta {
	if p == nil {
		return nil
	}
	return &Meta{Page: p.Number, Size: p.Size, TotalElements: p.TotalElements, TotalPages: p.TotalPages}
}
