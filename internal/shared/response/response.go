package response

import (
	"github.com/gin-gonic/gin"
)

// PaginationMeta describes one page of a list endpoint.
type PaginationMeta struct {
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	Page       int   `json:"page,omitempty"`
	PageSize   int   `json:"pageSize,omitempty"`
	HasNext    bool  `json:"hasNext"`
}

func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	meta := PaginationMeta{Total: total, Page: page, PageSize: limit}
	if limit > 0 {
		meta.TotalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	meta.HasNext = page < meta.TotalPages
	return meta
}

// ErrorBody is the "error" member of a failed envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Envelope wraps every JSON body the API returns.
type Envelope struct {
	Ok    bool            `json:"ok"`
	Data  any             `json:"data,omitempty"`
	Meta  *PaginationMeta `json:"meta,omitempty"`
	Error *ErrorBody      `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data any, meta *PaginationMeta) {
	c.JSON(status, Envelope{Ok: true, Data: data, Meta: meta})
}

func Error(c *gin.Context, status int, code, message string, details any) {
	c.JSON(status, Envelope{
		Error: &ErrorBody{Code: code, Message: message, Details: details},
	})
}
