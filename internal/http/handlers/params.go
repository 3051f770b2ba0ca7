package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/kotoba-backend/internal/pagination"
)

func pathID(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return uint(id), nil
}

func bindPagination(c *gin.Context) (pagination.Params, error) {
	var p pagination.Params
	if err := c.ShouldBindQuery(&p); err != nil {
		return pagination.Params{}, err
	}
	return p, nil
}
