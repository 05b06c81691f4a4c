package ginx

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

const (
	// MaxPageSize 单页最大数量
	MaxPageSize = 50
	// MinPageSize 单页最小数量
	MinPageSize = 10
	// MinPage 最小页码数
	MinPage = 1
)

// GetPageSizeFromQuery ...
func GetPageSizeFromQuery(c *gin.Context) int {
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	pageSize = lo.Min([]int{MaxPageSize, pageSize})
	pageSize = lo.Max([]int{MinPageSize, pageSize})
	return pageSize
}

// GetPageNumFromQuery ...
func GetPageNumFromQuery(c *gin.Context) int {
	pageNum, _ := strconv.Atoi(c.Query("page_num"))
	return lo.Max([]int{MinPage, pageNum})
}

// Paginate 按查询参数中的页码、页大小截取数据
func Paginate[T any](c *gin.Context, items []T) PaginatedData {
	pageSize, pageNum := GetPageSizeFromQuery(c), GetPageNumFromQuery(c)

	// 先限制页码再相乘，避免超大页码溢出
	pageNum = lo.Min([]int{pageNum, len(items)/pageSize + 2})
	start := lo.Min([]int{(pageNum - 1) * pageSize, len(items)})
	end := lo.Min([]int{start + pageSize, len(items)})
	return PaginatedData{Count: len(items), Results: items[start:end]}
}
