package repository

import "strings"

// likePattern 生成大小写无关的模糊匹配参数 (配合 LOWER(col) LIKE ?)
func likePattern(keyword string) string {
	return "%" + strings.ToLower(strings.TrimSpace(keyword)) + "%"
}

// normalizePage 分页参数兜底
func normalizePage(page, pageSize, defaultSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultSize
	}
	if pageSize > 250 {
		pageSize = 250
	}
	return page, pageSize
}
