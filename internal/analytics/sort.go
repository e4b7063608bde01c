package analytics

import (
	"sort"
)

// SortKey 可排序字段
type SortKey string

const (
	SortByClient      SortKey = "client"
	SortByTitle       SortKey = "title"
	SortByPlatform    SortKey = "platform"
	SortByCreator     SortKey = "creator"
	SortByViews       SortKey = "views"
	SortByLikes       SortKey = "likes"
	SortByComments    SortKey = "comments"
	SortByPublishedAt SortKey = "published_at"
)

// SortDirection 排序方向
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortBy 按单键排序并返回新切片，不修改入参。
// 稳定排序：同键值的记录保持输入相对顺序。
// 空值（nil 客户名/计数/发布时间）升序时排在所有非空值之前，降序时之后；
// 数值键按数值比较，时间键按时刻比较，字符串键按码点区分大小写比较。
func SortBy(records []ContentRecord, key SortKey, direction SortDirection) []ContentRecord {
	sorted := make([]ContentRecord, len(records))
	copy(sorted, records)

	less := lessFunc(key)
	if less == nil {
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if direction == SortDesc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})

	return sorted
}

func lessFunc(key SortKey) func(a, b ContentRecord) bool {
	switch key {
	case SortByClient:
		return func(a, b ContentRecord) bool { return lessStringPtr(a.ClientName, b.ClientName) }
	case SortByTitle:
		return func(a, b ContentRecord) bool { return a.Title < b.Title }
	case SortByPlatform:
		return func(a, b ContentRecord) bool { return a.Platform < b.Platform }
	case SortByCreator:
		return func(a, b ContentRecord) bool { return a.CreatorName < b.CreatorName }
	case SortByViews:
		return func(a, b ContentRecord) bool { return lessInt64Ptr(a.ViewCount, b.ViewCount) }
	case SortByLikes:
		return func(a, b ContentRecord) bool { return lessInt64Ptr(a.LikeCount, b.LikeCount) }
	case SortByComments:
		return func(a, b ContentRecord) bool { return lessInt64Ptr(a.CommentCount, b.CommentCount) }
	case SortByPublishedAt:
		return func(a, b ContentRecord) bool {
			if a.PublishedAt == nil || b.PublishedAt == nil {
				return a.PublishedAt == nil && b.PublishedAt != nil
			}
			return a.PublishedAt.Before(*b.PublishedAt)
		}
	default:
		return nil
	}
}

func lessStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b != nil
	}
	return *a < *b
}

func lessInt64Ptr(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b != nil
	}
	return *a < *b
}
