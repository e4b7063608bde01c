package analytics

import (
	"time"
)

// Predicate 内容记录筛选谓词
type Predicate func(ContentRecord) bool

// BuildFilter 将客户、平台、日期三个筛选条件合成为一个 AND 谓词。
// 客户与平台为精确匹配，值为 "all" 时跳过；日期为闭区间，
// 起止分别对齐到所在日历日的 00:00:00.000 与 23:59:59.999，
// 保证按日历选择的区间完整包含两个边界日。
func BuildFilter(state FilterState) Predicate {
	var start, end time.Time
	hasRange := state.DateRange != nil
	if hasRange {
		start = StartOfDay(state.DateRange.Start)
		end = EndOfDay(state.DateRange.End)
	}

	return func(r ContentRecord) bool {
		if state.ClientName != SelectAll && state.ClientName != "" {
			if r.ClientName == nil || *r.ClientName != state.ClientName {
				return false
			}
		}

		if state.Platform != SelectAll && state.Platform != "" {
			if string(r.Platform) != state.Platform {
				return false
			}
		}

		if hasRange {
			if r.PublishedAt == nil {
				return false
			}
			if r.PublishedAt.Before(start) || r.PublishedAt.After(end) {
				return false
			}
		}

		return true
	}
}

// Filter 返回满足谓词的记录子集，不修改入参
func Filter(records []ContentRecord, pred Predicate) []ContentRecord {
	filtered := make([]ContentRecord, 0, len(records))
	for _, r := range records {
		if pred(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// StartOfDay 对齐到当日 00:00:00.000
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay 对齐到当日 23:59:59.999
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
