package analytics

// Aggregate 将一组内容记录归约为汇总指标。
// 输入可以为空；缺失的计数按 0 参与求和；不修改入参。
func Aggregate(records []ContentRecord) AggregateStats {
	stats := AggregateStats{}
	if len(records) == 0 {
		return stats
	}

	for _, r := range records {
		stats.TotalViews += counterOrZero(r.ViewCount)
		stats.TotalLikes += counterOrZero(r.LikeCount)
		stats.TotalComments += counterOrZero(r.CommentCount)
	}

	stats.AverageViewsPerPost = float64(stats.TotalViews) / float64(len(records))

	// 零曝光时互动率记 0，避免除零
	if stats.TotalViews > 0 {
		stats.EngagementRate = float64(stats.TotalLikes+stats.TotalComments) / float64(stats.TotalViews) * 100
	}

	return stats
}

func counterOrZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
