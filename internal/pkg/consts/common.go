package consts

const (
	MimePrefixImage = "image"
)

const (
	// ThumbnailMaxWidth 入库前缩略图统一缩放到的最大宽度
	ThumbnailMaxWidth = 640
)

const (
	// SnapshotSeriesLimit 详情页样本序列默认返回的最大条数
	SnapshotSeriesLimit = 30
)
