package consts

const (
	DashboardSummaryKey = "dashboard:summary:"
	DistinctClientsKey  = "dashboard:clients"
	ContentTopKey       = "content:top:"
	SampleSeriesKey     = "sample:series:"
)
