package analytics

// ComputeGrowth 计算指标在所选窗口内的增长。
//
// 基线值永远取完整序列 fullSeries 的第一个样本，而不是窗口子集的第一个：
// 增长百分比始终以内容首次被观测到的值为基准，与当前展示的窗口无关。
// 新值取窗口子集 windowedSeries 的最后一个样本。
// 两个序列都要求按 SampledAt 升序。
//
// 样本间计数回落（平台侧修正）按合法的负增长处理，不做钳制。
func ComputeGrowth(fullSeries, windowedSeries []Sample, metric Metric, platform Platform) (Growth, error) {
	field, err := ResolveCounterField(platform, metric)
	if err != nil {
		return Growth{}, err
	}

	if len(fullSeries) < 2 || len(windowedSeries) == 0 {
		return Growth{}, nil
	}

	oldValue := fullSeries[0].Counters[field]
	newValue := windowedSeries[len(windowedSeries)-1].Counters[field]

	growth := Growth{Absolute: newValue - oldValue}

	// 基线为 0 时百分比记 0，绝对增量仍然有效
	if oldValue != 0 {
		growth.Percentage = float64(growth.Absolute) / float64(oldValue) * 100
	}

	return growth, nil
}

// WindowSamples 将完整序列裁剪到指定窗口，供 ComputeGrowth 的第二个入参使用
func WindowSamples(fullSeries []Sample, window DateRange) []Sample {
	start := StartOfDay(window.Start)
	end := EndOfDay(window.End)

	windowed := make([]Sample, 0, len(fullSeries))
	for _, s := range fullSeries {
		if s.SampledAt.Before(start) || s.SampledAt.After(end) {
			continue
		}
		windowed = append(windowed, s)
	}
	return windowed
}
