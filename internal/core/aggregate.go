package core

// GroupTotal is a per-group count and sum.
type GroupTotal struct {
	Count int   `json:"count"`
	Sum   Money `json:"sum"`
}

// GroupBy rolls records up into count/sum totals per group key. Every key in
// groups is seeded with a zero total, so a group with no matching records
// still reports {count: 0, sum: 0} rather than an absent entry.
func GroupBy[T any, K comparable](items []T, groups []K, keyFn func(T) K, valueFn func(T) int64) map[K]GroupTotal {
	out := make(map[K]GroupTotal, len(groups))
	for _, g := range groups {
		out[g] = GroupTotal{}
	}
	for _, item := range items {
		k := keyFn(item)
		total := out[k]
		total.Count++
		total.Sum.Cents += valueFn(item)
		out[k] = total
	}
	return out
}

// PipelineByStage totals opportunity count and value per stage, all six
// stages always present.
func PipelineByStage(opportunities []Opportunity) map[Stage]GroupTotal {
	return GroupBy(opportunities, AllStages,
		func(o Opportunity) Stage { return o.Stage },
		func(o Opportunity) int64 { return o.Value.Cents })
}

// StageRow is a pipeline stage total in display order.
type StageRow struct {
	Stage Stage `json:"stage"`
	Count int   `json:"count"`
	Value Money `json:"value"`
}

// PipelineRows flattens PipelineByStage into prospecting→closed order.
func PipelineRows(opportunities []Opportunity) []StageRow {
	byStage := PipelineByStage(opportunities)
	rows := make([]StageRow, 0, len(AllStages))
	for _, stage := range AllStages {
		total := byStage[stage]
		rows = append(rows, StageRow{Stage: stage, Count: total.Count, Value: total.Sum})
	}
	return rows
}

// TasksByStatus counts tasks per status; sums stay zero since tasks carry no
// monetary value.
func TasksByStatus(tasks []Task) map[TaskStatus]GroupTotal {
	return GroupBy(tasks, AllTaskStatuses,
		func(t Task) TaskStatus { return t.Status },
		func(Task) int64 { return 0 })
}

// TasksByPriority counts tasks per priority.
func TasksByPriority(tasks []Task) map[Priority]GroupTotal {
	return GroupBy(tasks, AllPriorities,
		func(t Task) Priority { return t.Priority },
		func(Task) int64 { return 0 })
}

// AppointmentsByStatus counts appointments per status.
func AppointmentsByStatus(appointments []Appointment) map[AppointmentStatus]GroupTotal {
	return GroupBy(appointments, AllAppointmentStatuses,
		func(a Appointment) AppointmentStatus { return a.Status },
		func(Appointment) int64 { return 0 })
}

// AppointmentsByType counts appointments per type.
func AppointmentsByType(appointments []Appointment) map[AppointmentType]GroupTotal {
	return GroupBy(appointments, AllAppointmentTypes,
		func(a Appointment) AppointmentType { return a.Type },
		func(Appointment) int64 { return 0 })
}

// KPISet is the analytics roll-up: revenue from won deals, value still in
// play, conversion of closed deals, and average size across the book.
type KPISet struct {
	TotalValue     Money   `json:"total_value"`
	OpenValue      Money   `json:"open_value"`
	WonValue       Money   `json:"won_value"`
	WeightedValue  Money   `json:"weighted_value"`
	OpenCount      int     `json:"open_count"`
	WonCount       int     `json:"won_count"`
	LostCount      int     `json:"lost_count"`
	ConversionRate float64 `json:"conversion_rate"`
	AvgDealSize    Money   `json:"avg_deal_size"`
}

// ComputeKPIs derives the KPI set from the opportunity book. ConversionRate
// is won/(won+lost) as a percentage; WeightedValue scales open deals by their
// probability.
func ComputeKPIs(opportunities []Opportunity) KPISet {
	var k KPISet
	for _, o := range opportunities {
		k.TotalValue = k.TotalValue.Add(o.Value)
		switch o.Stage {
		case StageClosedWon:
			k.WonCount++
			k.WonValue = k.WonValue.Add(o.Value)
		case StageClosedLost:
			k.LostCount++
		default:
			k.OpenCount++
			k.OpenValue = k.OpenValue.Add(o.Value)
			k.WeightedValue.Cents += o.Value.Cents * int64(o.Probability) / 100
		}
	}
	if closed := k.WonCount + k.LostCount; closed > 0 {
		k.ConversionRate = float64(k.WonCount) / float64(closed) * 100
	}
	if n := len(opportunities); n > 0 {
		k.AvgDealSize = Money{Cents: k.TotalValue.Cents / int64(n)}
	}
	return k
}
