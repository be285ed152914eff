package domain

// Gauge is one resource's usage against its limit. LimitValue is -1 for
// unlimited quotas so JSON consumers can distinguish "no cap" from zero.
type Gauge struct {
	Current    int  `json:"current"`
	LimitValue int  `json:"limit"`
	Unlimited  bool `json:"unlimited"`
	Percentage int  `json:"percentage"`
}

// NewGauge combines a count with its limit.
func NewGauge(current int, limit Limit) Gauge {
	g := Gauge{
		Current:    current,
		Unlimited:  limit.IsUnlimited(),
		Percentage: limit.Percent(current),
	}
	if limit.IsUnlimited() {
		g.LimitValue = -1
	} else {
		g.LimitValue = limit.Value()
	}
	return g
}

// UsageReport is recomputed per request and never persisted.
type UsageReport struct {
	Links      Gauge `json:"links"`
	Templates  Gauge `json:"templates"`
	Strategies Gauge `json:"strategies"`
	RobotToday Gauge `json:"robot_today"`
}
