package character

// Project is a long-running downtime undertaking; work units accumulate
// monotonically toward the total
type Project struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description,omitempty"`
	TotalWorkUnits     int    `json:"total_work_units"`
	CompletedWorkUnits int    `json:"completed_work_units"`
	IsCompleted        bool   `json:"is_completed"`
}

// AddWork credits work units toward completion, returning how many were
// applied. Completed projects accept no further work.
func (p *Project) AddWork(units int) int {
	if units <= 0 || p.IsCompleted {
		return 0
	}

	remaining := p.TotalWorkUnits - p.CompletedWorkUnits
	if units > remaining {
		units = remaining
	}

	p.CompletedWorkUnits += units
	if p.CompletedWorkUnits >= p.TotalWorkUnits {
		p.IsCompleted = true
	}
	return units
}
