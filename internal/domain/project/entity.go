package project

// Project is an upstream project with its member allocations.
type Project struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	StartDate string   `json:"startDate,omitempty"`
	EndDate   string   `json:"endDate,omitempty"`
	Members   []Member `json:"members"`
}

// Member binds a user to a project with a workload fraction in [0, 1]:
// the share of a full-time position devoted to that project.
type Member struct {
	UserID     string  `json:"userId"`
	Name       string  `json:"name,omitempty"`
	Allocation float64 `json:"allocation"`
}
