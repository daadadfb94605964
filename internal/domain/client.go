package domain

// ActionPlanSoftCap is the advisory length limit for a client's action plan.
// It is surfaced as remaining-character feedback in forms, never enforced.
const ActionPlanSoftCap = 2000

// Client is a tracked customer record with contact info, a free-text action
// plan and an exclusively owned, ordered list of tasks.
type Client struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	StartDate     string `json:"start_date,omitempty"` // YYYY-MM-DD, empty when not set
	ContactPerson string `json:"contact_person,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	ActionPlan    string `json:"action_plan,omitempty"`
	Tasks         []Task `json:"tasks"`
}

// TaskByID returns the task with the given id and its position in the
// client's task list, or nil and -1 when absent.
func (c *Client) TaskByID(id string) (*Task, int) {
	for i := range c.Tasks {
		if c.Tasks[i].ID == id {
			return &c.Tasks[i], i
		}
	}
	return nil, -1
}
