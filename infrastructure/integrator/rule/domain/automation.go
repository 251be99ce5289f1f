package ruledomain

type Automation struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Created     Timestamp `json:"created"`
	Updated     Timestamp `json:"updated"`
	Status      string    `json:"status"`
	TriggerType string    `json:"trigger_type"`
}
