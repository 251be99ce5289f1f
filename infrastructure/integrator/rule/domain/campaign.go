package ruledomain

type Campaign struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Created     Timestamp `json:"created"`
	Updated     Timestamp `json:"updated"`
	Status      string    `json:"status"`
	Type        string    `json:"type"`
	Subject     *string   `json:"subject"`
	SenderName  *string   `json:"sender_name"`
	SenderEmail *string   `json:"sender_email"`
}
