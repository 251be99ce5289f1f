package ruledomain

type Tag struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Created         Timestamp `json:"created"`
	Updated         Timestamp `json:"updated"`
	SubscriberCount int       `json:"subscriber_count"`
}

type TagCreate struct {
	Name string `json:"name"`
}
