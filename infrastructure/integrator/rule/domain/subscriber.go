package ruledomain

import "errors"

var (
	ErrSubscriberIDRequired    = errors.New("subscriber id is required")
	ErrSubscriberEmailRequired = errors.New("subscriber email is required")
)

type Subscriber struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	Created      Timestamp      `json:"created"`
	Updated      Timestamp      `json:"updated"`
	Fields       map[string]any `json:"fields"`
	Tags         []string       `json:"tags"`
	Unsubscribed bool           `json:"unsubscribed"`
	Bounced      bool           `json:"bounced"`
	Status       string         `json:"status"`
	Source       *string        `json:"source"`
}

// UnmarshalJSON aplica os valores padrão de tags e fields
func (s *Subscriber) UnmarshalJSON(data []byte) error {
	type alias Subscriber

	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	*s = Subscriber(decoded)
	s.applyDefaults()

	return nil
}

func (s *Subscriber) applyDefaults() {
	if s.Tags == nil {
		s.Tags = []string{}
	}
	if s.Fields == nil {
		s.Fields = map[string]any{}
	}
}

// Validate verifica os campos obrigatórios
func (s *Subscriber) Validate() error {
	if s.ID == "" {
		return ErrSubscriberIDRequired
	}
	if s.Email == "" {
		return ErrSubscriberEmailRequired
	}
	return nil
}

// SubscriberCreate é o corpo enviado no POST /subscribers
type SubscriberCreate struct {
	Email  string         `json:"email"`
	Tags   []string       `json:"tags"`
	Fields map[string]any `json:"fields"`
}

// NewSubscriberCreate normaliza tags e fields nulos para coleções vazias
func NewSubscriberCreate(email string, tags []string, fields map[string]any) SubscriberCreate {
	if tags == nil {
		tags = []string{}
	}
	if fields == nil {
		fields = map[string]any{}
	}

	return SubscriberCreate{
		Email:  email,
		Tags:   tags,
		Fields: fields,
	}
}

// SubscriberUpdate carrega apenas os campos informados; nil significa "não alterar"
type SubscriberUpdate struct {
	Email  *string
	Tags   []string
	Fields map[string]any
}

// Body monta o corpo do PUT somente com os campos não nulos
func (u SubscriberUpdate) Body() map[string]any {
	body := map[string]any{}
	if u.Email != nil {
		body["email"] = *u.Email
	}
	if u.Tags != nil {
		body["tags"] = u.Tags
	}
	if u.Fields != nil {
		body["fields"] = u.Fields
	}
	return body
}
