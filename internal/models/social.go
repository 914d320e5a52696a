package models

type Message struct {
	SenderID    string `json:"sender_id" bson:"sender_id" validate:"required"`
	RecipientID string `json:"recipient_id" bson:"recipient_id" validate:"required"`
	Body        string `json:"body" bson:"body" validate:"required"`
	ThreadID    string `json:"thread_id,omitempty" bson:"thread_id,omitempty"`
}

func (m *Message) ApplyDefaults() {}

type Group struct {
	OwnerID     string   `json:"owner_id" bson:"owner_id" validate:"required"`
	Name        string   `json:"name" bson:"name" validate:"required"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Members     []string `json:"members" bson:"members"`
}

func (g *Group) ApplyDefaults() {
	if g.Members == nil {
		g.Members = []string{}
	}
}

type Notification struct {
	UserID string `json:"user_id" bson:"user_id" validate:"required"`
	Type   string `json:"type" bson:"type" validate:"required,oneof=like comment message subscription system"`
	Title  string `json:"title" bson:"title" validate:"required"`
	Body   string `json:"body,omitempty" bson:"body,omitempty"`
	Read   bool   `json:"read" bson:"read"`
}

func (n *Notification) ApplyDefaults() {}
