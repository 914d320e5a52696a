package models

type AnalyticsEvent struct {
	UserID     string            `json:"user_id,omitempty" bson:"user_id,omitempty"`
	EventName  string            `json:"event_name" bson:"event_name" validate:"required"`
	Properties map[string]string `json:"properties" bson:"properties"`
}

func (e *AnalyticsEvent) ApplyDefaults() {
	if e.Properties == nil {
		e.Properties = map[string]string{}
	}
}

// SearchIndex is declared for parity with the stored schema set; no endpoint
// writes or reads it yet.
type SearchIndex struct {
	DocType string   `json:"doc_type" bson:"doc_type" validate:"required,oneof=user post group"`
	RefID   string   `json:"ref_id" bson:"ref_id" validate:"required"`
	Tokens  []string `json:"tokens" bson:"tokens" validate:"required"`
}
