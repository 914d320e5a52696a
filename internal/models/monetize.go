package models

type SubscriptionPlan struct {
	CreatorID  string   `json:"creator_id" bson:"creator_id" validate:"required"`
	Title      string   `json:"title" bson:"title" validate:"required"`
	PriceCents *int     `json:"price_cents" bson:"price_cents" validate:"required,gte=0"`
	Currency   string   `json:"currency,omitempty" bson:"currency"`
	Benefits   []string `json:"benefits" bson:"benefits"`
	Tier       string   `json:"tier,omitempty" bson:"tier" validate:"omitempty,oneof=bronze silver gold platinum"`
}

// PriceCents is a pointer so a free plan (0) still counts as provided.
func (p *SubscriptionPlan) ApplyDefaults() {
	if p.Currency == "" {
		p.Currency = "USD"
	}
	if p.Benefits == nil {
		p.Benefits = []string{}
	}
	if p.Tier == "" {
		p.Tier = "bronze"
	}
}

type Subscription struct {
	CreatorID    string `json:"creator_id" bson:"creator_id" validate:"required"`
	SubscriberID string `json:"subscriber_id" bson:"subscriber_id" validate:"required"`
	PlanID       string `json:"plan_id" bson:"plan_id" validate:"required"`
	Status       string `json:"status,omitempty" bson:"status" validate:"omitempty,oneof=active canceled past_due"`
	RenewsAt     string `json:"renews_at,omitempty" bson:"renews_at,omitempty"`
}

func (s *Subscription) ApplyDefaults() {
	if s.Status == "" {
		s.Status = "active"
	}
}

type Payment struct {
	UserID      string            `json:"user_id" bson:"user_id" validate:"required"`
	AmountCents *int              `json:"amount_cents" bson:"amount_cents" validate:"required"`
	Currency    string            `json:"currency,omitempty" bson:"currency"`
	Purpose     string            `json:"purpose,omitempty" bson:"purpose" validate:"omitempty,oneof=subscription tip purchase"`
	Provider    string            `json:"provider,omitempty" bson:"provider" validate:"omitempty,oneof=stripe paypal mock"`
	Status      string            `json:"status,omitempty" bson:"status" validate:"omitempty,oneof=initiated succeeded failed"`
	Metadata    map[string]string `json:"metadata,omitempty" bson:"metadata,omitempty"`
}

func (p *Payment) ApplyDefaults() {
	if p.Currency == "" {
		p.Currency = "USD"
	}
	if p.Purpose == "" {
		p.Purpose = "subscription"
	}
	if p.Provider == "" {
		p.Provider = "mock"
	}
	if p.Status == "" {
		p.Status = "initiated"
	}
}
