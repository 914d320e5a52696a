package models

type Stream struct {
	CreatorID string `json:"creator_id" bson:"creator_id" validate:"required"`
	Title     string `json:"title" bson:"title" validate:"required"`
	Status    string `json:"status,omitempty" bson:"status" validate:"omitempty,oneof=scheduled live ended"`
	StartTime string `json:"start_time,omitempty" bson:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty" bson:"end_time,omitempty"`
	Access    string `json:"access,omitempty" bson:"access" validate:"omitempty,oneof=public subscribers pay_per_view"`
}

func (s *Stream) ApplyDefaults() {
	if s.Status == "" {
		s.Status = "scheduled"
	}
	if s.Access == "" {
		s.Access = "public"
	}
}

type AudioRoom struct {
	HostID   string   `json:"host_id" bson:"host_id" validate:"required"`
	Topic    string   `json:"topic" bson:"topic" validate:"required"`
	Status   string   `json:"status,omitempty" bson:"status" validate:"omitempty,oneof=scheduled live ended"`
	Speakers []string `json:"speakers" bson:"speakers"`
}

func (r *AudioRoom) ApplyDefaults() {
	if r.Status == "" {
		r.Status = "scheduled"
	}
	if r.Speakers == nil {
		r.Speakers = []string{}
	}
}
