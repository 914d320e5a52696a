package models

// DRMPolicy controls delivery restrictions on premium media.
type DRMPolicy struct {
	Watermark     *bool `json:"watermark,omitempty" bson:"watermark"`
	ExpireSeconds *int  `json:"expire_seconds,omitempty" bson:"expire_seconds,omitempty" validate:"omitempty,gte=0"`
	AllowDownload bool  `json:"allow_download" bson:"allow_download"`
}

type Post struct {
	AuthorID     string     `json:"author_id" bson:"author_id" validate:"required"`
	ContentType  string     `json:"content_type" bson:"content_type" validate:"required,oneof=text image short_video live_stream audio"`
	Text         string     `json:"text,omitempty" bson:"text,omitempty"`
	MediaURL     string     `json:"media_url,omitempty" bson:"media_url,omitempty" validate:"omitempty,url"`
	ThumbnailURL string     `json:"thumbnail_url,omitempty" bson:"thumbnail_url,omitempty" validate:"omitempty,url"`
	Tags         []string   `json:"tags" bson:"tags"`
	IsPremium    bool       `json:"is_premium" bson:"is_premium"`
	RequiredTier string     `json:"required_tier,omitempty" bson:"required_tier,omitempty"`
	DRM          *DRMPolicy `json:"drm,omitempty" bson:"drm,omitempty"`
	Visibility   string     `json:"visibility,omitempty" bson:"visibility" validate:"omitempty,oneof=public followers subscribers private"`
}

func (p *Post) ApplyDefaults() {
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Visibility == "" {
		p.Visibility = "public"
	}
	if p.DRM != nil {
		if p.DRM.Watermark == nil {
			t := true
			p.DRM.Watermark = &t
		}
		if p.DRM.ExpireSeconds == nil {
			s := 3600
			p.DRM.ExpireSeconds = &s
		}
	}
}

type Comment struct {
	PostID   string `json:"post_id" bson:"post_id" validate:"required"`
	AuthorID string `json:"author_id" bson:"author_id" validate:"required"`
	Text     string `json:"text" bson:"text" validate:"required"`
}

func (c *Comment) ApplyDefaults() {}

type Like struct {
	PostID string `json:"post_id" bson:"post_id" validate:"required"`
	UserID string `json:"user_id" bson:"user_id" validate:"required"`
}

func (l *Like) ApplyDefaults() {}
