package models

// Collection names match the source platform: one collection per entity,
// lowercased entity name with no separators.
const (
	CollectionUser           = "user"
	CollectionPost           = "post"
	CollectionComment        = "comment"
	CollectionLike           = "like"
	CollectionMessage        = "message"
	CollectionGroup          = "group"
	CollectionNotification   = "notification"
	CollectionPlan           = "subscriptionplan"
	CollectionSubscription   = "subscription"
	CollectionPayment        = "payment"
	CollectionStream         = "stream"
	CollectionAudioRoom      = "audioroom"
	CollectionAnalyticsEvent = "analyticsevent"
	CollectionSearchIndex    = "searchindex"
)
