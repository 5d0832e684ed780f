package entities

// FeedWeightReading is the weight of the feed container at one moment.
type FeedWeightReading struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	CoopID     string  `gorm:"index:idx_feed_coop_ts,priority:1" json:"coop_id"`
	FeedWeight float64 `json:"feed_weight"`
	Timestamp  string  `gorm:"index:idx_feed_coop_ts,priority:2" json:"timestamp"` // TimestampLayout, UTC
}

func (FeedWeightReading) TableName() string { return "feed_data" }
