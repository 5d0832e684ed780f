package entities

// DailyLog is a manual end-of-day record. Several logs may share a coop and date.
type DailyLog struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	CoopID        string  `gorm:"index:idx_daily_coop_date,priority:1" json:"coop_id"`
	EggsCollected int     `json:"eggs_collected"`
	FeedGivenG    float64 `json:"feed_given_g"`
	Dewormed      int     `json:"dewormed"`                                         // 0|1
	Date          string  `gorm:"index:idx_daily_coop_date,priority:2" json:"date"` // DateLayout, UTC
}

func (DailyLog) TableName() string { return "daily_logs" }
