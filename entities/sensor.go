package entities

// SensorReading is one temperature/humidity sample posted by a coop controller.
type SensorReading struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	CoopID      string  `gorm:"index:idx_sensor_coop_ts,priority:1" json:"coop_id"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Timestamp   string  `gorm:"index:idx_sensor_coop_ts,priority:2" json:"timestamp"` // TimestampLayout, UTC
}

func (SensorReading) TableName() string { return "sensor_data" }
