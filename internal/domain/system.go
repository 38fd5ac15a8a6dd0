package domain

import "time"

// SiteSetting is a key/value site configuration entry (company details,
// social links, map embed and similar presentation settings)
type SiteSetting struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Sort      int       `json:"sort" form:"sort"`
	Key       string    `gorm:"uniqueIndex;size:128" json:"key" form:"key"`
	Value     string    `gorm:"size:2048" json:"value" form:"value"`
	Remark    string    `json:"remark" form:"remark"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (SiteSetting) TableName() string {
	return "portal_setting"
}

// OprLog records admin write operations for auditing
type OprLog struct {
	ID        int64     `json:"id,string"`
	OprName   string    `json:"opr_name"`
	OprIp     string    `json:"opr_ip"`
	OptAction string    `json:"opt_action"`
	OptDesc   string    `json:"opt_desc"`
	OptTime   time.Time `json:"opt_time"`
}

// TableName Specify table name
func (OprLog) TableName() string {
	return "portal_opr_log"
}
