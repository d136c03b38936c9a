package models

type Workspace struct {
	BaseModel
	Name     string            `gorm:"not null" json:"name"`
	OwnerID  string            `gorm:"not null;index" json:"owner_id"`
	PlanType WorkspacePlanType `gorm:"type:varchar(20);default:'personal'" json:"plan_type"`

	// Relations
	Projects []Project `gorm:"foreignKey:WorkspaceID" json:"-"`
}
