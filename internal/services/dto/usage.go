package dto

import "contentcraft_backend/internal/models"

// LogUsageRequest - запрос ручной записи потребления
type LogUsageRequest struct {
	ResourceType string  `json:"resource_type" validate:"required,is-resource-type"`
	Amount       int     `json:"amount" validate:"required,gt=0"`
	ProjectID    *string `json:"project_id,omitempty" validate:"omitempty,uuid"`
}

// CheckLimitRequest - запрос проверки квоты
type CheckLimitRequest struct {
	ResourceType string `json:"resource_type" validate:"required,is-resource-type"`
	Amount       int    `json:"amount" validate:"required,gt=0"`
}

// CheckLimitResult - результат проверки квоты.
// Проверка ничего не записывает в журнал.
type CheckLimitResult struct {
	Allowed   bool                `json:"allowed"`
	Resource  models.ResourceType `json:"resource_type"`
	Used      int                 `json:"used"`
	Limit     int                 `json:"limit"`
	Remaining int                 `json:"remaining"`
}

// ResourceUsage - потребление одного ресурса против лимита плана
type ResourceUsage struct {
	Used      int `json:"used"`
	Limit     int `json:"limit"`
	Remaining int `json:"remaining"`
}

// CurrentUsageResponse - потребление за текущий календарный месяц
type CurrentUsageResponse struct {
	Plan        models.SubscriptionPlan               `json:"plan"`
	PeriodStart string                                `json:"period_start"`
	PeriodEnd   string                                `json:"period_end"`
	Resources   map[models.ResourceType]ResourceUsage `json:"resources"`
}

// UsageHistoryPoint - агрегат журнала за один день
type UsageHistoryPoint struct {
	Date  string                      `json:"date"`
	Usage map[models.ResourceType]int `json:"usage"`
}

// UsageHistoryResponse - потребление по дням за окно запроса
type UsageHistoryResponse struct {
	Period string              `json:"period"`
	Points []UsageHistoryPoint `json:"points"`
}

// ContentTypeBreakdown - разбивка по типу контента
type ContentTypeBreakdown struct {
	ContentType models.ContentType `json:"content_type"`
	Projects    int                `json:"projects"`
	Words       int                `json:"words"`
}

// UsageAnalyticsResponse - аналитика потребления по проектам пользователя
type UsageAnalyticsResponse struct {
	TotalProjects int                    `json:"total_projects"`
	TotalWords    int                    `json:"total_words"`
	Breakdown     []ContentTypeBreakdown `json:"breakdown"`
}
