package models

// PlanLimits - месячные лимиты ресурсов для тарифного плана
type PlanLimits struct {
	Words        int `json:"words"`
	Images       int `json:"images"`
	VideoMinutes int `json:"video_minutes"`
	Workspaces   int `json:"workspaces"`
}

// Статическая таблица лимитов: план × ресурс.
// Лимиты действуют в пределах календарного месяца.
var planLimits = map[SubscriptionPlan]PlanLimits{
	PlanFree:       {Words: 10000, Images: 50, VideoMinutes: 10, Workspaces: 3},
	PlanPro:        {Words: 50000, Images: 500, VideoMinutes: 100, Workspaces: 10},
	PlanEnterprise: {Words: 200000, Images: 2000, VideoMinutes: 500, Workspaces: 25},
}

// LimitsForPlan возвращает лимиты плана. Неизвестный план
// получает лимиты free.
func LimitsForPlan(plan SubscriptionPlan) PlanLimits {
	if limits, ok := planLimits[plan]; ok {
		return limits
	}
	return planLimits[PlanFree]
}

// LimitFor возвращает лимит конкретного ресурса для плана
func LimitFor(plan SubscriptionPlan, resource ResourceType) int {
	limits := LimitsForPlan(plan)
	switch resource {
	case ResourceWords:
		return limits.Words
	case ResourceImages:
		return limits.Images
	case ResourceVideoMinutes:
		return limits.VideoMinutes
	default:
		return 0
	}
}
