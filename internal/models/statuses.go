package models

// SubscriptionPlan - тарифный план пользователя
type SubscriptionPlan string

const (
	PlanFree       SubscriptionPlan = "free"
	PlanPro        SubscriptionPlan = "pro"
	PlanEnterprise SubscriptionPlan = "enterprise"
)

// SubscriptionStatus - состояние подписки
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
)

// ContentType - тип генерируемого контента
type ContentType string

const (
	ContentTypeArticle     ContentType = "article"
	ContentTypeSocialPost  ContentType = "social_post"
	ContentTypeVideoScript ContentType = "video_script"
	ContentTypeEmail       ContentType = "email"
	ContentTypeSEOContent  ContentType = "seo_content"
)

// ProjectStatus - состояние проекта
type ProjectStatus string

const (
	ProjectStatusDraft      ProjectStatus = "draft"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// ResourceType - метрируемый ресурс
type ResourceType string

const (
	ResourceWords        ResourceType = "words"
	ResourceImages       ResourceType = "images"
	ResourceVideoMinutes ResourceType = "video_minutes"
)

// ImageStyle - стиль генерации изображений
type ImageStyle string

const (
	ImageStyleNatural      ImageStyle = "natural"
	ImageStylePhotographic ImageStyle = "photographic"
	ImageStyleDigitalArt   ImageStyle = "digital_art"
	ImageStyleIllustration ImageStyle = "illustration"
	ImageStyleAbstract     ImageStyle = "abstract"
)

// GenerationKind - вид записи в истории генераций
type GenerationKind string

const (
	GenerationKindText  GenerationKind = "text"
	GenerationKindImage GenerationKind = "image"
)

// WorkspacePlanType - тип рабочего пространства
type WorkspacePlanType string

const (
	WorkspacePlanPersonal   WorkspacePlanType = "personal"
	WorkspacePlanTeam       WorkspacePlanType = "team"
	WorkspacePlanEnterprise WorkspacePlanType = "enterprise"
)

// ValidResourceType проверяет значение метрируемого ресурса
func ValidResourceType(rt ResourceType) bool {
	switch rt {
	case ResourceWords, ResourceImages, ResourceVideoMinutes:
		return true
	default:
		return false
	}
}
