package validator

import (
	"log"

	"contentcraft_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Ошибка регистрации правила - ошибка времени запуска
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-content-type", validateContentType)
	mustRegister("is-resource-type", validateResourceType)
	mustRegister("is-project-status", validateProjectStatus)
	mustRegister("is-image-style", validateImageStyle)
}

// --- Функции валидации ---

func validateContentType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Пустые значения проверяет 'required'
	}
	switch models.ContentType(value) {
	case models.ContentTypeArticle, models.ContentTypeSocialPost,
		models.ContentTypeVideoScript, models.ContentTypeEmail, models.ContentTypeSEOContent:
		return true
	default:
		return false
	}
}

func validateResourceType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidResourceType(models.ResourceType(value))
}

func validateProjectStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ProjectStatus(value) {
	case models.ProjectStatusDraft, models.ProjectStatusInProgress, models.ProjectStatusCompleted:
		return true
	default:
		return false
	}
}

func validateImageStyle(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ImageStyle(value) {
	case models.ImageStyleNatural, models.ImageStylePhotographic,
		models.ImageStyleDigitalArt, models.ImageStyleIllustration, models.ImageStyleAbstract:
		return true
	default:
		return false
	}
}
