package services

import (
	"sort"
	"time"

	"contentcraft_backend/internal/models"
	"contentcraft_backend/internal/repositories"
	"contentcraft_backend/internal/services/dto"
	"contentcraft_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UsageService interface {
	LogUsage(db *gorm.DB, userID string, req *dto.LogUsageRequest) error
	CurrentUsage(db *gorm.DB, userID string) (*dto.CurrentUsageResponse, error)
	CheckLimit(db *gorm.DB, userID string, resource models.ResourceType, amount int) (*dto.CheckLimitResult, error)
	History(db *gorm.DB, userID, period string) (*dto.UsageHistoryResponse, error)
	Analytics(db *gorm.DB, userID string) (*dto.UsageAnalyticsResponse, error)
}

type UsageServiceImpl struct {
	usageRepo   repositories.UsageRepository
	userRepo    repositories.UserRepository
	projectRepo repositories.ProjectRepository
}

func NewUsageService(
	usageRepo repositories.UsageRepository,
	userRepo repositories.UserRepository,
	projectRepo repositories.ProjectRepository,
) UsageService {
	return &UsageServiceImpl{
		usageRepo:   usageRepo,
		userRepo:    userRepo,
		projectRepo: projectRepo,
	}
}

// LogUsage добавляет запись в журнал потребления.
// Журнал append-only: конкурентные вызовы просто вставляют строки,
// итог всегда восстанавливается суммой по журналу.
func (s *UsageServiceImpl) LogUsage(db *gorm.DB, userID string, req *dto.LogUsageRequest) error {
	resource := models.ResourceType(req.ResourceType)
	if !models.ValidResourceType(resource) {
		return apperrors.ErrInvalidResourceType
	}
	if req.Amount <= 0 {
		return apperrors.ValidationError("amount must be positive")
	}

	entry := &models.UsageLog{
		UserID:       userID,
		ResourceType: resource,
		Amount:       req.Amount,
		ProjectID:    req.ProjectID,
	}
	if err := s.usageRepo.Append(db, entry); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// CurrentUsage - потребление за текущий календарный месяц
// против лимитов плана пользователя
func (s *UsageServiceImpl) CurrentUsage(db *gorm.DB, userID string) (*dto.CurrentUsageResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	from, to := currentPeriod()
	totals, err := s.usageRepo.SumByResource(db, userID, from, to)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	limits := models.LimitsForPlan(user.SubscriptionPlan)
	resources := map[models.ResourceType]dto.ResourceUsage{
		models.ResourceWords:        buildResourceUsage(totals[models.ResourceWords], limits.Words),
		models.ResourceImages:       buildResourceUsage(totals[models.ResourceImages], limits.Images),
		models.ResourceVideoMinutes: buildResourceUsage(totals[models.ResourceVideoMinutes], limits.VideoMinutes),
	}

	return &dto.CurrentUsageResponse{
		Plan:        user.SubscriptionPlan,
		PeriodStart: from.Format("2006-01-02"),
		PeriodEnd:   to.AddDate(0, 0, -1).Format("2006-01-02"),
		Resources:   resources,
	}, nil
}

// CheckLimit - чистая проверка квоты, журнал не трогает
func (s *UsageServiceImpl) CheckLimit(db *gorm.DB, userID string, resource models.ResourceType, amount int) (*dto.CheckLimitResult, error) {
	if !models.ValidResourceType(resource) {
		return nil, apperrors.ErrInvalidResourceType
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	from, to := currentPeriod()
	used, err := s.usageRepo.SumForResource(db, userID, resource, from, to)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	limit := models.LimitFor(user.SubscriptionPlan, resource)
	remaining := limit - used
	if remaining < 0 {
		remaining = 0
	}

	return &dto.CheckLimitResult{
		Allowed:   used+amount <= limit,
		Resource:  resource,
		Used:      used,
		Limit:     limit,
		Remaining: remaining,
	}, nil
}

// History - потребление по дням за окно 1d/7d/30d
func (s *UsageServiceImpl) History(db *gorm.DB, userID, period string) (*dto.UsageHistoryResponse, error) {
	var days int
	switch period {
	case "1d":
		days = 1
	case "", "7d":
		period = "7d"
		days = 7
	case "30d":
		days = 30
	default:
		return nil, apperrors.ValidationError("period must be one of 1d, 7d, 30d")
	}

	from := time.Now().AddDate(0, 0, -days).Truncate(24 * time.Hour)
	rows, err := s.usageRepo.DailyTotals(db, userID, from)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Группировка строк агрегата по дням с сохранением порядка
	byDay := make(map[string]map[models.ResourceType]int)
	var order []string
	for _, row := range rows {
		if _, ok := byDay[row.Day]; !ok {
			byDay[row.Day] = make(map[models.ResourceType]int)
			order = append(order, row.Day)
		}
		byDay[row.Day][row.ResourceType] += row.Total
	}

	points := make([]dto.UsageHistoryPoint, 0, len(order))
	for _, day := range order {
		points = append(points, dto.UsageHistoryPoint{Date: day, Usage: byDay[day]})
	}

	return &dto.UsageHistoryResponse{Period: period, Points: points}, nil
}

// Analytics - разбивка проектов пользователя по типам контента
func (s *UsageServiceImpl) Analytics(db *gorm.DB, userID string) (*dto.UsageAnalyticsResponse, error) {
	projects, err := s.projectRepo.FindByCreator(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	byType := make(map[models.ContentType]*dto.ContentTypeBreakdown)
	resp := &dto.UsageAnalyticsResponse{}
	for i := range projects {
		p := &projects[i]
		resp.TotalProjects++
		resp.TotalWords += p.WordCount

		entry, ok := byType[p.ContentType]
		if !ok {
			entry = &dto.ContentTypeBreakdown{ContentType: p.ContentType}
			byType[p.ContentType] = entry
		}
		entry.Projects++
		entry.Words += p.WordCount
	}

	for _, entry := range byType {
		resp.Breakdown = append(resp.Breakdown, *entry)
	}
	// Порядок обхода map недетерминирован, ответ должен быть стабильным
	sort.Slice(resp.Breakdown, func(i, j int) bool {
		return resp.Breakdown[i].ContentType < resp.Breakdown[j].ContentType
	})

	return resp, nil
}

// currentPeriod возвращает границы текущего календарного месяца:
// [первое число 00:00, первое число следующего месяца)
func currentPeriod() (time.Time, time.Time) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return from, from.AddDate(0, 1, 0)
}

func buildResourceUsage(used, limit int) dto.ResourceUsage {
	remaining := limit - used
	if remaining < 0 {
		remaining = 0
	}
	return dto.ResourceUsage{Used: used, Limit: limit, Remaining: remaining}
}
