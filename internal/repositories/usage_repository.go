package repositories

import (
	"time"

	"contentcraft_backend/internal/models"

	"gorm.io/gorm"
)

// ResourceTotal - агрегат журнала по одному ресурсу
type ResourceTotal struct {
	ResourceType models.ResourceType
	Total        int
}

// DailyTotal - агрегат журнала по дню и ресурсу
type DailyTotal struct {
	Day          string
	ResourceType models.ResourceType
	Total        int
}

type UsageRepository interface {
	Append(db *gorm.DB, entry *models.UsageLog) error
	SumByResource(db *gorm.DB, userID string, from, to time.Time) (map[models.ResourceType]int, error)
	SumForResource(db *gorm.DB, userID string, resource models.ResourceType, from, to time.Time) (int, error)
	DailyTotals(db *gorm.DB, userID string, from time.Time) ([]DailyTotal, error)
	CountForUser(db *gorm.DB, userID string) (int64, error)
}

type UsageRepositoryImpl struct{}

func NewUsageRepository() UsageRepository {
	return &UsageRepositoryImpl{}
}

// Append - единственная операция записи: журнал append-only.
// Обычный INSERT безопасен при конкурентных вызовах, итоги
// пересчитываются агрегацией и не теряют обновлений.
func (r *UsageRepositoryImpl) Append(db *gorm.DB, entry *models.UsageLog) error {
	return db.Create(entry).Error
}

func (r *UsageRepositoryImpl) SumByResource(db *gorm.DB, userID string, from, to time.Time) (map[models.ResourceType]int, error) {
	var rows []ResourceTotal
	err := db.Model(&models.UsageLog{}).
		Select("resource_type, COALESCE(SUM(amount), 0) as total").
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		Group("resource_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[models.ResourceType]int, len(rows))
	for _, row := range rows {
		totals[row.ResourceType] = row.Total
	}
	return totals, nil
}

func (r *UsageRepositoryImpl) SumForResource(db *gorm.DB, userID string, resource models.ResourceType, from, to time.Time) (int, error) {
	var total int64
	err := db.Model(&models.UsageLog{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND resource_type = ? AND created_at >= ? AND created_at < ?", userID, resource, from, to).
		Scan(&total).Error
	return int(total), err
}

func (r *UsageRepositoryImpl) DailyTotals(db *gorm.DB, userID string, from time.Time) ([]DailyTotal, error) {
	var rows []DailyTotal
	err := db.Model(&models.UsageLog{}).
		Select("DATE(created_at) as day, resource_type, COALESCE(SUM(amount), 0) as total").
		Where("user_id = ? AND created_at >= ?", userID, from).
		Group("DATE(created_at), resource_type").
		Order("day ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *UsageRepositoryImpl) CountForUser(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.UsageLog{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
