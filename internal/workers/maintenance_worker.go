package workers

import (
	"context"
	"time"

	"contentcraft_backend/internal/logger"
	"contentcraft_backend/internal/models"
	"contentcraft_backend/internal/repositories"

	"gorm.io/gorm"
)

// MaintenanceWorker выполняет фоновые задачи обслуживания:
// чистку истекших сессий и перевод истекших подписок на free.
type MaintenanceWorker struct {
	db          *gorm.DB
	sessionRepo repositories.SessionRepository
	interval    time.Duration
}

func NewMaintenanceWorker(db *gorm.DB, sessionRepo repositories.SessionRepository) *MaintenanceWorker {
	return &MaintenanceWorker{
		db:          db,
		sessionRepo: sessionRepo,
		interval:    time.Hour,
	}
}

// Start запускает фоновые задачи. Останавливается по ctx.
func (w *MaintenanceWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *MaintenanceWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Maintenance worker stopped")
			return
		case <-ticker.C:
			w.cleanExpiredSessions()
			w.expireSubscriptions()
		}
	}
}

// cleanExpiredSessions удаляет сессии с истекшим сроком.
// Аутентификация их и так не принимает, здесь только чистка хранилища.
func (w *MaintenanceWorker) cleanExpiredSessions() {
	if err := w.sessionRepo.CleanExpired(w.db); err != nil {
		logger.Error("Failed to clean expired sessions", "error", err)
	}
}

// expireSubscriptions помечает истекшие платные подписки
// и возвращает пользователей на план free
func (w *MaintenanceWorker) expireSubscriptions() {
	result := w.db.Model(&models.User{}).
		Where("subscription_status = ? AND subscription_expires_at IS NOT NULL AND subscription_expires_at < ?",
			models.SubscriptionStatusActive, time.Now()).
		Updates(map[string]interface{}{
			"subscription_status": models.SubscriptionStatusExpired,
			"subscription_plan":   models.PlanFree,
		})
	if result.Error != nil {
		logger.Error("Failed to expire subscriptions", "error", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		logger.Info("Expired subscriptions downgraded", "count", result.RowsAffected)
	}
}
