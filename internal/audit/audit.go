package audit

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"casino-platform/internal/logger"
)

// Service appends admin action records. Best-effort: failures are logged,
// never surfaced to the caller.
type Service struct {
	db *sql.DB
}

func New(db *sql.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Log(adminID, action, targetID, details string) {
	_, err := s.db.Exec(`
	INSERT INTO audit_logs(id, admin_id, action, target_id, details, created_at)
	VALUES (?,?,?,?,?,?)
	`, uuid.New().String(), adminID, action, targetID, details, time.Now().Unix())
	if err != nil {
		logger.Log.Warn("audit log write failed",
			zap.String("admin_id", adminID),
			zap.String("action", action),
			zap.Error(err))
	}
}
