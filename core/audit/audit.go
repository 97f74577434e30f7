package audit

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RequestLog is one persisted audit row per handled HTTP request.
type RequestLog struct {
	ID         uint   `gorm:"primaryKey"`
	RayID      string `gorm:"size:64;index"`
	Method     string `gorm:"size:8"`
	Path       string `gorm:"size:255"`
	StatusCode int
	DurationMs int64
	Error      string `gorm:"size:1024"`
	CreatedAt  time.Time
}

// Recorder persists request audit rows.
type Recorder struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRecorder creates a recorder and migrates the audit schema.
func NewRecorder(db *gorm.DB, l *zap.Logger) (*Recorder, error) {
	if err := db.AutoMigrate(&RequestLog{}); err != nil {
		return nil, err
	}
	return &Recorder{db: db, logger: l}, nil
}

// Record writes one audit row. Failures are logged, never surfaced to the
// request path.
func (r *Recorder) Record(entry RequestLog) {
	if err := r.db.Create(&entry).Error; err != nil {
		r.logger.Warn("Failed to write audit entry", zap.Error(err))
	}
}

// Middleware returns a Fiber middleware that records every request.
// A nil recorder disables auditing.
func Middleware(r *Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if r == nil {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		entry := RequestLog{
			Method:     c.Method(),
			Path:       c.Path(),
			StatusCode: c.Response().StatusCode(),
			DurationMs: time.Since(start).Milliseconds(),
		}
		if rid, ok := c.Locals("ray_id").(string); ok {
			entry.RayID = rid
		}
		if err != nil {
			entry.Error = err.Error()
		}

		r.Record(entry)
		return err
	}
}
