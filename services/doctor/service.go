package doctor

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"medibook/models"
	"medibook/services/scheduling"
	"medibook/utils"
)

func (s *DefaultDoctorService) Create(ctx context.Context, doc *models.Doctor) (*models.Doctor, error) {
	if err := validateSchedule(doc.Schedule); err != nil {
		return nil, err
	}
	doc.Active = true
	if err := s.Repo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *DefaultDoctorService) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultDoctorService) List(ctx context.Context, specialty string, activeOnly bool) ([]models.Doctor, error) {
	return s.Repo.List(ctx, specialty, activeOnly)
}

func (s *DefaultDoctorService) Update(ctx context.Context, id string, update map[string]interface{}) error {
	return s.Repo.Update(ctx, id, update)
}

func (s *DefaultDoctorService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultDoctorService) UpdateSchedule(ctx context.Context, id string, schedule models.ScheduleConfig) error {
	if err := validateSchedule(schedule); err != nil {
		return err
	}
	if err := s.Repo.UpdateSchedule(ctx, id, schedule); err != nil {
		return err
	}
	s.invalidateAvailability(ctx, id)
	return nil
}

func (s *DefaultDoctorService) AddBlockedDate(ctx context.Context, id, date string) error {
	canonical, ok := scheduling.NormalizeBlockedDate(date)
	if !ok {
		return fmt.Errorf("invalid blocked date %q, expected YYYY-MM-DD", date)
	}
	if err := s.Repo.AddBlockedDate(ctx, id, canonical); err != nil {
		return err
	}
	s.invalidateAvailability(ctx, id)
	return nil
}

func (s *DefaultDoctorService) RemoveBlockedDate(ctx context.Context, id, date string) error {
	canonical, ok := scheduling.NormalizeBlockedDate(date)
	if !ok {
		return fmt.Errorf("invalid blocked date %q, expected YYYY-MM-DD", date)
	}
	if err := s.Repo.RemoveBlockedDate(ctx, id, canonical); err != nil {
		return err
	}
	s.invalidateAvailability(ctx, id)
	return nil
}

// validateSchedule rejects configurations the slot calculator would silently
// degrade to an empty day; letting a doctor save one of these is always a
// data-entry mistake.
func validateSchedule(cfg models.ScheduleConfig) error {
	if cfg.SlotDuration <= 0 {
		return fmt.Errorf("slot duration must be a positive number of minutes, got %d", cfg.SlotDuration)
	}
	if _, err := time.Parse("15:04", cfg.StartTime); err != nil {
		return fmt.Errorf("invalid start time %q, expected HH:mm", cfg.StartTime)
	}
	if _, err := time.Parse("15:04", cfg.EndTime); err != nil {
		return fmt.Errorf("invalid end time %q, expected HH:mm", cfg.EndTime)
	}
	if cfg.StartTime >= cfg.EndTime {
		return fmt.Errorf("start time %s must be before end time %s", cfg.StartTime, cfg.EndTime)
	}
	if (cfg.BreakStart == "") != (cfg.BreakEnd == "") {
		return fmt.Errorf("break start and break end must be set together")
	}
	return nil
}

// invalidateAvailability drops every cached availability day for the doctor;
// a schedule change affects all dates.
func (s *DefaultDoctorService) invalidateAvailability(ctx context.Context, doctorID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.DeleteByPattern(ctx, fmt.Sprintf("availability:%s:*", doctorID)); err != nil {
		utils.GetLogger().Warn("Failed to drop availability cache entries",
			zap.String("doctorId", doctorID), zap.Error(err))
	}
}
