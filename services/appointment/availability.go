package appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"medibook/config"
	"medibook/models"
	"medibook/services/scheduling"
	"medibook/utils"
)

func availabilityCacheKey(doctorID, date string) string {
	return fmt.Sprintf("availability:%s:%s", doctorID, date)
}

// GetAvailability returns the bookable slots for a doctor on a date, with
// same-day past slots removed and display labels attached. Results are
// cached briefly; any booking or schedule change for the doctor invalidates
// the day's entry. Past-slot filtering is re-applied to cache hits so an
// entry cached just before a slot's start cannot keep offering it.
func (s *DefaultAppointmentService) GetAvailability(ctx context.Context, doctorID, date string) (*models.DayAvailability, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, availabilityCacheKey(doctorID, date)); err == nil {
			var cached models.DayAvailability
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				s.dropPastSlots(&cached)
				return &cached, nil
			}
			logger.Warn("Discarding corrupt availability cache entry",
				zap.String("doctorId", doctorID), zap.String("date", date))
		}
	}

	availability, err := s.computeAvailability(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(availability); err == nil {
			ttl := time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second
			if err := s.Cache.Set(ctx, availabilityCacheKey(doctorID, date), string(raw), ttl); err != nil {
				logger.Warn("Failed to cache availability", zap.Error(err))
			}
		}
	}
	return availability, nil
}

// computeAvailability always works from fresh repository reads; Book relies
// on that to re-validate a slot right before inserting.
func (s *DefaultAppointmentService) computeAvailability(ctx context.Context, doctorID, date string) (*models.DayAvailability, error) {
	doctor, err := s.DoctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("doctor %s not found: %w", doctorID, err)
	}

	availability := &models.DayAvailability{
		DoctorID: doctorID,
		Date:     date,
		Slots:    []models.SlotView{},
	}

	if scheduling.IsDateBlocked(doctor.Schedule, date) {
		availability.Blocked = true
		return availability, nil
	}

	booked, err := s.AppointmentRepo.GetByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments for doctor %s on %s: %w", doctorID, date, err)
	}

	now := s.now()
	for _, slot := range scheduling.AvailableSlots(doctor.Schedule, doctorID, date, booked) {
		if scheduling.IsSlotInPast(slot, date, now) {
			continue
		}
		availability.Slots = append(availability.Slots, models.SlotView{
			Time:    slot,
			Display: scheduling.FormatTimeDisplay(slot),
		})
	}
	return availability, nil
}

// dropPastSlots removes slots that started since the availability was
// computed. Only same-day entries are affected.
func (s *DefaultAppointmentService) dropPastSlots(availability *models.DayAvailability) {
	now := s.now()
	kept := availability.Slots[:0]
	for _, slot := range availability.Slots {
		if scheduling.IsSlotInPast(slot.Time, availability.Date, now) {
			continue
		}
		kept = append(kept, slot)
	}
	availability.Slots = kept
}

// InvalidateAvailability drops the cached day entry for a doctor.
func (s *DefaultAppointmentService) InvalidateAvailability(ctx context.Context, doctorID, date string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Delete(ctx, availabilityCacheKey(doctorID, date)); err != nil {
		utils.GetLogger().Warn("Failed to invalidate availability cache",
			zap.String("doctorId", doctorID), zap.String("date", date), zap.Error(err))
	}
}
