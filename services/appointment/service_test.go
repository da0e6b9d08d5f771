package appointment

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	appointmentRepo "medibook/database/repository/appointment"
	"medibook/models"
)

type fakeDoctorRepo struct {
	doctors map[string]*models.Doctor
}

func (f *fakeDoctorRepo) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	if d, ok := f.doctors[id]; ok {
		out := *d
		return &out, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeDoctorRepo) Create(ctx context.Context, d *models.Doctor) error { return nil }
func (f *fakeDoctorRepo) List(ctx context.Context, specialty string, activeOnly bool) ([]models.Doctor, error) {
	return nil, nil
}
func (f *fakeDoctorRepo) Update(ctx context.Context, id string, update map[string]interface{}) error {
	return nil
}
func (f *fakeDoctorRepo) Delete(ctx context.Context, id string) error { return nil }
func (f *fakeDoctorRepo) UpdateSchedule(ctx context.Context, id string, schedule models.ScheduleConfig) error {
	return nil
}
func (f *fakeDoctorRepo) AddBlockedDate(ctx context.Context, id, date string) error    { return nil }
func (f *fakeDoctorRepo) RemoveBlockedDate(ctx context.Context, id, date string) error { return nil }
func (f *fakeDoctorRepo) EnsureIndexes() error                                         { return nil }

type fakePatientRepo struct {
	patients map[string]*models.Patient
}

func (f *fakePatientRepo) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	if p, ok := f.patients[id]; ok {
		return p, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakePatientRepo) Create(ctx context.Context, p *models.Patient) error { return nil }
func (f *fakePatientRepo) GetByPhone(ctx context.Context, phone string) (*models.Patient, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakePatientRepo) List(ctx context.Context) ([]models.Patient, error) { return nil, nil }
func (f *fakePatientRepo) Update(ctx context.Context, id string, update map[string]interface{}) error {
	return nil
}
func (f *fakePatientRepo) Delete(ctx context.Context, id string) error { return nil }
func (f *fakePatientRepo) EnsureIndexes() error                        { return nil }

type fakeAppointmentRepo struct {
	appts     []models.Appointment
	createErr error
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, a *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	a.ID = "generated-id"
	f.appts = append(f.appts, *a)
	return nil
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	for i := range f.appts {
		if f.appts[i].ID == id {
			return &f.appts[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	for i := range f.appts {
		if f.appts[i].ID == id {
			f.appts[i].Status = status
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeAppointmentRepo) GetByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.DoctorID == doctorID && a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) GetByPatientDoctorDate(ctx context.Context, patientID, doctorID, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.PatientID == patientID && a.DoctorID == doctorID && a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) GetByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeAppointmentRepo) GetByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeAppointmentRepo) EnsureIndexes() error { return nil }

func newTestService(appts *fakeAppointmentRepo, now time.Time) *DefaultAppointmentService {
	return &DefaultAppointmentService{
		DoctorRepo: &fakeDoctorRepo{doctors: map[string]*models.Doctor{
			"doc-1": {
				ID:     "doc-1",
				Name:   "Dr. Okafor",
				Active: true,
				Schedule: models.ScheduleConfig{
					StartTime:    "09:00",
					EndTime:      "12:00",
					SlotDuration: 30,
					BlockedDates: []any{"2026-09-10"},
				},
			},
		}},
		PatientRepo: &fakePatientRepo{patients: map[string]*models.Patient{
			"pat-1": {ID: "pat-1", Name: "Amina", Phone: "0700000000"},
			"pat-2": {ID: "pat-2", Name: "Brian", Phone: "0711111111"},
		}},
		AppointmentRepo: appts,
		Clock:           func() time.Time { return now },
	}
}

func bookingCode(t *testing.T, err error) string {
	t.Helper()
	var bookingErr *BookingError
	if !errors.As(err, &bookingErr) {
		t.Fatalf("expected a BookingError, got %v", err)
	}
	return bookingErr.Code
}

func TestGetAvailability_FiltersPastSlotsToday(t *testing.T) {
	now := time.Date(2026, 9, 3, 11, 15, 0, 0, time.Local)
	svc := newTestService(&fakeAppointmentRepo{}, now)

	got, err := svc.GetAvailability(context.Background(), "doc-1", "2026-09-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var times []string
	for _, s := range got.Slots {
		times = append(times, s.Time)
	}
	if !reflect.DeepEqual(times, []string{"11:30"}) {
		t.Fatalf("expected only 11:30 left at 11:15, got %v", times)
	}
	if got.Slots[0].Display != "11:30 AM" {
		t.Fatalf("expected display label 11:30 AM, got %q", got.Slots[0].Display)
	}
}

func TestGetAvailability_FutureDateKeepsAllSlots(t *testing.T) {
	now := time.Date(2026, 9, 3, 11, 15, 0, 0, time.Local)
	svc := newTestService(&fakeAppointmentRepo{}, now)

	got, err := svc.GetAvailability(context.Background(), "doc-1", "2026-09-04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Slots) != 6 {
		t.Fatalf("expected all 6 slots on a future date, got %d", len(got.Slots))
	}
}

func TestGetAvailability_BlockedDate(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{}, time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local))

	got, err := svc.GetAvailability(context.Background(), "doc-1", "2026-09-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Blocked || len(got.Slots) != 0 {
		t.Fatalf("expected blocked day with no slots, got blocked=%v slots=%v", got.Blocked, got.Slots)
	}
}

func TestGetAvailability_UnknownDoctor(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{}, time.Now())

	if _, err := svc.GetAvailability(context.Background(), "doc-404", "2026-09-03"); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Fatalf("expected ErrNoDocuments, got %v", err)
	}
}

func TestBook_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := newTestService(repo, time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local))

	appt, err := svc.Book(context.Background(), models.BookAppointmentRequest{
		DoctorID:  "doc-1",
		PatientID: "pat-1",
		Date:      "2026-09-03",
		Time:      "10:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.Status != models.AppointmentPending {
		t.Fatalf("expected pending status, got %s", appt.Status)
	}
	if len(repo.appts) != 1 {
		t.Fatalf("expected one stored appointment, got %d", len(repo.appts))
	}
}

func TestBook_ReceptionistBookingIsConfirmed(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{}, time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local))

	appt, err := svc.Book(context.Background(), models.BookAppointmentRequest{
		DoctorID:  "doc-1",
		PatientID: "pat-1",
		Date:      "2026-09-03",
		Time:      "10:00",
		BookedBy:  "receptionist",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.Status != models.AppointmentConfirmed {
		t.Fatalf("expected confirmed status, got %s", appt.Status)
	}
}

func TestBook_SlotTaken(t *testing.T) {
	repo := &fakeAppointmentRepo{appts: []models.Appointment{
		{ID: "a1", DoctorID: "doc-1", PatientID: "pat-2", Date: "2026-09-03", Time: "10:00", Status: models.AppointmentConfirmed},
	}}
	svc := newTestService(repo, time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local))

	_, err := svc.Book(context.Background(), models.BookAppointmentRequest{
		DoctorID:  "doc-1",
		PatientID: "pat-1",
		Date:      "2026-09-03",
		Time:      "10:00",
	})
	if code := bookingCode(t, err); code != CodeSlotTaken {
		t.Fatalf("expected %s, got %s", CodeSlotTaken, code)
	}
}

func TestBook_CancelledSlotRebookable(t *testing.T) {
	repo := &fakeAppointmentRepo{appts: []models.Appointment{
		{ID: "a1", DoctorID: "doc-1", PatientID: "pat-2", Date: "2026-09-03", Time: "10:00", Status: models.AppointmentCancelled},
	}}
	svc := newTestService(repo, time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local))

	if _, err := svc.Book(context.Background(), models.BookAppointmentRequest{
		DoctorID:  "doc-1",
		PatientID: "pat-1",
		Date:      "2026-09-03",
		Time:      "10:00",
	}); err != nil {
		t.Fatalf("expected cancelled slot to be rebookable, got %v", err)
	}
}

func TestBook_PatientAlreadyBookedSameDay(t *testing.T) {
	repo := &fakeAppointmentRepo{appts: []models.Appointment{
		{ID: "a1", DoctorID: "doc-1", PatientID: "pat-1", Date: "2026-09-03", Time: "09:00", Status: models.AppointmentPending},
	}}
	svc := newTestService(repo, time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local))

	_, err := svc.Book(context.Background(), models.BookAppointmentRequest{
		DoctorID:  "doc-1",
		PatientID: "pat-1",
		Date:      "2026-09-03",
		Time:      "10:00",
	})
	if code := bookingCode(t, err); code != CodeAlreadyBooked {
		t.Fatalf("expected %s, got %s", CodeAlreadyBooked, code)
	}
}

func TestBook_BlockedDate(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{}, time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local))

	_, err := svc.Book(context.Background(), models.BookAppointmentRequest{
		DoctorID:  "doc-1",
		PatientID: "pat-1",
		Date:      "2026-09-10",
		Time:      "10:00",
	})
	if code := bookingCode(t, err); code != CodeDateBlocked {
		t.Fatalf("expected %s, got %s", CodeDateBlocked, code)
	}
}

func TestBook_PastSlotRejected(t *testing.T) {
	now := time.Date(2026, 9, 3, 11, 15, 0, 0, time.Local)
	svc := newTestService(&fakeAppointmentRepo{}, now)

	_, err := svc.Book(context.Background(), models.BookAppointmentRequest{
		DoctorID:  "doc-1",
		PatientID: "pat-1",
		Date:      "2026-09-03",
		Time:      "10:00",
	})
	if code := bookingCode(t, err); code != CodeSlotInPast {
		t.Fatalf("expected %s, got %s", CodeSlotInPast, code)
	}
}

func TestBook_SlotNotOffered(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{}, time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local))

	// 10:15 is not on the 30-minute grid.
	_, err := svc.Book(context.Background(), models.BookAppointmentRequest{
		DoctorID:  "doc-1",
		PatientID: "pat-1",
		Date:      "2026-09-03",
		Time:      "10:15",
	})
	if code := bookingCode(t, err); code != CodeSlotNotOffered {
		t.Fatalf("expected %s, got %s", CodeSlotNotOffered, code)
	}
}

func TestBook_InsertRaceMapsToSlotTaken(t *testing.T) {
	repo := &fakeAppointmentRepo{createErr: appointmentRepo.ErrSlotConflict}
	svc := newTestService(repo, time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local))

	_, err := svc.Book(context.Background(), models.BookAppointmentRequest{
		DoctorID:  "doc-1",
		PatientID: "pat-1",
		Date:      "2026-09-03",
		Time:      "10:00",
	})
	if code := bookingCode(t, err); code != CodeSlotTaken {
		t.Fatalf("expected %s, got %s", CodeSlotTaken, code)
	}
}

func TestCancel_FreesSlotForRebooking(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := newTestService(repo, time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local))

	appt, err := svc.Book(context.Background(), models.BookAppointmentRequest{
		DoctorID:  "doc-1",
		PatientID: "pat-1",
		Date:      "2026-09-03",
		Time:      "10:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Cancel(context.Background(), appt.ID); err != nil {
		t.Fatalf("unexpected cancel error: %v", err)
	}

	if _, err := svc.Book(context.Background(), models.BookAppointmentRequest{
		DoctorID:  "doc-1",
		PatientID: "pat-2",
		Date:      "2026-09-03",
		Time:      "10:00",
	}); err != nil {
		t.Fatalf("expected slot to be free after cancellation, got %v", err)
	}
}

func TestBook_InactiveDoctor(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{}, time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local))
	svc.DoctorRepo.(*fakeDoctorRepo).doctors["doc-1"].Active = false

	_, err := svc.Book(context.Background(), models.BookAppointmentRequest{
		DoctorID:  "doc-1",
		PatientID: "pat-1",
		Date:      "2026-09-03",
		Time:      "10:00",
	})
	if code := bookingCode(t, err); code != CodeDoctorInactive {
		t.Fatalf("expected %s, got %s", CodeDoctorInactive, code)
	}
}
