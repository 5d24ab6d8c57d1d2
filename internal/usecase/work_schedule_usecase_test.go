package usecase

import (
	"context"
	"errors"
	"testing"

	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newScheduleUsecaseForTest(scheduleRepo *fakeScheduleRepo, practitionerRepo *fakePractitionerRepo, audit *fakeAudit) *workScheduleUsecase {
	return &workScheduleUsecase{
		log:                testLogger(),
		scheduleRepo:       scheduleRepo,
		practitionerRepo:   practitionerRepo,
		audit:              audit,
		transact:           passthroughTx,
		defaultSlotMinutes: 30,
	}
}

func knownPractitionerRepo() *fakePractitionerRepo {
	return &fakePractitionerRepo{
		findByIDFn: func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Practitioner, error) {
			return &entity.Practitioner{ID: id, FullName: "Dr. Sched", Active: true}, nil
		},
	}
}

func TestCreateScheduleDefaultsSlotMinutes(t *testing.T) {
	var created *entity.WorkSchedule
	scheduleRepo := &fakeScheduleRepo{
		createFn: func(ctx context.Context, db *gorm.DB, schedule *entity.WorkSchedule) error {
			schedule.ID = 7
			created = schedule
			return nil
		},
	}
	audit := &fakeAudit{}
	u := newScheduleUsecaseForTest(scheduleRepo, knownPractitionerRepo(), audit)

	result, err := u.Create(context.Background(), &dto.CreateWorkScheduleRequest{
		PractitionerID: uuid.New(),
		Weekday:        0,
		StartTime:      "08:00",
		EndTime:        "12:00",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if created.SlotMinutes != 30 {
		t.Errorf("slot_minutes = %d, want default 30", created.SlotMinutes)
	}
	if !created.Active {
		t.Errorf("new schedules must start active")
	}
	if result.ID != 7 {
		t.Errorf("id = %d, want 7", result.ID)
	}
	if len(audit.actions) != 1 || audit.actions[0] != entity.AuditActionScheduleCreate {
		t.Errorf("audit actions = %v", audit.actions)
	}
}

func TestCreateScheduleValidation(t *testing.T) {
	u := newScheduleUsecaseForTest(&fakeScheduleRepo{}, knownPractitionerRepo(), &fakeAudit{})

	cases := []struct {
		name    string
		req     dto.CreateWorkScheduleRequest
		wantErr error
	}{
		{
			name:    "weekday out of range",
			req:     dto.CreateWorkScheduleRequest{PractitionerID: uuid.New(), Weekday: 7, StartTime: "08:00", EndTime: "12:00"},
			wantErr: ErrInvalidWeekday,
		},
		{
			name:    "negative weekday",
			req:     dto.CreateWorkScheduleRequest{PractitionerID: uuid.New(), Weekday: -1, StartTime: "08:00", EndTime: "12:00"},
			wantErr: ErrInvalidWeekday,
		},
		{
			name:    "bad start time",
			req:     dto.CreateWorkScheduleRequest{PractitionerID: uuid.New(), Weekday: 0, StartTime: "8am", EndTime: "12:00"},
			wantErr: ErrInvalidTimeFormat,
		},
		{
			name:    "end before start",
			req:     dto.CreateWorkScheduleRequest{PractitionerID: uuid.New(), Weekday: 0, StartTime: "12:00", EndTime: "08:00"},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "empty range",
			req:     dto.CreateWorkScheduleRequest{PractitionerID: uuid.New(), Weekday: 0, StartTime: "08:00", EndTime: "08:00"},
			wantErr: ErrInvalidTimeRange,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := u.Create(context.Background(), &tc.req); !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestCreateScheduleUnknownPractitioner(t *testing.T) {
	practitionerRepo := &fakePractitionerRepo{
		findByIDFn: func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Practitioner, error) {
			return nil, nil
		},
	}
	u := newScheduleUsecaseForTest(&fakeScheduleRepo{}, practitionerRepo, &fakeAudit{})

	_, err := u.Create(context.Background(), &dto.CreateWorkScheduleRequest{
		PractitionerID: uuid.New(),
		Weekday:        2,
		StartTime:      "08:00",
		EndTime:        "12:00",
	})
	if !errors.Is(err, ErrPractitionerNotFound) {
		t.Fatalf("err = %v, want ErrPractitionerNotFound", err)
	}
}

func TestUpdateSchedulePatchesFields(t *testing.T) {
	stored := &entity.WorkSchedule{
		ID:             4,
		PractitionerID: uuid.New(),
		Weekday:        0,
		StartTime:      "08:00",
		EndTime:        "12:00",
		SlotMinutes:    30,
		Active:         true,
	}
	scheduleRepo := &fakeScheduleRepo{
		findByIDFn: func(ctx context.Context, db *gorm.DB, id int) (*entity.WorkSchedule, error) {
			return stored, nil
		},
		updateFn: func(ctx context.Context, db *gorm.DB, schedule *entity.WorkSchedule) error {
			return nil
		},
	}
	u := newScheduleUsecaseForTest(scheduleRepo, knownPractitionerRepo(), &fakeAudit{})

	endTime := "13:00"
	slotMinutes := 20
	result, err := u.Update(context.Background(), 4, &dto.UpdateWorkScheduleRequest{
		EndTime:     &endTime,
		SlotMinutes: &slotMinutes,
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if result.StartTime != "08:00" || result.EndTime != "13:00" {
		t.Errorf("range = %s..%s", result.StartTime, result.EndTime)
	}
	if result.SlotMinutes != 20 {
		t.Errorf("slot_minutes = %d, want 20", result.SlotMinutes)
	}
	if result.Weekday != 0 {
		t.Errorf("weekday should be untouched, got %d", result.Weekday)
	}
}

func TestUpdateScheduleRejectsInvertedRange(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{
		findByIDFn: func(ctx context.Context, db *gorm.DB, id int) (*entity.WorkSchedule, error) {
			return &entity.WorkSchedule{ID: id, StartTime: "08:00", EndTime: "12:00", SlotMinutes: 30}, nil
		},
	}
	u := newScheduleUsecaseForTest(scheduleRepo, knownPractitionerRepo(), &fakeAudit{})

	endTime := "07:00"
	_, err := u.Update(context.Background(), 4, &dto.UpdateWorkScheduleRequest{EndTime: &endTime})
	if !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("err = %v, want ErrInvalidTimeRange", err)
	}
}

func TestUpdateScheduleNotFound(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{
		findByIDFn: func(ctx context.Context, db *gorm.DB, id int) (*entity.WorkSchedule, error) {
			return nil, nil
		},
	}
	u := newScheduleUsecaseForTest(scheduleRepo, knownPractitionerRepo(), &fakeAudit{})

	_, err := u.Update(context.Background(), 99, &dto.UpdateWorkScheduleRequest{})
	if !errors.Is(err, ErrScheduleNotFound) {
		t.Fatalf("err = %v, want ErrScheduleNotFound", err)
	}
}

func TestDeactivateSchedule(t *testing.T) {
	audit := &fakeAudit{}
	scheduleRepo := &fakeScheduleRepo{
		deactivateFn: func(ctx context.Context, db *gorm.DB, id int) (int64, error) {
			return 1, nil
		},
	}
	u := newScheduleUsecaseForTest(scheduleRepo, knownPractitionerRepo(), audit)

	if err := u.Deactivate(context.Background(), 4); err != nil {
		t.Fatalf("Deactivate error: %v", err)
	}
	if len(audit.actions) != 1 || audit.actions[0] != entity.AuditActionScheduleDeactivate {
		t.Errorf("audit actions = %v", audit.actions)
	}
}

func TestDeactivateScheduleNotFound(t *testing.T) {
	audit := &fakeAudit{}
	scheduleRepo := &fakeScheduleRepo{
		deactivateFn: func(ctx context.Context, db *gorm.DB, id int) (int64, error) {
			return 0, nil
		},
	}
	u := newScheduleUsecaseForTest(scheduleRepo, knownPractitionerRepo(), audit)

	if err := u.Deactivate(context.Background(), 99); !errors.Is(err, ErrScheduleNotFound) {
		t.Fatalf("err = %v, want ErrScheduleNotFound", err)
	}
	if len(audit.actions) != 0 {
		t.Errorf("no audit entry expected, got %v", audit.actions)
	}
}

func TestListByPractitionerReturnsActiveSchedules(t *testing.T) {
	practitionerID := uuid.New()
	scheduleRepo := &fakeScheduleRepo{
		findActiveFn: func(ctx context.Context, db *gorm.DB, id uuid.UUID) ([]entity.WorkSchedule, error) {
			return []entity.WorkSchedule{
				{ID: 1, PractitionerID: id, Weekday: 0, StartTime: "08:00", EndTime: "12:00", SlotMinutes: 30, Active: true},
				{ID: 2, PractitionerID: id, Weekday: 2, StartTime: "14:00", EndTime: "17:00", SlotMinutes: 30, Active: true},
			}, nil
		},
	}
	u := newScheduleUsecaseForTest(scheduleRepo, knownPractitionerRepo(), &fakeAudit{})

	result, err := u.ListByPractitioner(context.Background(), practitionerID)
	if err != nil {
		t.Fatalf("ListByPractitioner error: %v", err)
	}
	if result.Total != 2 || len(result.Schedules) != 2 {
		t.Fatalf("total = %d, schedules = %d", result.Total, len(result.Schedules))
	}
	if result.Schedules[1].Weekday != 2 {
		t.Errorf("weekday = %d, want 2", result.Schedules[1].Weekday)
	}
}
