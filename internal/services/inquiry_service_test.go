package services

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"tour-packages-backend/internal/domain"
	"tour-packages-backend/internal/domain/models"
	"tour-packages-backend/internal/notify"
	"tour-packages-backend/internal/repositories"
)

type fakeNotifier struct {
	calls   int
	lastInq models.Inquiry
	results []notify.Result
}

func (f *fakeNotifier) Dispatch(requestID string, inq models.Inquiry, packageTitle string) []notify.Result {
	f.calls++
	f.lastInq = inq
	return f.results
}

func validInput() SubmitInquiryInput {
	return SubmitInquiryInput{
		Name:      "Asha Rao",
		Email:     "asha@example.com",
		Phone:     "+919876543210",
		PackageID: 3,
		Message:   "We would like a quote for two people.",
		Travelers: 2,
	}
}

func submissionService(saves *int, notifier *fakeNotifier) InquiryService {
	return InquiryService{
		Notifier: notifier,
		FetchPackage: func(id int64) (models.TourPackage, error) {
			if id != 3 {
				return models.TourPackage{}, domain.NotFoundError{Resource: "package"}
			}
			return models.TourPackage{ID: 3, Title: "Goa Getaway", Destination: "Goa"}, nil
		},
		SaveInquiry: func(inq models.Inquiry) (int64, error) {
			if saves != nil {
				*saves++
			}
			return 42, nil
		},
		LoadInquiry: func(id int64) (models.Inquiry, error) {
			return models.Inquiry{
				ID:           id,
				Name:         "Asha Rao",
				Email:        "asha@example.com",
				PackageID:    3,
				Status:       models.StatusNew,
				Travelers:    2,
				PackageTitle: "Goa Getaway",
			}, nil
		},
	}
}

func TestSubmitPersistsWithDefaultStatus(t *testing.T) {
	saves := 0
	notifier := &fakeNotifier{}
	svc := submissionService(&saves, notifier)

	saved, err := svc.Submit(validInput())
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if saved.ID != 42 {
		t.Fatalf("expected store-assigned id, got %d", saved.ID)
	}
	if saved.Status != models.StatusNew {
		t.Fatalf("expected default status %q, got %q", models.StatusNew, saved.Status)
	}
	if saves != 1 {
		t.Fatalf("expected 1 save, got %d", saves)
	}
	if notifier.calls != 1 || notifier.lastInq.ID != 42 {
		t.Fatalf("dispatcher not invoked with saved inquiry: calls=%d id=%d", notifier.calls, notifier.lastInq.ID)
	}
}

func TestSubmitRejectsInvalidInputWithoutSideEffects(t *testing.T) {
	cases := []struct {
		name  string
		tweak func(*SubmitInquiryInput)
		field string
	}{
		{"missing name", func(in *SubmitInquiryInput) { in.Name = "" }, "name"},
		{"short name", func(in *SubmitInquiryInput) { in.Name = "A" }, "name"},
		{"missing email", func(in *SubmitInquiryInput) { in.Email = "" }, "email"},
		{"bad email", func(in *SubmitInquiryInput) { in.Email = "not-an-email" }, "email"},
		{"bad phone", func(in *SubmitInquiryInput) { in.Phone = "phone-number" }, "phone"},
		{"missing package", func(in *SubmitInquiryInput) { in.PackageID = 0 }, "packageId"},
		{"short message", func(in *SubmitInquiryInput) { in.Message = "hi" }, "message"},
		{"negative travelers", func(in *SubmitInquiryInput) { in.Travelers = -1 }, "travelers"},
	}

	for _, tc := range cases {
		saves := 0
		notifier := &fakeNotifier{}
		svc := submissionService(&saves, notifier)

		in := validInput()
		tc.tweak(&in)

		_, err := svc.Submit(in)
		if !domain.IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
		var verr domain.ValidationError
		if errors.As(err, &verr) && verr.Field != tc.field {
			t.Fatalf("%s: expected field %q, got %q", tc.name, tc.field, verr.Field)
		}
		if saves != 0 || notifier.calls != 0 {
			t.Fatalf("%s: rejected submission had side effects", tc.name)
		}
	}
}

func TestSubmitUnknownPackageIsNotFoundAndNotSaved(t *testing.T) {
	saves := 0
	notifier := &fakeNotifier{}
	svc := submissionService(&saves, notifier)

	in := validInput()
	in.PackageID = 999

	_, err := svc.Submit(in)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
	if saves != 0 || notifier.calls != 0 {
		t.Fatalf("failed resolution must not persist or notify")
	}
}

func TestSubmitSucceedsWhenEveryNotificationFails(t *testing.T) {
	saves := 0
	notifier := &fakeNotifier{
		results: []notify.Result{
			{Channel: notify.ChannelOwnerEmail, Err: domain.NotificationError{Channel: "owner_email", Err: errors.New("smtp down")}},
			{Channel: notify.ChannelCustomerEmail, Err: domain.NotificationError{Channel: "customer_email", Err: errors.New("smtp down")}},
			{Channel: notify.ChannelCustomerWhatsApp, Err: domain.NotificationError{Channel: "customer_whatsapp", Err: errors.New("twilio down")}},
			{Channel: notify.ChannelOwnerWhatsApp, Err: domain.NotificationError{Channel: "owner_whatsapp", Err: errors.New("twilio down")}},
		},
	}
	svc := submissionService(&saves, notifier)

	saved, err := svc.Submit(validInput())
	if err != nil {
		t.Fatalf("submission success must not depend on notifications, got %v", err)
	}
	if saved.ID != 42 || saves != 1 {
		t.Fatalf("inquiry not persisted: id=%d saves=%d", saved.ID, saves)
	}
}

func TestSubmitPersistenceFailureIsInternal(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := submissionService(nil, notifier)
	svc.SaveInquiry = func(models.Inquiry) (int64, error) {
		return 0, errors.New("connection reset")
	}

	_, err := svc.Submit(validInput())
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
	if notifier.calls != 0 {
		t.Fatalf("failed persistence must not notify")
	}
}

func TestSubmitDefaultsTravelersToOne(t *testing.T) {
	var captured models.Inquiry
	svc := submissionService(nil, &fakeNotifier{})
	svc.SaveInquiry = func(inq models.Inquiry) (int64, error) {
		captured = inq
		return 42, nil
	}

	in := validInput()
	in.Travelers = 0
	if _, err := svc.Submit(in); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if captured.Travelers != 1 {
		t.Fatalf("expected travelers default 1, got %d", captured.Travelers)
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc := InquiryService{}

	_, err := svc.UpdateStatus(5, "archived")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateStatusStoresPendingAsNew(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT id FROM inquiries").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectExec("UPDATE inquiries SET status").
		WithArgs("new", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("LEFT JOIN packages").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "phone", "package_id", "message", "status",
			"travelers", "preferred_date", "created_at", "updated_at", "title", "destination",
		}).AddRow(
			int64(5), "Asha Rao", "asha@example.com", "+919876543210", int64(3),
			"We would like a quote for two people.", "new", 2, "", now, now,
			"Goa Getaway", "Goa",
		))

	svc := InquiryService{InquiryRepo: repositories.InquiryRepository{DB: db}}
	got, err := svc.UpdateStatus(5, "pending")
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if got.Status != models.StatusNew {
		t.Fatalf("expected stored status %q, got %q", models.StatusNew, got.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
