package services

import (
	"fmt"
	"regexp"
	"strings"

	"tour-packages-backend/internal/domain"
	"tour-packages-backend/internal/domain/models"
	"tour-packages-backend/internal/notify"
	"tour-packages-backend/internal/repositories"
	"tour-packages-backend/internal/utils"
)

var (
	emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	phonePattern = regexp.MustCompile(`^[+]?[1-9][\d\-\s()]{0,15}$`)
)

// Notifier is the dispatch seam the workflow needs; satisfied by
// notify.Dispatcher and by fakes in tests.
type Notifier interface {
	Dispatch(requestID string, inq models.Inquiry, packageTitle string) []notify.Result
}

type SubmitInquiryInput struct {
	Name          string
	Email         string
	Phone         string
	PackageID     int64
	Message       string
	Travelers     int
	PreferredDate string
}

// InquiryService runs the submission workflow and the admin operations over
// inquiries. FetchPackage/SaveInquiry/LoadInquiry are injectable for tests
// and default to the repositories.
type InquiryService struct {
	InquiryRepo repositories.InquiryRepository
	PackageRepo repositories.PackageRepository
	Notifier    Notifier
	RequestID   string

	FetchPackage func(int64) (models.TourPackage, error)
	SaveInquiry  func(models.Inquiry) (int64, error)
	LoadInquiry  func(int64) (models.Inquiry, error)
}

// Submit validates the input, verifies the referenced package, persists the
// inquiry, then fans out notifications best-effort. Success is defined by
// persistence alone; notification outcomes are logged and discarded.
func (s InquiryService) Submit(in SubmitInquiryInput) (models.Inquiry, error) {
	if err := validateSubmit(&in); err != nil {
		return models.Inquiry{}, err
	}

	pkg, err := s.fetchPackage(in.PackageID)
	if err != nil {
		return models.Inquiry{}, err
	}

	id, err := s.saveInquiry(models.Inquiry{
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		PackageID:     in.PackageID,
		Message:       in.Message,
		Status:        models.StatusNew,
		Travelers:     in.Travelers,
		PreferredDate: in.PreferredDate,
	})
	if err != nil {
		return models.Inquiry{}, domain.InternalError{Msg: "failed to save inquiry", Err: err}
	}

	saved, err := s.loadInquiry(id)
	if err != nil {
		return models.Inquiry{}, domain.InternalError{Msg: "failed to load saved inquiry", Err: err}
	}

	utils.LogEvent(s.RequestID, "inquiry", "created", fmt.Sprintf("inquiry_id=%d package_id=%d", saved.ID, saved.PackageID))

	if s.Notifier != nil {
		// best-effort fan-out; results are logged inside the dispatcher
		s.Notifier.Dispatch(s.RequestID, saved, pkg.Title)
	}

	return saved, nil
}

func (s InquiryService) List(f repositories.InquiryFilter) ([]models.Inquiry, error) {
	if f.Status != "" {
		normalized, ok := models.NormalizeStatus(f.Status)
		if !ok {
			return []models.Inquiry{}, nil
		}
		f.Status = normalized
	}
	return s.InquiryRepo.List(f)
}

func (s InquiryService) Get(id int64) (models.Inquiry, error) {
	return s.InquiryRepo.GetByID(id)
}

// UpdateStatus validates against the allow-list before touching the store,
// so a rejected value leaves the stored status unchanged.
func (s InquiryService) UpdateStatus(id int64, status string) (models.Inquiry, error) {
	normalized, ok := models.NormalizeStatus(status)
	if !ok {
		return models.Inquiry{}, domain.ValidationError{
			Field: "status",
			Msg: fmt.Sprintf("must be one of: %s, %s, %s, %s",
				models.StatusNew, models.StatusContacted, models.StatusBooked, models.StatusClosed),
		}
	}

	if err := s.InquiryRepo.UpdateStatus(id, normalized); err != nil {
		return models.Inquiry{}, err
	}

	utils.LogEvent(s.RequestID, "inquiry", "status_updated", fmt.Sprintf("inquiry_id=%d status=%s", id, normalized))
	return s.InquiryRepo.GetByID(id)
}

func (s InquiryService) Delete(id int64) error {
	if err := s.InquiryRepo.Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "inquiry", "deleted", fmt.Sprintf("inquiry_id=%d", id))
	return nil
}

func validateSubmit(in *SubmitInquiryInput) error {
	in.Name = utils.NormalizeSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Message = strings.TrimSpace(in.Message)
	in.PreferredDate = strings.TrimSpace(in.PreferredDate)

	if in.Name == "" {
		return domain.ValidationError{Field: "name", Msg: "is required"}
	}
	if len(in.Name) < 2 || len(in.Name) > 100 {
		return domain.ValidationError{Field: "name", Msg: "must be 2-100 characters"}
	}
	if in.Email == "" {
		return domain.ValidationError{Field: "email", Msg: "is required"}
	}
	if !emailPattern.MatchString(in.Email) {
		return domain.ValidationError{Field: "email", Msg: "must be a valid email address"}
	}
	if in.Phone != "" && !phonePattern.MatchString(in.Phone) {
		return domain.ValidationError{Field: "phone", Msg: "must be a valid phone number"}
	}
	if in.PackageID <= 0 {
		return domain.ValidationError{Field: "packageId", Msg: "is required"}
	}
	if in.Message == "" {
		return domain.ValidationError{Field: "message", Msg: "is required"}
	}
	if len(in.Message) < 10 || len(in.Message) > 1000 {
		return domain.ValidationError{Field: "message", Msg: "must be 10-1000 characters"}
	}
	if in.Travelers < 0 {
		return domain.ValidationError{Field: "travelers", Msg: "must be at least 1"}
	}
	if in.Travelers == 0 {
		in.Travelers = 1
	}
	return nil
}

func (s InquiryService) fetchPackage(id int64) (models.TourPackage, error) {
	if s.FetchPackage != nil {
		return s.FetchPackage(id)
	}
	return s.PackageRepo.GetByID(id)
}

func (s InquiryService) saveInquiry(inq models.Inquiry) (int64, error) {
	if s.SaveInquiry != nil {
		return s.SaveInquiry(inq)
	}
	return s.InquiryRepo.Insert(inq)
}

func (s InquiryService) loadInquiry(id int64) (models.Inquiry, error) {
	if s.LoadInquiry != nil {
		return s.LoadInquiry(id)
	}
	return s.InquiryRepo.GetByID(id)
}
