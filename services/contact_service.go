package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"portfolio-api/config"
	"portfolio-api/models"
	"portfolio-api/utils"

	"gorm.io/gorm"
)

var (
	ErrContactNotFound = errors.New("contact not found")
	ErrInvalidStatus   = errors.New("invalid status")
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// ContactService owns every store operation on the contacts table. Create,
// status-update and delete are the only mutations; no other field is touched
// after creation.
type ContactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	if db == nil {
		db = config.DB
	}
	return &ContactService{db: db}
}

// SubmitInput carries the visitor-supplied fields of a new submission.
type SubmitInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Submit validates the input and persists a new contact with status "new".
// Exactly one row is created on success; nothing is written on failure.
// ipAddress and userAgent are connection metadata stored verbatim.
func (s *ContactService) Submit(input SubmitInput, ipAddress, userAgent string) (*models.Contact, error) {
	contact := models.Contact{
		Name:      utils.SanitizeInput(input.Name),
		Email:     utils.NormalizeEmail(input.Email),
		Subject:   utils.SanitizeInput(input.Subject),
		Message:   utils.SanitizeInput(input.Message),
		Status:    models.StatusNew,
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}

	if errs := contact.Validate(); len(errs) > 0 {
		return nil, errs
	}

	if err := s.db.Create(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// ListAll returns every contact ordered by creation time descending. External
// collaborator use; the filtered admin view goes through ListFiltered.
func (s *ContactService) ListAll() ([]models.Contact, error) {
	var contacts []models.Contact
	if err := s.db.
		Order("created_at DESC, id DESC").
		Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (s *ContactService) GetByID(id int) (*models.Contact, error) {
	var contact models.Contact
	if err := s.db.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return &contact, nil
}

// UpdateStatus moves a contact to a new lifecycle status and refreshes
// updated_at. The status set is checked before any store access.
func (s *ContactService) UpdateStatus(id int, status string) (*models.Contact, error) {
	if !models.IsValidContactStatus(status) {
		return nil, ErrInvalidStatus
	}

	contact, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	res := s.db.Model(contact).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Lost a race against a concurrent delete.
		if _, err := s.GetByID(id); err != nil {
			return nil, err
		}
	}
	return contact, nil
}

// Delete permanently removes a contact. No soft-delete.
func (s *ContactService) Delete(id int) error {
	res := s.db.Delete(&models.Contact{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}

// ListFilter narrows and pages the admin contact listing.
type ListFilter struct {
	Page   int
	Limit  int
	Status string // "" or "all" means no status constraint
	Search string // case-insensitive substring across name/email/subject/message
}

// Pagination describes the window returned by ListFiltered.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

// ListFiltered returns one page of contacts, newest first, with the matching
// total. Status and search constraints combine with AND; the search term is
// OR-matched across name, email, subject and message.
func (s *ContactService) ListFiltered(f ListFilter) ([]models.Contact, Pagination, error) {
	if f.Page < 1 {
		f.Page = defaultPage
	}
	if f.Limit < 1 {
		f.Limit = defaultLimit
	}
	offset := (f.Page - 1) * f.Limit

	q := s.db.Model(&models.Contact{})

	if f.Status != "" && f.Status != "all" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(subject) LIKE ? OR LOWER(message) LIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	var contacts []models.Contact
	if err := q.
		Order("created_at DESC, id DESC").
		Limit(f.Limit).
		Offset(offset).
		Find(&contacts).Error; err != nil {
		return nil, Pagination{}, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(f.Limit)))
	pagination := Pagination{
		CurrentPage:  f.Page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: f.Limit,
		HasNextPage:  f.Page < totalPages,
		HasPrevPage:  f.Page > 1,
	}
	return contacts, pagination, nil
}

// ContactStats summarizes the live table as of call time.
type ContactStats struct {
	Total     int64            `json:"total"`
	Today     int64            `json:"today"`
	ThisWeek  int64            `json:"thisWeek"`
	ThisMonth int64            `json:"thisMonth"`
	ByStatus  map[string]int64 `json:"byStatus"`
}

// Stats counts all rows, rows since start of day, rows in the trailing seven
// days, rows since start of month, and rows per status. No caching.
func (s *ContactService) Stats() (*ContactStats, error) {
	stats := &ContactStats{ByStatus: make(map[string]int64)}

	if err := s.db.Model(&models.Contact{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := now.AddDate(0, 0, -7)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	windows := []struct {
		since time.Time
		dest  *int64
	}{
		{startOfDay, &stats.Today},
		{weekAgo, &stats.ThisWeek},
		{startOfMonth, &stats.ThisMonth},
	}
	for _, w := range windows {
		if err := s.db.Model(&models.Contact{}).
			Where("created_at >= ?", w.since).
			Count(w.dest).Error; err != nil {
			return nil, err
		}
	}

	var byStatus []struct {
		Status string
		Count  int64
	}
	if err := s.db.Model(&models.Contact{}).
		Select("status, COUNT(id) AS count").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		return nil, err
	}
	for _, row := range byStatus {
		stats.ByStatus[row.Status] = row.Count
	}

	return stats, nil
}
