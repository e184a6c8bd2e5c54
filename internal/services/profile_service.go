package services

import (
	"fmt"

	"github.com/mithildabhi/Smart-Job-Portal/internal/editor"
	"github.com/mithildabhi/Smart-Job-Portal/internal/models"
	"gorm.io/gorm"
)

// SectionFullError rejects a section update that exceeds the entry cap. The
// caps live in the editor package so the client and server enforce the same
// numbers.
type SectionFullError struct {
	Kind editor.Kind
}

func (e *SectionFullError) Error() string {
	return fmt.Sprintf("maximum of %d %s entries allowed", e.Kind.MaxSize(), e.Kind)
}

type ProfileService struct {
	DB *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{DB: db}
}

// GetOrCreate loads the student's profile with every section preloaded in
// display order, creating an empty profile on first touch.
func (s *ProfileService) GetOrCreate(studentID uint) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	err := s.DB.Where(models.StudentProfile{StudentID: studentID}).
		FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}
	err = s.DB.
		Preload("Skills", positionOrder).
		Preload("Educations", positionOrder).
		Preload("Experiences", positionOrder).
		Preload("Projects", positionOrder).
		First(&profile, profile.ID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func positionOrder(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// ReplaceSkills swaps the stored skill list for the submitted one and
// returns the stored result. The full list arrives on every save, so the
// replace is a delete-and-insert inside one transaction.
func (s *ProfileService) ReplaceSkills(studentID uint, names []string) ([]string, error) {
	profile, err := s.GetOrCreate(studentID)
	if err != nil {
		return nil, err
	}
	rows := make([]models.Skill, len(names))
	for i, name := range names {
		rows[i] = models.Skill{StudentProfileID: profile.ID, Position: i, Name: name}
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_profile_id = ?", profile.ID).Delete(&models.Skill{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// ReplaceEducation stores the submitted education list, capped at the
// section bound.
func (s *ProfileService) ReplaceEducation(studentID uint, entries []models.Education) ([]models.Education, error) {
	if len(entries) > editor.KindEducation.MaxSize() {
		return nil, &SectionFullError{Kind: editor.KindEducation}
	}
	profile, err := s.GetOrCreate(studentID)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].ID = 0
		entries[i].StudentProfileID = profile.ID
		entries[i].Position = i
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_profile_id = ?", profile.ID).Delete(&models.Education{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ReplaceExperience stores the submitted experience list, capped at the
// section bound.
func (s *ProfileService) ReplaceExperience(studentID uint, entries []models.Experience) ([]models.Experience, error) {
	if len(entries) > editor.KindExperience.MaxSize() {
		return nil, &SectionFullError{Kind: editor.KindExperience}
	}
	profile, err := s.GetOrCreate(studentID)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].ID = 0
		entries[i].StudentProfileID = profile.ID
		entries[i].Position = i
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_profile_id = ?", profile.ID).Delete(&models.Experience{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ReplaceProjects stores the submitted project list, capped at the section
// bound.
func (s *ProfileService) ReplaceProjects(studentID uint, entries []models.Project) ([]models.Project, error) {
	if len(entries) > editor.KindProjects.MaxSize() {
		return nil, &SectionFullError{Kind: editor.KindProjects}
	}
	profile, err := s.GetOrCreate(studentID)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].ID = 0
		entries[i].StudentProfileID = profile.ID
		entries[i].Position = i
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_profile_id = ?", profile.ID).Delete(&models.Project{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// SetPicture records a freshly uploaded picture URL and returns the one it
// replaced so the caller can clean the old file up.
func (s *ProfileService) SetPicture(studentID uint, url string) (string, error) {
	profile, err := s.GetOrCreate(studentID)
	if err != nil {
		return "", err
	}
	old := profile.PictureURL
	err = s.DB.Model(&models.StudentProfile{}).
		Where("id = ?", profile.ID).
		Update("picture_url", url).Error
	if err != nil {
		return "", err
	}
	return old, nil
}

// ClearPicture drops the picture URL and returns what was stored.
func (s *ProfileService) ClearPicture(studentID uint) (string, error) {
	return s.SetPicture(studentID, "")
}
