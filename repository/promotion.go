package repository

import (
	"errors"

	"promotions-backend/models"

	"gorm.io/gorm"
)

// PromotionRepository is the persistence boundary for promotions. Handlers
// receive an implementation instead of reaching for a shared session.
// Multi-item finders always return slices; Find returns nil when the id
// does not exist.
type PromotionRepository interface {
	All() ([]models.Promotion, error)
	Find(id uint) (*models.Promotion, error)
	FindByName(name string) ([]models.Promotion, error)
	FindByProductID(productID int) ([]models.Promotion, error)
	FindByType(promotionType string) ([]models.Promotion, error)
	FindActive(on models.Date) ([]models.Promotion, error)
	FindInactive(on models.Date) ([]models.Promotion, error)
	Create(p *models.Promotion) error
	Update(p *models.Promotion) error
	Delete(id uint) (bool, error)
}

type gormPromotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository returns a gorm-backed PromotionRepository.
func NewPromotionRepository(db *gorm.DB) PromotionRepository {
	return &gormPromotionRepository{db: db}
}

func (r *gormPromotionRepository) All() ([]models.Promotion, error) {
	var promotions []models.Promotion
	if err := r.db.Order("id").Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

func (r *gormPromotionRepository) Find(id uint) (*models.Promotion, error) {
	var promotion models.Promotion
	err := r.db.First(&promotion, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &promotion, nil
}

func (r *gormPromotionRepository) FindByName(name string) ([]models.Promotion, error) {
	var promotions []models.Promotion
	if err := r.db.Where("name = ?", name).Order("id").Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

func (r *gormPromotionRepository) FindByProductID(productID int) ([]models.Promotion, error) {
	var promotions []models.Promotion
	if err := r.db.Where("product_id = ?", productID).Order("id").Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

func (r *gormPromotionRepository) FindByType(promotionType string) ([]models.Promotion, error) {
	var promotions []models.Promotion
	if err := r.db.Where("promotion_type = ?", promotionType).Order("id").Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

// FindActive returns promotions whose date range includes the given date,
// both endpoints inclusive.
func (r *gormPromotionRepository) FindActive(on models.Date) ([]models.Promotion, error) {
	var promotions []models.Promotion
	err := r.db.Where("start_date <= ? AND end_date >= ?", on.Time, on.Time).
		Order("id").Find(&promotions).Error
	if err != nil {
		return nil, err
	}
	return promotions, nil
}

// FindInactive is the exact complement of FindActive.
func (r *gormPromotionRepository) FindInactive(on models.Date) ([]models.Promotion, error) {
	var promotions []models.Promotion
	err := r.db.Where("start_date > ? OR end_date < ?", on.Time, on.Time).
		Order("id").Find(&promotions).Error
	if err != nil {
		return nil, err
	}
	return promotions, nil
}

func (r *gormPromotionRepository) Create(p *models.Promotion) error {
	// The database assigns the id.
	p.ID = 0
	return r.db.Create(p).Error
}

func (r *gormPromotionRepository) Update(p *models.Promotion) error {
	return r.db.Save(p).Error
}

// Delete removes the promotion and reports whether a row existed. Hard
// delete: the model carries no DeletedAt column.
func (r *gormPromotionRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.Promotion{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
