package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ricebowl-app/backend/internal/models"
)

var ErrPantryItemNotFound = errors.New("pantry item not found")

type PantryService struct {
	db *gorm.DB
}

func NewPantryService(db *gorm.DB) *PantryService {
	return &PantryService{db: db}
}

// List returns the user's pantry, most recently updated first.
func (s *PantryService) List(userID uuid.UUID) ([]models.PantryItem, error) {
	var items []models.PantryItem
	if err := s.db.Where("user_id = ?", userID).Order("updated_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *PantryService) Add(userID uuid.UUID, item models.PantryItem) (*models.PantryItem, error) {
	item.ID = uuid.Nil
	item.UserID = userID
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *PantryService) Get(userID, itemID uuid.UUID) (*models.PantryItem, error) {
	var item models.PantryItem
	err := s.db.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPantryItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update overwrites the editable fields of an item the user owns.
func (s *PantryService) Update(userID, itemID uuid.UUID, updated models.PantryItem) (*models.PantryItem, error) {
	item, err := s.Get(userID, itemID)
	if err != nil {
		return nil, err
	}

	item.IngredientName = updated.IngredientName
	item.Category = updated.Category
	item.Quantity = updated.Quantity
	item.Unit = updated.Unit
	item.ExpiryDate = updated.ExpiryDate
	item.IsLeftover = updated.IsLeftover
	item.LeftoverFromRecipeID = updated.LeftoverFromRecipeID
	item.RequiresSoaking = updated.RequiresSoaking
	item.SoakHours = updated.SoakHours

	if err := s.db.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *PantryService) Delete(userID, itemID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.PantryItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPantryItemNotFound
	}
	return nil
}

// MarkLeftover tags an item as tonight's leftover from the given recipe so
// the 9 PM check can pick it up.
func (s *PantryService) MarkLeftover(userID, itemID uuid.UUID, fromRecipeID string) (*models.PantryItem, error) {
	item, err := s.Get(userID, itemID)
	if err != nil {
		return nil, err
	}
	item.IsLeftover = true
	item.LeftoverFromRecipeID = fromRecipeID
	if err := s.db.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}
