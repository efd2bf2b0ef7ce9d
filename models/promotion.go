package models

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Promotion types accepted by the service.
const (
	TypePercent  = "PERCENT"
	TypeDiscount = "DISCOUNT"
	TypeBogo     = "BOGO"
)

// AllowedPromotionTypes is the closed set of valid promotion_type values.
var AllowedPromotionTypes = map[string]bool{
	TypePercent:  true,
	TypeDiscount: true,
	TypeBogo:     true,
}

// Promotion is a discount campaign tied to a product, valid over an
// inclusive date range.
type Promotion struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:63;not null" json:"name"`
	PromotionType string    `gorm:"size:63;not null" json:"promotion_type"`
	Value         int       `gorm:"not null" json:"value"`
	ProductID     int       `gorm:"not null;index" json:"product_id"`
	StartDate     Date      `gorm:"not null" json:"start_date"`
	EndDate       Date      `gorm:"not null" json:"end_date"`
	CreatedAt     time.Time `json:"created_at"`
	LastUpdated   time.Time `gorm:"column:last_updated;autoUpdateTime" json:"last_updated"`
}

// IsActiveOn reports whether the promotion is active on the given date,
// inclusive of both endpoints.
func (p *Promotion) IsActiveOn(on Date) bool {
	return !p.StartDate.After(on) && !p.EndDate.Before(on)
}

// Deserialize populates the promotion from an untyped JSON object and
// enforces the business rules. The id, created_at and last_updated fields
// are server-owned and ignored here.
func (p *Promotion) Deserialize(data map[string]interface{}) *DataValidationError {
	if data == nil {
		return validationError(InvalidAttribute, "", "Invalid attribute: payload must be a JSON object")
	}

	name, err := requireString(data, "name")
	if err != nil {
		return err
	}

	ptype, err := requireString(data, "promotion_type")
	if err != nil {
		return err
	}
	if !AllowedPromotionTypes[ptype] {
		return validationError(InvalidEnum, "promotion_type",
			fmt.Sprintf("Invalid promotion_type '%s'. Allowed: %s", ptype, strings.Join(allowedTypeList(), ", ")))
	}

	value, err := requireInt(data, "value")
	if err != nil {
		return err
	}
	if value < 0 {
		return validationError(InvalidRange, "value", "Invalid value: must be >= 0")
	}

	productID, err := requireInt(data, "product_id")
	if err != nil {
		return err
	}
	if productID <= 0 {
		return validationError(InvalidRange, "product_id", "Invalid product_id: must be > 0")
	}

	startDate, err := requireDate(data, "start_date")
	if err != nil {
		return err
	}
	endDate, err := requireDate(data, "end_date")
	if err != nil {
		return err
	}
	if startDate.After(endDate) {
		return validationError(InvalidRange, "start_date", "Invalid date range: start_date must not be after end_date")
	}

	p.Name = name
	p.PromotionType = ptype
	p.Value = value
	p.ProductID = productID
	p.StartDate = startDate
	p.EndDate = endDate
	return nil
}

func allowedTypeList() []string {
	types := make([]string, 0, len(AllowedPromotionTypes))
	for t := range AllowedPromotionTypes {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

func requireString(data map[string]interface{}, key string) (string, *DataValidationError) {
	raw, ok := data[key]
	if !ok {
		return "", validationError(MissingField, key, fmt.Sprintf("Invalid promotion: missing %s", key))
	}
	s, ok := raw.(string)
	if !ok {
		return "", validationError(TypeMismatch, key, fmt.Sprintf("Field '%s' must be a string", key))
	}
	return s, nil
}

// requireInt accepts the numeric shapes encoding/json produces plus native
// Go ints from internal callers. Fractional values are rejected.
func requireInt(data map[string]interface{}, key string) (int, *DataValidationError) {
	raw, ok := data[key]
	if !ok {
		return 0, validationError(MissingField, key, fmt.Sprintf("Invalid promotion: missing %s", key))
	}
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, validationError(TypeMismatch, key, fmt.Sprintf("Invalid type for integer [%s]: fractional number", key))
		}
		return int(v), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	default:
		return 0, validationError(TypeMismatch, key, fmt.Sprintf("Invalid type for integer [%s]: %T", key, raw))
	}
}

func requireDate(data map[string]interface{}, key string) (Date, *DataValidationError) {
	raw, ok := data[key]
	if !ok {
		return Date{}, validationError(MissingField, key, fmt.Sprintf("Invalid promotion: missing %s", key))
	}
	s, ok := raw.(string)
	if !ok {
		return Date{}, validationError(InvalidDate, key, fmt.Sprintf("Field '%s' must be an ISO date (YYYY-MM-DD)", key))
	}
	d, err := ParseDate(s)
	if err != nil {
		return Date{}, validationError(InvalidDate, key, fmt.Sprintf("Field '%s' must be an ISO date (YYYY-MM-DD)", key))
	}
	return d, nil
}
