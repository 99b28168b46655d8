package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"assetvault/models"
)

func ValidateAspectRatio(ratio string) error {
	if ratio == "" {
		return fmt.Errorf("aspect ratio is required")
	}
	if !models.ValidAspectRatio(ratio) {
		return fmt.Errorf("invalid aspect ratio. Must be %s or %s", models.AspectRatio43, models.AspectRatio916)
	}
	return nil
}

func ValidateContentName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("content name is required")
	}
	if len(name) > 255 {
		return fmt.Errorf("content name too long (max 255 characters)")
	}
	if !utf8.ValidString(name) {
		return fmt.Errorf("content name contains invalid UTF-8 characters")
	}
	return nil
}

func ValidateCategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("category name is required")
	}
	if len(name) > 255 {
		return fmt.Errorf("category name too long (max 255 characters)")
	}
	if !utf8.ValidString(name) {
		return fmt.Errorf("category name contains invalid UTF-8 characters")
	}
	return nil
}

func ValidateCategoryType(categoryType string) error {
	if !models.ValidCategoryType(categoryType) {
		return fmt.Errorf("invalid category type: %s. Allowed types: %s, %s, %s",
			categoryType, models.CategoryTypeAsset, models.CategoryTypeDocument, models.CategoryTypeDepartment)
	}
	return nil
}

func ValidateModule(module string) error {
	if !models.ValidModule(module) {
		return fmt.Errorf("invalid module: %s. Allowed modules: %s, %s, %s",
			module, models.ModuleAssets, models.ModuleDocuments, models.ModuleDigitalAssets)
	}
	return nil
}

func ValidatePreviewFileSize(size, maxSize int64) error {
	if size > maxSize {
		return fmt.Errorf("preview file size %d bytes exceeds maximum allowed size of %d bytes", size, maxSize)
	}
	return nil
}

func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}

	return nil
}
