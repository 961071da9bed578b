package service

import (
	"sort"
	"strings"

	"github.com/sangkips/abs-inventory-api/internal/domain/enum"
	"github.com/sangkips/abs-inventory-api/pkg/apperror"
)

func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func setOptional(dst **string, src *string) {
	if src == nil {
		return
	}
	v := strings.TrimSpace(*src)
	if v == "" {
		*dst = nil
		return
	}
	*dst = &v
}

// requireFields reports every empty value as a field error, sorted by field name
func requireFields(fields map[string]string) error {
	var missing []string
	for name, v := range fields {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)

	fieldErrors := make([]apperror.FieldError, len(missing))
	for i, name := range missing {
		fieldErrors[i] = apperror.FieldError{Field: name, Message: name + " is required"}
	}
	return apperror.NewValidationError(fieldErrors)
}

func parseActiveStatus(v string) (enum.ActiveStatus, error) {
	status := enum.ActiveStatus(v)
	if !status.IsValid() {
		return "", apperror.NewValidationError([]apperror.FieldError{
			{Field: "active_status", Message: "active_status must be Active or Inactive"},
		})
	}
	return status, nil
}
