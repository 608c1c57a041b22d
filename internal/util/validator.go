package util

import (
	"errors"
	"fmt"
	"log"

	constant "github.com/KaiserXLabs/kxl-gmail-signature-update/internal/constant"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type ApiError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func msgForTag(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%v is required", field)
	case "email":
		return "Invalid email"
	case "base64":
		return fmt.Sprintf("%v must be base64 encoded", field)
	case "min":
		return fmt.Sprintf("%v must be at least %v characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%v must be at most %v characters", field, fe.Param())
	}

	log.Printf("Unknown tag: %v with error: %v", fe.Tag(), fe.Error())
	return fe.Error()
}

// GenerateErrorMessages extracts validation errors and returns them as an
// array of ApiError, one entry per failed field. Non-validator errors map
// to a single entry; the optional fieldName names its field.
func GenerateErrorMessages(err error, fieldName ...string) []ApiError {
	if err == nil {
		field := "Unknown"
		if len(fieldName) > 0 && fieldName[0] != "" {
			field = fieldName[0]
		}
		return []ApiError{{Field: field, Message: constant.REQUEST_UNSUCCESSFUL}}
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		out := make([]ApiError, len(ve))
		for i, fe := range ve {
			out[i] = ApiError{fe.Field(), msgForTag(fe)}
		}
		return out
	}

	field := "Unknown"
	if len(fieldName) > 0 && fieldName[0] != "" {
		field = fieldName[0]
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []ApiError{{Field: field, Message: "Record not found"}}
	}

	return []ApiError{{Field: field, Message: err.Error()}}
}
