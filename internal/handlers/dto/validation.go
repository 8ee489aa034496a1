package dto

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rafabene/gymdir-backend/internal/domain/entities"
)

// RegisterCustomValidators registra as validações próprias no engine de
// binding do Gin. Deve ser chamado uma vez na inicialização.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// objectid valida identificadores hex de 24 caracteres
	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return primitive.IsValidObjectID(fl.Field().String())
	})

	// Vocabulários conhecidos do domínio
	_ = v.RegisterValidation("amenity", oneOfList(entities.ValidAmenities))
	_ = v.RegisterValidation("specialty", oneOfList(entities.ValidSpecialties))
	_ = v.RegisterValidation("training_mode", oneOfList(entities.ValidTrainingModes))
}

func oneOfList(values []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return slices.Contains(values, fl.Field().String())
	}
}

// IsValidID valida identificadores de path params
func IsValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}

// BindingErrorResponse converte um erro de binding do Gin em uma resposta de
// validação RFC 7807 com os campos rejeitados
func BindingErrorResponse(c *gin.Context, err error) ErrorResponse {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		response := BadRequestErrorResponseI18n(c, "error.bad_request.detail")
		return response
	}

	fieldErrors := make([]ValidationError, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		fieldErrors = append(fieldErrors, ValidationError{
			Field:   fieldName(fieldError),
			Message: fieldMessage(fieldError),
			Tag:     fieldError.Tag(),
			Value:   fmt.Sprintf("%v", fieldError.Value()),
		})
	}

	return ValidationErrorResponseI18n(c, fieldErrors)
}

func fieldName(fe validator.FieldError) string {
	// Namespace vem como "Request.Campo"; só o caminho do campo interessa
	parts := strings.SplitN(fe.Namespace(), ".", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "objectid":
		return "must be a 24 character hex identifier"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "amenity":
		return "must be a known amenity"
	case "specialty":
		return "must be a known specialty"
	case "training_mode":
		return "must be a known training mode"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "latitude":
		return "must be a valid latitude"
	case "longitude":
		return "must be a valid longitude"
	default:
		return "failed validation on " + fe.Tag()
	}
}
