package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/leave-tracker/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate aplica las etiquetas `validate` del DTO. Los errores envuelven domain.ErrInvalidInput
// y llevan un mensaje apto para mostrarse en un flash.
func Validate(in interface{}) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fieldPath(fe.Namespace()))
	}
	return fmt.Errorf("%w: please check the following fields: %s", domain.ErrInvalidInput, strings.Join(fields, ", "))
}

// fieldPath quita el nombre del struct raíz: "SubmitRequest.Legs[0].Country" -> "Legs[0].Country".
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// UserMessage texto para el usuario a partir de un error de validación.
func UserMessage(err error) string {
	msg := err.Error()
	prefix := domain.ErrInvalidInput.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		msg = msg[i+len(prefix):]
	}
	if msg == "" {
		return "The submitted form is invalid."
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
