package http

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// playlistIDRe matches YouTube playlist IDs: the PL/UU/LL/OL prefix
// plus a base64url payload.
var playlistIDRe = regexp.MustCompile(`^(PL|UU|LL|OL|FL|RD)[A-Za-z0-9_-]{10,62}$`)

func init() {
	validate = validator.New()

	validate.RegisterValidation("playlist_id", validatePlaylistID)
}

func validatePlaylistID(fl validator.FieldLevel) bool {
	return playlistIDRe.MatchString(fl.Field().String())
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func ValidateStruct(s interface{}) []ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errors []ValidationError
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		tag := err.Tag()
		param := err.Param()

		var message string
		switch tag {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", field, param)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		case "playlist_id":
			message = fmt.Sprintf("%s must be a valid YouTube playlist id", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		fieldName := strings.ToLower(field[:1]) + field[1:]
		errors = append(errors, ValidationError{
			Field:   fieldName,
			Message: message,
		})
	}

	return errors
}
