package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const messageSeparator = "; "

var messages = map[string]string{
	"required": "{field} est obligatoire",
	"notblank": "{field} ne doit pas être vide",
	"max":      "{field} ne doit pas dépasser {param} caractères",
	"min":      "{field} doit contenir au moins {param} caractères",
	"gt":       "{field} doit être supérieur à {param}",
	"gte":      "{field} doit être supérieur ou égal à {param}",
	"lte":      "{field} doit être inférieur ou égal à {param}",
	"oneof":    "{field} doit valoir l'une de ces valeurs : {param}",
}

func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(valErrors))

	for _, valErr := range valErrors {
		template, ok := messages[valErr.Tag()]
		if !ok {
			parts = append(parts, valErr.Error())

			continue
		}

		parts = append(parts, strings.NewReplacer("{field}", valErr.Field(), "{param}", valErr.Param()).Replace(template))
	}

	return strings.Join(parts, messageSeparator)
}
