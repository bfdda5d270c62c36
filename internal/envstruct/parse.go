// Package envstruct populates configuration structs from environment
// variables using struct tags.
package envstruct

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrEnvNotSet    = errors.New("environment variable not set")
	ErrInvalidValue = errors.New("v must be a pointer to a struct")
)

// Populate fills the string fields of *v from the environment.
//
// lookupEnv has the same signature as [os.LookupEnv]. Fields are matched by
// the `env:"NAME"` tag; when the variable is unset the `envDefault:"value"`
// tag is used, and with neither present ErrEnvNotSet is returned. All tagged
// fields are attempted so the error reports every missing variable at once.
func Populate(v any, lookupEnv func(string) (string, bool)) error {
	target := reflect.ValueOf(v)
	if target.Kind() != reflect.Ptr {
		return fmt.Errorf("%w: not a pointer: %v", ErrInvalidValue, v)
	}
	elem := target.Elem()
	if elem.Kind() != reflect.Struct {
		return fmt.Errorf("%w: not a struct: %v", ErrInvalidValue, v)
	}

	var errs []error
	elemType := elem.Type()
	for i := 0; i < elemType.NumField(); i++ {
		field := elemType.Field(i)
		name, tagged := field.Tag.Lookup("env")
		if !tagged {
			continue
		}

		value := elem.Field(i)
		if !value.CanSet() || value.Kind() != reflect.String {
			errs = append(errs, fmt.Errorf("%w: field %s must be a settable string for env %s",
				ErrInvalidValue, field.Name, name))
			continue
		}

		resolved, err := resolve(name, field.Tag, lookupEnv)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		value.SetString(resolved)
	}

	return errors.Join(errs...)
}

// resolve looks up the variable and falls back to the envDefault tag.
func resolve(name string, tag reflect.StructTag, lookupEnv func(string) (string, bool)) (string, error) {
	if value, ok := lookupEnv(name); ok {
		return value, nil
	}
	if fallback, ok := tag.Lookup("envDefault"); ok {
		return fallback, nil
	}
	return "", fmt.Errorf("%w: %s", ErrEnvNotSet, name)
}
