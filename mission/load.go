// SPDX-License-Identifier: MIT
//
// File: load.go
// Role: decoding and validating vehicle and empire documents.

package mission

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rebelnav/navodds/route"
)

// Format names a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the encoding from the file extension.
// Anything other than .yaml or .yml is read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// report document keys rather than Go field names
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// LoadFalcon reads a vehicle document. A relative routes_db is resolved
// against the document's directory.
func LoadFalcon(path string) (*Falcon, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	f, err := ParseFalcon(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.baseDir = filepath.Dir(path)

	return f, nil
}

// LoadEmpire reads an empire document.
func LoadEmpire(path string) (*Empire, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	e, err := ParseEmpire(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return e, nil
}

// ParseFalcon decodes and validates a vehicle document, filling in the
// default departure and arrival.
func ParseFalcon(data []byte, format Format) (*Falcon, error) {
	var f Falcon
	if err := decode(data, format, &f); err != nil {
		return nil, err
	}
	for i := range f.Routes {
		if f.Routes[i].TravelTime == nil {
			f.Routes[i].TravelTime = f.Routes[i].TravelTimeAlt
		}
	}
	if err := check(&f); err != nil {
		return nil, err
	}
	if f.Routes == nil && f.RoutesDB == "" {
		return nil, fmt.Errorf("%w: one of routes or routes_db is required", route.ErrMalformedInput)
	}
	if f.Departure == "" {
		f.Departure = DefaultDeparture
	}
	if f.Arrival == "" {
		f.Arrival = DefaultArrival
	}

	return &f, nil
}

// ParseEmpire decodes and validates an empire document.
func ParseEmpire(data []byte, format Format) (*Empire, error) {
	var e Empire
	if err := decode(data, format, &e); err != nil {
		return nil, err
	}
	if err := check(&e); err != nil {
		return nil, err
	}

	return &e, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("mission: read %s: %w", path, err)
	}

	return data, nil
}

func decode(data []byte, format Format, dst any) error {
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, dst)
	case FormatYAML:
		err = yaml.Unmarshal(data, dst)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("%w: %w: %v", route.ErrMalformedInput, ErrInvalidDocument, err)
	}

	return nil
}

// check runs struct validation and flattens violations into one error.
func check(doc any) error {
	err := getValidator().Struct(doc)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", route.ErrMalformedInput, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}

	return fmt.Errorf("%w: %s", route.ErrMalformedInput, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	// drop the struct name prefix ("Falcon.autonomy" -> "autonomy")
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
