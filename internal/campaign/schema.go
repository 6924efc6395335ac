package campaign

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func schemaValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// DecodePlan recovers a campaign plan from raw model output and checks its shape.
func DecodePlan(text string) (CampaignPlan, error) {
	var plan CampaignPlan
	if err := decodeObject(text, "campaign plan", &plan); err != nil {
		return CampaignPlan{}, err
	}
	return plan, nil
}

// DecodeCopy recovers ad copy from raw model output and checks its shape.
func DecodeCopy(text string) (AdCopy, error) {
	var ad AdCopy
	if err := decodeObject(text, "ad copy", &ad); err != nil {
		return AdCopy{}, err
	}
	return ad, nil
}

// decodeObject parses leniently into a generic object, so syntax problems
// surface as ParseError, then decodes each top-level field on its own. Type
// mismatches leave the field zero and are reported with every constraint the
// partially decoded value violates.
func decodeObject(text, subject string, dst any) error {
	obj, err := ParseLenient[map[string]any](text)
	if err != nil {
		return err
	}

	mistyped := decodeFields(obj, dst)
	violations := make([]string, 0, len(mistyped))
	for _, m := range mistyped {
		violations = append(violations, m.message)
	}

	for _, v := range validationViolations(reflect.ValueOf(dst).Elem().Interface()) {
		if !shadowed(v, mistyped) {
			violations = append(violations, v)
		}
	}

	if len(violations) > 0 {
		return &SchemaError{Subject: subject, Violations: violations}
	}
	return nil
}

// typeViolation is a field whose JSON value had the wrong type.
type typeViolation struct {
	path    string // dotted, without indexes
	message string
}

func decodeFields(obj map[string]any, dst any) []typeViolation {
	v := reflect.ValueOf(dst).Elem()
	t := v.Type()

	var out []typeViolation
	for i := range t.NumField() {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		val, ok := lookupKey(obj, name)
		if !ok {
			continue
		}

		raw, err := json.Marshal(val)
		if err == nil {
			err = json.Unmarshal(raw, v.Field(i).Addr().Interface())
		}
		if err == nil {
			continue
		}

		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			path := name
			if typeErr.Field != "" {
				path += "." + typeErr.Field
			}
			out = append(out, typeViolation{
				path:    path,
				message: fmt.Sprintf("%s: expected %s, got %s", path, typeErr.Type, typeErr.Value),
			})
			continue
		}
		out = append(out, typeViolation{path: name, message: name + ": " + err.Error()})
	}
	return out
}

// lookupKey finds name in obj, falling back to a case-insensitive match the
// way encoding/json does.
func lookupKey(obj map[string]any, name string) (any, bool) {
	if val, ok := obj[name]; ok {
		return val, true
	}
	for k, val := range obj {
		if strings.EqualFold(k, name) {
			return val, true
		}
	}
	return nil, false
}

var indexPattern = regexp.MustCompile(`\[\d+\]`)

// shadowed reports whether violation only restates that a mistyped field is empty.
func shadowed(violation string, mistyped []typeViolation) bool {
	path, rest, ok := strings.Cut(violation, ": ")
	if !ok || rest != "is required" {
		return false
	}
	path = indexPattern.ReplaceAllString(path, "")
	for _, m := range mistyped {
		if m.path == path {
			return true
		}
	}
	return false
}

// ValidatePlan checks field presence and size bounds of a campaign plan.
func ValidatePlan(plan CampaignPlan) error {
	return validateStruct("campaign plan", plan)
}

// ValidateCopy checks field presence and size bounds of ad copy.
func ValidateCopy(ad AdCopy) error {
	return validateStruct("ad copy", ad)
}

func validateStruct(subject string, v any) error {
	if violations := validationViolations(v); len(violations) > 0 {
		return &SchemaError{Subject: subject, Violations: violations}
	}
	return nil
}

func validationViolations(v any) []string {
	err := schemaValidator().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	violations := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, describe(fe))
	}
	return violations
}

// describe renders a field error as "path: constraint".
func describe(fe validator.FieldError) string {
	path := fe.Namespace()
	if _, rest, ok := strings.Cut(path, "."); ok {
		path = rest
	}

	isList := fe.Kind() == reflect.Slice || fe.Kind() == reflect.Array
	switch fe.Tag() {
	case "required":
		return path + ": is required"
	case "min":
		if isList {
			return fmt.Sprintf("%s: must have at least %s items (got %d)", path, fe.Param(), size(fe))
		}
		return fmt.Sprintf("%s: must be at least %s characters", path, fe.Param())
	case "max":
		if isList {
			return fmt.Sprintf("%s: must have at most %s items (got %d)", path, fe.Param(), size(fe))
		}
		return fmt.Sprintf("%s: must be at most %s characters (got %d)", path, fe.Param(), size(fe))
	case "len":
		return fmt.Sprintf("%s: must have exactly %s items (got %d)", path, fe.Param(), size(fe))
	default:
		return fmt.Sprintf("%s: failed %s constraint", path, fe.Tag())
	}
}

func size(fe validator.FieldError) int {
	v := reflect.ValueOf(fe.Value())
	switch v.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return v.Len()
	case reflect.String:
		return utf8.RuneCountInString(v.String())
	default:
		return 0
	}
}
