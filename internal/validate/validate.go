// Package validate checks inbound payloads against per-operation field rules.
// Each entry point returns either a fully-typed payload or an Errors map that
// names every failing field; nothing is mutated before validation passes.
package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"catalogd/internal/domain"
)

// Errors maps a field name to the reasons it was rejected.
type Errors map[string][]string

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for field, reasons := range e {
		parts = append(parts, field+" "+strings.Join(reasons, "; "))
	}
	return strings.Join(parts, ", ")
}

func (e Errors) add(field, reason string) {
	e[field] = append(e[field], reason)
}

var check = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields under their wire names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Numbers arrive as json.Number so malformed values stay field-attributed;
	// comparisons run on the float form.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if n, ok := field.Interface().(json.Number); ok {
			f, err := n.Float64()
			if err != nil {
				return math.NaN()
			}
			return f
		}
		return nil
	}, json.Number(""))
	return v
}

// ProductCreate holds the fields accepted when adding a product. Pointer
// fields distinguish absent from zero.
type ProductCreate struct {
	Name       *string            `json:"name" validate:"required,min=1,max=255"`
	Image      *string            `json:"image" validate:"required,min=1"`
	Price      *json.Number       `json:"price" validate:"required,gte=0"`
	Status     *string            `json:"status" validate:"required,oneof=available pending sold"`
	Types      *domain.StringList `json:"types" validate:"required"`
	Sizes      *domain.StringList `json:"sizes" validate:"required"`
	Rating     *float64           `json:"rating" validate:"required,gte=1,lte=5"`
	CategoryID *int64             `json:"category_id" validate:"omitempty,gte=1"`
}

// ProductUpdate holds the fields accepted when replacing product data. Only
// non-nil fields are merged into the stored record.
type ProductUpdate struct {
	Name       *string            `json:"name" validate:"required,min=1,max=255"`
	Price      *json.Number       `json:"price" validate:"required,gte=0"`
	Image      *string            `json:"image" validate:"omitempty,min=1"`
	Status     *string            `json:"status" validate:"omitempty,oneof=available pending sold"`
	Types      *domain.StringList `json:"types"`
	Sizes      *domain.StringList `json:"sizes"`
	Rating     *float64           `json:"rating" validate:"omitempty,gte=1,lte=5"`
	CategoryID *int64             `json:"category_id" validate:"omitempty,gte=1"`
}

// CategoryPayload covers category create and update, which share one rule set.
type CategoryPayload struct {
	Name *string `json:"name" validate:"required,min=1,max=255"`
}

func ProductForCreate(body []byte) (*ProductCreate, Errors) {
	var in ProductCreate
	if errs := unmarshal(body, &in); errs != nil {
		return nil, errs
	}
	if err := check.Struct(&in); err != nil {
		return nil, translate(err)
	}
	return &in, nil
}

func ProductForUpdate(body []byte) (*ProductUpdate, Errors) {
	var in ProductUpdate
	if errs := unmarshal(body, &in); errs != nil {
		return nil, errs
	}
	if err := check.Struct(&in); err != nil {
		return nil, translate(err)
	}
	return &in, nil
}

func Category(body []byte) (*CategoryPayload, Errors) {
	var in CategoryPayload
	if errs := unmarshal(body, &in); errs != nil {
		return nil, errs
	}
	if err := check.Struct(&in); err != nil {
		return nil, translate(err)
	}
	return &in, nil
}

func unmarshal(body []byte, dst any) Errors {
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(dst); err != nil {
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) && te.Field != "" {
			return Errors{te.Field: {typeReason(te.Field)}}
		}
		return Errors{"body": {"must be a valid JSON object"}}
	}
	return nil
}

func typeReason(field string) string {
	switch field {
	case "price", "rating":
		return "must be a number"
	case "types", "sizes":
		return "must be an array of strings"
	case "category_id":
		return "must be an integer"
	default:
		return "must be a string"
	}
}

func translate(err error) Errors {
	out := Errors{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out.add("body", "must be a valid JSON object")
		return out
	}
	for _, fe := range verrs {
		out.add(fe.Field(), reason(fe))
	}
	return out
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return "must not be empty"
		}
		return "must be at least " + fe.Param()
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	}
	return "is invalid"
}

var (
	reEmail  = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reStatus = regexp.MustCompile(`^(available|pending|sold)$`)
)

// ID validates a numeric resource identifier from a path or query parameter.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Status validates the product status enum from a query parameter.
func Status(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reStatus.MatchString(s)
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 50 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}
