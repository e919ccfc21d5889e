package httpx

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vp-garments/storefront/internal/domain/model"
)

//nolint:gochecknoglobals // validator instances are designed to be shared and cache struct metadata
var formValidator = validator.New(validator.WithRequiredStructEnabled())

// loginForm carries the login page fields.
type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// signupForm carries the signup page fields.
type signupForm struct {
	Name     string `validate:"required,max=100"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Confirm  string `validate:"required,eqfield=Password"`
}

// profileForm carries the editable profile fields.
type profileForm struct {
	Name  string `validate:"required,max=100"`
	Email string `validate:"required,email"`
}

// productForm carries the admin product form fields. Price arrives as a
// string so a non-numeric entry produces a field error, not a 400.
type productForm struct {
	Name        string `validate:"required,max=255"`
	Category    string `validate:"required,max=100"`
	Price       string `validate:"required"`
	Sizes       string `validate:"omitempty,max=100"`
	Color       string `validate:"omitempty,max=100"`
	Description string `validate:"omitempty,max=2000"`
	ImageURL    string `validate:"omitempty,url,max=500"`
}

// fieldErrors translates validator failures into per-field display messages.
// Keys are lowercased struct field names, matching template inputs.
func fieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	out := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = "Please check the form and try again."
		return out
	}

	for _, fe := range verrs {
		out[strings.ToLower(fe.Field())] = messageFor(fe)
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters."
	case "max":
		return fe.Field() + " cannot exceed " + fe.Param() + " characters."
	case "eqfield":
		return "Passwords do not match."
	case "url":
		return "Enter a valid URL."
	default:
		return fe.Field() + " is invalid."
	}
}

func parseLoginForm(r *http.Request) (loginForm, map[string]string) {
	f := loginForm{
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}
	return f, fieldErrors(formValidator.Struct(f))
}

func parseSignupForm(r *http.Request) (signupForm, map[string]string) {
	f := signupForm{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
		Confirm:  r.FormValue("confirm"),
	}
	return f, fieldErrors(formValidator.Struct(f))
}

func parseProfileForm(r *http.Request) (profileForm, map[string]string) {
	f := profileForm{
		Name:  strings.TrimSpace(r.FormValue("name")),
		Email: strings.TrimSpace(r.FormValue("email")),
	}
	return f, fieldErrors(formValidator.Struct(f))
}

// parseProductForm validates the admin product form and converts it to the
// upstream input shape. A second error map entry for "price" is added when
// the string passes struct validation but is not a non-negative number.
func parseProductForm(r *http.Request) (model.ProductInput, map[string]string) {
	f := productForm{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Category:    strings.TrimSpace(r.FormValue("category")),
		Price:       strings.TrimSpace(r.FormValue("price")),
		Sizes:       strings.TrimSpace(r.FormValue("sizes")),
		Color:       strings.TrimSpace(r.FormValue("color")),
		Description: strings.TrimSpace(r.FormValue("description")),
		ImageURL:    strings.TrimSpace(r.FormValue("image_url")),
	}

	errs := fieldErrors(formValidator.Struct(f))
	if errs == nil {
		errs = map[string]string{}
	}

	price, err := strconv.ParseFloat(f.Price, 64)
	if f.Price != "" && (err != nil || price < 0) {
		errs["price"] = "Price must be a non-negative number."
	}

	in := model.ProductInput{
		Name:        f.Name,
		Category:    f.Category,
		Price:       price,
		Size:        splitList(f.Sizes),
		Color:       f.Color,
		Description: f.Description,
		ImageURL:    f.ImageURL,
	}
	if len(errs) == 0 {
		return in, nil
	}
	return in, errs
}

// splitList splits a comma-separated form value, dropping empty entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
