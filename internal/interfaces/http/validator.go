package http

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/seifmegahed/daftar/internal/domain/account"
	"github.com/seifmegahed/daftar/internal/domain/entity"
	"github.com/seifmegahed/daftar/pkg/i18n"
)

// validationError errores por campo (nombre JSON → mensaje traducido).
type validationError struct {
	code   string
	fields map[string]string
}

func (e *validationError) Error() string { return e.code }

var validate = newValidator()

// newValidator registra las etiquetas propias y usa los nombres json/form/query en los errores.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
	// decimal.Decimal se valida como su representación en texto
	v.RegisterCustomTypeFunc(func(f reflect.Value) interface{} {
		if d, ok := f.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return account.ValidUsername(fl.Field().String())
	})
	_ = v.RegisterValidation("password_complexity", func(fl validator.FieldLevel) bool {
		return account.CheckPasswordComplexity(fl.Field().String())
	})
	_ = v.RegisterValidation("bcrypt_len", func(fl validator.FieldLevel) bool {
		return account.PasswordFits(fl.Field().String())
	})
	_ = v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return entity.ValidCurrency(fl.Field().String())
	})
	_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && entity.ValidPrice(d)
	})
	return v
}

// check valida in contra sus etiquetas y traduce los errores al idioma de la petición.
func check(c *fiber.Ctx, in interface{}) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &validationError{code: "VALIDATION"}
	}
	lang := Lang(c)
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe)] = i18n.T(lang, fe.Tag())
	}
	return &validationError{code: "VALIDATION", fields: fields}
}

// fieldPath nombre del campo sin el tipo raíz: "address.address_line".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// bindJSON parsea el cuerpo JSON y lo valida.
func bindJSON(c *fiber.Ctx, in interface{}) error {
	if err := c.BodyParser(in); err != nil {
		return &validationError{code: "INVALID_BODY"}
	}
	return check(c, in)
}

// bindQuery parsea la query string y la valida.
func bindQuery(c *fiber.Ctx, in interface{}) error {
	if err := c.QueryParser(in); err != nil {
		return &validationError{code: "INVALID_BODY"}
	}
	return check(c, in)
}
