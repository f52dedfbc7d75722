package theme

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/ctext/core"
	"github.com/npillmayer/ctext/core/font"
	"github.com/npillmayer/ctext/engine/dom/style/css"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	colorHexPattern  = regexp.MustCompile(`^#([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	colorNamePattern = regexp.MustCompile(`^[a-zA-Z]+$`)
	colorFuncPattern = regexp.MustCompile(`^(rgb|rgba|hsl|hsla)\([0-9.,%\s]+\)$`)
)

// validatorInstance configures and returns the validator for themes.
// It panics if a custom validation cannot be registered.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		for tag, fn := range customValidations {
			if err := v.RegisterValidation(tag, fn); err != nil {
				panic(fmt.Sprintf("theme validator: cannot register %q: %v", tag, err))
			}
		}
		validateInst = v
	})
	return validateInst
}

var customValidations = map[string]validator.Func{
	"dimension": func(fl validator.FieldLevel) bool {
		_, err := css.ParseDimen(fl.Field().String())
		return err == nil
	},
	"color": func(fl validator.FieldLevel) bool {
		return IsColor(fl.Field().String())
	},
	"facetable": func(fl validator.FieldLevel) bool {
		table, ok := fl.Field().Interface().(font.Table)
		if !ok {
			return false
		}
		return checkFaceTable(table) == nil
	},
}

// IsColor checks if c is a color a platform understands: a hex color
// ("#1e40af", "#fff"), a color function ("rgba(0,0,0,0.5)") or a color
// name ("red").
func IsColor(c string) bool {
	c = strings.TrimSpace(c)
	if strings.HasPrefix(c, "#") {
		if !colorHexPattern.MatchString(c) {
			return false
		}
		_, err := colorful.Hex(expandHex(c))
		return err == nil
	}
	return colorNamePattern.MatchString(c) || colorFuncPattern.MatchString(c)
}

// expandHex expands short hex colors to six digits, as go-colorful accepts
// both forms but not four- or eight-digit forms with alpha.
func expandHex(c string) string {
	if len(c) == 9 { // #rrggbbaa
		return c[:7]
	}
	if len(c) == 5 { // #rgba
		return c[:4]
	}
	return c
}

func checkFaceTable(table font.Table) error {
	for _, family := range table.Families() {
		fam := table[family]
		if faces, ok := fam[font.WeightNormal]; !ok || faces.Normal == "" {
			return core.Error(core.EINVALID, "font family %s has no face for weight 400", family)
		}
		for w, faces := range fam {
			if w < 1 || w > 1000 {
				return core.Error(core.EINVALID, "font family %s has illegal weight %d", family, w)
			}
			if faces.Normal == "" {
				return core.Error(core.EINVALID, "font family %s has no normal face for weight %d", family, w)
			}
		}
	}
	return nil
}

// Validate checks a theme for consistency. Errors have code EINVALID.
func (th *Theme) Validate() error {
	if th == nil {
		return core.Error(core.EINVALID, "theme is nil")
	}
	if err := checkFaceTable(th.FontConfig); err != nil {
		return err
	}
	if err := validatorInstance().Struct(th); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return core.WrapError(err, core.EINVALID, "theme field %s fails check '%s' with value %v",
				fe.Namespace(), fe.Tag(), fe.Value())
		}
		return core.WrapError(err, core.EINVALID, "invalid theme")
	}
	return nil
}
