package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/SoloCompta/solo_compta_app/internal/core/domain"
)

// Custom binding validators shared by the request DTOs.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("monthkey", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseMonthKey(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("expensecategory", func(fl validator.FieldLevel) bool {
		return domain.ValidExpenseCategory(domain.ExpenseCategory(fl.Field().String()))
	})
}
