package catalog

// PaymentCategory enum
type PaymentCategory string

const (
	CategoryAccrual   PaymentCategory = "accrual"
	CategoryDeduction PaymentCategory = "deduction"
)

// PaymentType - catalog definition of one payment line kind
type PaymentType struct {
	Code     string
	Name     string
	Category PaymentCategory
}

// Well-known payment type codes used by the calculation pipeline.
const (
	PaymentBaseSalary     = "base_salary"
	PaymentRoleBonus      = "role_bonus"
	PaymentSeniorityBonus = "seniority_bonus"
	PaymentSickLeave      = "sick_leave"
	PaymentVacationPay    = "vacation_pay"
	PaymentIncomeTax      = "income_tax"
	PaymentSocialTax      = "social_tax"
)

// MarkType - catalog definition of one timesheet mark kind
type MarkType struct {
	Code string
	Name string
}

// Well-known mark type codes.
const (
	MarkWork     = "work"
	MarkSick     = "sick"
	MarkVacation = "vacation"
)
