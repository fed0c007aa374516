package payroll

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// salaryComponents is the normalized form of an employee's stored
// salary configuration.
type salaryComponents struct {
	Basic      decimal.Decimal
	Allowances decimal.Decimal
	Deductions decimal.Decimal
}

// resolveSalary normalizes whatever shape the employee document carries:
// a bare number is taken as basic pay with no allowances or deductions,
// a document is read field by field. Anything unreadable resolves to
// zero rather than failing the employee's record.
func resolveSalary(salary any) salaryComponents {
	switch v := salary.(type) {
	case nil:
		return salaryComponents{
			Basic:      decimal.Zero,
			Allowances: decimal.Zero,
			Deductions: decimal.Zero,
		}
	case primitive.M:
		return resolveSalaryDoc(map[string]any(v))
	case map[string]any:
		return resolveSalaryDoc(v)
	case primitive.D:
		return resolveSalaryDoc(v.Map())
	default:
		return salaryComponents{
			Basic:      nonNegative(toDecimal(v)),
			Allowances: decimal.Zero,
			Deductions: decimal.Zero,
		}
	}
}

// resolveSalaryDoc reads a structured salary document. Basic pay is the
// first non-zero of basicSalary, basic and amount; allowances and
// deductions each accept a flat amount or a map of named sub-components.
func resolveSalaryDoc(doc map[string]any) salaryComponents {
	basic := toDecimal(doc["basicSalary"])
	if basic.IsZero() {
		basic = toDecimal(doc["basic"])
	}
	if basic.IsZero() {
		basic = toDecimal(doc["amount"])
	}

	return salaryComponents{
		Basic:      nonNegative(basic),
		Allowances: nonNegative(sumComponent(doc["allowances"])),
		Deductions: nonNegative(sumComponent(doc["deductions"])),
	}
}

// sumComponent folds a salary component that is either a flat amount or
// a map of named sub-amounts into a single total.
func sumComponent(v any) decimal.Decimal {
	switch m := v.(type) {
	case primitive.M:
		return sumValues(map[string]any(m))
	case map[string]any:
		return sumValues(m)
	case primitive.D:
		return sumValues(m.Map())
	default:
		return toDecimal(v)
	}
}

func sumValues(m map[string]any) decimal.Decimal {
	total := decimal.Zero
	for _, v := range m {
		total = total.Add(toDecimal(v))
	}
	return total
}

// toDecimal converts the numeric types the BSON decoder produces for
// interface fields; non-numeric values resolve to zero.
func toDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n)
	case float32:
		return decimal.NewFromFloat32(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int32:
		return decimal.NewFromInt32(n)
	case int64:
		return decimal.NewFromInt(n)
	case primitive.Decimal128:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
