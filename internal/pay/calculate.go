package pay

import "github.com/shopspring/decimal"

type ShiftPayInput struct {
	Job           string
	Hours         float64
	OvertimeHours float64
	TravelHours   float64
	IncludeMeal   bool
}

type ShiftPayResult struct {
	RegularRate  float64 `json:"regularRate"`
	OvertimeRate float64 `json:"overtimeRate"`
	RegularPay   float64 `json:"regularPay"`
	OvertimePay  float64 `json:"overtimePay"`
	TravelPay    float64 `json:"travelPay"`
	MealPay      float64 `json:"mealPay"`
	TotalPay     float64 `json:"totalPay"`
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// RegularRate 返回基础时薪加上工种差额后的普通费率
func RegularRate(differential float64) float64 {
	rate := round2(decimal.NewFromFloat(BaseRate).Add(decimal.NewFromFloat(differential)))
	return rate.InexactFloat64()
}

// OvertimeRate 返回加班费率，为基础时薪的 1.5 倍加上工种差额
func OvertimeRate(differential float64) float64 {
	rate := round2(decimal.NewFromFloat(BaseRate).Mul(decimal.NewFromFloat(1.5)).Add(decimal.NewFromFloat(differential)))
	return rate.InexactFloat64()
}

// CalculateShiftPay 根据工种和时数计算一个班次的薪酬明细。
// 每一个中间结果都要先保留两位小数再参与后续计算，否则总额会和参考值出现 ±0.01 的偏差。
// 该函数是纯函数且没有失败路径，未知工种静默回退到基础差额
func CalculateShiftPay(input ShiftPayInput) ShiftPayResult {
	differential, _ := DifferentialForJob(input.Job)

	regularRate := round2(decimal.NewFromFloat(BaseRate).Add(decimal.NewFromFloat(differential)))
	overtimeRate := round2(decimal.NewFromFloat(BaseRate).Mul(decimal.NewFromFloat(1.5)).Add(decimal.NewFromFloat(differential)))

	regularPay := round2(decimal.NewFromFloat(input.Hours).Mul(regularRate))
	overtimePay := round2(decimal.NewFromFloat(input.OvertimeHours).Mul(overtimeRate))
	travelPay := round2(decimal.NewFromFloat(input.TravelHours).Mul(decimal.NewFromFloat(TravelRate)))

	// 餐补始终按加班费率计价，与是否有加班时数无关
	mealPay := decimal.Zero
	if input.IncludeMeal {
		mealPay = round2(decimal.NewFromFloat(MealHours).Mul(overtimeRate))
	}

	totalPay := round2(regularPay.Add(overtimePay).Add(travelPay).Add(mealPay))

	return ShiftPayResult{
		RegularRate:  regularRate.InexactFloat64(),
		OvertimeRate: overtimeRate.InexactFloat64(),
		RegularPay:   regularPay.InexactFloat64(),
		OvertimePay:  overtimePay.InexactFloat64(),
		TravelPay:    travelPay.InexactFloat64(),
		MealPay:      mealPay.InexactFloat64(),
		TotalPay:     totalPay.InexactFloat64(),
	}
}
