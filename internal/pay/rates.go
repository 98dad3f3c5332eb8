package pay

import "sort"

const (
	BaseRate   = 55.30
	TravelRate = 53.17 // 通勤费率是固定的，与工种差额无关
	MealHours  = 0.5
)

// 工种差额等级，表示在基础时薪之上的每小时加成
const (
	DiffBase   = 0.00
	DiffClass1 = 2.50
	DiffClass2 = 1.50
	DiffClass3 = 0.65
	DiffClass4 = 0.40
)

var jobDifferentials = map[string]float64{
	"Labour":             DiffBase,
	"First Aid":          DiffBase,
	"Dock Checker":       DiffBase,
	"Head Checker":       DiffBase,
	"Wheat Machine":      DiffBase,
	"Loci":               DiffBase,
	"Bulk Operator":      DiffBase,
	"Liquid Bulk":        DiffBase,
	"Wheat Specialty":    DiffBase,
	"Storesperson":       DiffBase,
	"Dow Men":            DiffBase,
	"Switchman":          DiffBase,
	"Trainer":            DiffBase,
	"Excavator":          DiffBase,
	"Bulldozer":          DiffBase,
	"Komatsu":            DiffBase,
	"Trackmen":           DiffBase,
	"Painter":            DiffBase,
	"Carpenter":          DiffBase,
	"Bunny Bus":          DiffBase,
	"Pusher":             DiffBase,
	"Lockerman":          DiffBase,
	"40 Ton (Top Pick)":  DiffBase,
	"Plumber":            DiffBase,
	"Training":           DiffBase,
	"Lines":              DiffBase,
	"Ob":                 DiffBase,
	"Mobile Crane":       DiffBase,

	"Hd Mechanic": DiffClass1,
	"Millwright":  DiffClass1,
	"Electrician": DiffClass1,
	"Welder":      DiffClass1,

	"Ship Gantry":         DiffClass2,
	"Dock Gantry":         DiffClass2,
	"Rail Mounted Gantry": DiffClass2,
	"Rubber Tire Gantry":  DiffClass2,

	"Tractor Trailer":  DiffClass3,
	"Lift Truck":       DiffClass3,
	"Front End Loader": DiffClass3,
	"Reachstacker":     DiffClass3,

	"Winch Driver":        DiffClass4,
	"Hatch Tender/Signals": DiffClass4,
	"Gearperson":          DiffClass4,
}

// DifferentialForJob 返回工种对应的差额，未知工种回退到基础差额，
// 第二个返回值用于让调用方观察到这次查找是否命中
func DifferentialForJob(job string) (float64, bool) {
	diff, ok := jobDifferentials[job]
	if !ok {
		return DiffBase, false
	}
	return diff, true
}

type JobRate struct {
	Job          string  `json:"job"`
	Differential float64 `json:"differential"`
	RegularRate  float64 `json:"regularRate"`
	OvertimeRate float64 `json:"overtimeRate"`
}

// Jobs 按工种名排序返回整张费率表
func Jobs() []JobRate {
	jobs := make([]JobRate, 0, len(jobDifferentials))
	for job, diff := range jobDifferentials {
		jobs = append(jobs, JobRate{
			Job:          job,
			Differential: diff,
			RegularRate:  RegularRate(diff),
			OvertimeRate: OvertimeRate(diff),
		})
	}

	sort.Slice(jobs, func(i, j int) bool { return jobs[i].Job < jobs[j].Job })

	return jobs
}
