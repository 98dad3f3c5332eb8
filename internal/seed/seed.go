package seed

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/wharflog-dev/wharflog/backend/internal/domain"
	"github.com/wharflog-dev/wharflog/backend/internal/repository"
)

// SeedPayOverrides 从 CSV 文件导入固定时数表，
// 列依次为 job, subjob, location, shift_type, hours, overtime_hours
func SeedPayOverrides(r *repository.Repository) {
	file, err := os.Open("./internal/seed/data/pay_overrides.csv")
	if err != nil {
		slog.Error("打开文件失败", "error", err)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// 读取表头
	if _, err := reader.Read(); err != nil {
		slog.Error("读取表头失败", "error", err)
		return
	}

	cnt := 0
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			slog.Error("读取记录失败", "error", err)
			return
		}

		if len(record) != 6 {
			slog.Error("记录列数不正确", "record", record)
			continue
		}

		hours, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			slog.Error("解析工作时数失败", "record", record, "error", err)
			continue
		}
		overtimeHours, err := strconv.ParseFloat(record[5], 64)
		if err != nil {
			slog.Error("解析加班时数失败", "record", record, "error", err)
			continue
		}

		o := &domain.PayOverride{
			Job:           record[0],
			Subjob:        record[1],
			Location:      record[2],
			ShiftType:     record[3],
			Hours:         hours,
			OvertimeHours: overtimeHours,
		}
		if err := r.UpsertPayOverride(o); err != nil {
			slog.Error("插入固定时数失败", "record", record, "error", err)
			continue
		}

		cnt++
	}

	slog.Info("导入固定时数成功", "count", cnt)
}

// BC 省的法定假日，日期会随年份浮动的取当年的实际日期
var statHolidays = []struct {
	Name  string
	Month time.Month
	Day   int
}{
	{"New Year's Day", time.January, 1},
	{"Family Day", time.February, 16},
	{"Good Friday", time.April, 3},
	{"Victoria Day", time.May, 18},
	{"Canada Day", time.July, 1},
	{"BC Day", time.August, 3},
	{"Labour Day", time.September, 7},
	{"National Day for Truth and Reconciliation", time.September, 30},
	{"Thanksgiving", time.October, 12},
	{"Remembrance Day", time.November, 11},
	{"Christmas Day", time.December, 25},
}

// SeedHolidays 插入指定年份的法定假日，合资格窗口留空以使用默认的 28 天
func SeedHolidays(r *repository.Repository, year int) {
	cnt := 0
	for _, sh := range statHolidays {
		h := &domain.Holiday{
			Name: sh.Name,
			Date: time.Date(year, sh.Month, sh.Day, 0, 0, 0, 0, time.UTC),
		}
		if err := r.CreateHoliday(h); err != nil {
			slog.Error("插入法定假日失败", "name", sh.Name, "error", err)
			continue
		}
		cnt++
	}

	slog.Info("插入法定假日成功", "year", year, "count", cnt)
}
