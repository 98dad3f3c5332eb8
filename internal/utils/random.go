package utils

import (
	"math/rand"
	"strings"
	"time"

	"github.com/wharflog-dev/wharflog/backend/internal/domain"
	"github.com/wharflog-dev/wharflog/backend/internal/pay"
	"golang.org/x/crypto/bcrypt"
)

var commonFirstNames = []string{
	"James", "Mike", "Dave", "Steve", "Rick", "Tony", "Frank", "Gord", "Doug", "Brian",
	"Kevin", "Mark", "Paul", "Chris", "Dan", "Rob", "Jeff", "Scott", "Brad", "Terry",
}
var commonLastNames = []string{
	"Smith", "Brown", "Wilson", "Campbell", "Macdonald", "Stewart", "Johnson", "Taylor", "Anderson", "Martin",
	"Gill", "Sidhu", "Singh", "Leung", "Wong", "Tremblay", "Gagnon", "Roy", "Olsen", "Hansen",
}

func GenerateRandomFullName() string {
	first := commonFirstNames[rand.Intn(len(commonFirstNames))]
	last := commonLastNames[rand.Intn(len(commonLastNames))]
	return first + " " + last
}

var digits = "0123456789"

func GenerateUsernameFromFullName(fullName string) string {
	username := strings.ToLower(strings.ReplaceAll(fullName, " ", "."))

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomUser(password string, emailDomainName string) (*domain.User, error) {
	fullName := GenerateRandomFullName()
	username := GenerateUsernameFromFullName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomainName,
	}

	return user, nil
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

var seedLocations = []string{"Centerm", "Vanterm", "Deltaport", "Fraser Surrey", "Lynnterm", "Neptune"}
var seedVessels = []string{"MSC Altair", "Ever Summit", "ONE Harbour", "Zim Vancouver", "Hanna Oldendorff", ""}
var seedShiftTypes = []domain.ShiftType{domain.ShiftDay, domain.ShiftNight, domain.ShiftGraveyard}
var seedLeaveTypes = []domain.LeaveType{domain.LeaveSick, domain.LeavePersonal, domain.LeaveParental}

// GenerateRandomShift 生成过去一年内某一天的随机记录，大部分是工作记录
func GenerateRandomShift(userID int64, date time.Time) *domain.ShiftEntry {
	entry := &domain.ShiftEntry{
		UserID: userID,
		Date:   date,
	}

	jobs := pay.Jobs()

	switch rand.Intn(10) {
	case 0:
		entry.EntryType = domain.EntryLeave
		entry.Leave = &domain.LeaveDetails{
			LeaveType: seedLeaveTypes[rand.Intn(len(seedLeaveTypes))],
		}
	case 1:
		entry.EntryType = domain.EntryDayOff
	case 2:
		entry.EntryType = domain.EntryStandby
	default:
		entry.EntryType = domain.EntryWorked
		entry.Worked = &domain.WorkedDetails{
			Job:                jobs[rand.Intn(len(jobs))].Job,
			Location:           seedLocations[rand.Intn(len(seedLocations))],
			ShiftType:          seedShiftTypes[rand.Intn(len(seedShiftTypes))],
			Hours:              8,
			OvertimeHours:      float64(rand.Intn(3)),
			TravelHours:        float64(rand.Intn(2)),
			IncludeMeal:        rand.Intn(2) == 0,
			Vessel:             seedVessels[rand.Intn(len(seedVessels))],
			WillReceivePaystub: rand.Intn(5) != 0,
		}
	}

	return entry
}
