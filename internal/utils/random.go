package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/kashrut-ops/mashguiach-manager/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonFirstNames = []string{
	"Abraão", "Ana", "Bruno", "Carla", "Daniel", "Débora", "Eduardo", "Ester",
	"Felipe", "Gabriel", "Hannah", "Isaac", "Jacó", "Judite", "Levi", "Miriam",
	"Moisés", "Noemi", "Rafael", "Raquel", "Rebeca", "Samuel", "Sara", "Simão",
}

var commonSurnames = []string{
	"Almeida", "Barros", "Cohen", "Costa", "Ferreira", "Goldstein", "Gomes",
	"Katz", "Levy", "Lima", "Mizrahi", "Oliveira", "Pereira", "Rosenberg",
	"Santos", "Silva", "Souza", "Stern", "Weiss", "Zagury",
}

func GenerateRandomFullName() string {
	first := commonFirstNames[rand.Intn(len(commonFirstNames))]
	last := commonSurnames[rand.Intn(len(commonSurnames))]
	return first + " " + last
}

var digits = "0123456789"

func GenerateUsernameFromFullName(fullName string) string {
	parts := strings.Fields(strings.ToLower(fullName))
	username := strings.Join(parts, ".")

	// Strip the accents common in Brazilian names; usernames stay ASCII.
	replacer := strings.NewReplacer("ã", "a", "á", "a", "â", "a", "é", "e",
		"ê", "e", "í", "i", "ó", "o", "ô", "o", "ú", "u", "ç", "c")
	username = replacer.Replace(username)

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
		Phone:        fmt.Sprintf("+55 11 9%04d-%04d", rand.Intn(10000), rand.Intn(10000)),
		Role:         domain.RoleMashguiach,
	}

	return user, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	password := make([]rune, length)
	for i := range password {
		password[i] = letters[rand.Intn(len(letters))]
	}
	return string(password)
}

var establishmentKinds = []string{"Restaurante", "Buffet", "Padaria", "Mercado", "Confeitaria"}
var establishmentNames = []string{"Shalom", "Jerusalém", "Massada", "Hebraica", "Carmel", "Sinai", "Galil"}

func GenerateRandomEstablishment() *domain.Establishment {
	return &domain.Establishment{
		Name:    establishmentKinds[rand.Intn(len(establishmentKinds))] + " " + establishmentNames[rand.Intn(len(establishmentNames))],
		Address: fmt.Sprintf("Rua %s, %d", commonSurnames[rand.Intn(len(commonSurnames))], rand.Intn(2000)+1),
		City:    "São Paulo",
		Phone:   fmt.Sprintf("+55 11 %04d-%04d", rand.Intn(10000), rand.Intn(10000)),
	}
}

// GenerateRandomWeeklySchedule builds a plausible fixed job: working slots on
// most weekdays, an occasional day off, and sometimes the Nth-Sunday rule.
func GenerateRandomWeeklySchedule(mashguiachID, establishmentID int64) *domain.WeeklySchedule {
	ws := &domain.WeeklySchedule{
		MashguiachID:    mashguiachID,
		EstablishmentID: establishmentID,
	}

	for day := time.Sunday; day <= time.Saturday; day++ {
		slot := domain.DaySlot{Weekday: day.String()}

		switch {
		case rand.Intn(7) == 0:
			slot.IsDayOff = true
			if day == time.Sunday && rand.Intn(2) == 0 {
				nth := int32(rand.Intn(4) + 1)
				slot.SundayOfMonth = &nth
			}
		case rand.Intn(7) == 0:
			// Leave the slot empty, the resolver treats it as free.
		default:
			inHour := rand.Intn(6) + 6 // 06:00 to 11:00
			outHour := inHour + rand.Intn(8) + 4
			timeIn := fmt.Sprintf("%02d:%02d", inHour, []int{0, 30}[rand.Intn(2)])
			var timeOut string
			if outHour >= 24 {
				timeOut = "00:00"
			} else {
				timeOut = fmt.Sprintf("%02d:%02d", outHour, []int{0, 30}[rand.Intn(2)])
			}
			slot.TimeIn = &timeIn
			slot.TimeOut = &timeOut
		}

		ws.Slots = append(ws.Slots, slot)
	}

	return ws
}

var eventTitles = []string{"Bar Mitzvá", "Bat Mitzvá", "Casamento", "Brit Milá", "Jantar de Shabat", "Evento corporativo"}

func GenerateRandomEvent(establishmentID int64) *domain.Event {
	return &domain.Event{
		EstablishmentID: establishmentID,
		Title:           eventTitles[rand.Intn(len(eventTitles))],
		Date:            time.Now().AddDate(0, 0, rand.Intn(60)-30),
	}
}

func GenerateRandomService(event *domain.Event) *domain.Service {
	arrive := time.Date(event.Date.Year(), event.Date.Month(), event.Date.Day(),
		rand.Intn(14)+8, []int{0, 30}[rand.Intn(2)], 0, 0, time.Local)
	end := arrive.Add(time.Duration(rand.Intn(8)+2) * time.Hour)

	svc := &domain.Service{
		EventID:      event.ID,
		ArriveTime:   arrive,
		EndTime:      end,
		TransportFee: float64(rand.Intn(5) * 10),
	}

	// Most services use the default rates; some have negotiated ones.
	if rand.Intn(4) == 0 {
		day := float64(rand.Intn(40) + 40)
		night := day + 25
		svc.DayRate = &day
		svc.NightRate = &night
	}

	return svc
}
