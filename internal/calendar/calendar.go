package calendar

import (
	"time"

	domain "github.com/chimeco/agenda-api/internal/domain/appointment"
	"github.com/chimeco/agenda-api/internal/models"
)

// Janela de atendimento exibida na grade semanal: 08h às 20h inclusive.
const (
	BusinessHourStart = 8
	BusinessHourEnd   = 20
)

const dayKeyLayout = "2006-01-02"

// ======================================================
// TIPOS DE SAÍDA
// ======================================================

type StatusCount struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
	Done      int `json:"done"`
}

type StaffAgenda struct {
	Staff        models.Staff         `json:"staff"`
	Appointments []models.Appointment `json:"appointments"`
	Done         int                  `json:"done"`
	Total        int                  `json:"total"`
}

type DayView struct {
	Day   time.Time     `json:"day"`
	Staff []StaffAgenda `json:"staff"`
	Stats StatusCount   `json:"stats"`
}

type WeekView struct {
	Days   []time.Time `json:"days"`
	Hours  []int       `json:"hours"`
	Offset int         `json:"offset"`

	// dia (YYYY-MM-DD) → hora → citas; fora da janela 08–20 não entra
	Grid map[string]map[int][]models.Appointment `json:"grid"`
}

type MonthView struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`

	Days      []time.Time `json:"days"`
	PrevMonth time.Time   `json:"prev_month"`
	NextMonth time.Time   `json:"next_month"`

	Appointments []models.Appointment `json:"appointments"`
}

type MonthBucket struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Name  string     `json:"name"`

	StatusCount
}

type YearView struct {
	Year   int           `json:"year"`
	Months []MonthBucket `json:"months"`
}

// ======================================================
// ARITMÉTICA DE DATAS
// ======================================================

// DateOf normaliza o instante para a meia-noite do dia, no fuso dado.
func DateOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// StartOfWeek devolve a segunda-feira da semana de anchor, deslocada
// offset semanas (negativo = passado).
func StartOfWeek(anchor time.Time, offset int, loc *time.Location) time.Time {
	day := DateOf(anchor, loc)
	back := (int(day.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return day.AddDate(0, 0, -back+7*offset)
}

func WeekDays(anchor time.Time, offset int, loc *time.Location) []time.Time {
	monday := StartOfWeek(anchor, offset, loc)

	days := make([]time.Time, 7)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

func MonthDays(year int, month time.Month, loc *time.Location) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	total := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()

	days := make([]time.Time, total)
	for i := range days {
		days[i] = first.AddDate(0, 0, i)
	}
	return days
}

func PrevMonthFirst(year int, month time.Month, loc *time.Location) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, loc).AddDate(0, -1, 0)
}

func NextMonthFirst(year int, month time.Month, loc *time.Location) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0)
}

func Hours() []int {
	hours := make([]int, 0, BusinessHourEnd-BusinessHourStart+1)
	for h := BusinessHourStart; h <= BusinessHourEnd; h++ {
		hours = append(hours, h)
	}
	return hours
}

// ======================================================
// AGREGAÇÃO
// ======================================================

func CountByStatus(appointments []models.Appointment) StatusCount {
	var out StatusCount
	for _, ap := range appointments {
		out.Total++
		switch domain.Status(ap.Status) {
		case domain.StatusPending:
			out.Pending++
		case domain.StatusConfirmed:
			out.Confirmed++
		case domain.StatusCancelled:
			out.Cancelled++
		case domain.StatusDone:
			out.Done++
		}
	}
	return out
}

// BuildDayView agrupa as citas do dia por profissional, com contadores
// done/total por staff e estatísticas globais de status.
func BuildDayView(
	day time.Time,
	staffList []models.Staff,
	appointments []models.Appointment,
	loc *time.Location,
) DayView {

	byStaff := make(map[uint][]models.Appointment, len(staffList))
	for _, ap := range appointments {
		byStaff[ap.StaffID] = append(byStaff[ap.StaffID], ap)
	}

	out := DayView{
		Day:   DateOf(day, loc),
		Staff: make([]StaffAgenda, 0, len(staffList)),
		Stats: CountByStatus(appointments),
	}

	for _, s := range staffList {
		agenda := StaffAgenda{
			Staff:        s,
			Appointments: byStaff[s.ID],
			Total:        len(byStaff[s.ID]),
		}
		for _, ap := range agenda.Appointments {
			if domain.Status(ap.Status) == domain.StatusDone {
				agenda.Done++
			}
		}
		out.Staff = append(out.Staff, agenda)
	}

	return out
}

// BuildWeekView monta a grade dia → hora da semana de anchor+offset.
// Citas fora da janela 08–20 ficam fora da grade (mas seguem contando
// em totais calculados à parte pelo chamador).
func BuildWeekView(
	anchor time.Time,
	offset int,
	appointments []models.Appointment,
	loc *time.Location,
) WeekView {

	days := WeekDays(anchor, offset, loc)

	grid := make(map[string]map[int][]models.Appointment, len(days))
	for _, d := range days {
		grid[d.Format(dayKeyLayout)] = make(map[int][]models.Appointment)
	}

	for _, ap := range appointments {
		start := ap.Start.In(loc)

		hour := start.Hour()
		if hour < BusinessHourStart || hour > BusinessHourEnd {
			continue
		}

		key := DateOf(start, loc).Format(dayKeyLayout)
		slots, ok := grid[key]
		if !ok {
			continue
		}
		slots[hour] = append(slots[hour], ap)
	}

	return WeekView{
		Days:   days,
		Hours:  Hours(),
		Offset: offset,
		Grid:   grid,
	}
}

func BuildMonthView(
	year int,
	month time.Month,
	appointments []models.Appointment,
	loc *time.Location,
) MonthView {

	return MonthView{
		Year:         year,
		Month:        month,
		Days:         MonthDays(year, month, loc),
		PrevMonth:    PrevMonthFirst(year, month, loc),
		NextMonth:    NextMonthFirst(year, month, loc),
		Appointments: appointments,
	}
}

// BuildYearView agrega as citas do ano em 12 baldes mensais com
// contagem por status.
func BuildYearView(
	year int,
	appointments []models.Appointment,
	loc *time.Location,
) YearView {

	perMonth := make(map[time.Month][]models.Appointment, 12)
	for _, ap := range appointments {
		start := ap.Start.In(loc)
		if start.Year() != year {
			continue
		}
		perMonth[start.Month()] = append(perMonth[start.Month()], ap)
	}

	out := YearView{
		Year:   year,
		Months: make([]MonthBucket, 0, 12),
	}

	for m := time.January; m <= time.December; m++ {
		out.Months = append(out.Months, MonthBucket{
			Year:        year,
			Month:       m,
			Name:        m.String(),
			StatusCount: CountByStatus(perMonth[m]),
		})
	}

	return out
}
