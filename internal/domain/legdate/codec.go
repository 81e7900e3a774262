// Package legdate convierte las fechas de los tramos entre la codificación almacenada
// (entero YYYYMMDD con mes base cero, el formato de almacenamiento) y la forma
// que acepta el calendario del formulario ("M D YYYY", mes base uno).
package legdate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/leave-tracker/internal/domain"
)

// Display fecha orientada al calendario (mes 1-12).
type Display struct {
	Year  int
	Month int
	Day   int
}

// String devuelve "M DD YYYY": mes sin relleno y día tal como está almacenado.
func (d Display) String() string {
	return fmt.Sprintf("%d %02d %04d", d.Month, d.Day, d.Year)
}

// ToDisplay lee las posiciones fijas YYYY|MM|DD del valor almacenado y suma 1 al mes.
// No valida el calendario.
func ToDisplay(encoded int) Display {
	s := fmt.Sprintf("%08d", encoded)
	year, _ := strconv.Atoi(s[0:4])
	month, _ := strconv.Atoi(s[4:6])
	day, _ := strconv.Atoi(s[6:8])
	return Display{Year: year, Month: month + 1, Day: day}
}

// ToStorage es la inversa de ToDisplay: resta 1 al mes antes de codificar.
func ToStorage(d Display) int {
	return d.Year*10000 + (d.Month-1)*100 + d.Day
}

// Encode construye el valor almacenado a partir de un mes ya en base cero.
func Encode(year, zeroBasedMonth, day int) int {
	return year*10000 + zeroBasedMonth*100 + day
}

// ParseDisplay interpreta la fecha enviada por el formulario ("M D YYYY", relleno opcional).
func ParseDisplay(s string) (Display, error) {
	parts := strings.Fields(s)
	if len(parts) != 3 {
		return Display{}, fmt.Errorf("%w: fecha %q, formato esperado \"M D YYYY\"", domain.ErrInvalidInput, s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Display{}, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, s)
		}
		nums[i] = n
	}
	d := Display{Month: nums[0], Day: nums[1], Year: nums[2]}
	if d.Month < 1 || d.Month > 12 {
		return Display{}, fmt.Errorf("%w: mes fuera de rango en %q", domain.ErrInvalidInput, s)
	}
	if d.Day < 1 || d.Day > 31 {
		return Display{}, fmt.Errorf("%w: día fuera de rango en %q", domain.ErrInvalidInput, s)
	}
	if d.Year < 1000 || d.Year > 9999 {
		return Display{}, fmt.Errorf("%w: año fuera de rango en %q", domain.ErrInvalidInput, s)
	}
	return d, nil
}
