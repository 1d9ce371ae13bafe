package utils

import (
	"fmt"
	"math"
	"time"
)

// NumberOfDays nombre de jours d'un concours
const NumberOfDays = 25

// contestZone fuseau de référence du concours (EST fixe, sans heure d'été)
var contestZone = time.FixedZone("EST", -5*60*60)

// SplitDuration découpe une durée en secondes en jours, heures, minutes, secondes et millisecondes
func SplitDuration(seconds float64) (days, hours, minutes, secs, millis int) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, 0, 0, 0, 0
	}

	whole := math.Floor(seconds)
	millis = int(math.Round((seconds - whole) * 1000))
	// retenue de l'arrondi des millisecondes
	if millis >= 1000 {
		whole++
		millis -= 1000
	}

	days = int(math.Floor(whole / 86_400))
	hours = int(math.Mod(math.Floor(whole/3600), 24))
	minutes = int(math.Mod(math.Floor(whole/60), 60))
	secs = int(math.Mod(whole, 60))
	return days, hours, minutes, secs, millis
}

// FormatElapsed formate une durée au format D:HH:MM:SS
func FormatElapsed(seconds float64) string {
	days, hours, minutes, secs, _ := SplitDuration(seconds)
	return fmt.Sprintf("%d:%02d:%02d:%02d", days, hours, minutes, secs)
}

// FormatElapsedMillis formate une durée au format D:HH:MM:SS.mmm
func FormatElapsedMillis(seconds float64) string {
	days, hours, minutes, secs, millis := SplitDuration(seconds)
	return fmt.Sprintf("%d:%02d:%02d:%02d.%03d", days, hours, minutes, secs, millis)
}

// ContestEnd retourne l'instant de fin du concours de l'année donnée
func ContestEnd(year int) time.Time {
	return time.Date(year, time.December, 31, 23, 59, 59, 999_999_000, contestZone)
}

// IsContestOver indique si now est postérieur à la fin du concours
func IsContestOver(year int, now time.Time) bool {
	return now.After(ContestEnd(year))
}

// IsBeforeCutoff indique si un timestamp epoch est compté pour l'année donnée
func IsBeforeCutoff(year int, ts int64) bool {
	return !time.Unix(ts, 0).After(ContestEnd(year))
}
