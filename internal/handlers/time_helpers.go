package handlers

import (
	"time"

	"github.com/marcafacil/booking-api/internal/models"
	"github.com/marcafacil/booking-api/internal/timezone"
)

// --------------------------------------------------
// Timezone centralizado por negócio
// --------------------------------------------------

func locationFromBusiness(biz *models.Business) *time.Location {
	if biz != nil {
		return timezone.Location(biz.Timezone)
	}
	return timezone.Location("")
}

func nowInBusiness(biz *models.Business) time.Time {
	return time.Now().In(locationFromBusiness(biz))
}

func parseDateInBusiness(biz *models.Business, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromBusiness(biz),
	)
}

func parseDateTimeInBusiness(
	biz *models.Business,
	dateStr string,
	timeStr string,
) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		locationFromBusiness(biz),
	)
}
