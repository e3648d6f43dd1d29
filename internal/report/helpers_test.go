package report

import (
	"time"

	"github.com/julianstephens/clockings/internal/models"
)

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func in(ts time.Time) models.ClockEvent {
	return models.ClockEvent{Timestamp: ts, Direction: models.DirectionIncoming, Description: "HO Main Staff IN"}
}

func out(ts time.Time) models.ClockEvent {
	return models.ClockEvent{Timestamp: ts, Direction: models.DirectionOutgoing, Description: "HO Main Staff OUT"}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
