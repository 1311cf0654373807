package usecase

import (
	"context"

	"lecture-pipeline/internal/model"
	"lecture-pipeline/pkg/gcalendar"
)

// GCalScheduler adapts the Google Calendar client to the Scheduler port.
// Tasks become all-day events on their due date.
type GCalScheduler struct {
	client     *gcalendar.Client
	calendarID string
}

func NewGCalScheduler(client *gcalendar.Client, calendarID string) *GCalScheduler {
	return &GCalScheduler{client: client, calendarID: calendarID}
}

func (s *GCalScheduler) ScheduleTask(ctx context.Context, task model.Task) (string, error) {
	// Rescheduling replaces the previous event, otherwise the calendar
	// accumulates duplicates for the same task.
	if task.CalendarEventID != nil && *task.CalendarEventID != "" {
		if err := s.client.DeleteEvent(ctx, s.calendarID, *task.CalendarEventID); err != nil {
			return "", err
		}
	}

	event, err := s.client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  s.calendarID,
		Summary:     task.Title,
		Description: task.Description,
		Date:        *task.DueDate,
	})
	if err != nil {
		return "", err
	}
	return event.ID, nil
}
