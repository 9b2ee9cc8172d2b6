package cmd

import (
	"context"
	"time"

	"github.com/msto63/calword/foundation/utils/stringx"
	"github.com/msto63/calword/foundation/utils/timex"
	"github.com/msto63/calword/internal/calendar/server"
	"github.com/msto63/calword/internal/calendar/service"
	"github.com/msto63/calword/internal/calendar/store"
)

// calendar is what the compute commands need, served either by an in-process
// service or by a remote server
type calendar interface {
	AdvanceWorkingDays(ctx context.Context, date time.Time, days int, schedule *timex.WorkingDaySchedule) (time.Time, error)
	RetreatWorkingDays(ctx context.Context, date time.Time, days int, schedule *timex.WorkingDaySchedule) (time.Time, error)
	OrdinalWords(ctx context.Context, n int64) (string, error)
	MatchDigitOrdinal(ctx context.Context, word string) (stringx.OrdinalMatch, error)
	FormatSpoken(ctx context.Context, t time.Time, offsetHours *int) (string, error)
	ResolveDateTime(ctx context.Context, input timex.DateTimeInput, offsetHours *int) (timex.DateTimeRange, error)
	Close() error
}

var (
	_ calendar = (*server.Client)(nil)
	_ calendar = (*localCalendar)(nil)
)

// localCalendar adapts the service to the calendar interface
type localCalendar struct {
	svc     *service.Service
	journal store.JournalStore
}

func (l *localCalendar) AdvanceWorkingDays(ctx context.Context, date time.Time, days int, schedule *timex.WorkingDaySchedule) (time.Time, error) {
	return l.svc.AdvanceWorkingDays(ctx, service.WorkdaysRequest{Date: date, Days: days, Schedule: schedule})
}

func (l *localCalendar) RetreatWorkingDays(ctx context.Context, date time.Time, days int, schedule *timex.WorkingDaySchedule) (time.Time, error) {
	return l.svc.RetreatWorkingDays(ctx, service.WorkdaysRequest{Date: date, Days: days, Schedule: schedule})
}

func (l *localCalendar) OrdinalWords(ctx context.Context, n int64) (string, error) {
	return l.svc.OrdinalWords(ctx, n)
}

func (l *localCalendar) MatchDigitOrdinal(ctx context.Context, word string) (stringx.OrdinalMatch, error) {
	return l.svc.MatchDigitOrdinal(ctx, word), nil
}

func (l *localCalendar) FormatSpoken(ctx context.Context, t time.Time, offsetHours *int) (string, error) {
	return l.svc.FormatSpoken(ctx, t, offsetHours)
}

func (l *localCalendar) ResolveDateTime(ctx context.Context, input timex.DateTimeInput, offsetHours *int) (timex.DateTimeRange, error) {
	return l.svc.ResolveDateTime(ctx, input, offsetHours)
}

func (l *localCalendar) Close() error {
	if l.journal != nil {
		return l.journal.Close()
	}
	return nil
}

// openCalendar returns the remote client when --remote is set and a local
// service otherwise. Local computations are not journaled.
func openCalendar() (calendar, error) {
	if remoteAddr != "" {
		logger.Debug("Using remote calendar", "address", remoteAddr)
		return server.Dial(remoteAddr)
	}

	svc, err := newService(nil)
	if err != nil {
		return nil, err
	}
	return &localCalendar{svc: svc}, nil
}

// newService builds the calendar service from the loaded configuration
func newService(journal store.JournalStore) (*service.Service, error) {
	return service.NewService(service.Config{
		Schedule:          appConfig.Calendar.Schedule(),
		SpokenOffsetHours: appConfig.Calendar.SpokenOffsetHours,
		EventLength:       appConfig.Calendar.DefaultEventLength.Duration,
		OrdinalCacheSize:  appConfig.Calendar.OrdinalCacheSize,
		Journal:           journal,
		Logger:            logger,
	})
}

// openJournal opens the configured journal
func openJournal() (*store.SQLiteJournalStore, error) {
	return store.NewSQLiteJournalStore(store.Config{Path: appConfig.Journal.Path})
}
