package service

import (
	"context"
	"time"

	mdwerror "github.com/msto63/calword/foundation/core/error"
	mdwerrors "github.com/msto63/calword/foundation/core/errors"
	mdwlog "github.com/msto63/calword/foundation/core/log"
	"github.com/msto63/calword/foundation/utils/stringx"
	"github.com/msto63/calword/foundation/utils/timex"
	"github.com/msto63/calword/internal/calendar/store"
	"github.com/msto63/calword/pkg/core/cache"
	coreGrpc "github.com/msto63/calword/pkg/core/grpc"
	"github.com/msto63/calword/pkg/core/logging"
)

// Operation names, also used as journal operations and gRPC method names
const (
	OpAdvanceWorkingDays = "AdvanceWorkingDays"
	OpRetreatWorkingDays = "RetreatWorkingDays"
	OpOrdinalWords       = "OrdinalWords"
	OpMatchDigitOrdinal  = "MatchDigitOrdinal"
	OpFormatSpoken       = "FormatSpoken"
	OpResolveDateTime    = "ResolveDateTime"
)

// WorkdaysRequest moves Date by Days working days. A nil Schedule uses the
// service default.
type WorkdaysRequest struct {
	Date     time.Time
	Days     int
	Schedule *timex.WorkingDaySchedule
}

// Config holds service configuration
type Config struct {
	// Default working-day schedule
	Schedule timex.WorkingDaySchedule

	// Hour offset from UTC for spoken times
	SpokenOffsetHours int

	// Length of events resolved from a single point
	EventLength time.Duration

	// Number of spelled ordinals kept in memory; zero disables caching
	OrdinalCacheSize int

	// Optional journal; nil disables recording
	Journal store.JournalStore

	// Optional logger
	Logger *logging.Logger

	// Optional clock, time.Now by default
	Clock func() time.Time
}

// DefaultConfig returns the Monday to Friday configuration without journal
func DefaultConfig() Config {
	return Config{
		Schedule:          timex.DefaultWorkingDaySchedule(),
		SpokenOffsetHours: timex.DefaultSpokenOffsetHours,
		EventLength:       timex.DefaultEventLength,
		OrdinalCacheSize:  1024,
	}
}

// Service is the calendar service. It is safe for concurrent use.
type Service struct {
	schedule    timex.WorkingDaySchedule
	offsetHours int
	eventLength time.Duration
	ordinals    *cache.Cache[int64, string]
	journal     store.JournalStore
	logger      *logging.Logger
	clock       func() time.Time
}

// NewService creates a new calendar service
func NewService(cfg Config) (*Service, error) {
	if cfg.SpokenOffsetHours < -12 || cfg.SpokenOffsetHours > 14 {
		return nil, mdwerrors.InvalidArgument(mdwerrors.ModuleService, "NewService",
			"spoken offset must be between -12 and 14 hours")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.New("calendar")
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	eventLength := cfg.EventLength
	if eventLength <= 0 {
		eventLength = timex.DefaultEventLength
	}

	var ordinals *cache.Cache[int64, string]
	if cfg.OrdinalCacheSize > 0 {
		ordinals = cache.New[int64, string](cache.Config{MaxItems: cfg.OrdinalCacheSize})
	}

	return &Service{
		schedule:    cfg.Schedule,
		offsetHours: cfg.SpokenOffsetHours,
		eventLength: eventLength,
		ordinals:    ordinals,
		journal:     cfg.Journal,
		logger:      logger,
		clock:       clock,
	}, nil
}

// Schedule returns the default working-day schedule
func (s *Service) Schedule() timex.WorkingDaySchedule {
	return s.schedule
}

// SpokenOffsetHours returns the default offset of spoken times
func (s *Service) SpokenOffsetHours() int {
	return s.offsetHours
}

// OrdinalCacheStats reports usage of the ordinal cache; ok is false when
// caching is disabled
func (s *Service) OrdinalCacheStats() (stats cache.Stats, ok bool) {
	if s.ordinals == nil {
		return cache.Stats{}, false
	}
	return s.ordinals.Stats(), true
}

// HasJournal reports whether computations are recorded
func (s *Service) HasJournal() bool {
	return s.journal != nil
}

func (s *Service) scheduleOf(req WorkdaysRequest) timex.WorkingDaySchedule {
	if req.Schedule != nil {
		return *req.Schedule
	}
	return s.schedule
}

// AdvanceWorkingDays moves the date forward by working days
func (s *Service) AdvanceWorkingDays(ctx context.Context, req WorkdaysRequest) (time.Time, error) {
	schedule := s.scheduleOf(req)
	call := s.begin(OpAdvanceWorkingDays)

	result, err := timex.AdvanceWorkingDays(req.Date, req.Days, schedule)
	call.finish(ctx, workdaysInput(req, schedule), map[string]interface{}{"date": timex.FormatISO(result)}, err)
	return result, err
}

// RetreatWorkingDays moves the date backward by working days
func (s *Service) RetreatWorkingDays(ctx context.Context, req WorkdaysRequest) (time.Time, error) {
	schedule := s.scheduleOf(req)
	call := s.begin(OpRetreatWorkingDays)

	result, err := timex.RetreatWorkingDays(req.Date, req.Days, schedule)
	call.finish(ctx, workdaysInput(req, schedule), map[string]interface{}{"date": timex.FormatISO(result)}, err)
	return result, err
}

func workdaysInput(req WorkdaysRequest, schedule timex.WorkingDaySchedule) map[string]interface{} {
	return map[string]interface{}{
		"date":     timex.FormatISO(req.Date),
		"days":     req.Days,
		"schedule": schedule.String(),
	}
}

// OrdinalWords spells n as an English ordinal
func (s *Service) OrdinalWords(ctx context.Context, n int64) (string, error) {
	call := s.begin(OpOrdinalWords)

	var words string
	var err error
	if s.ordinals != nil {
		words, err = s.ordinals.GetOrSet(n, func() (string, error) { return stringx.ToOrdinalWords(n) })
	} else {
		words, err = stringx.ToOrdinalWords(n)
	}
	call.finish(ctx, map[string]interface{}{"n": n}, map[string]interface{}{"words": words}, err)
	return words, err
}

// MatchDigitOrdinal recognizes ordinals written with digits, like "21st"
func (s *Service) MatchDigitOrdinal(ctx context.Context, word string) stringx.OrdinalMatch {
	call := s.begin(OpMatchDigitOrdinal)

	match := stringx.MatchDigitOrdinal(word)
	call.finish(ctx, map[string]interface{}{"word": word},
		map[string]interface{}{"matched": match.Matched, "numeral": match.Numeral}, nil)
	return match
}

// FormatSpoken renders t for speech relative to the service clock. A nil
// offset uses the configured one.
func (s *Service) FormatSpoken(ctx context.Context, t time.Time, offsetHours *int) (string, error) {
	call := s.begin(OpFormatSpoken)

	offset := s.offsetHours
	if offsetHours != nil {
		offset = *offsetHours
	}

	var spoken string
	var err error
	switch {
	case t.IsZero():
		err = mdwerrors.InvalidArgument(mdwerrors.ModuleService, OpFormatSpoken, "time must be set")
	case offset < -12 || offset > 14:
		err = mdwerrors.InvalidArgument(mdwerrors.ModuleService, OpFormatSpoken, "offset must be between -12 and 14 hours")
	default:
		spoken = timex.FormatSpoken(t, s.clock(), offset)
	}

	call.finish(ctx, map[string]interface{}{"time": timex.FormatISO(t), "offset_hours": offset},
		map[string]interface{}{"spoken": spoken}, err)
	return spoken, err
}

// ResolveDateTime resolves structured date/time input into an event range.
// A nil offset means UTC.
func (s *Service) ResolveDateTime(ctx context.Context, input timex.DateTimeInput, offsetHours *int) (timex.DateTimeRange, error) {
	call := s.begin(OpResolveDateTime)

	offset := 0
	if offsetHours != nil {
		offset = *offsetHours
	}

	result, err := timex.ResolveDateTime(input, s.clock(), offset, s.eventLength)
	call.finish(ctx, map[string]interface{}{"offset_hours": offset},
		map[string]interface{}{"start": timex.FormatISOMillis(result.Start), "end": timex.FormatISOMillis(result.End)}, err)
	return result, err
}

// call tracks one operation for logging and the journal
type call struct {
	service   *Service
	operation string
	timer     *mdwlog.Timer
}

func (s *Service) begin(operation string) *call {
	return &call{
		service:   s,
		operation: operation,
		timer:     s.logger.Foundation().StartTimer(operation),
	}
}

func (c *call) finish(ctx context.Context, input, output map[string]interface{}, err error) {
	requestID := coreGrpc.GetRequestID(ctx)

	var elapsed time.Duration
	if err != nil {
		elapsed = c.timer.Elapsed()
		c.timer.Cancel()
		c.service.logger.Foundation().WithRequestID(requestID).LogError(err, mdwlog.Fields{"operation": c.operation})
	} else {
		elapsed = c.timer.Stop()
	}

	if c.service.journal == nil {
		return
	}

	entry := &store.Entry{
		Operation: c.operation,
		RequestID: requestID,
		Input:     input,
		Duration:  elapsed,
	}
	if err != nil {
		entry.ErrorCode = string(mdwerror.GetCode(err))
		entry.ErrorMessage = err.Error()
	} else {
		entry.Output = output
	}

	// the computed result stands even when recording fails
	if recordErr := c.service.journal.Record(context.WithoutCancel(ctx), entry); recordErr != nil {
		c.service.logger.Warn("Failed to record journal entry", "operation", c.operation, "error", recordErr)
	}
}

// PingJournal checks that the journal is reachable
func (s *Service) PingJournal(ctx context.Context) error {
	if s.journal == nil {
		return journalDisabled("PingJournal")
	}
	return s.journal.Ping(ctx)
}

// Journal returns recorded computations
func (s *Service) Journal(ctx context.Context, filter store.Filter) ([]*store.Entry, error) {
	if s.journal == nil {
		return nil, journalDisabled("Journal")
	}
	return s.journal.Query(ctx, filter)
}

// JournalStats summarizes recorded computations
func (s *Service) JournalStats(ctx context.Context) (*store.Stats, error) {
	if s.journal == nil {
		return nil, journalDisabled("JournalStats")
	}
	return s.journal.Stats(ctx)
}

// PruneJournal removes entries older than olderThan
func (s *Service) PruneJournal(ctx context.Context, olderThan time.Duration) (int64, error) {
	if s.journal == nil {
		return 0, journalDisabled("PruneJournal")
	}

	deleted, err := s.journal.Prune(ctx, olderThan)
	if err != nil {
		return 0, err
	}
	s.logger.Info("Pruned journal", "deleted", deleted, "older_than", olderThan.String())
	return deleted, nil
}

func journalDisabled(operation string) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleService).
		Operation(operation).
		Code(mdwerror.CodeServiceUnavailable).
		Message("journal is disabled").
		Build()
}
