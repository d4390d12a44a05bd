package api

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rcrowley/go-metrics"
	"go.uber.org/zap"
	"rr-edf-scheduler/config"
	"rr-edf-scheduler/internal/requests"
	"rr-edf-scheduler/internal/responses"
	"rr-edf-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	RoundRobin(ctx *fiber.Ctx) error
	EarliestDeadlineFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config   *config.SchedulerConfig
	logger   *zap.Logger
	cache    *ristretto.Cache
	registry metrics.Registry

	simulations metrics.Counter
	cacheHits   metrics.Counter
	failures    metrics.Counter
	timer       metrics.Timer
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *zap.Logger) (*SchedulerHandlerImpl, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     config.CacheMaxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	registry := metrics.NewRegistry()
	return &SchedulerHandlerImpl{
		config:      config,
		logger:      logger,
		cache:       cache,
		registry:    registry,
		simulations: metrics.NewRegisteredCounter("simulations", registry),
		cacheHits:   metrics.NewRegisteredCounter("cache_hits", registry),
		failures:    metrics.NewRegisteredCounter("failures", registry),
		timer:       metrics.NewRegisteredTimer("simulation_duration", registry),
	}, nil
}

// Register mounts the handler under /api/v1.
func Register(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/edf", handler.EarliestDeadlineFirst)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Get("/stats", handler.Stats)
	}
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PolicyRoundRobin, func(request *requests.ScheduleRequest) (*schedulers.Schedule, error) {
		return schedulers.ScheduleRoundRobin(request.Processes(), request.Quantum, s.logger)
	})
}

func (s *SchedulerHandlerImpl) EarliestDeadlineFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PolicyEarliestDeadlineFirst, func(request *requests.ScheduleRequest) (*schedulers.Schedule, error) {
		return schedulers.ScheduleEarliestDeadlineFirst(request.Processes(), s.logger)
	})
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return nil
	}

	key := cacheKey("all", request)
	reports, ok := s.cached(key)
	if !ok {
		start := time.Now()
		reports, err = schedulers.Compare(request.Processes(), request.Quantum, s.logger)
		s.timer.UpdateSince(start)
		s.simulations.Inc(1)
		if err != nil {
			return s.fail(ctx, err)
		}
		s.store(key, reports)
	}

	ranking := make([]string, 0, len(reports))
	for _, r := range responses.Rank(reports) {
		ranking = append(ranking, r.Policy)
	}
	return ctx.JSON(responses.CompareResponse{
		RunId:    uuid.NewString(),
		Quantum:  request.Quantum,
		Ranking:  ranking,
		Policies: reports,
	})
}

func (s *SchedulerHandlerImpl) Stats(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"simulations":             s.simulations.Count(),
		"cache_hits":              s.cacheHits.Count(),
		"failures":                s.failures.Count(),
		"mean_simulation_seconds": s.timer.Mean() / float64(time.Second),
	})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, policy string, run func(*requests.ScheduleRequest) (*schedulers.Schedule, error)) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return nil
	}

	key := cacheKey(policy, request)
	reports, ok := s.cached(key)
	if !ok {
		start := time.Now()
		schedule, err := run(request)
		s.timer.UpdateSince(start)
		s.simulations.Inc(1)
		if err != nil {
			return s.fail(ctx, err)
		}
		report, err := schedulers.GenerateReport(schedule)
		if err != nil {
			return s.fail(ctx, err)
		}
		reports = []responses.PolicyReport{report}
		s.store(key, reports)
	}

	return ctx.JSON(responses.ScheduleResponse{
		RunId:        uuid.NewString(),
		PolicyReport: reports[0],
	})
}

// parseRequest writes the error response itself and returns a non-nil error
// when the body cannot be used.
func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequest, error) {
	request := new(requests.ScheduleRequest)
	if err := ctx.BodyParser(request); err != nil {
		s.logger.Warn("invalid request format", zap.Error(err))
		_ = ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
		return nil, err
	}
	if request.Quantum == 0 {
		request.Quantum = s.config.RoundRobinTimeQuantum
	}
	return request, nil
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	s.failures.Inc(1)
	s.logger.Warn("can not process request", zap.Error(err))

	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, schedulers.ErrInvalidQuantum),
		errors.Is(err, schedulers.ErrInvalidBurstTime),
		errors.Is(err, schedulers.ErrInvalidArrivalTime),
		errors.Is(err, schedulers.ErrEmptyProcessSet),
		errors.Is(err, schedulers.ErrDivisionUndefined):
		status = fiber.StatusUnprocessableEntity
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func (s *SchedulerHandlerImpl) cached(key string) ([]responses.PolicyReport, bool) {
	value, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}
	s.cacheHits.Inc(1)
	return value.([]responses.PolicyReport), true
}

func (s *SchedulerHandlerImpl) store(key string, reports []responses.PolicyReport) {
	s.cache.Set(key, reports, int64(len(reports)))
	s.cache.Wait()
}

func cacheKey(policy string, request *requests.ScheduleRequest) string {
	// plain ints and strings, Marshal cannot fail
	body, _ := json.Marshal(request)
	return policy + ":" + string(body)
}
