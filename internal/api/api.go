package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/careviah/care-scheduler/internal/database"
	"github.com/careviah/care-scheduler/internal/model"
	"github.com/careviah/care-scheduler/internal/pkg/oauth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Api struct {
	handler    http.Handler
	logger     *zap.SugaredLogger
	randSource io.Reader

	jwts          jwtManager
	tokenParser   tokenParser
	refreshTokens refreshTokenRepository

	db          database.PGX
	users       userRepository
	schedules   schedulesService
	medications medicationsService
	locations   locationRepository
}

type jwtManager interface {
	CreateToken(id string) (string, error)
	GetIdFromToken(token string) (string, error)
}

type tokenParser interface {
	GetInfoGoogle(ctx context.Context, authCode string) (*oauth.GoogleInfo, error)
}

type refreshTokenRepository interface {
	Add(ctx context.Context, session string, id string) error
	Get(ctx context.Context, session string) (string, error)
	Refresh(ctx context.Context, old, new string) error
	Delete(ctx context.Context, session string) error
}

type userRepository interface {
	CreateUser(ctx context.Context, q database.Queryable, user *model.UserCreate) (string, error)
	GetUserByEmail(ctx context.Context, q database.Queryable, email string) (*model.User, error)
	GetUserByID(ctx context.Context, q database.Queryable, id string) (*model.User, error)
	GetAgencyUsers(ctx context.Context, q database.Queryable, agencyID string) ([]*model.User, error)
}

type schedulesService interface {
	CreateSchedule(ctx context.Context, info *model.ScheduleCreate) (*model.Schedule, error)
	GetScheduleByID(ctx context.Context, id string) (*model.Schedule, error)
	GetSchedules(ctx context.Context, filter model.SchedulesFilter) ([]*model.Schedule, error)
	UpdateSchedule(ctx context.Context, schedule *model.Schedule) (*model.Schedule, error)
	DeleteSchedule(ctx context.Context, id string) error
}

type medicationsService interface {
	CreateMedication(ctx context.Context, info *model.MedicationCreate) (*model.Medication, error)
	GetClientMedications(ctx context.Context, clientID string) ([]*model.Medication, error)
	UpdateMedication(ctx context.Context, medication *model.Medication) (*model.Medication, error)
	DeleteMedication(ctx context.Context, id string) error
	DailySchedule(ctx context.Context, clientID string, date time.Time) ([]*model.ScheduledDose, error)
	MonthCalendar(ctx context.Context, clientID string, month time.Time) ([]*model.MedicationCalendar, error)
	RecordAdministration(ctx context.Context, rec *model.AdministrationCreate) (*model.Administration, error)
}

type locationRepository interface {
	CreateLocation(ctx context.Context, q database.Queryable, location *model.LocationCreate) (string, error)
	GetLocationByID(ctx context.Context, q database.Queryable, id string) (*model.Location, error)
	GetAgencyLocations(ctx context.Context, q database.Queryable, agencyID string) ([]*model.Location, error)
	UpdateLocation(ctx context.Context, q database.Queryable, location *model.Location) error
	DeleteLocation(ctx context.Context, q database.Queryable, id string) error
}

func NewApi(
	logger *zap.SugaredLogger,
	randSource io.Reader,
	jwts jwtManager,
	tokenParser tokenParser,
	refreshTokens refreshTokenRepository,
	db database.PGX,
	users userRepository,
	schedules schedulesService,
	medications medicationsService,
	locations locationRepository,
) (*Api, error) {
	a := &Api{
		logger:        logger,
		randSource:    randSource,
		jwts:          jwts,
		tokenParser:   tokenParser,
		refreshTokens: refreshTokens,
		db:            db,
		users:         users,
		schedules:     schedules,
		medications:   medications,
		locations:     locations,
	}
	a.setupHandler()

	return a, nil
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signin/google", a.signInGoogleHandler)
		r.Post("/refresh", a.refreshTokenHandler)
		r.Post("/logout", a.logoutUserHandler)
	})

	r.With(a.auth, a.userCtx).Route("/", func(r chi.Router) {
		r.Get("/user", a.getUserHandler)
		r.Get("/users/filtered", a.getFilteredUsersHandler)

		r.Route("/schedules", func(r chi.Router) {
			r.Get("/", a.getSchedulesHandler)
			r.Post("/", a.createScheduleHandler)
			r.Put("/{scheduleID}", a.updateScheduleHandler)
			r.Delete("/{scheduleID}", a.deleteScheduleHandler)
		})

		r.Route("/medications", func(r chi.Router) {
			r.Get("/", a.getMedicationsHandler)
			r.Post("/", a.createMedicationHandler)
			r.Get("/schedule", a.getMedicationScheduleHandler)
			r.Get("/calendar", a.getMedicationCalendarHandler)
			r.Put("/{medicationID}", a.updateMedicationHandler)
			r.Delete("/{medicationID}", a.deleteMedicationHandler)
			r.Post("/{medicationID}/administrations", a.recordAdministrationHandler)
		})

		r.Route("/locations", func(r chi.Router) {
			r.Get("/", a.getLocationsHandler)
			r.Post("/", a.createLocationHandler)
			r.Put("/{locationID}", a.updateLocationHandler)
			r.Delete("/{locationID}", a.deleteLocationHandler)
		})
	})

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

const dateFormat = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateFormat, s)
}
