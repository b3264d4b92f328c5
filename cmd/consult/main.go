package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/doctorconsult/appcore/internal/adapters/backend/consultapi"
	"github.com/doctorconsult/appcore/internal/adapters/events"
	sessionstore "github.com/doctorconsult/appcore/internal/adapters/session"
	"github.com/doctorconsult/appcore/internal/application/services"
	"github.com/doctorconsult/appcore/internal/domain/entities"
	"github.com/doctorconsult/appcore/internal/domain/providers"
	"github.com/doctorconsult/appcore/internal/domain/scheduling"
	redisclient "github.com/doctorconsult/appcore/internal/infrastructure/clients/redis"
	"github.com/doctorconsult/appcore/internal/infrastructure/observability"
	"github.com/doctorconsult/appcore/pkg/config"
)

const usage = `usage: consult <command> [flags]

commands:
  login          store the active session (-user, -name, -gender, -role)
  logout         clear the active session
  whoami         print the active session
  doctors        search doctors (-specialization)
  doctor         fetch one doctor profile (-id)
  profiles       fetch several doctor profiles (-ids 1,2,3)
  slots          print the bookable period catalog
  book           book an appointment (-doctor, -year, -month, -day, -range)
  appointments   list the session's appointments
  approve        approve a pending appointment (-id, doctor role)
  pay            pay an approved appointment (-id)
  complete       complete a paid appointment (-id, doctor role)
  notifications  list the session's notifications (-unread)
  read           mark a notification read (-id)
  watch          refresh the appointment list on backend update hints
`

type app struct {
	sessions     providers.SessionStore
	eventBus     providers.EventBus
	doctors      *services.DoctorService
	appointments *services.AppointmentService
	feed         *services.NotificationService
	backend      providers.ConsultBackend
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.App.Env)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()
		}
	}

	a := &app{}

	// The session survives restarts only when Redis is reachable; the
	// in-memory store still lets every command run in one-shot setups.
	redis, err := redisclient.NewClient(&cfg.Redis)
	if err != nil {
		log.Printf("Warning: Redis unavailable, using in-memory session: %v", err)
		a.sessions = sessionstore.NewMemoryStore()
	} else {
		defer redis.Close()
		a.sessions = sessionstore.NewRedisStore(redis, cfg.Session.TTL)
		a.eventBus = events.NewRedisEventBus(redis)
		defer a.eventBus.Close()
	}

	a.backend = consultapi.NewClient(&cfg.Backend)
	a.doctors = services.NewDoctorService(a.backend)
	a.appointments = services.NewAppointmentService(a.backend)
	if a.eventBus != nil {
		a.appointments.SetEventBus(a.eventBus)
	}
	a.feed = services.NewNotificationService(a.backend)

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		log.Fatalf("consult %s: %v", os.Args[1], err)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "logout":
		return a.sessions.Clear(ctx)
	case "whoami":
		session, err := a.sessions.Get(ctx)
		if err != nil {
			return err
		}
		return printJSON(session)
	case "doctors":
		return a.searchDoctors(ctx, args)
	case "doctor":
		return a.doctorProfile(ctx, args)
	case "profiles":
		return a.doctorProfiles(ctx, args)
	case "slots":
		return printCatalog()
	case "book":
		return a.book(ctx, args)
	case "appointments":
		return a.listAppointments(ctx)
	case "approve":
		return a.transition(ctx, args, a.appointments.Approve)
	case "pay":
		return a.transition(ctx, args, a.appointments.Pay)
	case "complete":
		return a.transition(ctx, args, a.appointments.Complete)
	case "notifications":
		return a.notifications(ctx, args)
	case "read":
		return a.markRead(ctx, args)
	case "watch":
		return a.watch(ctx)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	userID := fs.Int64("user", 0, "user id")
	name := fs.String("name", "", "full name")
	gender := fs.String("gender", "", "gender")
	role := fs.String("role", string(entities.RecipientUser), "user or doctor")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *userID == 0 {
		return fmt.Errorf("-user is required")
	}

	return a.sessions.Save(ctx, &entities.Session{
		UserID:    *userID,
		FullName:  *name,
		Gender:    *gender,
		Role:      entities.RecipientType(*role),
		CreatedAt: time.Now(),
	})
}

func (a *app) searchDoctors(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("doctors", flag.ExitOnError)
	specialization := fs.String("specialization", "", "specialization to search")
	if err := fs.Parse(args); err != nil {
		return err
	}

	doctors, err := a.doctors.Search(ctx, *specialization)
	if err != nil {
		return err
	}
	return printJSON(doctors)
}

func (a *app) doctorProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("doctor", flag.ExitOnError)
	id := fs.Int64("id", 0, "doctor id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	doctor, err := a.doctors.Profile(ctx, *id)
	if err != nil {
		return err
	}
	return printJSON(doctor)
}

func (a *app) doctorProfiles(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profiles", flag.ExitOnError)
	ids := fs.String("ids", "", "comma-separated doctor ids")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var doctorIDs []int64
	for _, field := range strings.Split(*ids, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		id, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return fmt.Errorf("bad doctor id %q", field)
		}
		doctorIDs = append(doctorIDs, id)
	}

	for _, result := range a.doctors.Profiles(ctx, doctorIDs) {
		if result.Err != nil {
			fmt.Printf("doctor %d: %v\n", result.DoctorID, result.Err)
			continue
		}
		fmt.Printf("doctor %d: %s (%s)\n", result.DoctorID, result.Doctor.FullName, result.Doctor.Specialization)
	}
	return nil
}

func printCatalog() error {
	for _, period := range scheduling.Periods() {
		ranges, err := scheduling.RangesForPeriod(period)
		if err != nil {
			return err
		}
		fmt.Printf("%s:\n", period)
		for _, label := range ranges {
			fmt.Printf("  %s\n", label)
		}
	}
	return nil
}

func (a *app) book(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	doctorID := fs.Int64("doctor", 0, "doctor id")
	year := fs.Int("year", time.Now().Year(), "year")
	monthIndex := fs.Int("month", int(time.Now().Month())-1, "zero-based month index")
	day := fs.Int("day", 1, "day of month")
	rangeLabel := fs.String("range", "", "time range label, e.g. \"09-10 AM\"")
	if err := fs.Parse(args); err != nil {
		return err
	}

	session, err := a.sessions.Get(ctx)
	if err != nil {
		return err
	}

	slot, err := scheduling.EncodeSlot(*year, *monthIndex, *day, *rangeLabel)
	if err != nil {
		return err
	}

	appointment, err := a.appointments.Book(ctx, session, *doctorID, slot)
	if err != nil {
		return err
	}
	return printJSON(appointment)
}

func (a *app) listAppointments(ctx context.Context) error {
	coordinator, err := a.coordinator(ctx)
	if err != nil {
		return err
	}
	appointments, err := coordinator.Refresh(ctx)
	if err != nil {
		return err
	}
	return printJSON(appointments)
}

func (a *app) transition(ctx context.Context, args []string, op func(context.Context, *entities.Appointment) (*entities.Appointment, error)) error {
	fs := flag.NewFlagSet("transition", flag.ExitOnError)
	id := fs.Int64("id", 0, "appointment id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	coordinator, err := a.coordinator(ctx)
	if err != nil {
		return err
	}
	if _, err := coordinator.Refresh(ctx); err != nil {
		return err
	}

	appointment, err := coordinator.Appointment(*id)
	if err != nil {
		return err
	}

	updated, err := op(ctx, appointment)
	if err != nil {
		return err
	}
	coordinator.ApplyLocal(updated)
	return printJSON(updated)
}

func (a *app) notifications(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("notifications", flag.ExitOnError)
	unread := fs.Bool("unread", false, "unread items only")
	if err := fs.Parse(args); err != nil {
		return err
	}

	session, err := a.sessions.Get(ctx)
	if err != nil {
		return err
	}

	items, err := a.feed.Feed(ctx, session.Role, session.UserID, *unread)
	if err != nil {
		return err
	}
	return printJSON(items)
}

func (a *app) markRead(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("read", flag.ExitOnError)
	id := fs.Int64("id", 0, "notification id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	item, err := a.feed.MarkRead(ctx, *id)
	if err != nil {
		return err
	}
	return printJSON(item)
}

func (a *app) watch(ctx context.Context) error {
	if a.eventBus == nil {
		return fmt.Errorf("watch requires Redis for update hints")
	}

	coordinator, err := a.coordinator(ctx)
	if err != nil {
		return err
	}
	if _, err := coordinator.Refresh(ctx); err != nil {
		log.Printf("Warning: initial fetch failed, watching anyway: %v", err)
	}

	if err := coordinator.WatchEvents(ctx, a.eventBus); err != nil {
		return err
	}

	log.Println("Watching for appointment updates (ctrl-c to stop)")
	<-ctx.Done()
	return nil
}

func (a *app) coordinator(ctx context.Context) (*services.SyncCoordinator, error) {
	session, err := a.sessions.Get(ctx)
	if err != nil {
		return nil, err
	}
	return services.NewSyncCoordinator(a.backend, session.Role, session.UserID), nil
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
