package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"strings"

	"alerty/internal/delivery/hooks"
	"alerty/internal/domain/entity"
	domainerrors "alerty/internal/domain/errors"
	"alerty/internal/domain/service"
	"alerty/internal/errors"
	"alerty/internal/query"
	"alerty/internal/usecase"
)

// cli holds what the commands need from the fx graph.
type cli struct {
	session  usecase.SessionUsecase
	settings usecase.NotificationSettingsUsecase
	hooks    *hooks.Hooks
	logger   *slog.Logger
	out      io.Writer
}

type runFunc func(ctx context.Context, c *cli, args []string) error

type command struct {
	usage string
	setup func(fs *flag.FlagSet) runFunc
}

//nolint:gochecknoglobals
var commandOrder = []string{
	"login", "logout", "whoami",
	"alerts", "alert", "ack",
	"users",
	"notifications", "sound", "prefs",
}

//nolint:gochecknoglobals
var commands = map[string]command{
	"login":         {usage: "Log in with -username and -password, or with -dni", setup: loginCommand},
	"logout":        {usage: "Forget the stored session", setup: noFlags(runLogout)},
	"whoami":        {usage: "Show the stored session", setup: noFlags(runWhoami)},
	"alerts":        {usage: "List the alert history", setup: alertsCommand},
	"alert":         {usage: "Show one alert", setup: alertCommand},
	"ack":           {usage: "Acknowledge an alert", setup: ackCommand},
	"users":         {usage: "List the users of your company", setup: usersCommand},
	"notifications": {usage: "Turn push notifications on or off", setup: notificationsCommand},
	"sound":         {usage: "Turn the alert sound on or off", setup: noFlags(runSound)},
	"prefs":         {usage: "Show the notification preferences", setup: noFlags(runPrefs)},
}

func noFlags(run runFunc) func(fs *flag.FlagSet) runFunc {
	return func(*flag.FlagSet) runFunc { return run }
}

func loginCommand(fs *flag.FlagSet) runFunc {
	username := fs.String("username", "", "Username")
	password := fs.String("password", "", "Password")
	dni := fs.String("dni", "", "National id, logs in without a password")

	return func(ctx context.Context, c *cli, _ []string) error {
		var (
			creds *entity.Credentials
			err   error
		)
		switch {
		case strings.TrimSpace(*dni) != "":
			creds, err = c.session.LoginWithDni(ctx, *dni)
		case strings.TrimSpace(*username) != "" && *password != "":
			creds, err = c.session.LoginWithUsername(ctx, *username, *password)
		default:
			return errors.New("either -dni or both -username and -password are required")
		}
		if err != nil {
			c.logger.Debug("Login failed", slog.Any("error", err))

			return errors.New(domainerrors.DisplayMessage(err, domainerrors.OpLogin))
		}

		printSession(c.out, creds)

		return nil
	}
}

func runLogout(ctx context.Context, c *cli, _ []string) error {
	c.session.Logout(ctx)
	printLine(c.out, "Sesión cerrada")

	return nil
}

func runWhoami(ctx context.Context, c *cli, _ []string) error {
	creds, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	printSession(c.out, creds)

	return nil
}

func alertsCommand(fs *flag.FlagSet) runFunc {
	page := fs.Int("page", 0, "Page number, 0-based")
	size := fs.Int("size", 0, "Page size (default from query.pageSize)")
	severity := fs.String("severity", "", "Only show one bucket: LOW, MEDIUM or HIGH")
	search := fs.String("q", "", "Search vehicle, plate, type, severity, plant, area and description")
	from := fs.String("from", "", "Range start, ISO date or date-time (requires -to)")
	to := fs.String("to", "", "Range end, ISO date or date-time (requires -from)")
	watch := fs.Bool("watch", false, "Keep polling until interrupted")

	return func(ctx context.Context, c *cli, _ []string) error {
		creds, err := c.requireSession(ctx)
		if err != nil {
			return err
		}

		filter := entity.AlertFilter{Search: *search}
		if *severity != "" {
			bucket, ok := entity.ParseSeverityBucket(*severity)
			if !ok {
				return errors.Errorf("unknown severity %q", *severity)
			}
			filter.Bucket = bucket
		}

		var companyID int64
		if creds.HasCompany() {
			companyID = *creds.CompanyID
		}

		if *from != "" || *to != "" {
			if *from == "" || *to == "" {
				return errors.New("-from and -to must be used together")
			}

			result, err := c.hooks.AlertsByRange(ctx, service.AlertRangeParams{
				CompanyID: companyID,
				From:      *from,
				To:        *to,
				Page:      *page,
				Size:      *size,
			})
			if err != nil {
				return displayError(err)
			}
			printAlertPage(c.out, result.Data, filter)

			return nil
		}

		params := service.AlertListParams{CompanyID: companyID, Page: *page, Size: *size}
		if *watch {
			err := c.hooks.WatchAlerts(ctx, params, func(result query.Result[*entity.Page[entity.Alert]], err error) {
				if err != nil {
					printLine(c.out, "Error: "+domainerrors.DisplayMessage(err, domainerrors.OpDefault))

					return
				}
				printAlertPage(c.out, result.Data, filter)
			})

			return ignoreCancel(err)
		}

		result, err := c.hooks.Alerts(ctx, params)
		if err != nil {
			return displayError(err)
		}
		printAlertPage(c.out, result.Data, filter)

		return nil
	}
}

func alertCommand(fs *flag.FlagSet) runFunc {
	id := fs.Int64("id", 0, "Alert id")
	raw := fs.Bool("raw", false, "Print the original document attached by the backend")

	return func(ctx context.Context, c *cli, _ []string) error {
		if _, err := c.requireSession(ctx); err != nil {
			return err
		}

		alert, err := c.loadAlert(ctx, *id)
		if err != nil {
			return err
		}

		printAlert(c.out, alert, *raw)

		return nil
	}
}

func ackCommand(fs *flag.FlagSet) runFunc {
	id := fs.Int64("id", 0, "Alert id")

	return func(ctx context.Context, c *cli, _ []string) error {
		if _, err := c.requireSession(ctx); err != nil {
			return err
		}

		alert, err := c.loadAlert(ctx, *id)
		if err != nil {
			return err
		}
		if alert.Acknowledged {
			printLine(c.out, "La alerta ya estaba reconocida")

			return nil
		}

		acked, err := c.hooks.AcknowledgeAlert(ctx, alert)
		if err != nil {
			return displayError(err)
		}

		printAlert(c.out, acked, false)

		return nil
	}
}

func usersCommand(fs *flag.FlagSet) runFunc {
	search := fs.String("q", "", "Search username, full name and dni")
	page := fs.Int("page", 0, "Page number, 0-based")
	size := fs.Int("size", 0, "Page size (default from query.pageSize)")
	watch := fs.Bool("watch", false, "Keep polling until interrupted")

	return func(ctx context.Context, c *cli, _ []string) error {
		creds, err := c.requireSession(ctx)
		if err != nil {
			return err
		}
		if !creds.HasCompany() {
			return errors.New("the session is not bound to a company")
		}

		params := service.UserSearchParams{
			CompanyID: *creds.CompanyID,
			Query:     strings.TrimSpace(*search),
			Page:      *page,
			Size:      *size,
		}
		if *watch {
			err := c.hooks.WatchUsers(ctx, params, func(result query.Result[*entity.Page[entity.User]], err error) {
				if err != nil {
					printLine(c.out, "Error: "+domainerrors.DisplayMessage(err, domainerrors.OpDefault))

					return
				}
				printUserPage(c.out, result.Data)
			})

			return ignoreCancel(err)
		}

		result, err := c.hooks.Users(ctx, params)
		if err != nil {
			return displayError(err)
		}
		printUserPage(c.out, result.Data)

		return nil
	}
}

func notificationsCommand(fs *flag.FlagSet) runFunc {
	pushToken := fs.String("push-token", "", "Expo push token of this device")
	platform := fs.String("platform", "android", "Device platform: android or ios")

	return func(ctx context.Context, c *cli, args []string) error {
		enabled, err := parseSwitch(args)
		if err != nil {
			return err
		}

		if !enabled {
			c.settings.DisableNotifications()
			printPrefs(c.out, c.settings.Preferences())

			return nil
		}

		if *pushToken == "" {
			return errors.New("-push-token is required to turn notifications on")
		}
		if err := c.settings.EnableNotifications(ctx, *pushToken, *platform); err != nil {
			return displayError(err)
		}
		printPrefs(c.out, c.settings.Preferences())

		return nil
	}
}

func runSound(_ context.Context, c *cli, args []string) error {
	enabled, err := parseSwitch(args)
	if err != nil {
		return err
	}

	if err := c.settings.SetSound(enabled); err != nil {
		return displayError(err)
	}
	printPrefs(c.out, c.settings.Preferences())

	return nil
}

func runPrefs(_ context.Context, c *cli, _ []string) error {
	printPrefs(c.out, c.settings.Preferences())

	return nil
}

// requireSession returns the stored session or ErrNoSession.
func (c *cli) requireSession(ctx context.Context) (*entity.Credentials, error) {
	creds := c.session.CurrentSession(ctx)
	if creds == nil {
		return nil, errors.New(domainerrors.ErrNoSession.Message())
	}

	return creds, nil
}

func (c *cli) loadAlert(ctx context.Context, id int64) (*entity.Alert, error) {
	if id <= 0 {
		return nil, errors.New("-id must be a positive alert id")
	}

	result, err := c.hooks.Alert(ctx, id)
	if err != nil {
		return nil, displayError(err)
	}
	if result.Data == nil {
		return nil, errors.New(domainerrors.ErrAlertNotFound.Message())
	}

	return result.Data, nil
}

func parseSwitch(args []string) (bool, error) {
	if len(args) != 1 {
		return false, errors.New("expected on or off")
	}

	switch strings.ToLower(args[0]) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, errors.Errorf("expected on or off, got %q", args[0])
	}
}

// displayError replaces err with the message shown to the user.
func displayError(err error) error {
	return errors.New(domainerrors.DisplayMessage(err, domainerrors.OpDefault))
}

func ignoreCancel(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return displayError(err)
	}

	return nil
}
