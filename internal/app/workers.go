package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/carlosmariath/painel-clinica-sub001/config"
	"github.com/carlosmariath/painel-clinica-sub001/internal/repo"
	entbranch "github.com/carlosmariath/painel-clinica-sub001/internal/repo/branch"
	entclient "github.com/carlosmariath/painel-clinica-sub001/internal/repo/patient"
	entsvc "github.com/carlosmariath/painel-clinica-sub001/internal/repo/service"
	enttherapist "github.com/carlosmariath/painel-clinica-sub001/internal/repo/therapist"
	"github.com/carlosmariath/painel-clinica-sub001/internal/service/notification"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/constants"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/email"
	"github.com/carlosmariath/painel-clinica-sub001/pkg/interval"
	svcsms "github.com/carlosmariath/painel-clinica-sub001/pkg/sms"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	NC       *nats.Conn
	DB       *repo.Client
	NotifSvc notification.Service
	Email    *email.Client
	SMS      *svcsms.Client
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startNotificationWorker(p.NC, p.DB, p.NotifSvc)
			startReminderWorker(p.NC, p.DB, p.Cfg, p.Email, p.SMS)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

func appointmentSubject(event string) string {
	return fmt.Sprintf("%s.appointment.%s.*", constants.EventSubjectPrefix, event)
}

// apptFromMsg resolves the appointment referenced by an event payload.
func apptFromMsg(ctx context.Context, db *repo.Client, msg *nats.Msg) (*repo.Appointment, bool) {
	apptID, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
	if err != nil {
		return nil, false
	}
	appt, err := db.Appointment.Get(ctx, apptID)
	if err != nil {
		slog.Warn("worker: appointment not found", "id", apptID, "err", err)
		return nil, false
	}
	return appt, true
}

// ---------------------------------------------------------------------------
// notification_worker
// ---------------------------------------------------------------------------

// startNotificationWorker writes an in-console notification to the therapist's
// linked user whenever one of their appointments changes.
func startNotificationWorker(nc *nats.Conn, db *repo.Client, notifSvc notification.Service) {
	notify := func(event, title string) func(*nats.Msg) {
		return func(msg *nats.Msg) {
			ctx := context.Background()

			appt, found := apptFromMsg(ctx, db, msg)
			if !found {
				return
			}

			th, err := db.Therapist.Query().
				Where(enttherapist.ID(appt.TherapistID)).
				Only(ctx)
			if err != nil {
				slog.Warn("notification_worker: therapist not found", "id", appt.TherapistID, "err", err)
				return
			}
			if th.UserID == nil {
				// No console account linked, nothing to deliver to.
				return
			}

			_, err = notifSvc.Create(ctx, notification.CreateRequest{
				UserID: *th.UserID,
				Type:   "appointment_" + event,
				Title:  title,
				Data: map[string]any{
					"appointment_id": appt.ID.String(),
					"date":           appt.Date.Format(interval.DateLayout),
					"start":          interval.Clock(appt.StartMinute),
				},
			})
			if err != nil {
				slog.Warn("notification_worker: create notification failed", "err", err)
			}
		}
	}

	subs := []struct {
		event string
		title string
	}{
		{"created", "New appointment booked"},
		{"rescheduled", "Appointment rescheduled"},
		{"cancelled", "Appointment cancelled"},
	}
	for _, s := range subs {
		if _, err := nc.Subscribe(appointmentSubject(s.event), notify(s.event, s.title)); err != nil {
			slog.Error("notification_worker: subscribe failed", "event", s.event, "err", err)
		}
	}

	slog.Info("notification_worker: started")
}

// ---------------------------------------------------------------------------
// reminder_worker
// ---------------------------------------------------------------------------

// startReminderWorker sends confirmation and cancellation messages to the
// client by email, plus an SMS when a phone number is on file. Failures are
// logged and dropped; messaging never blocks the booking flow.
func startReminderWorker(nc *nats.Conn, db *repo.Client, cfg *config.Config, mailCli *email.Client, smsCli *svcsms.Client) {
	loadParties := func(ctx context.Context, appt *repo.Appointment) (*email.AppointmentEmailData, *string, bool) {
		cl, err := db.Patient.Query().Where(entclient.ID(appt.ClientID)).Only(ctx)
		if err != nil {
			slog.Warn("reminder_worker: client not found", "id", appt.ClientID, "err", err)
			return nil, nil, false
		}
		th, err := db.Therapist.Query().Where(enttherapist.ID(appt.TherapistID)).Only(ctx)
		if err != nil {
			slog.Warn("reminder_worker: therapist not found", "id", appt.TherapistID, "err", err)
			return nil, nil, false
		}
		br, err := db.Branch.Query().Where(entbranch.ID(appt.BranchID)).Only(ctx)
		if err != nil {
			slog.Warn("reminder_worker: branch not found", "id", appt.BranchID, "err", err)
			return nil, nil, false
		}
		svc, err := db.Service.Query().Where(entsvc.ID(appt.ServiceID)).Only(ctx)
		if err != nil {
			slog.Warn("reminder_worker: service not found", "id", appt.ServiceID, "err", err)
			return nil, nil, false
		}

		data := &email.AppointmentEmailData{
			ClientName:    cl.Name,
			ServiceName:   svc.Name,
			TherapistName: th.Name,
			BranchName:    br.Name,
			Date:          appt.Date.Format(interval.DateLayout),
			StartClock:    interval.Clock(appt.StartMinute),
			EndClock:      interval.Clock(appt.EndMinute),
			AppName:       cfg.Email.AppName,
			BaseURL:       cfg.Email.BaseURL,
		}
		if cl.Email != nil {
			data.Email = *cl.Email
		}
		return data, cl.Phone, true
	}

	sendSMS := func(ctx context.Context, phone *string, appt *repo.Appointment) {
		if phone == nil || *phone == "" || !smsCli.IsEnabled() {
			return
		}
		templateID := cfg.SMS.SMSIR.TemplateID
		err := smsCli.SendAppointmentReminder(ctx, *phone, templateID,
			appt.Date.Format(interval.DateLayout), interval.Clock(appt.StartMinute))
		if err != nil {
			slog.Warn("reminder_worker: SMS send failed", "appointment_id", appt.ID, "err", err)
		}
	}

	if _, err := nc.Subscribe(appointmentSubject("created"), func(msg *nats.Msg) {
		ctx := context.Background()
		appt, found := apptFromMsg(ctx, db, msg)
		if !found {
			return
		}
		data, phone, found := loadParties(ctx, appt)
		if !found {
			return
		}

		if data.Email != "" {
			if err := mailCli.Send(ctx, email.BuildAppointmentConfirmationEmail(*data)); err != nil {
				slog.Warn("reminder_worker: confirmation email failed", "appointment_id", appt.ID, "err", err)
			}
		}
		sendSMS(ctx, phone, appt)
	}); err != nil {
		slog.Error("reminder_worker: subscribe created failed", "err", err)
	}

	if _, err := nc.Subscribe(appointmentSubject("cancelled"), func(msg *nats.Msg) {
		ctx := context.Background()
		appt, found := apptFromMsg(ctx, db, msg)
		if !found {
			return
		}
		data, _, found := loadParties(ctx, appt)
		if !found || data.Email == "" {
			return
		}

		reason := ""
		if appt.CancellationReason != nil {
			reason = *appt.CancellationReason
		}
		if err := mailCli.Send(ctx, email.BuildAppointmentCancelledEmail(*data, reason)); err != nil {
			slog.Warn("reminder_worker: cancellation email failed", "appointment_id", appt.ID, "err", err)
		}
	}); err != nil {
		slog.Error("reminder_worker: subscribe cancelled failed", "err", err)
	}

	slog.Info("reminder_worker: started")
}
