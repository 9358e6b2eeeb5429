package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"energyai/internal/logger"
	"energyai/internal/mail"
	"energyai/internal/models"

	"github.com/google/uuid"
)

// alertTemplate pairs a subject line with an HTML body. Body placeholders use
// {field} syntax and must all appear in the required list, which is checked
// when the dispatcher is built.
type alertTemplate struct {
	subject  string
	body     string
	required []string
}

var alertTemplates = map[models.AlertKind]alertTemplate{
	models.AlertHighConsumption: {
		subject: "⚡ High Energy Consumption Alert",
		body: `<h2>Energy Consumption Alert</h2>
<p>Your predicted energy consumption is <strong>{consumption} kWh</strong>, which is {percentage}% above normal.</p>
<p>Recommendations:</p>
<ul>
  <li>Check AC temperature settings</li>
  <li>Turn off unused devices</li>
  <li>Consider peak hour usage</li>
</ul>`,
		required: []string{"consumption", "percentage"},
	},
	models.AlertAnomalyDetected: {
		subject: "🔍 Energy Usage Anomaly Detected",
		body: `<h2>Unusual Energy Pattern Detected</h2>
<p>We detected an unusual energy consumption pattern on {date}.</p>
<p>Consumption: <strong>{consumption} kWh</strong></p>
<p>Expected: <strong>{expected} kWh</strong></p>`,
		required: []string{"date", "consumption", "expected"},
	},
	models.AlertCostThreshold: {
		subject: "💰 Energy Cost Threshold Exceeded",
		body: `<h2>Cost Alert</h2>
<p>Your estimated energy cost for today is <strong>${cost}</strong>.</p>
<p>This exceeds your threshold of ${threshold}.</p>`,
		required: []string{"cost", "threshold"},
	},
}

var placeholderRe = regexp.MustCompile(`\{(\w+)\}`)

// validateTemplates rejects any template whose body references a field
// missing from its required list.
func validateTemplates(templates map[models.AlertKind]alertTemplate) error {
	for kind, tpl := range templates {
		declared := make(map[string]bool, len(tpl.required))
		for _, f := range tpl.required {
			declared[f] = true
		}
		for _, m := range placeholderRe.FindAllStringSubmatch(tpl.body, -1) {
			if !declared[m[1]] {
				return fmt.Errorf("template %q references undeclared field %q", kind, m[1])
			}
		}
	}
	return nil
}

// formatPayloadValue renders a payload value for template substitution.
// Floats drop trailing zeros so "250" reads as 250, not 250.000000.
func formatPayloadValue(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}

// renderTemplate substitutes payload fields into the body. Missing payload
// fields render as an empty string rather than failing delivery.
func renderTemplate(tpl alertTemplate, payload map[string]any) (subject, body string) {
	body = tpl.body
	for _, field := range tpl.required {
		var value string
		if v, ok := payload[field]; ok {
			value = formatPayloadValue(v)
		}
		body = strings.ReplaceAll(body, "{"+field+"}", value)
	}
	return tpl.subject, body
}

// dispatchJob is one queued delivery.
type dispatchJob struct {
	id     string
	to     string
	intent models.AlertIntent
}

// DispatcherService renders alert intents into templated emails and delivers
// them through the mail transport. Queued dispatch is at-most-once and
// best-effort: a full queue drops the alert and a failed send is logged, not
// retried.
type DispatcherService struct {
	sender mail.Sender
	log    *logger.Logger
	queue  chan dispatchJob
}

const defaultQueueSize = 64

func NewDispatcherService(sender mail.Sender, log *logger.Logger) (*DispatcherService, error) {
	if err := validateTemplates(alertTemplates); err != nil {
		return nil, err
	}
	return &DispatcherService{
		sender: sender,
		log:    log,
		queue:  make(chan dispatchJob, defaultQueueSize),
	}, nil
}

// Dispatch renders and delivers one alert synchronously. Returns false for
// unknown intent kinds (without touching the transport) and for transport
// failures; delivery errors never propagate as Go errors.
func (s *DispatcherService) Dispatch(to string, intent models.AlertIntent) bool {
	tpl, ok := alertTemplates[intent.Kind]
	if !ok {
		if s.log != nil {
			s.log.Infow("alert_unknown_kind", "kind", intent.Kind)
		}
		return false
	}

	subject, body := renderTemplate(tpl, intent.Payload)
	if err := s.sender.Send(to, subject, body); err != nil {
		if s.log != nil {
			s.log.Errorw("alert_send_failed", "kind", intent.Kind, "to", to, "err", err)
		}
		return false
	}
	return true
}

// Enqueue submits an alert for asynchronous delivery. Returns false when the
// queue is full; the alert is dropped in that case.
func (s *DispatcherService) Enqueue(to string, intent models.AlertIntent) bool {
	job := dispatchJob{id: uuid.NewString(), to: to, intent: intent}
	select {
	case s.queue <- job:
		return true
	default:
		if s.log != nil {
			s.log.Warnw("alert_queue_full", "kind", intent.Kind, "job_id", job.id)
		}
		return false
	}
}

// Run consumes the dispatch queue until ctx is canceled. Start it once from
// main, like any other background worker.
func (s *DispatcherService) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-s.queue:
			ok := s.Dispatch(job.to, job.intent)
			if s.log != nil {
				s.log.Infow("alert_dispatched", "job_id", job.id, "kind", job.intent.Kind, "ok", ok)
			}
		}
	}
}
