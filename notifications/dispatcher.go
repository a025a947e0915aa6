package notifications

import "log"

type sender interface {
	send(toName, toEmail, subject, htmlContent string) error
}

type emailJob struct {
	toName      string
	toEmail     string
	subject     string
	htmlContent string
}

// Dispatcher queues transactional email so callers never wait on the provider.
// A single worker drains the queue; a failed send is retried once, then logged
// and dropped. When the queue is full the job is dropped immediately rather
// than blocking the request.
type Dispatcher struct {
	svc   sender
	queue chan emailJob
}

func newDispatcher(svc sender, queueSize int) *Dispatcher {
	d := &Dispatcher{
		svc:   svc,
		queue: make(chan emailJob, queueSize),
	}
	go d.run()
	return d
}

// NewDispatcher starts the email worker on top of the configured Brevo sender.
func NewDispatcher() *Dispatcher {
	svc := NewBrevoService()
	if svc == nil {
		return newDispatcher(nil, 256)
	}
	log.Println("✅ Email dispatcher initialized")
	return newDispatcher(svc, 256)
}

// Send enqueues an email. It never blocks and never reports failure to the
// caller; notification is best-effort by contract.
func (d *Dispatcher) Send(toName, toEmail, subject, htmlContent string) {
	if d.svc == nil {
		log.Println("Email service not configured, skipping email send.")
		return
	}
	select {
	case d.queue <- emailJob{toName, toEmail, subject, htmlContent}:
	default:
		log.Printf("🔥 Email queue full, dropping email to %s", toEmail)
	}
}

func (d *Dispatcher) run() {
	for job := range d.queue {
		if err := d.svc.send(job.toName, job.toEmail, job.subject, job.htmlContent); err != nil {
			log.Printf("🔥 Failed to send email to %s, retrying once: %v", job.toEmail, err)
			if err := d.svc.send(job.toName, job.toEmail, job.subject, job.htmlContent); err != nil {
				log.Printf("🔥 Giving up on email to %s: %v", job.toEmail, err)
				continue
			}
		}
		log.Printf("✅ Email sent to %s", job.toEmail)
	}
}
