package remind

import (
	"cmp"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"

	"github.com/spachava753/abook/book"
)

const (
	envSMTPAddr     = "ABOOK_SMTP_ADDR"
	envSMTPUsername = "ABOOK_SMTP_USERNAME"
	envSMTPPassword = "ABOOK_SMTP_PASSWORD"
	envSMTPFrom     = "ABOOK_SMTP_FROM"

	// DefaultWithin is the default look-ahead window in days.
	DefaultWithin = 7

	dialTimeout = 30 * time.Second
)

// ErrNothingToSend is returned by Send when the digest has no entries.
var ErrNothingToSend = errors.New("remind: no upcoming birthdays")

// Upcoming is one contact whose birthday falls inside the window.
type Upcoming struct {
	Name     string
	Birthday book.Birthday
	Days     int
}

// Find returns contacts whose next birthday is at most within days away,
// nearest first and then by name.
func Find(ab *book.AddressBook, now time.Time, within int) []Upcoming {
	var out []Upcoming
	for _, r := range ab.Records() {
		days, ok := r.DaysToBirthday(now)
		if !ok || days > within {
			continue
		}
		out = append(out, Upcoming{Name: r.Name().String(), Birthday: r.Birthday(), Days: days})
	}
	slices.SortFunc(out, func(a, b Upcoming) int {
		return cmp.Or(cmp.Compare(a.Days, b.Days), strings.Compare(a.Name, b.Name))
	})
	return out
}

// FormatDigest renders items one per line.
func FormatDigest(items []Upcoming) string {
	var sb strings.Builder
	for _, item := range items {
		fmt.Fprintf(&sb, "%s - %s (%s)\n", item.Name, daysLabel(item.Days), item.Birthday.Date().Format("02.01"))
	}
	return sb.String()
}

func daysLabel(days int) string {
	switch days {
	case 0:
		return "tomorrow"
	case 1:
		return "in 1 day"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}

// Config holds SMTP delivery settings. Addr must point at an implicit TLS
// endpoint such as smtp.example.com:465.
type Config struct {
	Addr     string
	Username string
	Password string
	From     string
}

// ConfigFromEnv reads ABOOK_SMTP_ADDR, ABOOK_SMTP_USERNAME,
// ABOOK_SMTP_PASSWORD and ABOOK_SMTP_FROM. From defaults to the username.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		Addr:     strings.TrimSpace(os.Getenv(envSMTPAddr)),
		Username: strings.TrimSpace(os.Getenv(envSMTPUsername)),
		Password: os.Getenv(envSMTPPassword),
		From:     strings.TrimSpace(os.Getenv(envSMTPFrom)),
	}
	if cfg.Addr == "" {
		return Config{}, fmt.Errorf("remind: %s is required", envSMTPAddr)
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	if cfg.From == "" {
		return Config{}, fmt.Errorf("remind: %s or %s is required", envSMTPFrom, envSMTPUsername)
	}
	return cfg, nil
}

// SendInput is the digest to deliver.
//
// DryRun composes the message and returns its ID without connecting.
type SendInput struct {
	To       []string
	Upcoming []Upcoming
	Within   int
	Now      time.Time
	DryRun   bool
}

// SendOutput reports what was sent.
type SendOutput struct {
	MessageID  string
	Recipients []string
	Message    []byte
}

// Send mails the digest in input through the server in cfg.
func Send(ctx context.Context, cfg Config, input SendInput) (SendOutput, error) {
	recipients := uniqueRecipients(input.To)
	if len(recipients) == 0 {
		return SendOutput{}, errors.New("remind: at least one recipient is required")
	}
	if len(input.Upcoming) == 0 {
		return SendOutput{}, ErrNothingToSend
	}

	messageID := generateMessageID(cfg.From, input.Now)
	raw := Compose(cfg.From, recipients, input, messageID)
	out := SendOutput{MessageID: messageID, Recipients: recipients, Message: raw}
	if input.DryRun {
		return out, nil
	}

	c, err := connectSMTP(ctx, cfg)
	if err != nil {
		return SendOutput{}, err
	}
	defer c.Close()

	if err := c.Mail(cfg.From, nil); err != nil {
		return SendOutput{}, fmt.Errorf("remind: MAIL FROM failed: %w", err)
	}
	for _, rcpt := range recipients {
		if err := c.Rcpt(rcpt, nil); err != nil {
			return SendOutput{}, fmt.Errorf("remind: RCPT TO %q failed: %w", rcpt, err)
		}
	}

	w, err := c.Data()
	if err != nil {
		return SendOutput{}, fmt.Errorf("remind: DATA failed: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		return SendOutput{}, fmt.Errorf("remind: writing message failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return SendOutput{}, fmt.Errorf("remind: finalizing message failed: %w", err)
	}
	if err := c.Quit(); err != nil {
		return SendOutput{}, fmt.Errorf("remind: QUIT failed: %w", err)
	}
	return out, nil
}

// Compose builds a plain text message for the digest.
func Compose(from string, to []string, input SendInput, messageID string) []byte {
	within := input.Within
	if within <= 0 {
		within = DefaultWithin
	}

	headers := []string{
		fmt.Sprintf("From: %s", sanitizeHeader(from)),
		fmt.Sprintf("To: %s", strings.Join(to, ", ")),
		fmt.Sprintf("Subject: Upcoming birthdays: %d in the next %d days", len(input.Upcoming), within),
		fmt.Sprintf("Date: %s", input.Now.Format(time.RFC1123Z)),
		fmt.Sprintf("Message-ID: %s", messageID),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
	}

	body := strings.ReplaceAll(strings.TrimSpace(FormatDigest(input.Upcoming)), "\n", "\r\n")
	return []byte(strings.Join(headers, "\r\n") + "\r\n\r\n" + body + "\r\n")
}

func connectSMTP(ctx context.Context, cfg Config) (*smtp.Client, error) {
	host, _, err := net.SplitHostPort(cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("remind: invalid SMTP address %q: %w", cfg.Addr, err)
	}

	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: dialTimeout},
		Config:    &tls.Config{ServerName: host},
	}
	conn, err := dialer.DialContext(ctx, "tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("remind: SMTP TLS dial failed: %w", err)
	}

	c := smtp.NewClient(conn)
	if cfg.Username == "" {
		return c, nil
	}
	if err := c.Auth(sasl.NewPlainClient("", cfg.Username, cfg.Password)); err != nil {
		c.Close()
		return nil, fmt.Errorf("remind: SMTP auth failed: %w", err)
	}
	return c, nil
}

func uniqueRecipients(to []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(to))
	for _, rcpt := range to {
		rcpt = strings.TrimSpace(rcpt)
		if rcpt == "" {
			continue
		}
		if _, ok := seen[rcpt]; ok {
			continue
		}
		seen[rcpt] = struct{}{}
		out = append(out, rcpt)
	}
	return out
}

func sanitizeHeader(value string) string {
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\n", " ")
	return strings.TrimSpace(value)
}

func generateMessageID(address string, now time.Time) string {
	domain := "localhost"
	if at := strings.LastIndex(address, "@"); at >= 0 && at < len(address)-1 {
		domain = address[at+1:]
	}
	return fmt.Sprintf("<%d.abook@%s>", now.UnixNano(), domain)
}
