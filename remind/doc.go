// Package remind finds contacts with birthdays coming up and mails a digest
// of them over SMTP.
//
// Delivery uses implicit TLS and PLAIN auth when a username is configured.
// Settings come from the environment through [ConfigFromEnv]:
//
//   - ABOOK_SMTP_ADDR: host:port of the TLS endpoint (required)
//   - ABOOK_SMTP_USERNAME, ABOOK_SMTP_PASSWORD: credentials
//   - ABOOK_SMTP_FROM: sender address, defaults to the username
//
// Example:
//
//	cfg, err := remind.ConfigFromEnv()
//	if err != nil {
//		// handle
//	}
//	_, err = remind.Send(ctx, cfg, remind.SendInput{
//		To:       []string{"me@example.com"},
//		Upcoming: remind.Find(ab, time.Now(), remind.DefaultWithin),
//		Now:      time.Now(),
//	})
package remind
