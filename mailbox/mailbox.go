// Package mailbox bridges the contact engine to a mail account.
//
// Harvest reads envelope senders from an IMAP mailbox and folds them into
// canonical contact documents, ready to be stored. Share emails a contact as
// a vCard 3.0 attachment over SMTP.
//
// Credentials come from the environment:
//
//	ROLODEX_IMAP_ADDRESS  account email address (also the SMTP sender)
//	ROLODEX_IMAP_PASSWORD account app password
//	ROLODEX_IMAP_HOST     optional IMAP host:port, default imap.gmail.com:993
//	ROLODEX_SMTP_HOST     optional SMTP host:port, default smtp.gmail.com:465
package mailbox

import (
	"crypto/tls"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"

	"github.com/spachava753/rolodex/contact"
)

const (
	defaultIMAPAddress = "imap.gmail.com:993"
	defaultSMTPAddress = "smtp.gmail.com:465"
	defaultMailbox     = "INBOX"

	envAccountAddress  = "ROLODEX_IMAP_ADDRESS"
	envAccountPassword = "ROLODEX_IMAP_PASSWORD"
	envIMAPHost        = "ROLODEX_IMAP_HOST"
	envSMTPHost        = "ROLODEX_SMTP_HOST"
)

// HarvestInput selects which mailbox to scan for correspondents.
//
// Mailbox defaults to INBOX. Limit bounds how many of the newest messages are
// scanned; it defaults to 100 and caps at 1000.
type HarvestInput struct {
	Mailbox string
	Limit   int
}

// HarvestOutput carries the harvested contact documents.
//
// Documents are deduplicated by email address, ordered by first appearance in
// the scanned window.
type HarvestOutput struct {
	Documents []contact.Document
}

// Harvest scans a mailbox's envelope senders and folds them into contact
// documents. Each document has the sender's display name, a structured name
// split from it, and one email entry.
func Harvest(input HarvestInput) (HarvestOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}

	address, password, err := loadCredentials()
	if err != nil {
		return HarvestOutput{}, err
	}

	imapClient, err := connectIMAP(address, password)
	if err != nil {
		return HarvestOutput{}, err
	}
	defer imapClient.Logout()

	mailboxName := strings.TrimSpace(input.Mailbox)
	if mailboxName == "" {
		mailboxName = defaultMailbox
	}
	status, err := imapClient.Select(mailboxName, true)
	if err != nil {
		return HarvestOutput{}, fmt.Errorf("mailbox: selecting mailbox %q failed: %w", mailboxName, err)
	}
	if status.Messages == 0 {
		return HarvestOutput{Documents: []contact.Document{}}, nil
	}

	from := uint32(1)
	if status.Messages > uint32(limit) {
		from = status.Messages - uint32(limit) + 1
	}
	seqSet := new(imap.SeqSet)
	seqSet.AddRange(from, status.Messages)

	messages := make(chan *imap.Message, limit+8)
	done := make(chan error, 1)
	go func() {
		done <- imapClient.Fetch(seqSet, []imap.FetchItem{imap.FetchEnvelope}, messages)
	}()

	seen := map[string]struct{}{}
	docs := make([]contact.Document, 0, 32)
	for msg := range messages {
		if msg.Envelope == nil {
			continue
		}
		for _, sender := range msg.Envelope.From {
			if sender == nil {
				continue
			}
			email := strings.TrimSpace(sender.Address())
			if email == "" || email == address {
				continue
			}
			key := strings.ToLower(email)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			docs = append(docs, documentFromSender(strings.TrimSpace(sender.PersonalName), email))
		}
	}
	if err := <-done; err != nil {
		return HarvestOutput{}, fmt.Errorf("mailbox: fetching envelopes failed: %w", err)
	}

	return HarvestOutput{Documents: docs}, nil
}

// documentFromSender builds a contact document from one envelope sender.
func documentFromSender(name string, email string) contact.Document {
	doc := contact.Document{
		DisplayName: name,
		Emails: []contact.Entry{
			{Value: email},
		},
	}
	if doc.DisplayName == "" {
		doc.DisplayName = email
	}
	if structured := splitName(name); structured != nil {
		doc.Name = structured
	}
	return doc
}

// splitName derives a structured name from a display name: first token is the
// given name, last token the family name, anything between the middle name.
// A single token is a given name only; an empty name yields nil.
func splitName(name string) *contact.Name {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return nil
	}
	structured := &contact.Name{GivenName: tokens[0]}
	if len(tokens) > 1 {
		structured.FamilyName = tokens[len(tokens)-1]
		structured.MiddleName = strings.Join(tokens[1:len(tokens)-1], " ")
	}
	return structured
}

// ShareInput describes a contact to email as a vCard attachment.
//
// Subject defaults to "Contact: " plus the contact's display name, and Note
// becomes the message's text body.
type ShareInput struct {
	Document contact.Document
	To       []string
	Cc       []string
	Subject  string
	Note     string
	DryRun   bool
}

// ShareOutput reports the sent (or dry-run) message.
type ShareOutput struct {
	MessageID  string
	Recipients []string
	DryRun     bool
}

// Share sends a contact document as a vCard 3.0 attachment over SMTP.
//
// DryRun validates recipients, encodes the card, and returns a generated
// message id without transmitting mail.
func Share(input ShareInput) (ShareOutput, error) {
	recipients := uniqueRecipients(input.To, input.Cc)
	if len(recipients) == 0 {
		return ShareOutput{}, errors.New("mailbox: at least one recipient is required")
	}

	from, password, err := loadCredentials()
	if err != nil {
		return ShareOutput{}, err
	}

	messageID := generateMessageID(from)
	out := ShareOutput{
		MessageID:  messageID,
		Recipients: recipients,
		DryRun:     input.DryRun,
	}
	if input.DryRun {
		return out, nil
	}

	raw := buildShareMessage(from, input, messageID)

	smtpClient, err := connectSMTP(from, password)
	if err != nil {
		return ShareOutput{}, err
	}
	defer smtpClient.Close()

	if err := smtpClient.Mail(from, nil); err != nil {
		return ShareOutput{}, fmt.Errorf("mailbox: MAIL FROM failed: %w", err)
	}
	for _, rcpt := range recipients {
		if err := smtpClient.Rcpt(rcpt, nil); err != nil {
			return ShareOutput{}, fmt.Errorf("mailbox: RCPT TO %q failed: %w", rcpt, err)
		}
	}

	writer, err := smtpClient.Data()
	if err != nil {
		return ShareOutput{}, fmt.Errorf("mailbox: DATA failed: %w", err)
	}
	if _, err := writer.Write(raw); err != nil {
		return ShareOutput{}, fmt.Errorf("mailbox: writing message failed: %w", err)
	}
	if err := writer.Close(); err != nil {
		return ShareOutput{}, fmt.Errorf("mailbox: finalizing message failed: %w", err)
	}
	if err := smtpClient.Quit(); err != nil {
		return ShareOutput{}, fmt.Errorf("mailbox: QUIT failed: %w", err)
	}

	return out, nil
}

func buildShareMessage(from string, input ShareInput, messageID string) []byte {
	displayName := formattedName(input.Document)
	subject := sanitizeHeader(input.Subject)
	if subject == "" {
		subject = "Contact: " + sanitizeHeader(displayName)
	}

	boundary := fmt.Sprintf("rolodex-%d", time.Now().UnixNano())
	headers := []string{
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", strings.Join(uniqueRecipients(input.To), ", ")),
		fmt.Sprintf("Subject: %s", subject),
		fmt.Sprintf("Date: %s", time.Now().Format(time.RFC1123Z)),
		fmt.Sprintf("Message-ID: %s", messageID),
		"MIME-Version: 1.0",
		fmt.Sprintf("Content-Type: multipart/mixed; boundary=%q", boundary),
	}
	if cc := uniqueRecipients(input.Cc); len(cc) > 0 {
		headers = append(headers, fmt.Sprintf("Cc: %s", strings.Join(cc, ", ")))
	}

	note := strings.TrimSpace(input.Note)
	if note == "" {
		note = fmt.Sprintf("Contact card for %s attached.", displayName)
	}

	card := EncodeVCard(input.Document)
	encoded := base64.StdEncoding.EncodeToString([]byte(card))

	var builder strings.Builder
	builder.WriteString(strings.Join(headers, "\r\n"))
	builder.WriteString("\r\n\r\n")
	builder.WriteString("--" + boundary + "\r\n")
	builder.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	builder.WriteString(note)
	builder.WriteString("\r\n\r\n")
	builder.WriteString("--" + boundary + "\r\n")
	builder.WriteString(fmt.Sprintf("Content-Type: text/vcard; charset=UTF-8; name=%q\r\n", attachmentName(displayName)))
	builder.WriteString("Content-Transfer-Encoding: base64\r\n")
	builder.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=%q\r\n\r\n", attachmentName(displayName)))
	for len(encoded) > 76 {
		builder.WriteString(encoded[:76])
		builder.WriteString("\r\n")
		encoded = encoded[76:]
	}
	builder.WriteString(encoded)
	builder.WriteString("\r\n--" + boundary + "--\r\n")
	return []byte(builder.String())
}

// attachmentName slugs a display name into a .vcf filename.
func attachmentName(displayName string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, displayName)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "contact"
	}
	return slug + ".vcf"
}

func sanitizeHeader(value string) string {
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\n", " ")
	return strings.TrimSpace(value)
}

func uniqueRecipients(groups ...[]string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, 8)
	for _, group := range groups {
		for _, recipient := range group {
			recipient = strings.TrimSpace(recipient)
			if recipient == "" {
				continue
			}
			if _, ok := seen[recipient]; ok {
				continue
			}
			seen[recipient] = struct{}{}
			out = append(out, recipient)
		}
	}
	return out
}

func generateMessageID(address string) string {
	domain := "localhost"
	if at := strings.LastIndex(address, "@"); at >= 0 && at < len(address)-1 {
		domain = address[at+1:]
	}
	return fmt.Sprintf("<%d.%s>", time.Now().UnixNano(), domain)
}

func loadCredentials() (address string, password string, err error) {
	address = strings.TrimSpace(os.Getenv(envAccountAddress))
	if address == "" {
		return "", "", fmt.Errorf("mailbox: %s is required", envAccountAddress)
	}

	password = strings.ReplaceAll(os.Getenv(envAccountPassword), " ", "")
	if password == "" {
		return "", "", fmt.Errorf("mailbox: %s is required", envAccountPassword)
	}

	return address, password, nil
}

func imapHostPort() string {
	if host := strings.TrimSpace(os.Getenv(envIMAPHost)); host != "" {
		return host
	}
	return defaultIMAPAddress
}

func smtpHostPort() string {
	if host := strings.TrimSpace(os.Getenv(envSMTPHost)); host != "" {
		return host
	}
	return defaultSMTPAddress
}

func serverName(hostPort string) string {
	host, _, err := net.SplitHostPort(hostPort)
	if err != nil {
		return hostPort
	}
	return host
}

func connectIMAP(address string, password string) (*client.Client, error) {
	hostPort := imapHostPort()
	imapClient, err := client.DialTLS(hostPort, &tls.Config{ServerName: serverName(hostPort)})
	if err != nil {
		return nil, fmt.Errorf("mailbox: IMAP dial failed: %w", err)
	}

	if err := imapClient.Login(address, password); err != nil {
		imapClient.Logout()
		return nil, fmt.Errorf("mailbox: IMAP login failed: %w", err)
	}

	return imapClient, nil
}

func connectSMTP(address string, password string) (*smtp.Client, error) {
	hostPort := smtpHostPort()
	conn, err := tls.Dial("tcp", hostPort, &tls.Config{ServerName: serverName(hostPort)})
	if err != nil {
		return nil, fmt.Errorf("mailbox: SMTP TLS dial failed: %w", err)
	}

	smtpClient := smtp.NewClient(conn)
	auth := sasl.NewPlainClient("", address, password)
	if err := smtpClient.Auth(auth); err != nil {
		smtpClient.Close()
		return nil, fmt.Errorf("mailbox: SMTP auth failed: %w", err)
	}

	return smtpClient, nil
}
