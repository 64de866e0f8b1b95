package mailer

import "strings"

type endpoint struct {
	Host string
	Port int
}

// wellKnown maps provider ids to their SMTP submission endpoint.
var wellKnown = map[string]endpoint{
	"fastmail":   {"smtp.fastmail.com", 465},
	"gmail":      {"smtp.gmail.com", 465},
	"hotmail":    {"smtp-mail.outlook.com", 587},
	"mailgun":    {"smtp.mailgun.org", 465},
	"mailjet":    {"in-v3.mailjet.com", 587},
	"mandrill":   {"smtp.mandrillapp.com", 587},
	"outlook365": {"smtp.office365.com", 587},
	"postmark":   {"smtp.postmarkapp.com", 2525},
	"sendgrid":   {"smtp.sendgrid.net", 587},
	"ses":        {"email-smtp.us-east-1.amazonaws.com", 465},
	"sparkpost":  {"smtp.sparkpostmail.com", 587},
	"yahoo":      {"smtp.mail.yahoo.com", 465},
	"zoho":       {"smtp.zoho.com", 465},
}

const defaultSubmissionPort = 587

// resolveEndpoint combines the provider table with the host/port overrides.
// ok is false when no host can be determined.
func resolveEndpoint(cfg Config) (endpoint, bool) {
	ep := wellKnown[strings.ToLower(strings.ReplaceAll(cfg.Provider, " ", ""))]
	if cfg.Host != "" {
		ep.Host = cfg.Host
	}
	if cfg.Port != 0 {
		ep.Port = cfg.Port
	}
	if ep.Host == "" {
		return ep, false
	}
	if ep.Port == 0 {
		ep.Port = defaultSubmissionPort
	}
	return ep, true
}
