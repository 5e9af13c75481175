package config

import (
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	prefix      = "gmailfetch"
	tableFormat = `gmailfetch is configured via the environment. The following environment
variables can be used:

KEY	DEFAULT	REQUIRED	DESCRIPTION
{{range .}}{{usage_key .}}	{{usage_default .}}	{{usage_required .}}	{{usage_description .}}
{{end}}`
)

// Root wraps all other configurations.
type Root struct {
	LogLevel string `required:"true" default:"info" desc:"debug, info, warn, or error"`
	Auth     Auth
	Gmail    Gmail
}

// Auth contains the credential manager configuration.
type Auth struct {
	TokenFile       string        `required:"true" default:"token.json" desc:"Cached OAuth token file"`
	CredentialsFile string        `required:"true" default:"credentials.json" desc:"OAuth client secret file"`
	Scopes          []string      `required:"true" default:"https://www.googleapis.com/auth/gmail.readonly" desc:"Requested OAuth scopes"`
	Timeout         time.Duration `required:"true" default:"5m" desc:"Interactive authorization deadline"`
	ListenAddr      string        `required:"true" default:"127.0.0.1:0" desc:"Loopback callback listener host:port"`
}

// Gmail contains the message service configuration.
type Gmail struct {
	User       string `required:"true" default:"me" desc:"Mailbox user ID"`
	MaxResults int    `required:"true" default:"5" desc:"Default number of message IDs to list"`
	Endpoint   string `desc:"Override Gmail API base URL"`
}

// Process loads and parses configuration from the environment.
func Process() (*Root, error) {
	c := &Root{}
	err := envconfig.Process(prefix, c)
	return c, err
}

// Usage prints out the envconfig usage to Stderr.
func Usage() {
	tabs := tabwriter.NewWriter(os.Stderr, 1, 0, 4, ' ', 0)
	if err := envconfig.Usagef(prefix, &Root{}, tabs, tableFormat); err != nil {
		log.Fatalf("Unable to parse env config: %v", err)
	}
	tabs.Flush()
}
