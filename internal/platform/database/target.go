package database

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"sort"
	"strings"
)

// Driver identifies the store behind a target.
type Driver int

const (
	// DriverPostgres is a PostgreSQL server reached through lib/pq.
	DriverPostgres Driver = iota
	// DriverSpanner is a Cloud Spanner database (or the emulator).
	DriverSpanner
	// DriverMemory is the built-in demo catalog.
	DriverMemory
)

func (d Driver) String() string {
	switch d {
	case DriverPostgres:
		return "postgres"
	case DriverSpanner:
		return "spanner"
	case DriverMemory:
		return "memory"
	default:
		return fmt.Sprintf("driver(%d)", int(d))
	}
}

// SSL modes written into Postgres DSNs.
const (
	SSLModeDisable = "disable"
	SSLModeRequire = "require"
)

var supportedSSLModes = map[string]bool{
	SSLModeDisable: true,
	SSLModeRequire: true,
	"verify-ca":    true,
	"verify-full":  true,
}

var (
	errEmptyTarget       = errors.New("empty connection target")
	errUnsupportedTarget = errors.New("unsupported connection target")
)

// Target is a parsed connection target with its transport security decided.
type Target struct {
	Driver Driver
	// DSN is the driver-ready connection string. For Postgres the sslmode is always explicit.
	DSN string
	// Host is the host the target points at, empty when the driver default applies.
	Host string
	// Plaintext is true when the connection will not be encrypted.
	Plaintext bool
	// SSLMode is the Postgres sslmode written into DSN.
	SSLMode string

	// Database is the Spanner database path (projects/P/instances/I/databases/D).
	Database string
	// Endpoint is the Spanner host:port override, empty for the production endpoint.
	Endpoint string

	redacted string
}

// Redacted returns the target with any password masked.
func (t Target) Redacted() string {
	if t.redacted != "" {
		return t.redacted
	}
	return t.DSN
}

// ParseTarget parses a connection target and decides transport security.
//
// Encryption is used unless the host is loopback or forcePlaintext is set. An explicit
// sslmode=disable in the target always wins and is stripped; the computed sslmode is then
// written back so the driver never sees the caller's directive verbatim.
func ParseTarget(raw string, forcePlaintext bool) (Target, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Target{}, &ConnectionError{Op: "parse", Err: errEmptyTarget}
	}

	lower := strings.ToLower(raw)
	switch {
	case strings.HasPrefix(lower, "memory://"):
		return Target{Driver: DriverMemory, DSN: raw, Plaintext: true}, nil
	case strings.HasPrefix(lower, "spanner://"):
		return parseSpannerTarget(raw, forcePlaintext)
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return parsePostgresURL(raw, forcePlaintext)
	case strings.Contains(raw, "=") && !strings.Contains(raw, "://"):
		return parsePostgresKeyValue(raw, forcePlaintext)
	default:
		return Target{}, &ConnectionError{Op: "parse", Err: errUnsupportedTarget}
	}
}

func parsePostgresURL(raw string, forcePlaintext bool) (Target, error) {
	u, err := url.Parse(raw)
	if err != nil {
		// url errors echo the input, which may carry a password.
		return Target{}, &ConnectionError{Op: "parse", Err: errors.New("malformed postgres url")}
	}

	q := u.Query()
	host := u.Hostname()
	if host == "" {
		host = q.Get("host")
	}

	mode, plaintext, err := decideSSLMode(q.Get("sslmode"), host, forcePlaintext)
	if err != nil {
		return Target{}, &ConnectionError{Op: "parse", Target: u.Redacted(), Err: err}
	}
	q.Set("sslmode", mode)
	u.RawQuery = q.Encode()

	return Target{
		Driver:    DriverPostgres,
		DSN:       u.String(),
		Host:      host,
		Plaintext: plaintext,
		SSLMode:   mode,
		redacted:  u.Redacted(),
	}, nil
}

func parsePostgresKeyValue(raw string, forcePlaintext bool) (Target, error) {
	pairs, err := parseKeyValue(raw)
	if err != nil {
		return Target{}, &ConnectionError{Op: "parse", Err: err}
	}

	mode, plaintext, err := decideSSLMode(pairs["sslmode"], pairs["host"], forcePlaintext)
	if err != nil {
		return Target{}, &ConnectionError{Op: "parse", Err: err}
	}
	pairs["sslmode"] = mode

	masked := make(map[string]string, len(pairs))
	for k, v := range pairs {
		masked[k] = v
	}
	if _, ok := masked["password"]; ok {
		masked["password"] = "xxxxx"
	}

	return Target{
		Driver:    DriverPostgres,
		DSN:       formatKeyValue(pairs),
		Host:      pairs["host"],
		Plaintext: plaintext,
		SSLMode:   mode,
		redacted:  formatKeyValue(masked),
	}, nil
}

func parseSpannerTarget(raw string, forcePlaintext bool) (Target, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Target{}, &ConnectionError{Op: "parse", Err: errors.New("malformed spanner url")}
	}

	database := strings.Trim(u.Path, "/")
	parts := strings.Split(database, "/")
	if len(parts) != 6 || parts[0] != "projects" || parts[2] != "instances" || parts[4] != "databases" {
		return Target{}, &ConnectionError{
			Op:     "parse",
			Target: raw,
			Err:    errors.New("spanner target must be spanner://[host:port]/projects/P/instances/I/databases/D"),
		}
	}

	host := u.Hostname()
	plaintext := forcePlaintext ||
		strings.EqualFold(u.Query().Get("sslmode"), SSLModeDisable) ||
		(host != "" && isLoopback(host))

	return Target{
		Driver:    DriverSpanner,
		DSN:       database,
		Host:      host,
		Plaintext: plaintext,
		Database:  database,
		Endpoint:  u.Host,
		redacted:  raw,
	}, nil
}

// decideSSLMode applies, in order: explicit disable, forced plaintext, explicit mode, loopback, require.
func decideSSLMode(explicit, host string, forcePlaintext bool) (mode string, plaintext bool, err error) {
	explicit = strings.ToLower(strings.TrimSpace(explicit))
	switch {
	case explicit == SSLModeDisable:
		return SSLModeDisable, true, nil
	case forcePlaintext:
		return SSLModeDisable, true, nil
	case explicit != "":
		if !supportedSSLModes[explicit] {
			return "", false, fmt.Errorf("unsupported sslmode %q", explicit)
		}
		return explicit, false, nil
	case isLoopback(host):
		return SSLModeDisable, true, nil
	default:
		return SSLModeRequire, false, nil
	}
}

// isLoopback reports whether host names the local machine. Names are never resolved.
// An empty host means the driver default, which for lib/pq is localhost.
func isLoopback(host string) bool {
	host = strings.TrimSpace(host)
	if host == "" || strings.HasPrefix(host, "/") {
		return true
	}
	host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// parseKeyValue parses a libpq "key=value key2='quoted value'" connection string.
func parseKeyValue(raw string) (map[string]string, error) {
	pairs := make(map[string]string)
	s := []rune(raw)
	i := 0

	skipSpace := func() {
		for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n') {
			i++
		}
	}

	for {
		skipSpace()
		if i >= len(s) {
			return pairs, nil
		}

		start := i
		for i < len(s) && s[i] != '=' && s[i] != ' ' {
			i++
		}
		key := string(s[start:i])
		skipSpace()
		if i >= len(s) || s[i] != '=' || key == "" {
			return nil, fmt.Errorf("malformed connection string near %q", key)
		}
		i++
		skipSpace()

		var value strings.Builder
		if i < len(s) && s[i] == '\'' {
			i++
			closed := false
			for i < len(s) {
				switch s[i] {
				case '\\':
					i++
					if i < len(s) {
						value.WriteRune(s[i])
					}
				case '\'':
					closed = true
				default:
					value.WriteRune(s[i])
				}
				i++
				if closed {
					break
				}
			}
			if !closed {
				return nil, fmt.Errorf("unterminated quoted value for %q", key)
			}
		} else {
			for i < len(s) && s[i] != ' ' && s[i] != '\t' && s[i] != '\n' {
				if s[i] == '\\' && i+1 < len(s) {
					i++
				}
				value.WriteRune(s[i])
				i++
			}
		}
		pairs[strings.ToLower(key)] = value.String()
	}
}

// formatKeyValue renders pairs sorted by key so the output is stable.
func formatKeyValue(pairs map[string]string) string {
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+quoteValue(pairs[k]))
	}
	return strings.Join(parts, " ")
}

func quoteValue(v string) string {
	if v != "" && !strings.ContainsAny(v, " \t\n'\\") {
		return v
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(v) + "'"
}
