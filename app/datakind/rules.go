package datakind

import (
	"regexp"
	"strconv"

	"github.com/km-arc/kindform/framework/http/validation"
)

// Engine tags for the per-item format rules.
const (
	tagIPv4   = "kind_ipv4"
	tagIP     = "kind_ip"
	tagFQDN   = "kind_fqdn"
	tagNumber = "kind_number"
	tagPath   = "kind_path"
)

const (
	maxFQDNLength = 253
	minNumber     = 68
	maxNumber     = 65535
)

var (
	ipv4Pattern = regexp.MustCompile(`^(\d{1,3}\.){3}\d{1,3}$`)
	ipv6Pattern = regexp.MustCompile(`^([0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}$`)
	fqdnPattern = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*\.?$`)
	pathPattern = regexp.MustCompile(`^[a-zA-Z0-9_\-./]+$`)
)

// IsIPv4 reports whether s is four dot-separated groups of 1-3 decimal digits.
// Group values are not range checked.
func IsIPv4(s string) bool {
	return ipv4Pattern.MatchString(s)
}

// IsIP reports whether s is a dotted IPv4 address or a full eight-group
// hexadecimal IPv6 address. Compressed "::" notation is not accepted.
func IsIP(s string) bool {
	return ipv4Pattern.MatchString(s) || ipv6Pattern.MatchString(s)
}

// IsFQDN reports whether s is a dot-separated host name of at most 253
// characters, with an optional trailing dot.
func IsFQDN(s string) bool {
	if len(s) == 0 || len(s) > maxFQDNLength {
		return false
	}
	return fqdnPattern.MatchString(s)
}

// IsNumberInRange reports whether s is a decimal integer in [68, 65535].
func IsNumberInRange(s string) bool {
	n, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return n >= minNumber && n <= maxNumber
}

// IsPath reports whether s only contains path-safe characters.
func IsPath(s string) bool {
	return pathPattern.MatchString(s)
}

// newEngine returns a rule engine with every option's item rule registered.
func newEngine() (*validation.Engine, error) {
	engine := validation.NewEngine()
	for _, o := range Options() {
		c := table[o]
		if err := engine.Register(c.Tag, c.Match); err != nil {
			return nil, err
		}
		engine.Message(c.Tag, ReasonFormat.Message())
	}
	engine.Message("max", ReasonMaxExceeded.Message())
	engine.Message("required", ReasonRequired.Message())
	return engine, nil
}
