package mailcheck

import (
	"context"
	"errors"
	"net"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/luizndev/unime-pdr/config"
	"github.com/luizndev/unime-pdr/pkg/redis"
)

// MXResult is the verdict of a mail-exchange lookup. Lookup failures are
// kept distinct from a genuinely record-less domain so callers can tell
// "this domain cannot receive mail" from "DNS was unreachable".
type MXResult int

const (
	MXValid MXResult = iota
	MXInvalid
	MXIndeterminate
)

func (r MXResult) String() string {
	switch r {
	case MXValid:
		return "valid"
	case MXInvalid:
		return "invalid"
	default:
		return "indeterminate"
	}
}

// Permissive local@domain.tld shape, not full RFC 5322.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Resolver is the subset of net.Resolver the checker needs.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
}

// Checker validates institutional e-mail addresses: syntactic shape,
// domain allow-list membership and MX record liveness.
type Checker struct {
	resolver Resolver
	cache    *redis.Client // nil disables caching
	allowed  map[string]bool
	timeout  time.Duration
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewChecker builds a Checker from the mail configuration.
// cache may be nil, in which case every call resolves live.
func NewChecker(cfg *config.MailConfig, resolver Resolver, cache *redis.Client, logger *zap.Logger) *Checker {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	allowed := make(map[string]bool, len(cfg.AllowedDomains))
	for _, d := range cfg.AllowedDomains {
		allowed[strings.ToLower(d)] = true
	}
	return &Checker{
		resolver: resolver,
		cache:    cache,
		allowed:  allowed,
		timeout:  cfg.MXTimeout,
		cacheTTL: cfg.MXCacheTTL,
		logger:   logger,
	}
}

// IsValidFormat reports whether the address has a local@domain.tld shape.
func (c *Checker) IsValidFormat(email string) bool {
	return emailRe.MatchString(email)
}

// Domain extracts the domain part of an address. Empty when malformed.
func Domain(email string) string {
	_, domain, found := strings.Cut(email, "@")
	if !found {
		return ""
	}
	return strings.ToLower(domain)
}

// IsDomainAllowed reports allow-list membership.
func (c *Checker) IsDomainAllowed(domain string) bool {
	return c.allowed[strings.ToLower(domain)]
}

// LookupMX resolves the domain's mail-exchange records. A NXDOMAIN or an
// empty record set yields MXInvalid; any other resolution failure yields
// MXIndeterminate. Definitive verdicts are cached; indeterminate ones are
// not, so a transient DNS outage never sticks.
func (c *Checker) LookupMX(ctx context.Context, domain string) MXResult {
	domain = strings.ToLower(domain)

	if c.cache != nil {
		if v, ok := c.cache.GetMXResult(ctx, domain); ok {
			switch v {
			case "valid":
				return MXValid
			case "invalid":
				return MXInvalid
			}
		}
	}

	lookupCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	records, err := c.resolver.LookupMX(lookupCtx, domain)
	result := MXValid
	switch {
	case err != nil:
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
			result = MXInvalid
		} else {
			c.logger.Warn("consulta MX inconclusiva",
				zap.String("domain", domain),
				zap.Error(err),
			)
			result = MXIndeterminate
		}
	case len(records) == 0:
		result = MXInvalid
	}

	if c.cache != nil && result != MXIndeterminate {
		if err := c.cache.SetMXResult(ctx, domain, result.String(), c.cacheTTL); err != nil {
			c.logger.Warn("falha ao armazenar resultado MX em cache", zap.Error(err))
		}
	}

	return result
}
