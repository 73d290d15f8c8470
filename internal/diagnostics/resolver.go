package diagnostics

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"
	"go.uber.org/zap"
)

const DefaultResolvConf = "/etc/resolv.conf"

type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// DNSResolver queries the nameservers from resolv.conf directly and falls
// back to the system resolver when none answers, which covers /etc/hosts
// entries.
type DNSResolver struct {
	client   *dns.Client
	servers  []string
	fallback func(ctx context.Context, host string) ([]string, error)
	logger   *zap.Logger
}

func NewDNSResolver(resolvConf string, logger ...*zap.Logger) *DNSResolver {
	l := zap.L().Named("diagnostics.dns")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("diagnostics.dns")
	}

	r := &DNSResolver{
		client:   &dns.Client{Timeout: 3 * time.Second},
		fallback: net.DefaultResolver.LookupHost,
		logger:   l,
	}

	cfg, err := dns.ClientConfigFromFile(resolvConf)
	if err != nil {
		l.Debug("resolver config unavailable, using system resolver only", zap.Error(err))
		return r
	}
	for _, server := range cfg.Servers {
		r.servers = append(r.servers, net.JoinHostPort(server, cfg.Port))
	}
	return r
}

func (r *DNSResolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return nil, fmt.Errorf("hostname cannot be empty")
	}
	if ip := net.ParseIP(host); ip != nil {
		return []string{ip.String()}, nil
	}

	fqdn := dns.Fqdn(host)
	for _, server := range r.servers {
		addrs, err := r.query(ctx, fqdn, server)
		if err != nil {
			r.logger.Debug("DNS query failed", zap.String("resolver", server), zap.Error(err))
			continue
		}
		if len(addrs) > 0 {
			return addrs, nil
		}
	}

	r.logger.Debug("Falling back to system resolver", zap.String("host", host))
	addrs, err := r.fallback(ctx, host)
	if err != nil {
		return nil, fmt.Errorf("system resolver lookup failed: %w", err)
	}
	return addrs, nil
}

func (r *DNSResolver) query(ctx context.Context, fqdn, server string) ([]string, error) {
	var addrs []string
	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		msg := new(dns.Msg)
		msg.SetQuestion(fqdn, qtype)

		resp, _, err := r.client.ExchangeContext(ctx, msg, server)
		if err != nil {
			return nil, err
		}
		if resp.Rcode != dns.RcodeSuccess {
			return nil, fmt.Errorf("resolver answered %s", dns.RcodeToString[resp.Rcode])
		}

		for _, ans := range resp.Answer {
			switch rr := ans.(type) {
			case *dns.A:
				addrs = append(addrs, rr.A.String())
			case *dns.AAAA:
				addrs = append(addrs, rr.AAAA.String())
			}
		}
	}
	return addrs, nil
}
